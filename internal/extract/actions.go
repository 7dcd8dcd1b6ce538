package extract

import (
	"fmt"
	"time"

	"github.com/dtnitsch/metasift/internal/common"
	"github.com/dtnitsch/metasift/models"
	"github.com/dtnitsch/metasift/pkg/manifest"
	"github.com/dtnitsch/metasift/pkg/mapreduce"
	"github.com/urfave/cli/v2"
)

const command = "extract"

// ExtractAction reads HTML inputs, extracts their metadata and writes the
// records. Exit status is 1 when some inputs failed and 2 when all did.
func ExtractAction(c *cli.Context) error {
	rt, err := common.LoadRuntime(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if c.NArg() == 0 {
		return cli.Exit("Error: no inputs given\n\nUsage:\n  metasift extract page.html pages/ -\n", 1)
	}

	fields, err := common.ParseFields(c.String("fields"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	inputs, err := rt.Storage.Discover(c.Context, c.Args().Slice(), rt.Config.Extensions)
	if err != nil {
		rt.Logger.Error("failed to discover inputs", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	if len(inputs) == 0 {
		return cli.Exit("Error: no HTML files found in the given paths", 1)
	}

	startTime := time.Now()
	results := run(c.Context, rt.Logger, rt.Storage, inputs, rt.Config.Workers)

	var (
		data         []interface{}
		failed       int
		intermediate []map[string]int
	)
	for _, r := range results {
		if r.Error != nil {
			failed++
			continue
		}
		intermediate = append(intermediate, r.KeywordCounts)

		record := common.SelectFields(r.Metadata, fields)
		if c.Bool("records-only") {
			data = append(data, record)
			continue
		}
		data = append(data, entry{Source: r.Source, Metadata: record})
	}
	if data == nil {
		data = []interface{}{}
	}

	rt.Logger.Info("Extraction complete",
		"inputs", len(inputs), "failed", failed, "seconds", time.Since(startTime).Seconds())

	if path := c.String("manifest"); path != "" {
		m := manifest.GenerateSummary(results, mapreduce.Reduce(intermediate), rt.Config.TopKeywords, time.Now())
		if err := manifest.Save(m, path, rt.Storage); err != nil {
			rt.Logger.Warn("Failed to write manifest", "path", path, "error", err)
		}
	}

	resp := models.Response{
		Command: command,
		Count:   len(inputs) - failed,
		Total:   len(inputs),
		Data:    data,
	}
	if failed > 0 {
		resp.Error = &models.ErrorInfo{
			Type:             "partial_failure",
			Message:          fmt.Sprintf("%d of %d inputs could not be read", failed, len(inputs)),
			SuggestedActions: []string{"Run with --manifest to see per-input errors"},
		}
	}

	if err := writeOutput(rt, resp, c.String("out")); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	switch {
	case failed == len(inputs):
		return cli.Exit("", 2)
	case failed > 0:
		return cli.Exit("", 1)
	}
	return nil
}

// entry is an extracted record with the input it came from. Metadata is
// either a *models.Metadata or a field-selected map.
type entry struct {
	Source   string      `json:"source" yaml:"source"`
	Metadata interface{} `json:"metadata" yaml:"metadata"`
}

func writeOutput(rt *common.Runtime, resp models.Response, path string) error {
	if path == "" {
		return rt.WriteResponse(resp)
	}
	out, err := common.Marshal(resp, rt.Config.Format)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	if err := rt.Storage.SaveFile(path, out); err != nil {
		return err
	}
	rt.Logger.Info("Results written", "path", path)
	return nil
}
