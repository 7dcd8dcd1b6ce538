package filter

import (
	"fmt"

	"github.com/dtnitsch/metasift/internal/common"
	"github.com/dtnitsch/metasift/models"
	"github.com/dtnitsch/metasift/pkg/metafilter"
	"github.com/urfave/cli/v2"
)

const command = "filter"

// explanation is written instead of the bare matches when --explain is set.
// Terms are shown as the filter sees them, after normalization.
type explanation struct {
	Query   string                 `json:"query" yaml:"query"`
	Terms   []metafilter.TermCount `json:"terms" yaml:"terms"`
	Matches []interface{}          `json:"matches" yaml:"matches"`
}

// FilterAction loads a record collection and writes the records matching --query.
func FilterAction(c *cli.Context) error {
	rt, err := common.LoadRuntime(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if c.NArg() != 1 {
		return cli.Exit("Error: expected one record file\n\nUsage:\n  metasift filter --query \"cats dogs\" records.json\n", 1)
	}

	fields, err := common.ParseFields(c.String("fields"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	source := c.Args().First()
	data, err := rt.Storage.ReadFile(source)
	if err != nil {
		rt.Logger.Error("failed to read records", "source", source, "error", err)
		return cli.Exit(err.Error(), 2)
	}

	records, err := common.DecodeRecords(data)
	if err != nil {
		resp := models.NewErrorResponse(command, "decode_error", err.Error(),
			"Pass a JSON or YAML list of records", "Or pass the output of 'metasift extract'")
		if writeErr := rt.WriteResponse(resp); writeErr != nil {
			return cli.Exit(writeErr.Error(), 2)
		}
		return cli.Exit("", 2)
	}

	query := c.String("query")
	matched := metafilter.Filter(records, query)
	rt.Logger.Info("Filter complete", "query", query, "records", len(records), "matches", len(matched))

	selected := make([]interface{}, len(matched))
	for i, md := range matched {
		selected[i] = common.SelectFields(md, fields)
	}

	resp := models.Response{
		Command: command,
		Count:   len(matched),
		Total:   len(records),
		Data:    selected,
	}
	if c.Bool("explain") {
		q := metafilter.ParseQuery(query)
		resp.Data = explanation{
			Query:   q.Raw,
			Terms:   q.Explain(records),
			Matches: selected,
		}
	}

	if err := rt.WriteResponse(resp); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write output: %v", err), 2)
	}
	return nil
}
