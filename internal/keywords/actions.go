package keywords

import (
	"github.com/dtnitsch/metasift/internal/common"
	"github.com/dtnitsch/metasift/models"
	"github.com/dtnitsch/metasift/pkg/mapreduce"
	"github.com/urfave/cli/v2"
)

const command = "keywords"

// KeywordsAction ranks the keywords carried by a record collection.
func KeywordsAction(c *cli.Context) error {
	rt, err := common.LoadRuntime(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if c.NArg() != 1 {
		return cli.Exit("Error: expected one record file\n\nUsage:\n  metasift keywords --top 10 records.json\n", 1)
	}

	data, err := rt.Storage.ReadFile(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	records, err := common.DecodeRecords(data)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	intermediate := make([]map[string]int, 0, len(records))
	for _, md := range records {
		intermediate = append(intermediate, mapreduce.Map(md))
	}
	ranked := mapreduce.Rank(mapreduce.Reduce(intermediate), rt.Config.TopKeywords)

	return rt.WriteResponse(models.Response{
		Command: command,
		Count:   len(ranked),
		Total:   len(records),
		Data:    ranked,
	})
}
