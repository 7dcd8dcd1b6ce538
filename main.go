package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/metasift/internal/extract"
	"github.com/dtnitsch/metasift/internal/filter"
	"github.com/dtnitsch/metasift/internal/keywords"
	"github.com/dtnitsch/metasift/pkg/help"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "metasift",
		Usage:   "Extract <head> metadata from HTML and filter metadata records",
		Suggest: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file (overrides METASIFT_* environment)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: json or yaml",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract metadata records from HTML files, directories or stdin",
				ArgsUsage: "PATH... (use - for stdin)",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Number of concurrent workers",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write results to FILE instead of stdout",
					},
					&cli.StringFlag{
						Name:  "manifest",
						Usage: "Write a run summary to FILE (.json, .yaml)",
					},
					&cli.StringFlag{
						Name:  "fields",
						Usage: "Comma-separated record fields to keep (url,siteName,title,description,keywords,author)",
					},
					&cli.BoolFlag{
						Name:  "records-only",
						Usage: "Write bare records without their source",
					},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:      "filter",
				Usage:     "Keep the records matching a multi-term query",
				ArgsUsage: "FILE (use - for stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"Q"},
						Usage:   "Space-separated terms; a record matches if any term matches",
					},
					&cli.StringFlag{
						Name:  "fields",
						Usage: "Comma-separated record fields to keep",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Report per-term match counts alongside the matches",
					},
				},
				Action: filter.FilterAction,
			},
			{
				Name:      "keywords",
				Usage:     "Rank keywords across a record collection",
				ArgsUsage: "FILE (use - for stdin)",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Number of keywords to report (0 for all)",
					},
				},
				Action: keywords.KeywordsAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print a quick reference of commands, fields and query rules",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return err
				},
			},
		},
	}
}

// run executes the app and returns the process exit code. Exit errors
// carry their own code; any other error is printed and treated as fatal.
func run(ctx context.Context, app *cli.App, args []string) int {
	err := app.RunContext(ctx, args)
	if err == nil {
		return 0
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	fmt.Fprintf(app.ErrWriter, "Error: %v\n", err)
	return 2
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, newApp(), os.Args)
	stop()
	os.Exit(code)
}
