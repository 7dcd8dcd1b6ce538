package common

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dtnitsch/metasift/models"
	"github.com/dtnitsch/metasift/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Runtime bundles what every command needs: resolved configuration,
// a logger, file access and the writer for command output.
type Runtime struct {
	Config  *models.Config
	Logger  *slog.Logger
	Storage *storage.Storage
	Out     io.Writer
}

// LoadRuntime resolves configuration (environment, --config file, then
// flags) and wires the logger and storage to the app's streams.
func LoadRuntime(c *cli.Context) (*Runtime, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("format") {
		cfg.Format = strings.ToLower(c.String("format"))
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("top") {
		cfg.TopKeywords = c.Int("top")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return &Runtime{
		Config:  cfg,
		Logger:  NewLogger(c.App.ErrWriter, cfg.LogLevel, c.Bool("quiet")),
		Storage: storage.WithStdin(c.App.Reader),
		Out:     c.App.Writer,
	}, nil
}

// WriteResponse encodes resp in the configured format to the command output.
func (rt *Runtime) WriteResponse(resp models.Response) error {
	data, err := Marshal(resp, rt.Config.Format)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	if _, err := rt.Out.Write(data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
