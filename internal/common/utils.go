package common

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dtnitsch/metasift/models"
	"gopkg.in/yaml.v3"
)

// NewLogger returns a JSON logger on w at the given level name.
// quiet forces the error level.
func NewLogger(w io.Writer, level string, quiet bool) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// Marshal encodes v as indented JSON or YAML.
func Marshal(v interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case models.FormatYAML:
		return yaml.Marshal(v)
	case models.FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// ParseFields splits a comma-separated field list and checks every name
// against the record fields. An empty string selects all fields.
func ParseFields(fieldsStr string) ([]string, error) {
	if strings.TrimSpace(fieldsStr) == "" {
		return nil, nil
	}

	valid := make(map[string]bool)
	for _, f := range models.AllFields() {
		valid[f] = true
	}

	var fields []string
	for _, f := range strings.Split(fieldsStr, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !valid[f] {
			return nil, fmt.Errorf("unknown field %q (valid: %s)", f, strings.Join(models.AllFields(), ", "))
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// SelectFields returns the record as a map holding only the requested
// fields. Absent fields stay present as nil so they still print as null.
// With no fields the record is returned unchanged.
func SelectFields(md *models.Metadata, fields []string) interface{} {
	if len(fields) == 0 || md == nil {
		return md
	}

	full := structToMap(md)
	filtered := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		filtered[f] = full[f]
	}
	return filtered
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}
