package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/metasift/models"
	"github.com/dtnitsch/metasift/pkg/mapreduce"
	"github.com/dtnitsch/metasift/pkg/storage"
	"gopkg.in/yaml.v3"
)

// InputResult is the outcome of extracting one input.
type InputResult struct {
	Source        string
	Metadata      *models.Metadata
	Error         error
	ErrorType     string
	KeywordCounts map[string]int
	SizeBytes     int64
}

// GenerateSummary builds a manifest from per-input results and the
// aggregated keyword counts of the batch.
func GenerateSummary(results []InputResult, aggregateKeywords map[string]int, topN int, now time.Time) *RunManifest {
	m := &RunManifest{
		GeneratedAt:       now.Format(time.RFC3339),
		TotalInputs:       len(results),
		AggregateKeywords: mapreduce.TopKeywords(aggregateKeywords, topN),
		Results:           make([]InputSummary, 0, len(results)),
	}

	for _, result := range results {
		summary := InputSummary{
			Source:    result.Source,
			SizeBytes: result.SizeBytes,
		}

		if result.Error != nil {
			m.Failed++
			summary.Status = "error"
			summary.ErrorType = result.ErrorType
			summary.ErrorMessage = result.Error.Error()
		} else {
			m.Successful++
			summary.Status = "success"
			summary.FieldsFound = fieldsFound(result.Metadata)
			if result.KeywordCounts != nil {
				summary.TopKeywords = mapreduce.TopKeywords(result.KeywordCounts, topN)
			}
		}

		m.Results = append(m.Results, summary)
	}

	return m
}

func fieldsFound(md *models.Metadata) []string {
	if md == nil {
		return nil
	}
	present := map[string]bool{
		models.FieldURL:         md.URL != nil,
		models.FieldSiteName:    md.SiteName != nil,
		models.FieldTitle:       md.Title != nil,
		models.FieldDescription: md.Description != nil,
		models.FieldKeywords:    md.Keywords != nil,
		models.FieldAuthor:      md.Author != nil,
	}
	var fields []string
	for _, f := range models.AllFields() {
		if present[f] {
			fields = append(fields, f)
		}
	}
	return fields
}

// Save writes the manifest to path, as YAML for .yaml/.yml and JSON otherwise.
func Save(m *RunManifest, path string, s *storage.Storage) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(m)
	default:
		data, err = json.MarshalIndent(m, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}
