package common

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtnitsch/metasift/models"
	"gopkg.in/yaml.v3"
)

// recordEntry accepts either a bare record or an extract entry
// ({source, metadata}) from a collection file.
type recordEntry struct {
	Source   string           `json:"source" yaml:"source"`
	Metadata *models.Metadata `json:"metadata" yaml:"metadata"`

	URL         *string  `json:"url" yaml:"url"`
	SiteName    *string  `json:"siteName" yaml:"siteName"`
	Title       *string  `json:"title" yaml:"title"`
	Description *string  `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Author      *string  `json:"author" yaml:"author"`
}

func (e *recordEntry) record() *models.Metadata {
	if e.Metadata != nil {
		return e.Metadata
	}
	return &models.Metadata{
		URL:         e.URL,
		SiteName:    e.SiteName,
		Title:       e.Title,
		Description: e.Description,
		Keywords:    e.Keywords,
		Author:      e.Author,
	}
}

type responseFile struct {
	Data []recordEntry `json:"data" yaml:"data"`
}

// DecodeRecords reads a record collection in JSON or YAML. The collection
// may be a list of records, a list of extract entries, or a full extract
// response whose data holds either.
func DecodeRecords(data []byte) ([]*models.Metadata, error) {
	unmarshal := yaml.Unmarshal
	if json.Valid(data) {
		unmarshal = json.Unmarshal
	}

	var entries []recordEntry
	if err := unmarshal(data, &entries); err != nil {
		var resp responseFile
		if respErr := unmarshal(data, &resp); respErr != nil {
			return nil, fmt.Errorf("failed to decode records: %w", errors.Join(err, respErr))
		}
		entries = resp.Data
	}

	records := make([]*models.Metadata, len(entries))
	for i := range entries {
		records[i] = entries[i].record()
	}
	return records, nil
}
