// Package models defines data structures for metadata records, configuration and command output.
package models

import "strings"

// Metadata is the structured result of scanning an HTML document's head.
// A nil field means the value was absent from the document. Keywords
// distinguishes a missing tag (nil) from an explicitly empty one (empty slice).
type Metadata struct {
	URL         *string  `json:"url" yaml:"url"`
	SiteName    *string  `json:"siteName" yaml:"siteName"`
	Title       *string  `json:"title" yaml:"title"`
	Description *string  `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Author      *string  `json:"author" yaml:"author"`
}

// Field names as they appear in serialized records.
const (
	FieldURL         = "url"
	FieldSiteName    = "siteName"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldKeywords    = "keywords"
	FieldAuthor      = "author"
)

// AllFields returns the record field names in declaration order.
func AllFields() []string {
	return []string{FieldURL, FieldSiteName, FieldTitle, FieldDescription, FieldKeywords, FieldAuthor}
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Values returns the present field values in declaration order.
// Keywords are joined with a single space into one value.
func (m *Metadata) Values() []string {
	values := make([]string, 0, 6)
	for _, v := range []*string{m.URL, m.SiteName, m.Title, m.Description} {
		if v != nil {
			values = append(values, *v)
		}
	}
	if m.Keywords != nil {
		values = append(values, strings.Join(m.Keywords, " "))
	}
	if m.Author != nil {
		values = append(values, *m.Author)
	}
	return values
}

// IsEmpty reports whether every field is absent.
func (m *Metadata) IsEmpty() bool {
	return m.URL == nil && m.SiteName == nil && m.Title == nil &&
		m.Description == nil && m.Keywords == nil && m.Author == nil
}

// MarshalYAML keeps a missing keywords tag as null. yaml.v3 writes nil
// slices as [], which would collapse it into the empty-tag case.
func (m Metadata) MarshalYAML() (interface{}, error) {
	type yamlMetadata struct {
		URL         *string   `yaml:"url"`
		SiteName    *string   `yaml:"siteName"`
		Title       *string   `yaml:"title"`
		Description *string   `yaml:"description"`
		Keywords    *[]string `yaml:"keywords"`
		Author      *string   `yaml:"author"`
	}

	out := yamlMetadata{
		URL:         m.URL,
		SiteName:    m.SiteName,
		Title:       m.Title,
		Description: m.Description,
		Author:      m.Author,
	}
	if m.Keywords != nil {
		keywords := m.Keywords
		out.Keywords = &keywords
	}
	return out, nil
}
