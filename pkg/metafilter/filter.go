// Package metafilter selects metadata records that match a free-text query.
//
// A query is lowercased, stripped of '.', ',' and '-', and split on single
// spaces into terms. A record matches a term when one of its present field
// values, normalized the same way, contains the term or is contained in it.
// Results are the union over all terms in first-seen order, with each
// record (by pointer) listed once.
package metafilter

import (
	"strings"

	"github.com/dtnitsch/metasift/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var specialChars = strings.NewReplacer(".", "", ",", "", "-", "")

// Query is a parsed search query.
type Query struct {
	Raw   string
	Terms []string

	caser cases.Caser
}

// ParseQuery normalizes raw and splits it into terms. Runs of spaces
// produce empty terms, which match any record with a present field.
func ParseQuery(raw string) *Query {
	q := &Query{Raw: raw, caser: cases.Lower(language.Und)}
	q.Terms = strings.Split(q.normalize(raw), " ")
	return q
}

// normalize lowercases s and removes the characters queries ignore.
func (q *Query) normalize(s string) string {
	return specialChars.Replace(q.caser.String(s))
}

// values returns the normalized present values of a record.
func (q *Query) values(m *models.Metadata) []string {
	values := m.Values()
	for i, v := range values {
		values[i] = q.normalize(v)
	}
	return values
}

// Match reports whether the record matches the given normalized term.
func (q *Query) Match(m *models.Metadata, term string) bool {
	if m == nil {
		return false
	}
	return matchValues(q.values(m), term)
}

func matchValues(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(v, term) || strings.Contains(term, v) {
			return true
		}
	}
	return false
}

// Apply returns the records matching any term, in first-seen order,
// without repeating a record.
func (q *Query) Apply(records []*models.Metadata) []*models.Metadata {
	normalized := make([][]string, len(records))
	for i, r := range records {
		if r != nil {
			normalized[i] = q.values(r)
		}
	}

	seen := make(map[*models.Metadata]struct{}, len(records))
	result := []*models.Metadata{}
	for _, term := range q.Terms {
		for i, r := range records {
			if r == nil || !matchValues(normalized[i], term) {
				continue
			}
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			result = append(result, r)
		}
	}
	return result
}

// TermCount is the number of records a single term selects.
type TermCount struct {
	Term    string `json:"term" yaml:"term"`
	Matches int    `json:"matches" yaml:"matches"`
}

// Explain reports how many records each term selects on its own,
// before records are merged across terms.
func (q *Query) Explain(records []*models.Metadata) []TermCount {
	counts := make([]TermCount, len(q.Terms))
	for i, term := range q.Terms {
		counts[i].Term = term
		for _, r := range records {
			if q.Match(r, term) {
				counts[i].Matches++
			}
		}
	}
	return counts
}

// Filter returns the records that match query. A nil collection yields an
// empty result and an empty query returns records as given.
func Filter(records []*models.Metadata, query string) []*models.Metadata {
	if records == nil {
		return []*models.Metadata{}
	}
	if query == "" {
		return records
	}
	return ParseQuery(query).Apply(records)
}
