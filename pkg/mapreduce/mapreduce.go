// Package mapreduce aggregates keyword frequencies across metadata records.
package mapreduce

import (
	"strings"

	"github.com/dtnitsch/metasift/models"
)

// Map counts the keywords of a single record. Keywords are trimmed and
// lowercased; empty pieces are skipped.
func Map(md *models.Metadata) map[string]int {
	counts := make(map[string]int)
	if md == nil {
		return counts
	}
	for _, kw := range md.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		counts[kw]++
	}
	return counts
}

// Reduce aggregates a slice of keyword frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
