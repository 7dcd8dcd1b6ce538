package mapreduce

import (
	"fmt"
	"sort"
	"strings"
)

// isValidKeyword rejects tokens with unmatched delimiters, a trailing ':'
// or '=', or unbalanced quotes.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	for _, pair := range [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}} {
		if strings.Contains(word, pair[0]) && !strings.Contains(word, pair[1]) {
			return false
		}
	}

	if strings.Count(word, "\"")%2 != 0 || strings.Count(word, "'")%2 != 0 {
		return false
	}

	return true
}

// KeywordCount is one keyword and how many records carry it.
type KeywordCount struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Count   int    `json:"count" yaml:"count"`
}

// Rank returns valid keywords ordered by count (descending), ties broken
// alphabetically, limited to n. n <= 0 means no limit.
func Rank(wordCounts map[string]int, n int) []KeywordCount {
	ranked := make([]KeywordCount, 0, len(wordCounts))
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			ranked = append(ranked, KeywordCount{Keyword: k, Count: v})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopKeywords returns the top N keywords formatted as "word:count".
func TopKeywords(wordCounts map[string]int, n int) []string {
	ranked := Rank(wordCounts, n)
	keywords := make([]string, len(ranked))
	for i, kc := range ranked {
		keywords[i] = fmt.Sprintf("%s:%d", kc.Keyword, kc.Count)
	}
	return keywords
}
