// Package headmeta scans raw HTML text for page metadata in <title> and <meta> tags.
//
// The scan is a sequence of pattern searches over the text, not a DOM parse.
// Tags must sit on a single line and attribute values must be double-quoted.
package headmeta

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/metasift/models"
)

// lineChar is any character a tag pattern may span. Newlines are stripped
// before scanning; the remaining line terminators still end a match.
const lineChar = `[^\n\r\x{2028}\x{2029}]`

var (
	titlePattern = regexp.MustCompile(`(?i)<title>(` + lineChar + `*?)<`)
	metaPattern  = regexp.MustCompile(`<meta ` + lineChar + `*?>`)

	nameAttr     = newAttr("name")
	propertyAttr = newAttr("property")
	contentAttr  = newAttr("content")
)

// attr locates the first key="value" pair inside a tag.
type attr struct {
	prefix  string
	pattern *regexp.Regexp
}

func newAttr(key string) attr {
	return attr{
		prefix:  key + "=",
		pattern: regexp.MustCompile(regexp.QuoteMeta(key) + `="` + lineChar + `*?"`),
	}
}

// find returns the unquoted value and whether the attribute was present.
// The value stops short of any repeated key= inside it.
func (a attr) find(tag string) (string, bool) {
	loc := a.pattern.FindStringIndex(tag)
	if loc == nil {
		return "", false
	}
	value := tag[loc[0]+len(a.prefix) : loc[1]]
	if i := strings.Index(value, a.prefix); i >= 0 {
		value = value[:i]
	}
	return strings.ReplaceAll(value, `"`, ""), true
}

// Extract scans html and returns its metadata. Empty input yields a record
// with every field absent. Extract never fails; tags it cannot read leave
// their fields absent.
func Extract(html string) *models.Metadata {
	md := &models.Metadata{}
	if html == "" {
		return md
	}

	text := strings.ReplaceAll(html, "\n", "")

	// <title></title> captures "" and is kept as an empty title.
	if m := titlePattern.FindStringSubmatch(text); m != nil {
		md.Title = models.String(m[1])
	}

	for _, tag := range metaPattern.FindAllString(text, -1) {
		applyTag(md, tag)
	}

	return md
}

// ExtractBytes is Extract for raw bytes. Input that is not valid UTF-8 is
// not treated as text and yields an all-absent record.
func ExtractBytes(data []byte) *models.Metadata {
	if !utf8.Valid(data) {
		return &models.Metadata{}
	}
	return Extract(string(data))
}

// applyTag assigns the fields a single <meta> tag maps to. A later tag
// overwrites an earlier one for the same field, so when both og:description
// and name="description" are present the one further down the page wins.
func applyTag(md *models.Metadata, tag string) {
	content, hasContent := contentAttr.find(tag)
	if !hasContent {
		return
	}

	if property, ok := propertyAttr.find(tag); ok {
		switch property {
		case "og:url":
			md.URL = models.String(content)
		case "og:site_name":
			md.SiteName = models.String(content)
		case "og:description":
			md.Description = models.String(content)
		}
	}

	if name, ok := nameAttr.find(tag); ok {
		switch name {
		case "description":
			md.Description = models.String(trim(content))
		case "keywords":
			md.Keywords = splitKeywords(content)
		case "author":
			md.Author = models.String(content)
		}
	}
}

// splitKeywords splits on commas without trimming the pieces.
// Whitespace-only content is an explicitly empty list.
func splitKeywords(content string) []string {
	if trim(content) == "" {
		return []string{}
	}
	return strings.Split(content, ",")
}

// trim removes leading and trailing whitespace and line terminators: the
// space separators (Zs), tab, vertical tab, form feed, BOM, LF, CR, LS and PS.
// Other control characters such as NEL (U+0085) are kept.
func trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\n', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
