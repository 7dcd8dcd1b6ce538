package headmeta

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// On well-formed single-line heads the text scan reads the same values a DOM does.
func TestExtract_AgreesWithDOM(t *testing.T) {
	docs := []string{
		`<html><head><title>Cats and Dogs</title><meta property="og:url" content="https://example.com/a"><meta property="og:site_name" content="Example"><meta name="author" content="Jane"></head></html>`,
		`<html><head><title>Docs</title><meta name="keywords" content="go,html,meta"><meta name="description" content="Reference pages"></head></html>`,
		`<html><head><title>Only og</title><meta property="og:description" content="Shared text"></head></html>`,
	}

	for _, html := range docs {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			t.Fatalf("goquery parse failed: %v", err)
		}
		got := Extract(html)

		if want := doc.Find("title").First().Text(); got.Title == nil || *got.Title != want {
			t.Errorf("Title = %v, DOM has %q", deref(got.Title), want)
		}

		checks := []struct {
			selector string
			field    *string
		}{
			{`meta[property="og:url"]`, got.URL},
			{`meta[property="og:site_name"]`, got.SiteName},
			{`meta[name="author"]`, got.Author},
		}
		for _, c := range checks {
			want, exists := doc.Find(c.selector).Last().Attr("content")
			if !exists {
				if c.field != nil {
					t.Errorf("%s: got %q, DOM has no such tag", c.selector, *c.field)
				}
				continue
			}
			if c.field == nil || *c.field != want {
				t.Errorf("%s: got %v, DOM has %q", c.selector, deref(c.field), want)
			}
		}

		desc := doc.Find(`meta[name="description"], meta[property="og:description"]`).Last()
		if want, exists := desc.Attr("content"); exists {
			if got.Description == nil || *got.Description != strings.TrimSpace(want) {
				t.Errorf("Description = %v, DOM has %q", deref(got.Description), want)
			}
		}

		if want, exists := doc.Find(`meta[name="keywords"]`).Last().Attr("content"); exists {
			if !reflect.DeepEqual(got.Keywords, strings.Split(want, ",")) {
				t.Errorf("Keywords = %#v, DOM has %q", got.Keywords, want)
			}
		}
	}
}
