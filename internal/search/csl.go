// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Title    string    `yaml:"title"`
	Author   []CSLName `yaml:"author,omitempty"`
	Abstract string    `yaml:"abstract,omitempty"`
	PMID     string    `yaml:"PMID"`
	URL      string    `yaml:"URL,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// FormatCSL writes the page's articles as a CSL-YAML list to w.
func FormatCSL(p types.SearchResultPage, w io.Writer) error {
	items := make([]CSLItem, len(p.Articles))
	for i, a := range p.Articles {
		items[i] = toCSLItem(a)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(a types.ArticleRecord) CSLItem {
	item := CSLItem{
		ID:    "pmid:" + a.ID,
		Type:  "article-journal",
		Title: a.Title,
		PMID:  a.ID,
		URL:   a.URL,
	}
	if a.Abstract.Found {
		item.Abstract = a.Abstract.Text
	}
	for _, name := range a.Authors {
		item.Author = append(item.Author, parseAuthorName(name))
	}
	return item
}

// parseAuthorName splits a PubMed display name ("Smith JA") into family and
// initials. PubMed puts the family name first, so the split is on the last
// space: the trailing token is the initials. Names without a space, such as
// collective authors, use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	initials := name[idx+1:]
	if initials != strings.ToUpper(initials) {
		return CSLName{Literal: name}
	}
	return CSLName{
		Family: name[:idx],
		Given:  initials,
	}
}
