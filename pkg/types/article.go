// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "encoding/json"

// Wire literals substituted for absent abstracts and keyword lists. Browsers
// and scripts already match on these exact strings.
const (
	AbstractNotFound = "Abstract Not Found"
	KeywordsNotFound = "Keywords Not Found"
)

// ArticleRecord is one shaped esummary entry.
type ArticleRecord struct {
	// ID is the PubMed identifier (PMID).
	ID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title as returned upstream.
	Title string `json:"title" yaml:"title"`

	// URL is the public PubMed page for ID.
	URL string `json:"url" yaml:"url"`

	// Authors lists author names in upstream order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the joined abstract text, or not found.
	Abstract Abstract `json:"abstract" yaml:"abstract"`
}

// Abstract is either the text of an article abstract or the not-found case.
// The zero value is not found.
type Abstract struct {
	Text  string
	Found bool
}

// AbstractOf returns a found Abstract for text, or not found when text is empty.
func AbstractOf(text string) Abstract {
	if text == "" {
		return Abstract{}
	}
	return Abstract{Text: text, Found: true}
}

// String returns the abstract text or AbstractNotFound.
func (a Abstract) String() string {
	if !a.Found {
		return AbstractNotFound
	}
	return a.Text
}

// MarshalJSON encodes the abstract as a plain JSON string.
func (a Abstract) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// MarshalYAML encodes the abstract as a plain YAML string.
func (a Abstract) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML reverses MarshalYAML. The AbstractNotFound literal decodes
// to the not-found case.
func (a *Abstract) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == AbstractNotFound {
		s = ""
	}
	*a = AbstractOf(s)
	return nil
}

// Keywords is either a non-empty list of keyword terms or the not-found case.
// The zero value is not found.
type Keywords struct {
	Terms []string
	Found bool
}

// KeywordsOf returns found Keywords for terms, or not found when terms is empty.
func KeywordsOf(terms []string) Keywords {
	if len(terms) == 0 {
		return Keywords{}
	}
	return Keywords{Terms: terms, Found: true}
}

// MarshalJSON encodes found keywords as an array and the not-found case as
// the KeywordsNotFound string.
func (k Keywords) MarshalJSON() ([]byte, error) {
	if !k.Found {
		return json.Marshal(KeywordsNotFound)
	}
	return json.Marshal(k.Terms)
}
