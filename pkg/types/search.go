// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-proxy service.
// Everything here is request-scoped: values are built by one handler
// invocation and discarded when it returns.
package types

// SearchQuery is the user input of a search request.
type SearchQuery struct {
	// Term is passed to esearch verbatim. Required, non-blank.
	Term string `json:"term" yaml:"term"`

	// Page is the 1-based results page (default 1).
	Page int `json:"page" yaml:"page"`
}

// SearchResultPage is one page of search results together with the
// pagination metadata needed to render the page links.
type SearchResultPage struct {
	// IDs lists the PubMed identifiers of this page in upstream ranking order.
	IDs []string `json:"ids" yaml:"ids"`

	// TotalCount is the total number of matches reported by esearch.
	TotalCount int `json:"total_count" yaml:"total_count"`

	// TotalPages is TotalCount/PageSize + 1.
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// Page is the page these results belong to.
	Page int `json:"page" yaml:"page"`

	// Articles holds the shaped summaries for IDs, in the same order.
	Articles []ArticleRecord `json:"articles" yaml:"articles"`
}

// HasPrev reports whether a previous page exists.
func (p SearchResultPage) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p SearchResultPage) HasNext() bool { return p.Page < p.TotalPages }
