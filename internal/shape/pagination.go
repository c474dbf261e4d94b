// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shape

import "github.com/pdiddy/pubmed-proxy/pkg/types"

// Paginator converts between page numbers and esearch windows. The same
// page size drives Offset and TotalPages so the two never disagree.
type Paginator struct {
	size int
}

// NewPaginator returns a Paginator for size records per page. A
// non-positive size falls back to types.DefaultPageSize.
func NewPaginator(size int) Paginator {
	if size <= 0 {
		size = types.DefaultPageSize
	}
	return Paginator{size: size}
}

// PageSize returns records per page.
func (p Paginator) PageSize() int { return p.size }

// Offset returns the esearch retstart for a 1-based page.
func (p Paginator) Offset(page int) int { return (page - 1) * p.size }

// TotalPages returns count/size + 1. An exact multiple still gets the extra
// page, matching the links the results page has always shown.
func (p Paginator) TotalPages(count int) int { return count/p.size + 1 }

// Page assembles the result page for one search window.
func (p Paginator) Page(page int, ids []string, count int, articles []types.ArticleRecord) types.SearchResultPage {
	if articles == nil {
		articles = []types.ArticleRecord{}
	}
	return types.SearchResultPage{
		IDs:        ids,
		TotalCount: count,
		TotalPages: p.TotalPages(count),
		Page:       page,
		Articles:   articles,
	}
}
