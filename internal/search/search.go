// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search runs the PubMed search flow: one esearch for the requested
// page, one esummary for the returned identifiers, and shaping into a
// results page. It also formats a page for terminal output.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/internal/shape"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// Backend is the part of the E-utilities client the search flow needs.
type Backend interface {
	Search(ctx context.Context, term string, offset, limit int) (eutils.SearchResult, error)
	FetchSummaries(ctx context.Context, ids []string) (*eutils.SummaryDocument, error)
}

// Run executes q against b. An empty identifier list skips the summary
// fetch and yields a page with no articles.
func Run(ctx context.Context, b Backend, pager shape.Paginator, q types.SearchQuery) (types.SearchResultPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	res, err := b.Search(ctx, q.Term, pager.Offset(page), pager.PageSize())
	if err != nil {
		return types.SearchResultPage{}, err
	}

	var articles []types.ArticleRecord
	if len(res.IDs) > 0 {
		doc, err := b.FetchSummaries(ctx, res.IDs)
		if err != nil {
			return types.SearchResultPage{}, err
		}
		if articles, err = shape.Articles(doc); err != nil {
			return types.SearchResultPage{}, err
		}
	}

	return pager.Page(page, res.IDs, res.Count, articles), nil
}

// FormatTable writes a human-readable table of the page to w.
func FormatTable(p types.SearchResultPage, first int, w io.Writer) {
	if len(p.Articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		fmt.Fprintf(w, "\n%d matches, page %d of %d\n", p.TotalCount, p.Page, p.TotalPages)
		return
	}

	fmt.Fprintf(w, "%-4s  %-10s  %-60s  %s\n", "Rank", "PMID", "Title", "Authors")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, a := range p.Articles {
		fmt.Fprintf(w, "%-4d  %-10s  %-60s  %s\n",
			first+i, a.ID, truncate(a.Title, 60), formatAuthors(a.Authors))
	}

	fmt.Fprintf(w, "\n%d matches, page %d of %d\n", p.TotalCount, p.Page, p.TotalPages)
}

// FormatJSON writes the page as indented JSON to w.
func FormatJSON(p types.SearchResultPage, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 18) + " et al."
	}
}

// truncate shortens s to at most max runes, ending in "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
