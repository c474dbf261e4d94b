// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// SearchResult is the part of an esearch response the service uses.
type SearchResult struct {
	// IDs lists matching PMIDs for the requested window in ranking order.
	IDs []string
	// Count is the total number of matches, independent of the window.
	Count int
}

// esearch JSON structures. Pointers distinguish absent fields from empty ones.
type esearchEnvelope struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  *json.Number `json:"count"`
	IDList *[]string    `json:"idlist"`
	Error  string       `json:"ERROR"`
}

// Search runs esearch for term and returns at most limit IDs starting at
// offset. term is sent as-is apart from URL encoding.
func (c *Client) Search(ctx context.Context, term string, offset, limit int) (result SearchResult, err error) {
	ctx, span := c.tracer.Start(ctx, "eutils.esearch",
		trace.WithAttributes(
			attribute.String("eutils.term", term),
			attribute.Int("eutils.retstart", offset),
			attribute.Int("eutils.retmax", limit),
		),
	)
	defer func() { endSpan(span, err) }()

	params := url.Values{
		"term":     {term},
		"retmode":  {"json"},
		"retstart": {strconv.Itoa(offset)},
		"retmax":   {strconv.Itoa(limit)},
	}
	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return SearchResult{}, err
	}
	return parseSearch(body)
}

func parseSearch(body []byte) (SearchResult, error) {
	var env esearchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return SearchResult{}, errors.Mark(errors.Wrap(err, "decoding esearch response"), types.ErrMalformedResponse)
	}
	r := env.Result
	if r == nil {
		return SearchResult{}, types.Malformedf("esearch response has no esearchresult")
	}
	if r.Error != "" {
		return SearchResult{}, types.Malformedf("esearch error: %s", r.Error)
	}
	if r.Count == nil {
		return SearchResult{}, types.Malformedf("esearch response has no count")
	}
	if r.IDList == nil {
		return SearchResult{}, types.Malformedf("esearch response has no idlist")
	}
	count, err := r.Count.Int64()
	if err != nil || count < 0 {
		return SearchResult{}, types.Malformedf("esearch count %q is not a non-negative integer", r.Count.String())
	}
	return SearchResult{IDs: *r.IDList, Count: int(count)}, nil
}
