// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// ErrEmptyIDList is returned by FetchSummaries when called without IDs.
// Callers short-circuit before that point; no request is sent.
var ErrEmptyIDList = errors.New("eutils: empty identifier list")

// SummaryDocument is a decoded esummary response. Result is kept raw because
// its shape is checked by the consumers in package shape.
type SummaryDocument struct {
	Result json.RawMessage `json:"result"`
}

type esummaryEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// FetchSummaries runs esummary for ids as one comma-joined batch.
func (c *Client) FetchSummaries(ctx context.Context, ids []string) (doc *SummaryDocument, err error) {
	if len(ids) == 0 {
		return nil, ErrEmptyIDList
	}

	ctx, span := c.tracer.Start(ctx, "eutils.esummary",
		trace.WithAttributes(attribute.Int("eutils.id_count", len(ids))),
	)
	defer func() { endSpan(span, err) }()

	params := url.Values{
		"id":      {strings.Join(ids, ",")},
		"retmode": {"json"},
	}
	body, err := c.get(ctx, "esummary.fcgi", params)
	if err != nil {
		return nil, err
	}
	return ParseSummary(body)
}

// ParseSummary decodes an esummary JSON body and checks that it carries a
// result field.
func ParseSummary(body []byte) (*SummaryDocument, error) {
	var env esummaryEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding esummary response"), types.ErrMalformedResponse)
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		if env.Error != "" {
			return nil, types.Malformedf("esummary error: %s", env.Error)
		}
		return nil, types.Malformedf("esummary response has no result")
	}
	return &SummaryDocument{Result: env.Result}, nil
}
