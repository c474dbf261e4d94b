// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"net/url"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// FetchRecordXML runs efetch for a single id and returns the parsed XML
// document (normally a PubmedArticleSet).
func (c *Client) FetchRecordXML(ctx context.Context, id string) (root *Node, err error) {
	ctx, span := c.tracer.Start(ctx, "eutils.efetch",
		trace.WithAttributes(attribute.String("eutils.id", id)),
	)
	defer func() { endSpan(span, err) }()

	params := url.Values{
		"id":      {id},
		"retmode": {"xml"},
	}
	body, err := c.get(ctx, "efetch.fcgi", params)
	if err != nil {
		return nil, err
	}

	root, err = ParseXML(body)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "Error parsing XML response"), types.ErrMalformedXML)
	}
	return root, nil
}
