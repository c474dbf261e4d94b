// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils is a client for the three NCBI E-utilities endpoints the
// service depends on: esearch (JSON), esummary (JSON), and efetch (XML).
// Every call is a single blocking GET; there are no retries and no caching.
package eutils

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdiddy/pubmed-proxy/internal/httputil"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

const database = "pubmed"

// Client issues E-utilities requests. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	http    httputil.Doer
	baseURL string
	cfg     types.EUtilsConfig
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithTracerProvider makes the client start its spans from tp instead of the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

const tracerName = "pubmed-proxy/eutils"

// NewClient returns a Client for cfg. When doer is nil an *http.Client with
// cfg.Timeout is used. Spans go to the global tracer provider unless an
// option says otherwise.
func NewClient(cfg types.EUtilsConfig, doer httputil.Doer, opts ...Option) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: cfg.Timeout}
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = types.DefaultEUtilsBase
	}
	c := &Client{
		http:    doer,
		baseURL: base,
		cfg:     cfg,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// endpointURL builds the request URL for endpoint (e.g. "esearch.fcgi").
// db and the NCBI etiquette parameters are added to params.
func (c *Client) endpointURL(endpoint string, params url.Values) string {
	params.Set("db", database)
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	if c.cfg.Tool != "" {
		params.Set("tool", c.cfg.Tool)
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	return c.baseURL + "/" + endpoint + "?" + params.Encode()
}

// get fetches endpoint and marks every failure as ErrUpstreamUnavailable.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	body, err := httputil.Get(ctx, c.http, c.endpointURL(endpoint, params), c.cfg.UserAgent)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s request failed", strings.TrimSuffix(endpoint, ".fcgi")), types.ErrUpstreamUnavailable)
	}
	return body, nil
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
