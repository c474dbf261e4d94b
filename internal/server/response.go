// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// response is the single outcome of a handler. Each handler returns exactly
// one and it is rendered once.
type response interface {
	render(c *gin.Context)
}

// page renders an HTML template.
type page struct {
	status int
	name   string
	data   interface{}
}

func (p page) render(c *gin.Context) { c.HTML(p.status, p.name, p.data) }

// jsonBody renders a JSON document.
type jsonBody struct {
	status int
	body   interface{}
}

func (j jsonBody) render(c *gin.Context) { c.JSON(j.status, j.body) }

// failure renders {"error": <message>} with a status derived from the error
// kind. It is used for every failure path, including those of HTML routes.
type failure struct {
	err error
}

func (f failure) render(c *gin.Context) {
	_ = c.Error(f.err)
	c.JSON(statusFor(f.err), gin.H{"error": f.err.Error()})
}

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	if errors.Is(err, types.ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// kindOf names the error kind for logs.
func kindOf(err error) string {
	switch {
	case errors.Is(err, types.ErrValidation):
		return "validation"
	case errors.Is(err, types.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, types.ErrMalformedXML):
		return "malformed_xml"
	case errors.Is(err, types.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "internal"
	}
}
