// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/pubmed-proxy/internal/search"
	"github.com/pdiddy/pubmed-proxy/internal/shape"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// resultsView is the data handed to results.html.
type resultsView struct {
	types.SearchResultPage
	Term string
	// First is the 1-based rank of the first article on the page.
	First int
}

func (s *Server) index(c *gin.Context) response {
	return page{status: http.StatusOK, name: "index.html"}
}

func (s *Server) health(c *gin.Context) response {
	return jsonBody{status: http.StatusOK, body: gin.H{"status": "ok"}}
}

// formValue reads key from the form body, falling back to the query string.
func formValue(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return v
	}
	return c.Query(key)
}

// parseQuery validates the search inputs. The term is passed on as given;
// it only has to be non-blank.
func parseQuery(c *gin.Context) (types.SearchQuery, error) {
	q := types.SearchQuery{Term: formValue(c, "term"), Page: 1}
	if strings.TrimSpace(q.Term) == "" {
		return q, types.Validationf("Search term is required")
	}
	if raw := strings.TrimSpace(formValue(c, "page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, types.Validationf("Page must be a positive integer")
		}
		q.Page = n
	}
	return q, nil
}

func (s *Server) search(c *gin.Context) response {
	q, err := parseQuery(c)
	if err != nil {
		return failure{err: err}
	}
	p, err := search.Run(c.Request.Context(), s.upstream, s.pager, q)
	if err != nil {
		return failure{err: err}
	}

	return page{
		status: http.StatusOK,
		name:   "results.html",
		data: resultsView{
			SearchResultPage: p,
			Term:             q.Term,
			First:            s.pager.Offset(q.Page) + 1,
		},
	}
}

func (s *Server) abstract(c *gin.Context) response {
	root, err := s.upstream.FetchRecordXML(c.Request.Context(), c.Param("pubmed_id"))
	if err != nil {
		return failure{err: err}
	}
	return jsonBody{status: http.StatusOK, body: gin.H{"abstract": shape.Abstract(root)}}
}

func (s *Server) keywords(c *gin.Context) response {
	id := c.Param("pubmed_id")
	doc, err := s.upstream.FetchSummaries(c.Request.Context(), []string{id})
	if err != nil {
		return failure{err: err}
	}
	kw, err := shape.Keywords(doc, id)
	if err != nil {
		return failure{err: err}
	}
	return jsonBody{status: http.StatusOK, body: gin.H{"keywords": kw}}
}
