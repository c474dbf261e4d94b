// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// QueryFile is a saved search: the query, the page it produced, and when.
// A saved page can be printed again without querying PubMed.
type QueryFile struct {
	Query   types.SearchQuery      `yaml:"query"`
	Results types.SearchResultPage `yaml:"results"`
	Summary QuerySummary           `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	TotalCount int       `yaml:"total_count"`
	PageSize   int       `yaml:"page_size"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves q and its results page to path as YAML.
func WriteQueryFile(path string, q types.SearchQuery, pageSize int, p types.SearchResultPage) error {
	qf := QueryFile{
		Query:   q,
		Results: p,
		Summary: QuerySummary{
			TotalCount: p.TotalCount,
			PageSize:   pageSize,
			Timestamp:  time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return errors.Wrap(err, "marshaling query file")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "writing query file")
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading query file")
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, errors.Wrap(err, "parsing query file")
	}
	return &qf, nil
}
