// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestAbstractWireForm(t *testing.T) {
	tests := []struct {
		name string
		in   Abstract
		want string
	}{
		{"found", AbstractOf("Background."), `"Background."`},
		{"empty text", AbstractOf(""), `"Abstract Not Found"`},
		{"zero value", Abstract{}, `"Abstract Not Found"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestAbstractYAML(t *testing.T) {
	for _, in := range []Abstract{AbstractOf("Text."), {}} {
		data, err := yaml.Marshal(in)
		require.NoError(t, err)

		var out Abstract
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	}
}

func TestKeywordsWireForm(t *testing.T) {
	got, err := json.Marshal(map[string]Keywords{"keywords": KeywordsOf([]string{"x", "y"})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"keywords": ["x", "y"]}`, string(got))

	got, err = json.Marshal(map[string]Keywords{"keywords": KeywordsOf(nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"keywords": "Keywords Not Found"}`, string(got))
}

func TestArticleRecordJSON(t *testing.T) {
	got, err := json.Marshal(ArticleRecord{
		ID:      "42",
		Title:   "T",
		URL:     "https://pubmed.ncbi.nlm.nih.gov/42/",
		Authors: []string{"A"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"pubmed_id": "42",
		"title": "T",
		"url": "https://pubmed.ncbi.nlm.nih.gov/42/",
		"authors": ["A"],
		"abstract": "Abstract Not Found"
	}`, string(got))
}

func TestPageLinks(t *testing.T) {
	p := SearchResultPage{Page: 1, TotalPages: 1}
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())

	p = SearchResultPage{Page: 2, TotalPages: 3}
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
}
