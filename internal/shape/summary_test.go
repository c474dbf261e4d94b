// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shape

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

func doc(result string) *eutils.SummaryDocument {
	return &eutils.SummaryDocument{Result: json.RawMessage(result)}
}

// Array form: an ordered list of single-key objects.
const sampleArrayResult = `[
  {"39000012": {
    "title": "Second-ranked article.",
    "authors": [{"name": "Smith J", "authtype": "Author"}, {"name": "Doe A", "authtype": "Author"}],
    "AbstractText": ["  First paragraph. ", "\nSecond paragraph.\n"]
  }},
  {"39000011": {
    "title": "First-ranked article.",
    "authors": []
  }}
]`

// Live form: result is an object keyed by uid, ordered by "uids".
const sampleObjectResult = `{
  "uids": ["39000012", "39000011"],
  "39000011": {"uid": "39000011", "title": "First-ranked article.", "authors": []},
  "39000012": {
    "uid": "39000012",
    "title": "Second-ranked article.",
    "authors": [{"name": "Smith J"}, {"name": "Doe A"}],
    "AbstractText": ["  First paragraph. ", "\nSecond paragraph.\n"]
  }
}`

func TestArticles_ArrayForm(t *testing.T) {
	got, err := Articles(doc(sampleArrayResult))
	require.NoError(t, err)
	require.Len(t, got, 2)

	a := got[0]
	assert.Equal(t, "39000012", a.ID)
	assert.Equal(t, "Second-ranked article.", a.Title)
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/39000012/", a.URL)
	assert.Equal(t, []string{"Smith J", "Doe A"}, a.Authors)
	assert.True(t, a.Abstract.Found)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", a.Abstract.Text)

	b := got[1]
	assert.Equal(t, "39000011", b.ID)
	assert.Empty(t, b.Authors)
	assert.False(t, b.Abstract.Found)
	assert.Equal(t, types.AbstractNotFound, b.Abstract.String())
}

func TestArticles_ObjectFormMatchesArrayForm(t *testing.T) {
	fromArray, err := Articles(doc(sampleArrayResult))
	require.NoError(t, err)
	fromObject, err := Articles(doc(sampleObjectResult))
	require.NoError(t, err)
	assert.Equal(t, fromArray, fromObject)
}

func TestArticles_PreservesOrderAndLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var elems []map[string]map[string]interface{}
			var want []string
			for i := 0; i < n; i++ {
				id := fmt.Sprintf("%d", 90-i*3)
				want = append(want, id)
				elems = append(elems, map[string]map[string]interface{}{
					id: {"title": "t" + id, "authors": []interface{}{}},
				})
			}
			raw, err := json.Marshal(elems)
			require.NoError(t, err)
			if n == 0 {
				raw = []byte(`[]`)
			}

			got, err := Articles(doc(string(raw)))
			require.NoError(t, err)
			require.Len(t, got, n)
			for i, a := range got {
				assert.Equal(t, want[i], a.ID)
			}
		})
	}
}

func TestArticles_AbstractTextShapes(t *testing.T) {
	tests := []struct {
		name     string
		abstract string
		want     types.Abstract
	}{
		{"single string", `"  Only paragraph.  "`, types.Abstract{Text: "Only paragraph.", Found: true}},
		{"text objects", `[{"text": "A "}, {"text": " B"}]`, types.Abstract{Text: "A\nB", Found: true}},
		{"empty array", `[]`, types.Abstract{}},
		{"blank strings", `["  ", ""]`, types.Abstract{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := `[{"1": {"title": "t", "authors": [], "AbstractText": ` + tt.abstract + `}}]`
			got, err := Articles(doc(result))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Abstract)
		})
	}
}

func TestArticles_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		result string
	}{
		{"empty result", ``},
		{"scalar result", `"nope"`},
		{"element with two keys", `[{"1": {"title": "a", "authors": []}, "2": {"title": "b", "authors": []}}]`},
		{"element with no keys", `[{}]`},
		{"record not an object", `[{"1": ["title"]}]`},
		{"missing title", `[{"1": {"authors": []}}]`},
		{"missing authors", `[{"1": {"title": "t"}}]`},
		{"object form without uids", `{"1": {"title": "t", "authors": []}}`},
		{"uid without record", `{"uids": ["1", "2"], "1": {"title": "t", "authors": []}}`},
		{"bad AbstractText", `[{"1": {"title": "t", "authors": [], "AbstractText": 5}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Articles(doc(tt.result))
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrMalformedResponse), "got %v", err)
		})
	}
}

func TestArticles_NilDocument(t *testing.T) {
	_, err := Articles(nil)
	assert.True(t, errors.Is(err, types.ErrMalformedResponse))
}

func TestArticleURL(t *testing.T) {
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/12345/", ArticleURL("12345"))
}
