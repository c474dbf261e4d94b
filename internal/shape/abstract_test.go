// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

func parse(t *testing.T, doc string) *eutils.Node {
	t.Helper()
	root, err := eutils.ParseXML([]byte(doc))
	require.NoError(t, err)
	return root
}

func TestAbstract(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want types.Abstract
	}{
		{
			name: "two nodes trimmed and joined",
			doc:  `<PubmedArticleSet><Abstract><AbstractText>A </AbstractText><AbstractText> B</AbstractText></Abstract></PubmedArticleSet>`,
			want: types.Abstract{Text: "A\nB", Found: true},
		},
		{
			name: "no abstract nodes",
			doc:  `<PubmedArticleSet><PubmedArticle><MedlineCitation><PMID>12345</PMID></MedlineCitation></PubmedArticle></PubmedArticleSet>`,
			want: types.Abstract{},
		},
		{
			name: "inline markup is part of the text",
			doc:  `<r><AbstractText>Levels of <i>IL-6</i> rose.</AbstractText></r>`,
			want: types.Abstract{Text: "Levels of IL-6 rose.", Found: true},
		},
		{
			name: "document order across articles",
			doc: `<PubmedArticleSet>
  <PubmedArticle><Abstract><AbstractText Label="BACKGROUND">first</AbstractText></Abstract></PubmedArticle>
  <PubmedArticle><Abstract><AbstractText Label="METHODS">second</AbstractText><AbstractText>third</AbstractText></Abstract></PubmedArticle>
</PubmedArticleSet>`,
			want: types.Abstract{Text: "first\nsecond\nthird", Found: true},
		},
		{
			name: "only empty nodes",
			doc:  `<r><AbstractText/><AbstractText>   </AbstractText></r>`,
			want: types.Abstract{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Abstract(parse(t, tt.doc)))
		})
	}
}

func TestAbstract_NotFoundSentinel(t *testing.T) {
	got := Abstract(parse(t, `<PubmedArticleSet/>`))
	assert.Equal(t, "Abstract Not Found", got.String())
}

func TestAbstract_NilRoot(t *testing.T) {
	assert.False(t, Abstract(nil).Found)
}
