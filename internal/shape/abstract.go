// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shape

import (
	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// abstractElement is the efetch element holding one abstract paragraph.
const abstractElement = "AbstractText"

// Abstract joins the trimmed text of every AbstractText element under root,
// in document order, with newlines.
func Abstract(root *eutils.Node) types.Abstract {
	if root == nil {
		return types.Abstract{}
	}
	nodes := root.FindAll(abstractElement)
	texts := make([]string, len(nodes))
	for i, n := range nodes {
		texts[i] = n.Text
	}
	return joinTrimmed(texts)
}
