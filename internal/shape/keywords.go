// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shape

import (
	"encoding/json"

	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// keywordRecord is the part of an esummary record the keyword lookup reads.
type keywordRecord struct {
	KeyList []summaryKeyword `json:"KeyList"`
}

// Keywords returns the KeyList terms of id's record in doc, in order. An
// absent or empty KeyList yields the not-found value; a missing record is an
// ErrMalformedResponse.
func Keywords(doc *eutils.SummaryDocument, id string) (types.Keywords, error) {
	e, err := lookupRecord(doc, id)
	if err != nil {
		return types.Keywords{}, err
	}
	var rec keywordRecord
	if err := json.Unmarshal(e.Raw, &rec); err != nil {
		return types.Keywords{}, types.Malformedf("esummary record %s: %v", id, err)
	}

	terms := make([]string, 0, len(rec.KeyList))
	for i, k := range rec.KeyList {
		if k.Term == nil {
			return types.Keywords{}, types.Malformedf("esummary record %s keyword %d has no term", id, i)
		}
		terms = append(terms, *k.Term)
	}
	return types.KeywordsOf(terms), nil
}
