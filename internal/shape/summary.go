// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shape turns raw E-utilities payloads into the records the handlers
// render. Every function here is a pure transformation with no I/O.
package shape

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// ArticleURLPrefix is the public PubMed page for a PMID, minus the "<id>/" tail.
const ArticleURLPrefix = "https://pubmed.ncbi.nlm.nih.gov/"

// ArticleURL returns the public PubMed page for id.
func ArticleURL(id string) string {
	return ArticleURLPrefix + id + "/"
}

// summaryEntry is one identifier and its undecoded esummary record.
type summaryEntry struct {
	ID  string
	Raw json.RawMessage
}

// summaryRecord holds the esummary fields the service reads. Pointers mark
// fields whose absence is a schema violation.
type summaryRecord struct {
	Title        *string          `json:"title"`
	Authors      *[]summaryAuthor `json:"authors"`
	AbstractText textNodes        `json:"AbstractText"`
	KeyList      []summaryKeyword `json:"KeyList"`
}

type summaryAuthor struct {
	Name string `json:"name"`
}

type summaryKeyword struct {
	Term *string `json:"term"`
}

// textNodes accepts a single string, an array of strings, or an array of
// {"text": ...} objects.
type textNodes []string

func (t *textNodes) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = textNodes{single}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	nodes := make(textNodes, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			nodes = append(nodes, s)
			continue
		}
		var obj struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(r, &obj); err != nil {
			return err
		}
		nodes = append(nodes, obj.Text)
	}
	*t = nodes
	return nil
}

// Articles shapes a batch esummary document into article records, one per
// result element, in result order.
func Articles(doc *eutils.SummaryDocument) ([]types.ArticleRecord, error) {
	entries, err := summaryEntries(doc)
	if err != nil {
		return nil, err
	}

	articles := make([]types.ArticleRecord, 0, len(entries))
	for _, e := range entries {
		rec, err := decodeRecord(e)
		if err != nil {
			return nil, err
		}
		if rec.Title == nil {
			return nil, types.Malformedf("esummary record %s has no title", e.ID)
		}
		if rec.Authors == nil {
			return nil, types.Malformedf("esummary record %s has no authors", e.ID)
		}

		authors := make([]string, 0, len(*rec.Authors))
		for _, a := range *rec.Authors {
			authors = append(authors, a.Name)
		}

		articles = append(articles, types.ArticleRecord{
			ID:       e.ID,
			Title:    *rec.Title,
			URL:      ArticleURL(e.ID),
			Authors:  authors,
			Abstract: joinTrimmed(rec.AbstractText),
		})
	}
	return articles, nil
}

// joinTrimmed trims each node and joins them with newlines. No nodes, or
// nodes that are all blank, yield the not-found abstract.
func joinTrimmed(nodes []string) types.Abstract {
	if len(nodes) == 0 {
		return types.Abstract{}
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strings.TrimSpace(n)
	}
	joined := strings.Join(parts, "\n")
	if strings.TrimSpace(joined) == "" {
		return types.Abstract{}
	}
	return types.AbstractOf(joined)
}

func decodeRecord(e summaryEntry) (summaryRecord, error) {
	var rec summaryRecord
	if err := json.Unmarshal(e.Raw, &rec); err != nil {
		return summaryRecord{}, types.Malformedf("esummary record %s: %v", e.ID, err)
	}
	return rec, nil
}

// summaryResult is the decoded esummary result field. Exactly one of list
// (array form) and object (live E-utilities form) is set.
type summaryResult struct {
	list   []map[string]json.RawMessage
	object map[string]json.RawMessage
}

func decodeResult(doc *eutils.SummaryDocument) (summaryResult, error) {
	if doc == nil {
		return summaryResult{}, types.Malformedf("esummary response has no result")
	}
	raw := bytes.TrimSpace(doc.Result)
	if len(raw) == 0 {
		return summaryResult{}, types.Malformedf("esummary response has no result")
	}

	var r summaryResult
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &r.list); err != nil {
			return summaryResult{}, types.Malformedf("esummary result: %v", err)
		}
	case '{':
		if err := json.Unmarshal(raw, &r.object); err != nil {
			return summaryResult{}, types.Malformedf("esummary result: %v", err)
		}
	default:
		return summaryResult{}, types.Malformedf("esummary result is neither an array nor an object")
	}
	return r, nil
}

// summaryEntries lists the records of doc in order. The result field is
// either an array of single-key objects ({"<id>": record}) or the live
// E-utilities object ({"uids": [...], "<id>": record}), ordered by uids.
func summaryEntries(doc *eutils.SummaryDocument) ([]summaryEntry, error) {
	r, err := decodeResult(doc)
	if err != nil {
		return nil, err
	}

	if r.object == nil {
		entries := make([]summaryEntry, 0, len(r.list))
		for i, m := range r.list {
			if len(m) != 1 {
				return nil, types.Malformedf("esummary result element %d has %d keys, want 1", i, len(m))
			}
			for id, rec := range m {
				entries = append(entries, summaryEntry{ID: id, Raw: rec})
			}
		}
		return entries, nil
	}

	uidsRaw, ok := r.object["uids"]
	if !ok {
		return nil, types.Malformedf("esummary result has no uids")
	}
	var uids []string
	if err := json.Unmarshal(uidsRaw, &uids); err != nil {
		return nil, types.Malformedf("esummary uids: %v", err)
	}
	entries := make([]summaryEntry, 0, len(uids))
	for _, id := range uids {
		rec, ok := r.object[id]
		if !ok {
			return nil, types.Malformedf("esummary result has no record for %s", id)
		}
		entries = append(entries, summaryEntry{ID: id, Raw: rec})
	}
	return entries, nil
}

// lookupRecord returns the record for id, in either result form.
func lookupRecord(doc *eutils.SummaryDocument, id string) (summaryEntry, error) {
	r, err := decodeResult(doc)
	if err != nil {
		return summaryEntry{}, err
	}
	if r.object != nil {
		if rec, ok := r.object[id]; ok && id != "uids" {
			return summaryEntry{ID: id, Raw: rec}, nil
		}
	}
	for _, m := range r.list {
		if rec, ok := m[id]; ok {
			return summaryEntry{ID: id, Raw: rec}, nil
		}
	}
	return summaryEntry{}, types.Malformedf("esummary result has no record for %s", id)
}
