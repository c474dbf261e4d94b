// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Node is an element of a parsed XML document.
type Node struct {
	// Name is the element's local name (namespace dropped).
	Name     string
	Attr     []xml.Attr
	Children []*Node
	// Text is the element's full text content: its own character data and
	// that of all descendants, in document order.
	Text string
}

// FindAll returns every descendant of n named name, in document order.
// n itself is not included.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.Children {
			if c.Name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// ParseXML parses data as a single XML document and returns its root
// element. A missing root, a second root, stray text after the root, or any
// syntax error is reported as an error.
func ParseXML(data []byte) (*Node, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Entity = xml.HTMLEntity

	var root *Node
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, errors.Newf("unexpected second root element <%s>", t.Name.Local)
			}
			root, err = parseElement(d, t)
			if err != nil {
				return nil, err
			}
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, errors.New("unexpected text outside the root element")
			}
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

// parseElement consumes tokens up to the EndElement matching start.
func parseElement(d *xml.Decoder, start xml.StartElement) (*Node, error) {
	n := &Node{Name: start.Name.Local, Attr: start.Attr}
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, errors.Newf("unclosed element <%s>", n.Name)
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(d, t)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			text.WriteString(child.Text)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.Text = text.String()
			return n, nil
		}
	}
}
