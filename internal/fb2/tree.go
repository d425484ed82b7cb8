package fb2

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Document is a parsed FB2 metadata tree. Only the root element and its
// description section are kept; body and binary sections are never decoded.
type Document struct {
	root      *goquery.Selection
	namespace string // default namespace of the root element
}

// Parse builds a Document from FB2 XML. Encodings other than UTF-8 are
// decoded according to the XML declaration.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	doc := &html.Node{Type: html.DocumentNode}
	cur := doc
	depth := 0

decode:
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse FB2 XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			// Skip everything below the root except the metadata section.
			if depth == 2 && !strings.EqualFold(t.Name.Local, "description") {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("failed to parse FB2 XML: %w", err)
				}
				depth--
				continue
			}
			n := elementNode(t)
			cur.AppendChild(n)
			cur = n
		case xml.EndElement:
			depth--
			cur = cur.Parent
			if depth == 1 && strings.EqualFold(t.Name.Local, "description") {
				break decode
			}
			if depth == 0 {
				break decode
			}
		case xml.CharData:
			if cur != doc {
				cur.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})
			}
		}
	}

	root := goquery.NewDocumentFromNode(doc).Children().First()
	if root.Length() == 0 || goquery.NodeName(root) != "fictionbook" {
		return nil, ErrNotFictionBook
	}

	return &Document{
		root:      root,
		namespace: root.Nodes[0].Namespace,
	}, nil
}

// elementNode converts an XML start element into an html element node.
// Names are lower-cased so selectors match regardless of the source case;
// the namespace URI is kept for qualified lookups.
func elementNode(t xml.StartElement) *html.Node {
	n := &html.Node{
		Type:      html.ElementNode,
		Data:      strings.ToLower(t.Name.Local),
		Namespace: t.Name.Space,
	}
	for _, a := range t.Attr {
		n.Attr = append(n.Attr, html.Attribute{
			Namespace: a.Name.Space,
			Key:       a.Name.Local,
			Val:       a.Value,
		})
	}
	return n
}

// All returns every element matching the slash separated path, resolved
// relative to the root element. Each step only matches elements in the
// document's default namespace.
func (d *Document) All(path string) *goquery.Selection {
	return d.children(d.root, path)
}

// First returns the first element matching path, or nil.
func (d *Document) First(path string) *goquery.Selection {
	sel := d.All(path)
	if sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

// FirstOf returns the first element found for the paths, tried in order,
// together with the path that matched.
func (d *Document) FirstOf(paths []string) (*goquery.Selection, string) {
	for _, p := range paths {
		if sel := d.First(p); sel != nil {
			return sel, p
		}
	}
	return nil, ""
}

// Child returns the text of the first child element of sel named name.
// Missing children yield an empty string.
func (d *Document) Child(sel *goquery.Selection, name string) string {
	child := d.children(sel, name)
	if child.Length() == 0 {
		return ""
	}
	return child.First().Text()
}

func (d *Document) children(sel *goquery.Selection, path string) *goquery.Selection {
	for _, step := range strings.Split(path, "/") {
		sel = sel.ChildrenFiltered(strings.ToLower(step)).FilterFunction(d.inNamespace)
	}
	return sel
}

func (d *Document) inNamespace(_ int, s *goquery.Selection) bool {
	return s.Nodes[0].Namespace == d.namespace
}
