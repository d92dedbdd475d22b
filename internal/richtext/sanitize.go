// Package richtext provides the constrained-HTML authoring support used for
// job descriptions and cover letters: an allow-list sanitizer, an editor
// session, and helpers converting between plain lines and HTML fragments.
package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags is the complete set of elements a sanitized fragment may
// contain. Anything else is unwrapped, never kept.
var allowedTags = map[string]bool{
	"b": true, "strong": true,
	"i": true, "em": true,
	"u":  true,
	"br": true, "p": true,
	"ul": true, "ol": true, "li": true,
	"a": true,
}

// allowedAttrs is the set of attribute names surviving sanitization.
var allowedAttrs = map[string]bool{
	"href": true, "title": true, "target": true, "rel": true,
}

// Sanitize walks an HTML fragment and rebuilds it keeping only allow-listed
// tags and attributes. Elements outside the allow-list are unwrapped: their
// children are spliced into the parent, so text content survives while the
// markup is stripped. Comments and doctypes are dropped.
func Sanitize(fragment string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		for _, clean := range sanitizeNode(n) {
			if err := html.Render(&b, clean); err != nil {
				return "", err
			}
		}
	}
	return b.String(), nil
}

// sanitizeNode returns the sanitized replacement nodes for n. A disallowed
// element returns its (sanitized) children, which is what unwrapping means.
func sanitizeNode(n *html.Node) []*html.Node {
	switch n.Type {
	case html.TextNode:
		return []*html.Node{{Type: html.TextNode, Data: n.Data}}

	case html.ElementNode:
		var kids []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			kids = append(kids, sanitizeNode(c)...)
		}

		tag := strings.ToLower(n.Data)
		if !allowedTags[tag] {
			return kids
		}

		el := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: n.DataAtom}
		for _, a := range n.Attr {
			if a.Namespace == "" && allowedAttrs[strings.ToLower(a.Key)] {
				el.Attr = append(el.Attr, a)
			}
		}
		for _, k := range kids {
			el.AppendChild(k)
		}
		return []*html.Node{el}

	default:
		return nil
	}
}
