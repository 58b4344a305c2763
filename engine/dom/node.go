/*
Package dom wraps golang.org/x/net/html parse trees in engine/tree.Node, the
way the teacher's styledtree package wraps them for its CSSOM. Foil's
document tree carries no styling itself — that lives in the parallel box
tree built by engine/boxtree — it only needs identity, attributes, and
parent/child/sibling navigation for CSS selector matching and content
generation (attr(), counter scope boundaries).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package dom

import (
	"strings"

	"github.com/foilterm/foil/engine/tree"
	"golang.org/x/net/html"
)

// W3Node wraps one golang.org/x/net/html.Node as a tree.Node payload.
type W3Node struct {
	tree.Node
	html *html.Node
}

// NewNodeForHTMLNode creates a tree.Node for an *html.Node, without
// attaching children — callers build the tree top-down via BuildTree.
func NewNodeForHTMLNode(h *html.Node) *tree.Node {
	w := &W3Node{html: h}
	w.Payload = w
	return &w.Node
}

// Node recovers the W3Node payload of a generic tree.Node, or nil if n does
// not wrap a DOM node.
func Node(n *tree.Node) *W3Node {
	if n == nil {
		return nil
	}
	w, _ := n.Payload.(*W3Node)
	return w
}

// HTMLNode returns the underlying parse-tree node.
func (w *W3Node) HTMLNode() *html.Node { return w.html }

// NodeType mirrors html.NodeType for callers that don't want to import
// golang.org/x/net/html themselves.
func (w *W3Node) NodeType() html.NodeType { return w.html.Type }

// TagName returns the lower-cased element name, or "" for non-elements.
func (w *W3Node) TagName() string {
	if w.html.Type != html.ElementNode {
		return ""
	}
	return w.html.Data
}

// Text returns the text content of a TextNode, or "" otherwise.
func (w *W3Node) Text() string {
	if w.html.Type != html.TextNode {
		return ""
	}
	return w.html.Data
}

// Attr returns the value of attribute name, and whether it is present.
func (w *W3Node) Attr(name string) (string, bool) {
	for _, a := range w.html.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute name to value, adding it if not already present —
// the write side of Attr, needed once a live document accepts mutations
// after its initial parse.
func (w *W3Node) SetAttr(name, value string) {
	for i, a := range w.html.Attr {
		if a.Key == name {
			w.html.Attr[i].Val = value
			return
		}
	}
	w.html.Attr = append(w.html.Attr, html.Attribute{Key: name, Val: value})
}

// ID returns the element's id attribute, or "".
func (w *W3Node) ID() string {
	id, _ := w.Attr("id")
	return id
}

// Classes returns the element's class list, split on whitespace.
func (w *W3Node) Classes() []string {
	c, ok := w.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(c)
}

// HasClass reports whether name is among the element's classes.
func (w *W3Node) HasClass(name string) bool {
	for _, c := range w.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// Lang returns the nearest lang attribute, searching this node and its
// ancestors, or "" if none is set (used to select quotes.Lookup's table).
func (w *W3Node) Lang() string {
	n := &w.Node
	for n != nil {
		if wn := Node(n); wn != nil {
			if l, ok := wn.Attr("lang"); ok && l != "" {
				return l
			}
		}
		n = n.Parent()
	}
	return ""
}

// BuildTree walks an *html.Node parse tree (as returned by html.Parse) and
// constructs the corresponding tree.Node hierarchy, skipping comment and
// doctype nodes (neither participates in CSS box generation).
func BuildTree(h *html.Node) *tree.Node {
	root := NewNodeForHTMLNode(h)
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode || c.Type == html.DoctypeNode {
			continue
		}
		root.AddChild(BuildTree(c))
	}
	return root
}

// IsElement reports whether n wraps an element node with the given tag.
func IsElement(n *tree.Node, tag string) bool {
	w := Node(n)
	return w != nil && w.TagName() == tag
}
