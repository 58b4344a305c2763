package dom_test

import (
	"strings"
	"testing"

	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/tree"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	assert.NoError(t, err)
	return doc
}

func findTagged(n *tree.Node, tag string) *tree.Node {
	if dom.IsElement(n, tag) {
		return n
	}
	for _, c := range n.Children() {
		if found := findTagged(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestBuildTreePreservesStructure(t *testing.T) {
	doc := parse(t, `<html><body><p class="a b" id="x">hi</p></body></html>`)
	root := dom.BuildTree(doc)
	assert.NotNil(t, root)
	p := findTagged(root, "p")
	assert.NotNil(t, p)
}

func TestAttrAndClasses(t *testing.T) {
	doc := parse(t, `<html lang="en"><body><p class="a b" id="x">hi</p></body></html>`)
	root := dom.BuildTree(doc)
	p := findTagged(root, "p")
	w := dom.Node(p)
	assert.Equal(t, "p", w.TagName())
	assert.Equal(t, "x", w.ID())
	assert.ElementsMatch(t, []string{"a", "b"}, w.Classes())
	assert.True(t, w.HasClass("a"))
	assert.False(t, w.HasClass("z"))
}

func TestLangInheritsFromAncestor(t *testing.T) {
	doc := parse(t, `<html lang="zh"><body><p>hi</p></body></html>`)
	root := dom.BuildTree(doc)
	p := findTagged(root, "p")
	w := dom.Node(p)
	assert.Equal(t, "zh", w.Lang())
}

func TestTextNode(t *testing.T) {
	doc := parse(t, `<html><body><p>hello</p></body></html>`)
	root := dom.BuildTree(doc)
	p := findTagged(root, "p")
	var text *tree.Node
	for _, c := range p.Children() {
		if dom.Node(c).NodeType() == html.TextNode {
			text = c
		}
	}
	assert.NotNil(t, text)
	assert.Equal(t, "hello", dom.Node(text).Text())
}
