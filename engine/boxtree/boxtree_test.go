package boxtree_test

import (
	"strings"
	"testing"

	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

// fakeStyler is a Styler with a fixed display mode and property map;
// resolverFor hands out block-mode ones for every element except "span"
// (and text), which get inline — enough to exercise anonymous-box wrapping
// without a real cascade.
type fakeStyler struct {
	mode  css.DisplayMode
	props map[string]string
}

func (s *fakeStyler) Display() css.DisplayMode { return s.mode }
func (s *fakeStyler) Property(name string) string {
	if s.props == nil {
		return ""
	}
	return s.props[name]
}

func resolverFor(t *testing.T) boxtree.StyleResolver {
	t.Helper()
	return func(n *tree.Node) boxtree.Styler {
		w := dom.Node(n)
		if w == nil {
			return &fakeStyler{mode: css.InlineMode}
		}
		if w.NodeType() == html.TextNode {
			return &fakeStyler{mode: css.InlineMode}
		}
		if w.TagName() == "span" {
			return &fakeStyler{mode: css.InlineMode}
		}
		return &fakeStyler{mode: css.BlockMode}
	}
}

func parseDOM(t *testing.T, src string) *tree.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	assert.NoError(t, err)
	return dom.BuildTree(doc)
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

func TestBuildBoxTreeSkipsDisplayNone(t *testing.T) {
	domRoot := parseDOM(t, `<html><body><div>keep</div><p>drop</p></body></html>`)
	resolve := func(n *tree.Node) boxtree.Styler {
		w := dom.Node(n)
		if w != nil && w.TagName() == "p" {
			return &fakeStyler{mode: css.DisplayNone}
		}
		return resolverFor(t)(n)
	}
	root, err := boxtree.BuildBoxTree(domRoot, resolve)
	assert.NoError(t, err)
	assert.NotNil(t, root)

	body := findBoxTagged(t, root, "body")
	assert.NotNil(t, body)
	for _, c := range body.TreeNode().Children() {
		if pbox, ok := c.Payload.(*boxtree.PrincipalBox); ok {
			assert.NotEqual(t, "p", pbox.DOMNode().TagName())
		}
	}
}

func findBoxTagged(t *testing.T, root *boxtree.PrincipalBox, tag string) *boxtree.PrincipalBox {
	t.Helper()
	var found *boxtree.PrincipalBox
	tree.NewWalker(root.TreeNode()).TopDown(func(n, parent *tree.Node, idx int) (*tree.Node, error) {
		if pbox, ok := n.Payload.(*boxtree.PrincipalBox); ok {
			if w := pbox.DOMNode(); w != nil && w.TagName() == tag {
				found = pbox
			}
		}
		return n, nil
	}).Promise()()
	return found
}

func TestAnonymousBoxWrappingIsIdempotent(t *testing.T) {
	domRoot := parseDOM(t, `<html><body><div>block one</div><span>inline child</span><div>block two</div></body></html>`)
	root, err := boxtree.BuildBoxTree(domRoot, resolverFor(t))
	assert.NoError(t, err)

	body := findBoxTagged(t, root, "body")
	assert.NotNil(t, body)

	var anonCountFirst int
	countAnon := func(n *tree.Node) int {
		var count int
		for _, c := range n.Children() {
			if _, ok := c.Payload.(*boxtree.AnonymousBox); ok {
				count++
			}
		}
		return count
	}
	anonCountFirst = countAnon(body.TreeNode())
	assert.Equal(t, 1, anonCountFirst, "expected one anonymous box wrapping the inline run")

	boxtree.NormalizeAnonymousBoxes(root)
	anonCountSecond := countAnon(body.TreeNode())
	assert.Equal(t, anonCountFirst, anonCountSecond, "re-running normalization must not add boxes")
}

func TestAttachMarkerInsertsAtFront(t *testing.T) {
	domRoot := parseDOM(t, `<html><body><li>item text</li></body></html>`)
	root, err := boxtree.BuildBoxTree(domRoot, resolverFor(t))
	assert.NoError(t, err)
	li := findBoxTagged(t, root, "li")
	assert.NotNil(t, li)
	before := li.TreeNode().ChildCount()
	boxtree.AttachMarker(li, "1.")
	assert.Equal(t, before+1, li.TreeNode().ChildCount())
	first, _ := li.TreeNode().Child(0)
	marker, ok := first.Payload.(*boxtree.MarkerBox)
	assert.True(t, ok)
	assert.Equal(t, "1.", marker.Content)
}

func TestSizingInformationParsesDimensions(t *testing.T) {
	domRoot := parseDOM(t, `<html><body><div>sized</div></body></html>`)
	resolve := func(n *tree.Node) boxtree.Styler {
		w := dom.Node(n)
		if w != nil && w.TagName() == "div" {
			return &fakeStyler{mode: css.BlockMode, props: map[string]string{
				"width": "10", "padding-left": "2",
			}}
		}
		return resolverFor(t)(n)
	}
	root, err := boxtree.BuildBoxTree(domRoot, resolve)
	assert.NoError(t, err)
	div := findBoxTagged(t, root, "div")
	assert.NotNil(t, div)
	assert.True(t, div.CSSBox().W.IsAbsolute())
	assert.EqualValues(t, 10, div.CSSBox().W.Unwrap())
	assert.EqualValues(t, 2, div.CSSBox().Padding[frame.Left].Unwrap())
}
