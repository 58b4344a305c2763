package boxtree_test

import (
	"strings"
	"testing"

	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestBuildBoxTreeRejectsNilRoot(t *testing.T) {
	_, err := boxtree.BuildBoxTree(nil, resolverFor(t))
	assert.ErrorIs(t, err, boxtree.ErrDOMRootIsNull)
}

func TestBuildBoxTreeRootDisplayNoneFails(t *testing.T) {
	domRoot := parseDOM(t, `<html></html>`)
	_, err := boxtree.BuildBoxTree(domRoot, func(n *tree.Node) boxtree.Styler {
		return &fakeStyler{mode: css.DisplayNone}
	})
	assert.ErrorIs(t, err, boxtree.ErrNoBoxTreeCreated)
}

func TestNewBoxForDOMNodeTextProducesTextBox(t *testing.T) {
	domRoot := parseDOM(t, `<html><body>hello</body></html>`)

	var textNode *tree.Node
	var find func(*tree.Node)
	find = func(n *tree.Node) {
		if w := dom.Node(n); w != nil && w.NodeType() == html.TextNode && strings.TrimSpace(w.Text()) == "hello" {
			textNode = n
		}
		for _, c := range n.Children() {
			find(c)
		}
	}
	find(domRoot)
	assert.NotNil(t, textNode)

	resolve := resolverFor(t)
	box := boxtree.NewBoxForDOMNode(textNode, resolve(textNode))
	tbox, ok := box.(*boxtree.TextBox)
	assert.True(t, ok)
	assert.Equal(t, "hello", tbox.Text)
}

func TestNewBoxForDOMNodeDisplayNoneReturnsNil(t *testing.T) {
	domRoot := parseDOM(t, `<html><body><p>x</p></body></html>`)
	p := findTagged(domRoot, "p")
	assert.NotNil(t, p)
	box := boxtree.NewBoxForDOMNode(p, &fakeStyler{mode: css.DisplayNone})
	assert.Nil(t, box)
}

func TestAttachMarkerUsesMarkerContent(t *testing.T) {
	domRoot := parseDOM(t, `<html><body><li>x</li></body></html>`)
	root, err := boxtree.BuildBoxTree(domRoot, resolverFor(t))
	assert.NoError(t, err)
	li := findBoxTagged(t, root, "li")
	assert.NotNil(t, li)
	m := boxtree.AttachMarker(li, "•")
	assert.Equal(t, "•", m.Content)
	assert.Equal(t, "marker", m.Type().String())
}
