package boxtree

import (
	"errors"

	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
	xhtml "golang.org/x/net/html"
)

// ErrDOMRootIsNull is returned by BuildBoxTree when handed a nil DOM root.
var ErrDOMRootIsNull = errors.New("boxtree: DOM root is null")

// ErrNoBoxTreeCreated is returned when the root DOM node itself computes to
// display:none, leaving nothing to render.
var ErrNoBoxTreeCreated = errors.New("boxtree: no box tree created")

// StyleResolver resolves the Styler for a DOM tree node, e.g. by running
// the cascade over it. Supplied by engine/udom.
type StyleResolver func(domNode *tree.Node) Styler

// BuildBoxTree walks domRoot top-down, creating a PrincipalBox or TextBox
// for every node whose computed display is not "none", attaching it at its
// original child position so anonymous-box normalization can later insert
// wrapper boxes without disturbing DOM order. Marker boxes for list items
// are attached separately by the caller once list-style-type and counter
// state are known (see AttachMarker).
func BuildBoxTree(domRoot *tree.Node, resolve StyleResolver) (*PrincipalBox, error) {
	if domRoot == nil {
		return nil, ErrDOMRootIsNull
	}
	// A parsed document's root is the Document node, which generates no
	// box; the walk then starts at its first element child (<html>).
	if w := dom.Node(domRoot); w != nil && w.NodeType() == xhtml.DocumentNode {
		for _, c := range domRoot.Children() {
			if cw := dom.Node(c); cw != nil && cw.NodeType() == xhtml.ElementNode {
				domRoot = c
				break
			}
		}
	}
	dom2box := map[*tree.Node]frame.Container{}
	walker := tree.NewWalker(domRoot)
	action := func(node, parent *tree.Node, childIndex int) (*tree.Node, error) {
		box := NewBoxForDOMNode(node, resolve(node))
		if box == nil {
			return nil, nil // display:none — prune this subtree
		}
		dom2box[node] = box
		if parent != nil {
			if parentBox, ok := dom2box[parent]; ok {
				if pbox, ok := parentBox.(*PrincipalBox); ok {
					pbox.AddChild(box, childIndex)
				}
			}
		}
		return box.TreeNode(), nil
	}
	future := walker.TopDown(action).Promise()
	if _, err := future(); err != nil {
		return nil, err
	}
	rootBox, ok := dom2box[domRoot]
	if !ok {
		return nil, ErrNoBoxTreeCreated
	}
	root, ok := rootBox.(*PrincipalBox)
	if !ok {
		return nil, ErrNoBoxTreeCreated
	}
	AttributeBoxes(root, resolve)
	NormalizeAnonymousBoxes(root)
	return root, nil
}

// NewBoxForDOMNode creates the box appropriate for one DOM node: a TextBox
// for a text node, a PrincipalBox for an element with a non-"none" display,
// or nil for display:none (which prunes the walk — CSS 2.2 §9.2.5) or for
// node kinds that never generate boxes (comments, doctypes).
func NewBoxForDOMNode(domNode *tree.Node, style Styler) frame.Container {
	w := dom.Node(domNode)
	if w == nil {
		return nil
	}
	if w.NodeType() == xhtml.TextNode {
		return NewTextBox(domNode, w.Text())
	}
	if w.NodeType() != xhtml.ElementNode {
		return nil
	}
	mode := css.NoMode
	if style != nil {
		mode = style.Display()
	}
	if mode == css.NoMode || mode.Contains(css.DisplayNone) {
		return nil
	}
	return NewPrincipalBox(domNode, mode)
}

// AttachMarker inserts a MarkerBox as the first child of a list-item's
// principal box, the way the teacher's possiblyCreateMiniHierarchy
// reserves a slot for an <li> marker (CSS 2.2 §12.5.1). content is the
// already-formatted marker text (e.g. from engine/style/counters.Format).
func AttachMarker(li *PrincipalBox, content string) *MarkerBox {
	marker := NewMarkerBox(content, li.TreeNode())
	li.TreeNode().InsertChildAt(0, marker.TreeNode())
	return marker
}
