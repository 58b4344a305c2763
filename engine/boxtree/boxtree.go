/*
Package boxtree builds the render box tree (PrincipalBox/AnonymousBox/
TextBox/MarkerBox) from a DOM tree and its computed styles, following CSS
2.2 §9.2's box generation rules: one principal box per styled element
(skipping display:none subtrees entirely), a text box per text node, and
marker boxes for list items.

Grounded file-for-file on the teacher's engine/frame/boxtree/container.go
(box-variant shapes, Container/Base split) and engine/frame/boxtree/generate.go
(BuildBoxTree's top-down tree.Walker-based construction, attributeBoxes'
CSS-to-Box sizing pass, possiblyCreateMiniHierarchy's <li> marker handling).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package boxtree

import (
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// Styler is the computed-style lookup a box generator needs for one DOM
// node: its resolved display mode plus raw property-value access for
// sizing, color and whitespace handling. engine/udom's driver supplies the
// concrete implementation (backed by engine/css's cascade).
type Styler interface {
	Display() css.DisplayMode
	Property(name string) string
}

// --- PrincipalBox ------------------------------------------------------------

// PrincipalBox is the (possibly styled) box an element node generates —
// the "principal box" of CSS 2.2 §9.2.1. It is the only box type that can
// establish a formatting context for its children and the only one a
// selector can match directly.
type PrincipalBox struct {
	frame.ContainerBase
	StyledBox frame.StyledBox
	dom       *tree.Node
	pseudo    string // "", "before", "after" — identifies generated-content boxes
}

var _ frame.Container = (*PrincipalBox)(nil)

// NewPrincipalBox creates a principal box for domNode with the given
// display mode.
func NewPrincipalBox(domNode *tree.Node, mode css.DisplayMode) *PrincipalBox {
	pbox := &PrincipalBox{dom: domNode}
	pbox.Display = mode
	pbox.Payload = pbox
	return pbox
}

// Type reports this box as TypePrincipal.
func (pbox *PrincipalBox) Type() frame.ContainerType { return frame.TypePrincipal }

// DOMNode returns the DOM node this principal box was generated for, or —
// for a pseudo-element box — the DOM node of the element that declared the
// `content` property producing it.
func (pbox *PrincipalBox) DOMNode() *dom.W3Node { return dom.Node(pbox.dom) }

// DOMTreeNode returns the underlying generic tree node of the DOM element,
// for callers that need to walk the document tree directly (selector
// matching, attr()).
func (pbox *PrincipalBox) DOMTreeNode() *tree.Node { return pbox.dom }

// CSSBox returns the underlying box geometry.
func (pbox *PrincipalBox) CSSBox() *frame.Box { return &pbox.StyledBox.Box }

// IsPseudo reports whether this box was generated by a `content` property
// rather than a real DOM element (CSS 2.2 §12.1).
func (pbox *PrincipalBox) IsPseudo() bool { return pbox.pseudo != "" }

// PseudoKind returns "before"/"after", or "" for a box backed by a real
// element.
func (pbox *PrincipalBox) PseudoKind() string { return pbox.pseudo }

// Context lazily establishes (and caches) the formatting context this
// principal box's children attach to.
func (pbox *PrincipalBox) Context() frame.Context {
	if pbox.ContainerBase.Context() == nil {
		pbox.SetContext(frame.CreateContextForContainer(pbox))
	}
	return pbox.ContainerBase.Context()
}

// AddChild attaches a child container at tree position at, used instead of
// plain tree.Node.AddChild so callers preserve the original DOM child
// index even when anonymous-box wrapping later shuffles positions.
func (pbox *PrincipalBox) AddChild(child frame.Container, at int) {
	pbox.TreeNode().SetChildAt(at, child.TreeNode())
}

// --- AnonymousBox ------------------------------------------------------------

// AnonymousBox is inserted by the box-generation pass to satisfy CSS 2.2
// §9.2.1.1: when a block container mixes block-level and inline-level
// children, each maximal run of inline-level children (and any runs of
// block-level children under an inline container) is wrapped in an
// anonymous box that inherits, never overrides, its principal box's
// styling.
type AnonymousBox struct {
	frame.ContainerBase
	Box frame.Box
}

var _ frame.Container = (*AnonymousBox)(nil)

// NewAnonymousBox creates an anonymous box establishing the given display
// mode for the run of children it will wrap.
func NewAnonymousBox(mode css.DisplayMode) *AnonymousBox {
	anon := &AnonymousBox{}
	anon.Display = mode
	anon.Payload = anon
	return anon
}

// Type reports this box as TypeAnonymous.
func (anon *AnonymousBox) Type() frame.ContainerType { return frame.TypeAnonymous }

// DOMNode returns the DOM node of the nearest principal-box ancestor,
// since an anonymous box has no DOM node of its own (CSS 2.2 §9.2.2.1: it
// inherits its principal box's style).
func (anon *AnonymousBox) DOMNode() *dom.W3Node {
	if p := anon.Parent(); p != nil {
		if pbox, ok := p.Payload.(*PrincipalBox); ok {
			return pbox.DOMNode()
		}
	}
	return nil
}

// CSSBox returns the underlying box geometry.
func (anon *AnonymousBox) CSSBox() *frame.Box { return &anon.Box }

// Context lazily establishes this anonymous box's formatting context.
func (anon *AnonymousBox) Context() frame.Context {
	if anon.ContainerBase.Context() == nil {
		anon.SetContext(frame.CreateContextForContainer(anon))
	}
	return anon.ContainerBase.Context()
}

// --- TextBox -----------------------------------------------------------------

// TextBox wraps one DOM text node. It never establishes a formatting
// context and carries the whitespace-handling flags derived from its
// parent's `white-space` property (CSS 2.2 §16.6).
type TextBox struct {
	frame.ContainerBase
	Box        frame.Box
	dom        *tree.Node
	Text       string
	WSCollapse bool
	WSWrap     bool
}

var _ frame.Container = (*TextBox)(nil)

// NewTextBox creates a text box for a DOM text node.
func NewTextBox(domNode *tree.Node, text string) *TextBox {
	t := &TextBox{dom: domNode, Text: text, WSCollapse: true, WSWrap: true}
	t.Display = css.InlineMode
	t.Payload = t
	return t
}

// Type reports this box as TypeText.
func (t *TextBox) Type() frame.ContainerType { return frame.TypeText }

// DOMNode returns the underlying DOM text node.
func (t *TextBox) DOMNode() *dom.W3Node { return dom.Node(t.dom) }

// CSSBox returns the underlying box geometry.
func (t *TextBox) CSSBox() *frame.Box { return &t.Box }

// Context always returns nil — a text box never establishes a formatting
// context of its own.
func (t *TextBox) Context() frame.Context { return nil }

// --- MarkerBox ---------------------------------------------------------------

// MarkerBox is the additional box a `display: list-item` element
// generates for its marker (CSS 2.2 §12.5.1): a bullet or ordinal
// rendered outside (by default) the principal box's content.
type MarkerBox struct {
	frame.ContainerBase
	Box     frame.Box
	Content string
	parent  *tree.Node
}

var _ frame.Container = (*MarkerBox)(nil)

// NewMarkerBox creates a marker box with the rendered marker text already
// resolved (counters.Format applied per list-style-type).
func NewMarkerBox(content string, owner *tree.Node) *MarkerBox {
	m := &MarkerBox{Content: content, parent: owner}
	m.Display = css.InlineMode
	m.Payload = m
	return m
}

// Type reports this box as TypeMarker.
func (m *MarkerBox) Type() frame.ContainerType { return frame.TypeMarker }

// DOMNode returns the list-item element's DOM node (a marker box has no
// DOM node of its own).
func (m *MarkerBox) DOMNode() *dom.W3Node {
	if m.parent == nil {
		return nil
	}
	if pbox, ok := m.parent.Payload.(*PrincipalBox); ok {
		return pbox.DOMNode()
	}
	return nil
}

// CSSBox returns the underlying box geometry.
func (m *MarkerBox) CSSBox() *frame.Box { return &m.Box }

// Context always returns nil.
func (m *MarkerBox) Context() frame.Context { return nil }
