package frame

import (
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// Container is the common interface of every box-tree node: generated
// boxes (engine/boxtree.PrincipalBox/AnonymousBox/TextBox/MarkerBox) all
// implement it.
type Container interface {
	Type() ContainerType
	DOMNode() *dom.W3Node
	TreeNode() *tree.Node
	CSSBox() *Box
	DisplayMode() css.DisplayMode
	Context() Context
	SetContext(Context)
	PresetContained() bool
	ChildIndex() int
}

// ContainerType tags the concrete box-tree node kind.
type ContainerType uint8

const (
	TypeUnknown ContainerType = iota
	TypePrincipal
	TypeAnonymous
	TypeText
	TypeMarker
)

func (t ContainerType) String() string {
	switch t {
	case TypePrincipal:
		return "principal"
	case TypeAnonymous:
		return "anonymous"
	case TypeText:
		return "text"
	case TypeMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// ContainerBase is embedded by every concrete box type for tree membership
// and the bookkeeping common to all of them.
type ContainerBase struct {
	tree.Node
	ChildInx uint32
	Display  css.DisplayMode
	ctx      Context
}

// TreeNode returns the underlying tree node for this container.
func (b *ContainerBase) TreeNode() *tree.Node { return &b.Node }

// DisplayMode returns the computed display mode of this box.
func (b *ContainerBase) DisplayMode() css.DisplayMode { return b.Display }

// ChildIndex returns the index of this container within its parent's
// children.
func (b *ContainerBase) ChildIndex() int { return int(b.ChildInx) }

// Context returns the formatting context previously injected via
// SetContext, or nil.
func (b *ContainerBase) Context() Context { return b.ctx }

// SetContext injects the formatting context this container established or
// participates in.
func (b *ContainerBase) SetContext(ctx Context) { b.ctx = ctx }

// PresetContained reports whether this container's children have already
// had their constraints set by their parent (used by layout to skip a
// redundant top-down constraint pass for floats and absolutely positioned
// boxes, which compute their own containing block).
func (b *ContainerBase) PresetContained() bool { return false }

// Self returns the concrete container this base is embedded in.
func (b *ContainerBase) Self() interface{} { return b.Node.Payload }
