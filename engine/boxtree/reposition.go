package boxtree

import (
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// Position names a box's CSS `position` value, as relevant to box-tree
// reordering (layout itself consults the Styler directly for the rest of
// the positioning scheme).
type Position int

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

// ReorderBoxTree moves boxes with `position: fixed`/`position: absolute` and
// floated boxes out of normal DOM-order placement, re-anchoring each to the
// containing block CSS 2.2 assigns it: the document root box for fixed
// positioning (§10.1), the nearest positioned ancestor for absolute
// positioning, or the nearest flow-root-establishing ancestor for a float
// (§9.5). A box with no qualifying ancestor is re-anchored to the box root,
// the degenerate containing block.
func ReorderBoxTree(root *PrincipalBox, resolve StyleResolver) {
	if root == nil {
		return
	}
	var displaced []*PrincipalBox
	tree.NewWalker(root.TreeNode()).TopDown(func(node, parent *tree.Node, idx int) (*tree.Node, error) {
		if pbox, ok := node.Payload.(*PrincipalBox); ok && pbox != root {
			if needsReanchoring(pbox, resolve) {
				displaced = append(displaced, pbox)
			}
		}
		return node, nil
	}).Promise()()

	for _, pbox := range displaced {
		reanchor(pbox, root, resolve)
	}
}

func needsReanchoring(pbox *PrincipalBox, resolve StyleResolver) bool {
	style := resolve(pbox.DOMTreeNode())
	if style == nil {
		return false
	}
	switch positionOf(style) {
	case PositionFixed, PositionAbsolute:
		return true
	}
	switch style.Property("float") {
	case "left", "right":
		return true
	}
	return false
}

func positionOf(style Styler) Position {
	switch style.Property("position") {
	case "relative":
		return PositionRelative
	case "absolute":
		return PositionAbsolute
	case "fixed":
		return PositionFixed
	case "sticky":
		return PositionSticky
	default:
		return PositionStatic
	}
}

// reanchor detaches pbox from its current parent and appends it as a child
// of the box CSS 2.2 designates as its containing block, leaving it in
// place if no ancestor qualifies (the tree root is always a valid flow-root
// and always positioned, relative to nothing, so this only happens for
// malformed trees).
func reanchor(pbox *PrincipalBox, root *PrincipalBox, resolve StyleResolver) {
	style := resolve(pbox.DOMTreeNode())
	if style == nil {
		return
	}
	var target *PrincipalBox
	switch {
	case positionOf(style) == PositionFixed:
		target = root
	case positionOf(style) == PositionAbsolute:
		target = nearestAncestorMatching(pbox, func(anc *PrincipalBox) bool {
			p := positionOf(resolve(anc.DOMTreeNode()))
			return p == PositionRelative || p == PositionAbsolute || p == PositionFixed || p == PositionSticky
		})
	case style.Property("float") == "left" || style.Property("float") == "right":
		target = nearestAncestorMatching(pbox, func(anc *PrincipalBox) bool {
			return anc.DisplayMode().Contains(css.FlowRootMode)
		})
	}
	if target == nil || target == pbox {
		return
	}
	oldParent := pbox.TreeNode().Parent()
	if oldParent != nil {
		oldParent.RemoveChild(pbox.TreeNode())
	}
	target.TreeNode().AddChild(pbox.TreeNode())
}

// nearestAncestorMatching walks up from pbox's parent looking for a
// PrincipalBox satisfying pred, stopping at the tree root.
func nearestAncestorMatching(pbox *PrincipalBox, pred func(*PrincipalBox) bool) *PrincipalBox {
	n := pbox.TreeNode().Parent()
	for n != nil {
		if anc, ok := n.Payload.(*PrincipalBox); ok {
			if pred(anc) {
				return anc
			}
			if n.Parent() == nil {
				return anc // tree root is always a valid fallback containing block
			}
		}
		n = n.Parent()
	}
	return nil
}
