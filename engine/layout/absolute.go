package layout

import (
	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// ResolvePositioned lays out box — already reanchored by
// engine/boxtree.ReorderBoxTree as a child of its CSS containing block —
// against containingBlock, the rectangle CSS 2.2 §10.1 designates for an
// absolutely or fixed positioned element: its 'left'/'top' offsets are
// resolved relative to it when given (an 'auto' offset leaves the box at
// its reanchored tree position, the static-position fallback CSS 2.2
// §10.3.7 describes for the common case where no offset is specified),
// and its own size is solved exactly as normal-flow content would be.
func ResolvePositioned(box *boxtree.PrincipalBox, resolve boxtree.StyleResolver, containingBlock dimen.Rect) error {
	style := resolve(box.DOMTreeNode())
	cssBox := box.CSSBox()

	if err := ResolveWidth(box, containingBlock.W); err != nil {
		return err
	}

	x := containingBlock.TopL.X
	if left, ok := parseOffset(style, "left", containingBlock.W); ok {
		x += left
	} else if right, ok := parseOffset(style, "right", containingBlock.W); ok {
		x = containingBlock.TopL.X + containingBlock.W - right - cssBox.W.Unwrap()
	}
	y := containingBlock.TopL.Y
	if top, ok := parseOffset(style, "top", containingBlock.H); ok {
		y += top
	} else if bottom, ok := parseOffset(style, "bottom", containingBlock.H); ok {
		y = containingBlock.TopL.Y + containingBlock.H - bottom
	}
	cssBox.TopL = dimen.Point{X: x, Y: y}

	childHeight, err := layoutChildren(box.TreeNode(), box, resolve, cssBox.ContentWidth().Unwrap())
	if err != nil {
		return err
	}
	ResolveHeight(box, containingBlock.H, true)
	if !cssBox.H.IsAbsolute() {
		cssBox.FixContentHeight(childHeight)
	}
	return nil
}

// parseOffset resolves a positioning offset property ('left'/'right'/
// 'top'/'bottom') against ref, reporting false for an absent or 'auto'
// value.
func parseOffset(style boxtree.Styler, prop string, ref dimen.DU) (dimen.DU, bool) {
	if style == nil {
		return dimen.Zero, false
	}
	raw := style.Property(prop)
	if raw == "" || raw == "auto" {
		return dimen.Zero, false
	}
	d, err := css.ParseDimen(raw)
	if err != nil {
		return dimen.Zero, false
	}
	if d.IsPercent() {
		return d.ResolvePercent(ref).Unwrap(), true
	}
	if d.IsAbsolute() {
		return d.Unwrap(), true
	}
	return dimen.Zero, false
}

// relativeOffset resolves the visual shift CSS 2.2 §9.4.3 gives a
// `position: relative` box from its static position, against a containing
// block contentWidth cells wide (vertical percentage offsets have no
// settled containing-block height to resolve against at this point in
// normal-flow layout, so they resolve against zero, per CSS 2.2's rule for
// an indeterminate percentage basis).
//
// Horizontally: 'left'/'right' both auto leave the box at 0; one auto
// takes the other's negation; both given is over-constrained and 'left'
// wins (this module tracks no 'direction' property, so the 'ltr' initial
// value's tie-break is assumed throughout).
// Vertically: 'top'/'bottom' both auto leave the box at 0; one auto takes
// the other's negation; both given is never over-constrained for the
// vertical axis — 'top' always wins and 'bottom' is ignored.
func relativeOffset(style boxtree.Styler, contentWidth dimen.DU) dimen.Point {
	var dx, dy dimen.DU
	if left, ok := parseOffset(style, "left", contentWidth); ok {
		dx = left
	} else if right, ok := parseOffset(style, "right", contentWidth); ok {
		dx = -right
	}
	if top, ok := parseOffset(style, "top", dimen.Zero); ok {
		dy = top
	} else if bottom, ok := parseOffset(style, "bottom", dimen.Zero); ok {
		dy = -bottom
	}
	return dimen.Point{X: dx, Y: dy}
}

// LayoutPositionedDescendants finds every absolutely or fixed positioned
// box reachable from root — reanchored by engine/boxtree.ReorderBoxTree to
// its CSS containing block ancestor — and resolves its geometry against
// that ancestor's border-box rectangle (a padding-box would be more
// precise per CSS 2.2 §10.1, but border and padding are both already
// resolved to concrete cells by the time this pass runs, so the
// approximation only matters when an ancestor has a non-zero border — a
// rare case for a terminal UI chrome element).
func LayoutPositionedDescendants(root *boxtree.PrincipalBox, resolve boxtree.StyleResolver) error {
	var failure error
	tree.NewWalker(root.TreeNode()).TopDown(func(node, parent *tree.Node, idx int) (*tree.Node, error) {
		if failure != nil {
			return node, nil
		}
		pbox, ok := node.Payload.(*boxtree.PrincipalBox)
		if !ok || pbox == root || parent == nil {
			return node, nil
		}
		style := resolve(pbox.DOMTreeNode())
		if style == nil {
			return node, nil
		}
		switch style.Property("position") {
		case "absolute", "fixed":
		default:
			return node, nil
		}
		container, ok := parent.Payload.(frame.Container)
		if !ok {
			return node, nil
		}
		if err := ResolvePositioned(pbox, resolve, container.CSSBox().BorderBoxRect()); err != nil {
			failure = err
		}
		return node, nil
	}).Promise()()
	return failure
}
