package layout

import (
	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/linebreak"
	"github.com/foilterm/foil/engine/tree"
)

// LayoutBlockContainer lays out pbox's children top to bottom within a
// content area contentWidth cells wide, implementing CSS 2.2 §9.4.1's
// normal flow, and returns the total content height consumed — for the
// caller to assign to pbox itself when its own 'height' is 'auto'.
//
// Grounded on the teacher's BlockContext.Layout (engine/frame/layout/
// context.go): same top-to-bottom TopL.Y accumulation over a context's
// contained children, generalized to also run an inline formatting
// context inline instead of requiring every child to already be laid out.
func LayoutBlockContainer(pbox *boxtree.PrincipalBox, resolve boxtree.StyleResolver, contentWidth dimen.DU) (dimen.DU, error) {
	return layoutChildren(pbox.TreeNode(), pbox, resolve, contentWidth)
}

// layoutChildren stacks node's block-level children (plain PrincipalBoxes,
// or AnonymousBoxes wrapping an inline-level or block-level run —
// engine/boxtree's normalizeChildrenOf guarantees node's direct children
// are uniformly block-level after box generation) and returns the height
// consumed. owner is the nearest PrincipalBox ancestor, used to anchor text
// collected from an inline-level anonymous run that has no style of its
// own (CSS 2.2 §9.2.2.1).
func layoutChildren(node *tree.Node, owner *boxtree.PrincipalBox, resolve boxtree.StyleResolver, contentWidth dimen.DU) (dimen.DU, error) {
	y := dimen.Zero
	prevMarginBottom := dimen.Zero
	first := true

	floatRegion, err := prepareFloats(node, resolve, contentWidth)
	if err != nil {
		return y, err
	}

	for _, child := range node.Children() {
		switch box := child.Payload.(type) {
		case *boxtree.PrincipalBox:
			if isOutOfFlow(box, resolve) {
				continue // positioned/floated boxes are laid out in a later, independent pass
			}
			if err := layoutBlockLevelChild(box, box, resolve, contentWidth, &y, &prevMarginBottom, first); err != nil {
				return y, err
			}
			first = false
		case *boxtree.AnonymousBox:
			if box.DisplayMode().IsInline() {
				h, err := layoutInlineRun(child, box.CSSBox(), contentWidth, y, floatRegion)
				if err != nil {
					return y, err
				}
				if !first {
					y += prevMarginBottom
				}
				y += h
				prevMarginBottom = dimen.Zero
				first = false
				continue
			}
			if err := layoutBlockLevelChild(box, owner, resolve, contentWidth, &y, &prevMarginBottom, first); err != nil {
				return y, err
			}
			first = false
		}
	}
	return y, nil
}

// prepareFloats registers node's directly floated PrincipalBox children
// (CSS 2.2 §9.5) with the block formatting context node's own container
// establishes, places them with LayoutFloats, and returns the resulting
// exclusion region so in-flow siblings laid out afterward in this same
// child list can shrink their lines around them. It returns a nil region
// when node's container has no block context, or no floated children are
// registered — the common case, under which in-flow layout proceeds
// exactly as if floats did not exist.
//
// node.Payload is always the frame.Container whose child list this call is
// laying out (layoutChildren is only ever invoked with node set to that
// container's own tree node), so node.Payload.(frame.Container).Context()
// is the formatting context floats belong to.
func prepareFloats(node *tree.Node, resolve boxtree.StyleResolver, contentWidth dimen.DU) (*dimen.Region, error) {
	container, ok := node.Payload.(frame.Container)
	if !ok {
		return nil, nil
	}
	pbox, ok := container.(*boxtree.PrincipalBox)
	if !ok {
		return nil, nil
	}
	ctx, ok := pbox.Context().(*frame.BlockContext)
	if !ok {
		return nil, nil
	}
	for _, child := range node.Children() {
		if fbox, ok := child.Payload.(*boxtree.PrincipalBox); ok && isFloated(fbox, resolve) {
			if !ctx.Floats.Contains(fbox) {
				ctx.Floats.AppendFloat(fbox)
			}
		}
	}
	if len(ctx.Floats.Floats()) == 0 {
		return nil, nil
	}
	return LayoutFloats(pbox, resolve, contentWidth, dimen.Infinity)
}

// isFloated reports whether box's resolved style floats it left or right,
// independent of isOutOfFlow's broader positioned-or-floated test.
func isFloated(box *boxtree.PrincipalBox, resolve boxtree.StyleResolver) bool {
	style := resolve(box.DOMTreeNode())
	if style == nil {
		return false
	}
	switch style.Property("float") {
	case "left", "right":
		return true
	}
	return false
}

// layoutBlockLevelChild solves c's width and vertical position, recurses
// into its own children (owned, for anonymous-run purposes, by
// recurseOwner), and resolves its height once its content height is known.
func layoutBlockLevelChild(c frame.Container, recurseOwner *boxtree.PrincipalBox, resolve boxtree.StyleResolver, contentWidth dimen.DU, y, prevMarginBottom *dimen.DU, first bool) error {
	if err := ResolveWidth(c, contentWidth); err != nil {
		return err
	}
	cssBox := c.CSSBox()
	marginTop := cssBox.Margins[frame.Top].Unwrap()
	gap := marginTop
	if !first {
		gap = collapseMargins(*prevMarginBottom, marginTop)
	}
	*y += gap
	cssBox.TopL = dimen.Point{X: 0, Y: *y}
	if pbox, ok := c.(*boxtree.PrincipalBox); ok {
		if style := resolve(pbox.DOMTreeNode()); style != nil && style.Property("position") == "relative" {
			cssBox.TopL = cssBox.TopL.Add(relativeOffset(style, contentWidth))
		}
	}

	childContentWidth := cssBox.ContentWidth().Unwrap()
	childHeight, err := layoutChildren(c.TreeNode(), recurseOwner, resolve, childContentWidth)
	if err != nil {
		return err
	}
	ResolveHeight(c, 0, false)
	if !cssBox.H.IsAbsolute() {
		cssBox.FixContentHeight(childHeight)
	}
	*y += cssBox.H.Unwrap()
	*prevMarginBottom = cssBox.Margins[frame.Bottom].Unwrap()
	return nil
}

// collapseMargins resolves two adjoining vertical margins to the single
// gap CSS 2.2 §8.3.1 leaves between the boxes: the maximum of the two when
// both are non-negative (the common terminal-UI case; true negative-margin
// collapsing is out of scope — spec.md never surfaces negative lengths).
func collapseMargins(bottom, top dimen.DU) dimen.DU {
	if bottom > top {
		return bottom
	}
	return top
}

// isOutOfFlow reports whether box has been excluded from normal flow by
// ReorderBoxTree (fixed/absolute positioning or floating) — such boxes are
// laid out by a separate positioned/float pass instead of being stacked
// here.
func isOutOfFlow(box *boxtree.PrincipalBox, resolve boxtree.StyleResolver) bool {
	style := resolve(box.DOMTreeNode())
	if style == nil {
		return false
	}
	switch style.Property("position") {
	case "absolute", "fixed":
		return true
	}
	switch style.Property("float") {
	case "left", "right":
		return true
	}
	return false
}

// layoutInlineRun breaks the text collected from an inline-level subtree
// rooted at node into lines via engine/linebreak, stacking each resulting
// line vertically starting at y within box's content area, and returns the
// total height consumed. When floatRegion is non-nil, each line is shaped
// to the band of the region available at its own row (CSS 2.2 §9.5: inline
// content flows around a float instead of running underneath it) and
// carries the band's left offset as its X field; a nil floatRegion lays
// out exactly as if no float were present.
//
// Grounded on the teacher's InlineContext.Layout (engine/frame/layout/
// context.go: inline.TextOfParagraph + inline.BreakParagraph + addLines),
// replaced here with engine/linebreak's cords/UAX#14 pipeline.
func layoutInlineRun(node *tree.Node, box *frame.Box, contentWidth dimen.DU, y dimen.DU, floatRegion *dimen.Region) (dimen.DU, error) {
	para := linebreak.CollectParagraph(node, nil)
	breaks := linebreak.ComputeBreaks(para.String())
	var shape linebreak.ParShape = linebreak.RectParShape(int(contentWidth))
	if floatRegion != nil {
		shape = floatAwareShape{region: floatRegion, baseY: y, fallback: contentWidth}
	}
	lines := linebreak.LayLines(para, breaks, shape)

	box.TopL = dimen.Point{X: 0, Y: y}
	box.FixContentWidth(contentWidth)
	box.Lines = box.Lines[:0]
	h := dimen.Zero
	for _, ln := range lines {
		x := dimen.Zero
		if floatRegion != nil {
			x, _ = floatRegion.BandAt(y+h, contentWidth)
		}
		box.Lines = append(box.Lines, frame.LineBox{
			X:     x,
			Y:     h,
			Width: dimen.DU(ln.Width) * dimen.Cell,
			Text:  ln.Text(para),
		})
		h += dimen.Cell // one terminal row per line on a monospaced grid
	}
	box.FixContentHeight(h)
	return h, nil
}

// floatAwareShape is a linebreak.ParShape that shrinks each line's budget
// to the widest band of region available at that line's row, letting text
// wrap around a float occupying part of the same vertical span (CSS 2.2
// §9.5) instead of running a fixed-width shape underneath it. Lines are one
// grid row tall (layoutInlineRun advances baseY by dimen.Cell per line), so
// line i's row is exactly baseY + i cells down.
type floatAwareShape struct {
	region   *dimen.Region
	baseY    dimen.DU
	fallback dimen.DU
}

func (s floatAwareShape) LineWidth(line int) int {
	_, w := s.region.BandAt(s.baseY+dimen.DU(line)*dimen.Cell, s.fallback)
	return int(w)
}
