package layout

import (
	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/frame"
)

// LayoutFloats places every float registered with container's block
// formatting context (CSS 2.2 §9.5): each is flush against its content
// area's left or right edge, at the first vertical position at or below
// minTop with enough room, and carved out of the returned region so
// subsequent floats and in-flow content can be excluded from its area.
//
// Grounded on the teacher's FloatList (engine/frame/layout/floats.go,
// generalized here as engine/frame.FloatList) for float bookkeeping and on
// spec.md §4.3.6's first-fit placement rule, implemented against
// core/dimen.Region's FirstFit/Subtract rather than a bespoke exclusion
// list — Region already carries exactly the rectangle-splitting logic a
// float region needs.
func LayoutFloats(container *boxtree.PrincipalBox, resolve boxtree.StyleResolver, contentWidth, contentHeight dimen.DU) (*dimen.Region, error) {
	region := dimen.NewRegion(dimen.Rect{W: contentWidth, H: contentHeight})
	ctx, ok := container.Context().(*frame.BlockContext)
	if !ok {
		return region, nil
	}
	minTop := dimen.Zero
	for _, float := range ctx.Floats.Floats() {
		if err := ResolveWidth(float, contentWidth); err != nil {
			return region, err
		}
		box := float.CSSBox()
		childHeight, err := layoutChildren(float.TreeNode(), principalOwnerOf(float), resolve, box.ContentWidth().Unwrap())
		if err != nil {
			return region, err
		}
		ResolveHeight(float, 0, false)
		if !box.H.IsAbsolute() {
			box.FixContentHeight(childHeight)
		}
		rect, fits := region.FirstFit(box.MarginBoxRect().W, box.MarginBoxRect().H, minTop)
		if !fits {
			rect = dimen.Rect{TopL: dimen.Point{Y: minTop}, W: box.MarginBoxRect().W, H: box.MarginBoxRect().H}
		}
		var style boxtree.Styler
		if pbox, ok := float.(*boxtree.PrincipalBox); ok {
			style = resolve(pbox.DOMTreeNode())
		}
		placed := placeFloat(box, rect, style)
		region.Subtract(placed)
	}
	return region, nil
}

// placeFloat sets box's position within rect, flush left or right
// depending on the `float` property, and returns the margin-box rectangle
// actually occupied (what callers subtract from the available region).
func placeFloat(box *frame.Box, rect dimen.Rect, style boxtree.Styler) dimen.Rect {
	box.TopL = rect.TopL
	if style != nil && style.Property("float") == "right" {
		box.TopL.X = rect.TopL.X + rect.W - box.MarginBoxRect().W
	}
	return box.MarginBoxRect()
}

// principalOwnerOf returns c itself if it is a PrincipalBox, the box whose
// style owns any inline-level text a float's children collect.
func principalOwnerOf(c frame.Container) *boxtree.PrincipalBox {
	if pbox, ok := c.(*boxtree.PrincipalBox); ok {
		return pbox
	}
	return nil
}
