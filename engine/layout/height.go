package layout

import (
	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
)

// ResolveHeight solves a box's content height against its containing
// block, per CSS 2.2 §10.6.3. A percentage height only resolves when the
// containing block's own height is definite (knownHeight); an explicit
// height is used as-is. 'auto' (and a percentage height against an
// indefinite container, which CSS treats the same as auto) is left
// unresolved here — layoutBlockLevelChild and this package's other callers
// fill it in afterwards from the summed height of the box's laid-out
// children.
//
// The teacher's engine/frame/layout/layout.go never implements height
// resolution (only SolveWidth exists, as a stub); this mirrors its
// Box/DimenT/option plumbing for the symmetric CSS 2.2 §10.6.3 case.
func ResolveHeight(c frame.Container, containingHeight dimen.DU, knownHeight bool) {
	box := c.CSSBox()
	height := box.ContentHeight()
	switch {
	case height.IsAbsolute():
		box.FixContentHeight(height.Unwrap())
	case height.IsPercent() && knownHeight:
		box.FixContentHeight(height.ResolvePercent(containingHeight).Unwrap())
	}
	for _, edge := range [2]int{frame.Top, frame.Bottom} {
		if box.Margins[edge].IsPercent() && knownHeight {
			box.Margins[edge] = box.Margins[edge].ResolvePercent(containingHeight)
		} else if !box.Margins[edge].IsAbsolute() {
			box.Margins[edge] = css.JustDimen(0)
		}
	}
}
