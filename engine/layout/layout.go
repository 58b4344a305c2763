/*
Package layout resolves a generated box tree's geometry: CSS 2.2 §10.3/
§10.6 width and height, §9.4.1 normal block/inline flow (via
engine/linebreak for line breaking), §9.5 floats and §10.3.7/§10.6.4
absolute/fixed positioning.

engine/boxtree's AttributeBoxes already attaches every box's raw style
properties as unresolved css.DimenT values; this package's job is purely
geometric — turning auto/percent/fit-content into concrete character-cell
values and assigning each box a position — not CSS parsing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package layout

import (
	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
)

// Layout resolves root's entire box tree against a viewport of the given
// size, in the order CSS 2.2 prescribes: box-tree reordering for
// positioned/floated boxes first (§9.5, §10.1 — a box must be removed from
// normal flow before its siblings are stacked), then normal-flow width/
// height resolution and block/inline stacking, then a final pass resolving
// every absolutely/fixed positioned box against its now-settled containing
// block.
//
// Grounded on the teacher's three-stage pipeline as sketched by
// engine/frame/layout/layout.go's comments (pre-layout, SolveWidth,
// then — never implemented there — height and line layout); this module
// completes all three stages plus the positioning pass the teacher never
// reaches.
func Layout(root *boxtree.PrincipalBox, resolve boxtree.StyleResolver, viewport dimen.Rect) error {
	boxtree.ReorderBoxTree(root, resolve)
	boxtree.AttributeBoxes(root, resolve)

	root.CSSBox().TopL = viewport.TopL
	root.CSSBox().FixContentWidth(viewport.W)

	height, err := LayoutBlockContainer(root, resolve, viewport.W)
	if err != nil {
		return err
	}
	if !root.CSSBox().H.IsAbsolute() {
		root.CSSBox().FixContentHeight(height)
	}

	return LayoutPositionedDescendants(root, resolve)
}
