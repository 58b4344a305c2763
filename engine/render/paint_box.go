package render

import (
	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/page"
)

// paintOwnBox paints pbox's background and border at its absolute
// border-box origin absTopL, reading colors and per-edge line styles
// straight from pbox.StyledBox.Styles — already resolved once, at box
// generation time, by engine/boxtree's setVisualStyles/AttributeBoxes —
// rather than re-parsing any CSS property string here.
func paintOwnBox(pbox *boxtree.PrincipalBox, surface page.Surface, absTopL dimen.Point) {
	box := pbox.CSSBox()
	delta := absTopL.Sub(box.TopL)
	r := box.BorderBoxRect().Translate(delta)
	paintBackground(surface, r, pbox.StyledBox.Styles)
	paintBorder(surface, r, box, pbox.StyledBox.Styles)
}

// paintBackground erases r with styles' background color, when one is set;
// a box with no resolved background-color keeps whatever the surface
// already shows there (CSS 2.2's initial 'transparent').
func paintBackground(surface page.Surface, r dimen.Rect, styles *frame.Styling) {
	if styles == nil || styles.Colors.Background == frame.NoColor {
		return
	}
	surface.SetBackground(styles.Colors.Background)
	surface.EraseRect(r)
}

// paintBorder draws r's four edges as Unicode box-drawing runs, one per
// side that has a non-zero border width, with corners promoted to a
// fully-double glyph only when both adjoining edges are LSDouble
// (spec.md §4.4).
func paintBorder(surface page.Surface, r dimen.Rect, box *frame.Box, styles *frame.Styling) {
	hasTop := edgeOf(box.BorderWidth[frame.Top]) > 0
	hasRight := edgeOf(box.BorderWidth[frame.Right]) > 0
	hasBottom := edgeOf(box.BorderWidth[frame.Bottom]) > 0
	hasLeft := edgeOf(box.BorderWidth[frame.Left]) > 0
	if !hasTop && !hasRight && !hasBottom && !hasLeft {
		return
	}

	var ls [4]frame.LineStyle
	color := page.DefaultForeground
	if styles != nil {
		ls = [4]frame.LineStyle{
			styles.Borders[frame.Top].Style,
			styles.Borders[frame.Right].Style,
			styles.Borders[frame.Bottom].Style,
			styles.Borders[frame.Left].Style,
		}
		if styles.Borders[frame.Top].LineColor != frame.NoColor {
			color = styles.Borders[frame.Top].LineColor
		}
	}
	surface.SetForeground(color)
	surface.SetTextStyle(frame.TextStyle{})

	if hasTop {
		surface.DrawRune(r.TopL.X+1, r.TopL.Y, horizontalGlyph(ls[frame.Top]), innerRun(r.W))
	}
	if hasBottom {
		surface.DrawRune(r.TopL.X+1, r.Bottom()-1, horizontalGlyph(ls[frame.Bottom]), innerRun(r.W))
	}
	if hasLeft {
		for y := r.TopL.Y + 1; y < r.Bottom()-1; y++ {
			surface.DrawRune(r.TopL.X, y, verticalGlyph(ls[frame.Left]), 1)
		}
	}
	if hasRight {
		for y := r.TopL.Y + 1; y < r.Bottom()-1; y++ {
			surface.DrawRune(r.Right()-1, y, verticalGlyph(ls[frame.Right]), 1)
		}
	}
	if hasTop && hasLeft {
		surface.DrawRune(r.TopL.X, r.TopL.Y, cornerGlyph(ls[frame.Top], ls[frame.Left], cornerTopLeft), 1)
	}
	if hasTop && hasRight {
		surface.DrawRune(r.Right()-1, r.TopL.Y, cornerGlyph(ls[frame.Top], ls[frame.Right], cornerTopRight), 1)
	}
	if hasBottom && hasLeft {
		surface.DrawRune(r.TopL.X, r.Bottom()-1, cornerGlyph(ls[frame.Bottom], ls[frame.Left], cornerBottomLeft), 1)
	}
	if hasBottom && hasRight {
		surface.DrawRune(r.Right()-1, r.Bottom()-1, cornerGlyph(ls[frame.Bottom], ls[frame.Right], cornerBottomRight), 1)
	}
}

// innerRun is the number of cells a horizontal border rule spans between
// its two corners: r's width less the one cell each corner occupies, or 0
// for a box too narrow to have a run at all.
func innerRun(w dimen.DU) int {
	n := int(w) - 2
	if n < 0 {
		return 0
	}
	return n
}
