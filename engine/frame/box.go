/*
Package frame holds the box model types shared by box generation
(engine/boxtree) and layout (engine/layout): the CSS box (content, padding,
border, margin), the formatting-context interfaces boxes attach to, and
float bookkeeping.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package frame

import (
	"fmt"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/style/css"
)

// Rect is a box's position plus its content- or border-box size, depending
// on BorderBoxSizing.
type Rect struct {
	TopL dimen.Point
	Size
}

// Size is a pair of CSS dimensions, one per axis.
type Size struct {
	W css.DimenT
	H css.DimenT
}

// 4-way edge indices, always starting at the top and travelling clockwise,
// matching the order CSS shorthand properties use.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Box is a CSS box: geometry plus the spacing that surrounds it.
type Box struct {
	Rect
	Min             Size
	Max             Size
	BorderBoxSizing bool
	Padding         [4]css.DimenT
	BorderWidth     [4]css.DimenT
	Margins         [4]css.DimenT
	Lines           []LineBox
}

// LineBox is one laid-out line of text belonging to an inline formatting
// context, positioned relative to its containing box's content area. It
// carries plain text only — style lookup for painting happens by style run,
// not per line — since frame cannot depend on the paragraph/line-breaking
// package without creating an import cycle (engine/linebreak already
// depends on engine/boxtree, which depends on engine/frame).
type LineBox struct {
	X     dimen.DU
	Y     dimen.DU
	Width dimen.DU
	Text  string
}

// StyledBox pairs a Box with the styling it renders with.
type StyledBox struct {
	Box
	Styles *Styling
}

// DebugString renders a box's dimensions for diagnostics.
func (box *Box) DebugString() string {
	return fmt.Sprintf("box{ w=%v h=%v (border-box=%v) topl=%v }",
		box.W, box.H, box.BorderBoxSizing, box.TopL)
}

// innerDecorationWidth returns the sum of left+right padding and border
// width, i.e. how much border-box width exceeds content width.
func innerDecorationWidth(box *Box) dimen.DU {
	w := dimen.Zero
	for _, edge := range [2]int{Left, Right} {
		if box.Padding[edge].IsAbsolute() {
			w += box.Padding[edge].Unwrap()
		}
		if box.BorderWidth[edge].IsAbsolute() {
			w += box.BorderWidth[edge].Unwrap()
		}
	}
	return w
}

// innerDecorationHeight is innerDecorationWidth's vertical-axis equivalent.
func innerDecorationHeight(box *Box) dimen.DU {
	h := dimen.Zero
	for _, edge := range [2]int{Top, Bottom} {
		if box.Padding[edge].IsAbsolute() {
			h += box.Padding[edge].Unwrap()
		}
		if box.BorderWidth[edge].IsAbsolute() {
			h += box.BorderWidth[edge].Unwrap()
		}
	}
	return h
}

// HasFixedBorderBoxWidth reports whether box.W resolves to an absolute
// value, optionally also requiring the padding/border widths to be fixed.
func (box *Box) HasFixedBorderBoxWidth(strict bool) bool {
	if !box.W.IsAbsolute() {
		return false
	}
	if !strict {
		return true
	}
	for _, edge := range [2]int{Left, Right} {
		if !box.Padding[edge].IsAbsolute() || !box.BorderWidth[edge].IsAbsolute() {
			return false
		}
	}
	return true
}

// HasFixedBorderBoxHeight is HasFixedBorderBoxWidth's vertical counterpart.
func (box *Box) HasFixedBorderBoxHeight(strict bool) bool {
	if !box.H.IsAbsolute() {
		return false
	}
	if !strict {
		return true
	}
	for _, edge := range [2]int{Top, Bottom} {
		if !box.Padding[edge].IsAbsolute() || !box.BorderWidth[edge].IsAbsolute() {
			return false
		}
	}
	return true
}

// ContentWidth returns the width of the content box. If box-sizing is
// border-box and the border-box width is not fixed, an unset dimension is
// returned (the width must still be resolved by layout).
func (box *Box) ContentWidth() css.DimenT {
	if !box.BorderBoxSizing {
		return box.W
	}
	if box.HasFixedBorderBoxWidth(false) {
		return css.JustDimen(box.W.Unwrap() - innerDecorationWidth(box))
	}
	return css.Dimen()
}

// ContentHeight is ContentWidth's vertical-axis equivalent.
func (box *Box) ContentHeight() css.DimenT {
	if !box.BorderBoxSizing {
		return box.H
	}
	if box.HasFixedBorderBoxHeight(false) {
		return css.JustDimen(box.H.Unwrap() - innerDecorationHeight(box))
	}
	return css.Dimen()
}

// FixContentWidth sets the box's content width, translating it into a
// border-box width first if box-sizing requires it.
func (box *Box) FixContentWidth(w dimen.DU) {
	if box.BorderBoxSizing {
		w += innerDecorationWidth(box)
	}
	box.W = css.JustDimen(w)
}

// FixContentHeight is FixContentWidth's vertical-axis equivalent.
func (box *Box) FixContentHeight(h dimen.DU) {
	if box.BorderBoxSizing {
		h += innerDecorationHeight(box)
	}
	box.H = css.JustDimen(h)
}

// BorderBoxRect returns the box's border-box rectangle in absolute
// coordinates, assuming all dimensions are already resolved.
func (box *Box) BorderBoxRect() dimen.Rect {
	w, h := box.W.Unwrap(), box.H.Unwrap()
	if !box.BorderBoxSizing {
		w += innerDecorationWidth(box)
		h += innerDecorationHeight(box)
	}
	return dimen.RectFromSize(box.TopL, w, h)
}

// MarginBoxRect returns the box's margin-box rectangle in absolute
// coordinates, assuming all dimensions (including margins) are resolved.
func (box *Box) MarginBoxRect() dimen.Rect {
	r := box.BorderBoxRect()
	left, right, top, bottom := dimen.Zero, dimen.Zero, dimen.Zero, dimen.Zero
	if box.Margins[Left].IsAbsolute() {
		left = box.Margins[Left].Unwrap()
	}
	if box.Margins[Right].IsAbsolute() {
		right = box.Margins[Right].Unwrap()
	}
	if box.Margins[Top].IsAbsolute() {
		top = box.Margins[Top].Unwrap()
	}
	if box.Margins[Bottom].IsAbsolute() {
		bottom = box.Margins[Bottom].Unwrap()
	}
	return dimen.Rect{
		TopL: dimen.Point{X: r.TopL.X - left, Y: r.TopL.Y - top},
		W:    r.W + left + right,
		H:    r.H + top + bottom,
	}
}
