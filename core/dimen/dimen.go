/*
Package dimen implements the geometry primitives of a character-cell grid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package dimen

import (
	"fmt"
	"math"
)

// DU is a design unit: one character cell of the terminal grid.
//
// Everything in this package is expressed in DU so that the layout engine
// never has to reason about fractional pixels; a cell is the smallest
// addressable unit of the rendering surface.
type DU int32

// Zero is the empty dimension.
const Zero DU = 0

// Cell is one character cell — the base unit all other dimensions scale from.
const Cell DU = 1

// Infinity is the largest usable dimension; used for unconstrained heights.
const Infinity DU = math.MaxInt32

// Stretchability markers, following TeX's glue vocabulary: some layout
// calculations want to distinguish "grows without bound" from "is simply
// very large".
const (
	Fil   DU = Infinity - 3
	Fill  DU = Infinity - 2
	Filll DU = Infinity - 1
)

func (d DU) String() string {
	return fmt.Sprintf("%dcell", int32(d))
}

// Point is a 2D coordinate in design units.
type Point struct {
	X, Y DU
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", int32(p.X), int32(p.Y))
}

// Rect is an axis-aligned rectangle in design units, expressed as a
// top-left corner plus a width/height extent. Rects are half-open: a cell
// at (x,y) belongs to the rect iff x in [TopL.X, TopL.X+W) and similarly
// for y.
type Rect struct {
	TopL Point
	W, H DU
}

// RectFromSize builds a Rect at a given origin.
func RectFromSize(topL Point, w, h DU) Rect {
	return Rect{TopL: topL, W: w, H: h}
}

// Right returns the exclusive right edge of the rect.
func (r Rect) Right() DU { return r.TopL.X + r.W }

// Bottom returns the exclusive bottom edge of the rect.
func (r Rect) Bottom() DU { return r.TopL.Y + r.H }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports whether two rects share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.TopL.X < o.Right() && o.TopL.X < r.Right() &&
		r.TopL.Y < o.Bottom() && o.TopL.Y < r.Bottom()
}

// Intersect returns the overlapping area of two rects, or the zero Rect
// (Empty() == true) if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Overlaps(o) {
		return Rect{}
	}
	x0 := max(r.TopL.X, o.TopL.X)
	y0 := max(r.TopL.Y, o.TopL.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	return Rect{TopL: Point{x0, y0}, W: x1 - x0, H: y1 - y0}
}

// Translate shifts a rect by a delta.
func (r Rect) Translate(delta Point) Rect {
	return Rect{TopL: r.TopL.Add(delta), W: r.W, H: r.H}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s %dx%d]", r.TopL, int32(r.W), int32(r.H))
}

func max(a, b DU) DU {
	if a > b {
		return a
	}
	return b
}

func min(a, b DU) DU {
	if a < b {
		return a
	}
	return b
}
