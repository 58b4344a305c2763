package render

import "github.com/foilterm/foil/engine/frame"

// corner identifies one of a border's four box-drawing corner glyphs.
type corner int

const (
	cornerTopLeft corner = iota
	cornerTopRight
	cornerBottomLeft
	cornerBottomRight
)

// horizontalGlyph picks the Unicode box-drawing rune for a horizontal
// border run of the given line style (spec.md §4.4: U+2500..U+255F).
func horizontalGlyph(s frame.LineStyle) rune {
	switch s {
	case frame.LSDouble:
		return '═'
	case frame.LSDashed:
		return '┄'
	case frame.LSDotted:
		return '┈'
	default:
		return '─'
	}
}

// verticalGlyph is horizontalGlyph's vertical-run counterpart.
func verticalGlyph(s frame.LineStyle) rune {
	switch s {
	case frame.LSDouble:
		return '║'
	case frame.LSDashed:
		return '┆'
	case frame.LSDotted:
		return '┊'
	default:
		return '│'
	}
}

// cornerGlyph picks the box-drawing corner joining a horizontal edge of
// style h and a vertical edge of style v, promoting to the fully double
// corner only when both adjoining sides are double, and to one of the
// mixed single/double corners (U+2550..U+255D) when only one side is.
func cornerGlyph(h, v frame.LineStyle, c corner) rune {
	hd := h == frame.LSDouble
	vd := v == frame.LSDouble
	switch c {
	case cornerTopLeft:
		switch {
		case hd && vd:
			return '╔'
		case hd:
			return '╒'
		case vd:
			return '╓'
		default:
			return '┌'
		}
	case cornerTopRight:
		switch {
		case hd && vd:
			return '╗'
		case hd:
			return '╕'
		case vd:
			return '╖'
		default:
			return '┐'
		}
	case cornerBottomLeft:
		switch {
		case hd && vd:
			return '╚'
		case hd:
			return '╘'
		case vd:
			return '╙'
		default:
			return '└'
		}
	default: // cornerBottomRight
		switch {
		case hd && vd:
			return '╝'
		case hd:
			return '╛'
		case vd:
			return '╜'
		default:
			return '┘'
		}
	}
}
