/*
Package css implements the small subset of CSS 2.2 value algebra the layout
engine needs: an option type for lengths (DimenT) and a display-mode bitset.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package css

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/foilterm/foil/core/dimen"
)

const (
	dimenUnset uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions (shrink-to-fit).
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0200
	dimenVW      uint32 = 0x0300
	dimenVH      uint32 = 0x0400
	dimenPercent uint32 = 0x0500
	relativeMask uint32 = 0xff00
)

// Percent is a CSS percentage value, stored as parts-per-hundred.
type Percent float64

// DimenT is an option type for CSS dimensions in the character-cell grid:
// unset | auto | inherit | initial | a fixed cell count | a percentage |
// a font-relative unit | a viewport-relative unit | content-fit.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

// Dimen returns the unset dimension.
func Dimen() DimenT { return DimenT{} }

// Auto returns the `auto` dimension.
func Auto() DimenT { return DimenT{flags: dimenAuto} }

// Inherit returns the `inherit` dimension.
func Inherit() DimenT { return DimenT{flags: dimenInherit} }

// Initial returns the `initial` dimension.
func Initial() DimenT { return DimenT{flags: dimenInitial} }

// ContentFit returns a shrink-to-fit dimension (`fit-content`).
func ContentFit() DimenT { return DimenT{flags: DimenContentFit} }

// JustDimen creates a dimension with a fixed cell-count value.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// SomeDimen is an alias for JustDimen taking a plain cell count.
func SomeDimen(x dimen.DU) DimenT {
	return JustDimen(x)
}

// Percentage creates a %-relative dimension.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// EM creates a font-relative dimension (inert on a monospaced grid except
// for resolving against the fixed cell size — see ScaleFromFont).
func EM(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenEM}
}

// VW / VH create viewport-relative dimensions.
func VW(n Percent) DimenT { return DimenT{percent: n, flags: dimenVW} }
func VH(n Percent) DimenT { return DimenT{percent: n, flags: dimenVH} }

// IsNone reports whether d is unset.
func (d DimenT) IsNone() bool { return d.flags == dimenUnset }

// IsAuto reports whether d is the `auto` keyword.
func (d DimenT) IsAuto() bool { return d.flags == dimenAuto }

// IsInitial reports whether d is the `initial` keyword.
func (d DimenT) IsInitial() bool { return d.flags == dimenInitial }

// IsInherit reports whether d is the `inherit` keyword.
func (d DimenT) IsInherit() bool { return d.flags == dimenInherit }

// IsRelative reports whether d is a %, em, vw or vh dimension.
func (d DimenT) IsRelative() bool { return d.flags&relativeMask > 0 }

// IsPercent reports whether d is specifically a % dimension.
func (d DimenT) IsPercent() bool { return d.flags&relativeMask == dimenPercent }

// IsContentFit reports whether d requests shrink-to-fit sizing.
func (d DimenT) IsContentFit() bool { return d.flags&contentMask > 0 }

// IsAbsolute reports whether d carries a fixed cell-count value.
func (d DimenT) IsAbsolute() bool { return d.flags == dimenAbsolute }

// Unwrap returns the fixed cell value of d. Only meaningful if IsAbsolute().
func (d DimenT) Unwrap() dimen.DU { return d.d }

// PercentValue returns the percentage value of d. Only meaningful if IsRelative().
func (d DimenT) PercentValue() Percent { return d.percent }

// MatchValue implements option.Type: the concrete match keys are the
// strings "auto", "initial", "inherit", "%" and "fit-content" (by flag), so
// that callers of option.Of can switch on them directly; unset, fixed and
// all other values yield nil and fall through to option.None/option.Some.
func (d DimenT) MatchValue() interface{} {
	switch d.flags {
	case dimenAuto:
		return "auto"
	case dimenInitial:
		return "initial"
	case dimenInherit:
		return "inherit"
	case dimenPercent:
		return "%"
	case DimenContentFit:
		return "fit-content"
	}
	return nil
}

// ScaleFromFont resolves an em-relative dimension against a cell-grid font
// size. Since this engine has exactly one glyph metric (one monospaced
// grid cell, per spec.md Non-goals), "1em" resolves to one cell regardless
// of the named font.
func (d DimenT) ScaleFromFont(_ string) DimenT {
	if d.flags != dimenEM {
		return d
	}
	cells := dimen.DU(float64(d.percent) / 100.0 * float64(dimen.Cell))
	if cells < 1 {
		cells = 1
	}
	return JustDimen(cells)
}

// ScaleFromViewport resolves a vw/vh-relative dimension against the grid
// size (columns, rows).
func (d DimenT) ScaleFromViewport(cols, rows dimen.DU) DimenT {
	switch d.flags {
	case dimenVW:
		return JustDimen(dimen.DU(float64(d.percent) / 100.0 * float64(cols)))
	case dimenVH:
		return JustDimen(dimen.DU(float64(d.percent) / 100.0 * float64(rows)))
	}
	return d
}

// ResolvePercent resolves a %-relative dimension against an absolute
// reference (e.g. the containing block's width).
func (d DimenT) ResolvePercent(ref dimen.DU) DimenT {
	if !d.IsPercent() {
		return d
	}
	return JustDimen(dimen.DU(float64(d.percent) / 100.0 * float64(ref)))
}

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(%|em|rem|vw|vh|ch|px)?$`)

// ParseDimen parses a property value into a DimenT. Syntax follows CSS
// units, scaled into character cells: bare integers and "px"/"ch" are taken
// as whole cells (one cell == one glyph column), "em"/"rem" are resolved
// later against the font (here: always one cell), "%" is kept symbolic
// until resolved against a containing block, border widths of
// "thin"/"medium"/"thick" bucket to 0/1/1 cells per spec.md §4.1 (a
// character cell cannot render a half-width border).
func ParseDimen(s string) (DimenT, error) {
	if s == "" || s == "none" {
		return DimenT{}, nil
	}
	switch s {
	case "auto":
		return Auto(), nil
	case "initial":
		return Initial(), nil
	case "inherit":
		return Inherit(), nil
	case "fit-content":
		return ContentFit(), nil
	case "thin":
		return JustDimen(0), nil
	case "medium", "thick":
		return JustDimen(1), nil
	}
	m := dimenPattern.FindStringSubmatch(s)
	if len(m) < 2 {
		return DimenT{}, errors.New("css: format error parsing dimension " + s)
	}
	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DimenT{}, err
	}
	unit := ""
	if len(m) > 2 {
		unit = m[2]
	}
	switch unit {
	case "%":
		return Percentage(Percent(val)), nil
	case "em", "rem":
		return EM(Percent(val)), nil
	case "vw":
		return VW(Percent(val)), nil
	case "vh":
		return VH(Percent(val)), nil
	default: // bare number, "px" or "ch": one unit == one cell
		return JustDimen(dimen.DU(val)), nil
	}
}
