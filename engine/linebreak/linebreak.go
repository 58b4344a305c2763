// Package linebreak turns a paragraph's styled text into a sequence of
// grid-cell-bounded lines.
//
// Unlike the teacher's engine/khipu/linebreak packages, which fold text
// into a TeX-style sequence of knots (boxes, glue, penalties) and run the
// Knuth-Plass algorithm over elastic widths, this package treats a
// paragraph as a rope of runes (github.com/npillmayer/cords) annotated
// with UAX#14 break opportunities and measured in fixed terminal cells —
// spec.md's layout model is a grid, not a typeset page, so there is no
// stretch/shrink to optimize: a line either fits the available cell count
// or it doesn't.
package linebreak

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the engine tracer, matching the package-level tracer accessor
// every engine/... package uses.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// Penalty follows UAX#14's cost scale for a break opportunity: lower is a
// more desirable break, InfinityPenalty means "never break here" short of
// an emergency overflow.
type Penalty int

// InfinityPenalty marks a position no break may occur at.
const InfinityPenalty Penalty = 10000

// MandatoryPenalty marks a position a break always occurs at (e.g. after a
// hard line break in the source text).
const MandatoryPenalty Penalty = -10000

// ParShape returns the available cell width for a given zero-based line
// number, letting callers shape a paragraph's first line differently from
// its continuation lines (e.g. for list-item markers or indentation).
type ParShape interface {
	LineWidth(line int) int
}

// rectShape is a ParShape of constant width.
type rectShape int

func (r rectShape) LineWidth(int) int { return int(r) }

// RectParShape returns a ParShape of constant width, the common case of a
// paragraph confined to one box's content rectangle.
func RectParShape(width int) ParShape {
	return rectShape(width)
}
