package layout

import (
	"errors"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/core/option"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
)

// ErrEnclosingWidthNotFixed is returned when a containing block's width is
// itself unresolved — callers must lay out ancestors before descendants.
var ErrEnclosingWidthNotFixed = errors.New("layout: enclosing width is not fixed")

// ResolveWidth solves a block-level, non-replaced box's content width
// against its containing block's content width, per CSS 2.2 §10.3.3: an
// 'auto' width takes up the remainder of the containing block once fixed
// margins are subtracted, an explicit or percentage width is used
// directly, and 'fit-content' falls back to the remaining space bounded by
// 'max-width' — a monospaced grid's lines wrap to whatever width they are
// given, so shrink-to-fit rarely needs true content measurement the way a
// variable-width renderer would.
//
// Grounded on the teacher's SolveWidth/calcWidthAsRest/calcNaturalWidth/
// takeWidth/fixedDimension/distributeMargin (engine/frame/layout/
// layout.go), adapted to this module's css.DimenT/option machinery.
func ResolveWidth(c frame.Container, containingWidth dimen.DU) error {
	box := c.CSSBox()
	enclosing := css.SomeDimen(containingWidth)
	width := box.ContentWidth()

	calc, err := option.Match(width, option.Of{
		option.None:   calcWidthAsRest,
		"auto":        calcWidthAsRest,
		"fit-content": calcFitContentWidth,
		option.Some:   takeWidth,
	})
	if err != nil {
		return err
	}
	solve := calc.(calcFn)
	w, err := solve(box, width, enclosing)
	if err != nil {
		return err
	}
	if box.Max.W.IsAbsolute() && w.IsAbsolute() && w.Unwrap() > box.Max.W.Unwrap() {
		w = box.Max.W
	}
	if box.Min.W.IsAbsolute() && w.IsAbsolute() && w.Unwrap() < box.Min.W.Unwrap() {
		w = box.Min.W
	}
	box.FixContentWidth(w.Unwrap())
	resolveMargins(box, enclosing, width.IsAbsolute() || width.IsPercent())
	return nil
}

type calcFn func(box *frame.Box, w, enclosing css.DimenT) (css.DimenT, error)

func takeWidth(box *frame.Box, w, enclosing css.DimenT) (css.DimenT, error) {
	if w.IsPercent() {
		return w.ResolvePercent(enclosing.Unwrap()), nil
	}
	return w, nil
}

// calcWidthAsRest implements CSS 2.2 §10.3.3 rule set for 'width: auto':
// fixed margins/padding/border are subtracted from the containing block's
// width and the remainder becomes the content width.
func calcWidthAsRest(box *frame.Box, w, enclosing css.DimenT) (css.DimenT, error) {
	if enclosing.IsNone() || enclosing.IsRelative() {
		return css.Dimen(), ErrEnclosingWidthNotFixed
	}
	used := fixedDimension(box.Margins[frame.Left], enclosing) +
		fixedDimension(box.Margins[frame.Right], enclosing) +
		fixedDimension(box.Padding[frame.Left], enclosing) +
		fixedDimension(box.Padding[frame.Right], enclosing) +
		fixedDimension(box.BorderWidth[frame.Left], enclosing) +
		fixedDimension(box.BorderWidth[frame.Right], enclosing)
	rest := enclosing.Unwrap() - used
	if rest < 0 {
		rest = 0
	}
	return css.SomeDimen(rest), nil
}

func calcFitContentWidth(box *frame.Box, w, enclosing css.DimenT) (css.DimenT, error) {
	rest, err := calcWidthAsRest(box, w, enclosing)
	if err != nil {
		return rest, err
	}
	if box.Max.W.IsAbsolute() && rest.Unwrap() > box.Max.W.Unwrap() {
		return box.Max.W, nil
	}
	return rest, nil
}

// fixedDimension resolves d (possibly auto/percent/unset) to a concrete
// cell count, treating auto/unset as zero — the CSS 2.2 §10.3.3 rule that
// "any other 'auto' values become '0'" once 'width' itself has claimed the
// remaining space.
func fixedDimension(d css.DimenT, enclosing css.DimenT) dimen.DU {
	v, err := option.Match(d, option.Of{
		option.None: dimen.Zero,
		"auto":      dimen.Zero,
		"initial":   dimen.Zero,
		"%":         option.Safe(func() (interface{}, error) { return d.ResolvePercent(enclosing.Unwrap()).Unwrap(), nil }),
		option.Some: d.Unwrap(),
	})
	if err != nil {
		return dimen.Zero
	}
	return v.(dimen.DU)
}

// resolveMargins fixes any still-auto left/right margin to its CSS 2.2
// §10.3.3 distributed value when the box's width was explicitly given
// (explicitWidth), and to zero otherwise — 'width: auto' already absorbed
// the leftover space itself (calcWidthAsRest), so its auto margins really
// are zero, per the same section. Vertical margins and all padding are
// always just resolved to a concrete number (CSS 2.2 has no equivalent
// distribution rule for 'margin-top'/'margin-bottom': an auto vertical
// margin is simply zero).
func resolveMargins(box *frame.Box, enclosing css.DimenT, explicitWidth bool) {
	if explicitWidth {
		box.Margins[frame.Left], box.Margins[frame.Right] = distributeMargin(box, enclosing)
	} else {
		for _, edge := range [2]int{frame.Left, frame.Right} {
			box.Margins[edge] = css.SomeDimen(fixedDimension(box.Margins[edge], enclosing))
		}
	}
	for _, edge := range [2]int{frame.Top, frame.Bottom} {
		if box.Margins[edge].IsPercent() {
			box.Margins[edge] = box.Margins[edge].ResolvePercent(enclosing.Unwrap())
		} else if !box.Margins[edge].IsAbsolute() {
			box.Margins[edge] = css.JustDimen(0)
		}
	}
	for i := range box.Padding {
		if box.Padding[i].IsPercent() {
			box.Padding[i] = box.Padding[i].ResolvePercent(enclosing.Unwrap())
		} else if !box.Padding[i].IsAbsolute() {
			box.Padding[i] = css.JustDimen(0)
		}
	}
}

// distributeMargin implements the rest of CSS 2.2 §10.3.3's rule set for a
// block-level, non-replaced box in normal flow with an explicit (non-auto,
// non-percent-unresolved) width: the containing block's leftover width —
// what's left once content width, padding and border are subtracted — is
// handed to whichever of margin-left/margin-right is 'auto', split equally
// between the two (rounded down on the left) when both are 'auto', and,
// when neither is 'auto' but the box is still over-constrained, the margin
// at the end of the direction axis absorbs the remainder instead of
// overflowing the containing block. This module tracks no 'direction'
// property, so margin-right plays that role, matching the initial 'ltr'
// value CSS 2.2 assumes absent any other declaration.
func distributeMargin(box *frame.Box, enclosing css.DimenT) (css.DimenT, css.DimenT) {
	decoration := fixedDimension(box.Padding[frame.Left], enclosing) +
		fixedDimension(box.Padding[frame.Right], enclosing) +
		fixedDimension(box.BorderWidth[frame.Left], enclosing) +
		fixedDimension(box.BorderWidth[frame.Right], enclosing)
	remaining := enclosing.Unwrap() - box.ContentWidth().Unwrap() - decoration

	ml, mr := box.Margins[frame.Left], box.Margins[frame.Right]
	if ml.IsAuto() && mr.IsAuto() {
		half := remaining / 2
		return css.SomeDimen(half), css.SomeDimen(remaining - half)
	}
	if ml.IsAuto() {
		mrVal := fixedDimension(mr, enclosing)
		return css.SomeDimen(remaining - mrVal), css.SomeDimen(mrVal)
	}
	// margin-right is 'auto', or neither margin is 'auto' (over-constrained):
	// margin-left keeps its resolved value, margin-right absorbs whatever is
	// left, overriding any value it was explicitly given.
	mlVal := fixedDimension(ml, enclosing)
	return css.SomeDimen(mlVal), css.SomeDimen(remaining - mlVal)
}
