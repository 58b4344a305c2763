package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
)

func TestHorizontalGlyphPicksByLineStyle(t *testing.T) {
	assert.Equal(t, '─', horizontalGlyph(frame.LSSolid))
	assert.Equal(t, '═', horizontalGlyph(frame.LSDouble))
	assert.Equal(t, '┄', horizontalGlyph(frame.LSDashed))
	assert.Equal(t, '┈', horizontalGlyph(frame.LSDotted))
}

func TestVerticalGlyphPicksByLineStyle(t *testing.T) {
	assert.Equal(t, '│', verticalGlyph(frame.LSSolid))
	assert.Equal(t, '║', verticalGlyph(frame.LSDouble))
	assert.Equal(t, '┆', verticalGlyph(frame.LSDashed))
	assert.Equal(t, '┊', verticalGlyph(frame.LSDotted))
}

func TestCornerGlyphPromotesOnlyWhenBothEdgesDouble(t *testing.T) {
	// Both solid: plain corner.
	assert.Equal(t, '┌', cornerGlyph(frame.LSSolid, frame.LSSolid, cornerTopLeft))
	// Both double: fully-double corner.
	assert.Equal(t, '╔', cornerGlyph(frame.LSDouble, frame.LSDouble, cornerTopLeft))
	// Mixed: horizontal double, vertical single.
	assert.Equal(t, '╒', cornerGlyph(frame.LSDouble, frame.LSSolid, cornerTopLeft))
	// Mixed: horizontal single, vertical double.
	assert.Equal(t, '╓', cornerGlyph(frame.LSSolid, frame.LSDouble, cornerTopLeft))
}

func TestCornerGlyphCoversAllFourCorners(t *testing.T) {
	assert.Equal(t, '┐', cornerGlyph(frame.LSSolid, frame.LSSolid, cornerTopRight))
	assert.Equal(t, '└', cornerGlyph(frame.LSSolid, frame.LSSolid, cornerBottomLeft))
	assert.Equal(t, '┘', cornerGlyph(frame.LSSolid, frame.LSSolid, cornerBottomRight))
	assert.Equal(t, '╗', cornerGlyph(frame.LSDouble, frame.LSDouble, cornerTopRight))
	assert.Equal(t, '╚', cornerGlyph(frame.LSDouble, frame.LSDouble, cornerBottomLeft))
	assert.Equal(t, '╝', cornerGlyph(frame.LSDouble, frame.LSDouble, cornerBottomRight))
}

func TestInsetOfSumsAbsolutePaddingAndBorder(t *testing.T) {
	box := &frame.Box{}
	box.Padding[frame.Left] = css.JustDimen(2)
	box.Padding[frame.Top] = css.JustDimen(1)
	box.BorderWidth[frame.Left] = css.JustDimen(1)
	box.BorderWidth[frame.Top] = css.JustDimen(1)
	inset := insetOf(box)
	assert.Equal(t, 3, int(inset.X))
	assert.Equal(t, 2, int(inset.Y))
}
