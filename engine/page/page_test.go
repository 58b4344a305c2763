package page_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/page"
)

func TestNewGridPageHasRequestedSize(t *testing.T) {
	var buf bytes.Buffer
	p := page.NewGridPage(10, 3, &buf)
	cols, rows := p.Size()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 3, rows)
}

func TestDrawStringAndExposeWritesRunes(t *testing.T) {
	var buf bytes.Buffer
	p := page.NewGridPage(5, 1, &buf)
	p.DrawString(0, 0, "hi")

	err := p.Expose()
	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "h")
	assert.Contains(t, out, "i")
}

func TestDrawRuneRepeatsAcrossCount(t *testing.T) {
	var buf bytes.Buffer
	p := page.NewGridPage(5, 1, &buf)
	p.DrawRune(1, 0, '-', 3)

	err := p.Expose()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, bytes.Count(buf.Bytes(), []byte("-")), 3)
}

func TestEraseRectClearsToBackground(t *testing.T) {
	var buf bytes.Buffer
	p := page.NewGridPage(5, 2, &buf)
	p.DrawString(0, 0, "xxxxx")
	p.SetBackground(frame.RGB(1, 2, 3))
	p.EraseRect(dimen.Rect{TopL: dimen.Point{X: 0, Y: 0}, W: 5, H: 1})

	err := p.Expose()
	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "x")
}

func TestResizePreservesOverlap(t *testing.T) {
	var buf bytes.Buffer
	p := page.NewGridPage(4, 2, &buf)
	p.DrawString(0, 0, "ab")
	p.Resize(6, 3)
	cols, rows := p.Size()
	assert.Equal(t, 6, cols)
	assert.Equal(t, 3, rows)

	err := p.Expose()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "a")
}

func TestOutOfBoundsDrawIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	p := page.NewGridPage(2, 2, &buf)
	assert.NotPanics(t, func() {
		p.DrawString(10, 10, "z")
		p.DrawRune(-1, -1, 'q', 5)
	})
}
