/*
Package page implements the page abstraction engine/render paints onto: a
character grid with a settable pen (foreground/background/text style),
erase/draw primitives and a commit step that flushes pending changes to a
real terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package page

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/frame"
)

// Default colors and cell metrics for the grid page, spec.md §6: a
// character cell renders as if it were a 1 grid-unit square at 96 DPI with
// a 14.4px font — metrics an emulated-media query can report even though
// nothing in this package measures glyphs itself — under the "TTY /
// progressive" media profile name.
const (
	DefaultForeground = frame.Color(0xffffff)
	DefaultBackground = frame.Color(0x000000)
	DPI               = 96
	FontSizePx        = 14.4
	MediaProfile      = "TTY / progressive"
)

// Surface is the drawing surface engine/render paints a box tree onto. Its
// shape — set a pen, then erase/draw against it, then commit — mirrors the
// original implementation's foil_page_set_fgc/set_bgc/erase/draw_ch/
// draw_uchars/expose pattern (original_source/Source/Executables/purc/
// page.c) translated into stateful method calls on a Go value instead of a
// C handle threaded through every call.
type Surface interface {
	SetForeground(c frame.Color)
	SetBackground(c frame.Color)
	SetTextStyle(s frame.TextStyle)
	EraseRect(r dimen.Rect)
	DrawRune(x, y dimen.DU, ch rune, count int)
	DrawString(x, y dimen.DU, s string)
	Resize(cols, rows int)
	Size() (cols, rows int)
	Expose() error
}

// cell is one grid position's painted state.
type cell struct {
	ch    rune
	fg    frame.Color
	bg    frame.Color
	style frame.TextStyle
}

func blankCell() cell {
	return cell{ch: ' ', fg: DefaultForeground, bg: DefaultBackground}
}

// GridPage is the in-memory default Surface: a flat cell buffer addressed
// in row-major order, with an Expose step that writes the whole buffer to
// an io.Writer as ANSI-styled runs every time it is called — a full
// repaint per frame rather than a diff, since engine/layout's incremental
// relayout already scopes what changed between updates; Expose only needs
// to make the committed buffer visible.
type GridPage struct {
	cols, rows int
	cells      []cell
	fg, bg     frame.Color
	style      frame.TextStyle
	w          io.Writer
}

// NewGridPage creates a blank cols x rows grid page that writes exposed
// frames to w.
func NewGridPage(cols, rows int, w io.Writer) *GridPage {
	p := &GridPage{
		cols: cols,
		rows: rows,
		fg:   DefaultForeground,
		bg:   DefaultBackground,
		w:    w,
	}
	p.cells = make([]cell, cols*rows)
	p.fillBlank(p.cells)
	return p
}

func (p *GridPage) fillBlank(cells []cell) {
	blank := blankCell()
	for i := range cells {
		cells[i] = blank
	}
}

func (p *GridPage) index(x, y dimen.DU) (int, bool) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= p.cols || iy >= p.rows {
		return 0, false
	}
	return iy*p.cols + ix, true
}

// SetForeground sets the pen's foreground color for subsequent draws.
func (p *GridPage) SetForeground(c frame.Color) { p.fg = c }

// SetBackground sets the pen's background color for subsequent draws.
func (p *GridPage) SetBackground(c frame.Color) { p.bg = c }

// SetTextStyle sets the pen's text attributes for subsequent draws.
func (p *GridPage) SetTextStyle(s frame.TextStyle) { p.style = s }

// EraseRect fills r with the pen's current background, clearing any
// content previously drawn there.
func (p *GridPage) EraseRect(r dimen.Rect) {
	for y := r.TopL.Y; y < r.Bottom(); y++ {
		for x := r.TopL.X; x < r.Right(); x++ {
			if i, ok := p.index(x, y); ok {
				p.cells[i] = cell{ch: ' ', fg: p.fg, bg: p.bg, style: p.style}
			}
		}
	}
}

// DrawRune paints ch at (x, y), repeated count times to the right — the
// glyph-repetition primitive a border's horizontal run or a run of
// whitespace cells is built from.
func (p *GridPage) DrawRune(x, y dimen.DU, ch rune, count int) {
	for i := 0; i < count; i++ {
		if idx, ok := p.index(x+dimen.DU(i), y); ok {
			p.cells[idx] = cell{ch: ch, fg: p.fg, bg: p.bg, style: p.style}
		}
	}
}

// DrawString paints s starting at (x, y), one cell per rune.
func (p *GridPage) DrawString(x, y dimen.DU, s string) {
	i := 0
	for _, r := range s {
		if idx, ok := p.index(x+dimen.DU(i), y); ok {
			p.cells[idx] = cell{ch: r, fg: p.fg, bg: p.bg, style: p.style}
		}
		i++
	}
}

// Resize grows or shrinks the grid, preserving the overlapping region and
// blanking any newly added cells.
func (p *GridPage) Resize(cols, rows int) {
	next := make([]cell, cols*rows)
	p.fillBlank(next)
	for y := 0; y < rows && y < p.rows; y++ {
		for x := 0; x < cols && x < p.cols; x++ {
			next[y*cols+x] = p.cells[y*p.cols+x]
		}
	}
	p.cols, p.rows, p.cells = cols, rows, next
}

// Size reports the grid's current dimensions in cells.
func (p *GridPage) Size() (cols, rows int) { return p.cols, p.rows }

// Expose flushes the whole grid to the page's writer, one styled run per
// maximal same-attribute span of a row, positioning each row with a raw
// cursor-move escape (no pack library wraps absolute cursor addressing;
// documented in DESIGN.md) and styling each run's colors with pterm's
// truecolor style, the same library cmd/foilcli uses for its own output.
func (p *GridPage) Expose() error {
	for y := 0; y < p.rows; y++ {
		if _, err := fmt.Fprintf(p.w, "\x1b[%d;1H", y+1); err != nil {
			return err
		}
		x := 0
		for x < p.cols {
			start := x
			c := p.cells[y*p.cols+x]
			for x < p.cols && sameAttrs(p.cells[y*p.cols+x], c) {
				x++
			}
			run := make([]rune, 0, x-start)
			for i := start; i < x; i++ {
				run = append(run, p.cells[y*p.cols+i].ch)
			}
			if _, err := fmt.Fprint(p.w, styledRun(string(run), c)); err != nil {
				return err
			}
		}
	}
	return nil
}

func sameAttrs(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.style == b.style
}

// styledRun renders text with c's colors and text attributes as an
// ANSI-escaped string.
func styledRun(text string, c cell) string {
	fg := pterm.NewRGB(int(c.fg>>16&0xff), int(c.fg>>8&0xff), int(c.fg&0xff))
	bg := pterm.NewRGB(int(c.bg>>16&0xff), int(c.bg>>8&0xff), int(c.bg&0xff))
	styled := pterm.NewRGBStyle(fg, bg).Sprint(text)
	return wrapAttrs(styled, c.style)
}

// wrapAttrs wraps s in the raw SGR escapes for the text attributes a
// terminal renderer actually has (bold/italic/underline/strike/dim/
// reverse) — attributes pterm's color styles don't compose with directly,
// so they're applied as their own escape layer around the colored run.
func wrapAttrs(s string, style frame.TextStyle) string {
	var prefix, suffix string
	add := func(code string) {
		prefix += "\x1b[" + code + "m"
		suffix = "\x1b[0m" + suffix
	}
	if style.Bold {
		add("1")
	}
	if style.Dim {
		add("2")
	}
	if style.Italic {
		add("3")
	}
	if style.Underline {
		add("4")
	}
	if style.Reverse {
		add("7")
	}
	if style.Strike {
		add("9")
	}
	if prefix == "" {
		return s
	}
	return prefix + s + suffix
}

var _ Surface = (*GridPage)(nil)
