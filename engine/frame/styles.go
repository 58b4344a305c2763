package frame

// Box styling: boxes are stylable objects with dimensions, spacing,
// borders and colors, following CSS's paradigm. A character-cell renderer
// has no font metrics to style (spec.md's one Non-goal that shapes this
// package the most): TextStyle only carries the terminal text attributes
// ANSI/SGR rendering actually has — bold, dim, italic (where the terminal
// supports it), underline, reverse video and strike-through.

// Color is a packed 24-bit RGB color, or the sentinel value NoColor for
// "inherit terminal default" (CSS 2.2's 'transparent'/unset equivalent for
// a grid that has no alpha channel).
type Color uint32

// NoColor means "no color set; use whatever the terminal already shows".
const NoColor Color = 0xffffffff

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels unpacks a Color into its three 8-bit channels.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ColorStyle styles foreground/background color.
type ColorStyle struct {
	Foreground Color
	Background Color
}

// TextStyle styles the text-level SGR attributes a terminal can actually
// render.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Dim       bool
	Reverse   bool
}

// LineStyle names the box-drawing glyph set a border is rendered with.
type LineStyle int8

const (
	LSNone LineStyle = iota
	LSSolid
	LSDashed
	LSDotted
	LSDouble
	LSRounded
)

// BorderStyle styles one edge of a box's border.
type BorderStyle struct {
	LineColor Color
	Style     LineStyle
}

// Styling rolls every styling option relevant to a terminal box into one
// bundle, attached to StyledBox.
type Styling struct {
	Text    TextStyle
	Colors  ColorStyle
	Borders [4]BorderStyle
}

// DefaultStyling returns an unstyled bundle: no color override, no
// border, plain text — the cascade's initial values (CSS 2.2 Appendix F).
func DefaultStyling() *Styling {
	s := &Styling{
		Colors: ColorStyle{Foreground: NoColor, Background: NoColor},
	}
	for i := range s.Borders {
		s.Borders[i] = BorderStyle{LineColor: NoColor, Style: LSNone}
	}
	return s
}
