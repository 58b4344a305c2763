package boxtree

import (
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// AttributeBoxes walks root and attaches padding/border/margin/width/height
// and visual (color/border) styling to every principal box from its
// resolved Styler, mirroring the teacher's attributeBoxes/
// setSizingInformationForPrincipalBox/setVisualStylesForPrincipalBox/
// setWhitespaceProperties split.
func AttributeBoxes(root *PrincipalBox, resolve StyleResolver) {
	if root == nil {
		return
	}
	walker := tree.NewWalker(root.TreeNode())
	action := func(node, parent *tree.Node, childIndex int) (*tree.Node, error) {
		switch c := node.Payload.(type) {
		case *PrincipalBox:
			setSizingInformation(c, resolve(c.DOMTreeNode()))
			setVisualStyles(c, resolve(c.DOMTreeNode()))
		case *TextBox:
			if parent != nil {
				if p, ok := parent.Payload.(*PrincipalBox); ok {
					setWhitespaceProperties(c, resolve(p.DOMTreeNode()))
				}
			}
		}
		return node, nil
	}
	walker.TopDown(action).Promise()()
}

func dim(style Styler, prop string) css.DimenT {
	if style == nil {
		return css.Dimen()
	}
	d, err := css.ParseDimen(style.Property(prop))
	if err != nil {
		return css.Dimen()
	}
	// em/rem is always resolvable immediately: spec.md's Non-goals fix the
	// font metric at one monospaced grid cell, so there is no later,
	// context-dependent font size to defer against the way percent defers
	// to a containing block.
	return d.ScaleFromFont("")
}

func setSizingInformation(c *PrincipalBox, style Styler) {
	box := c.CSSBox()
	box.Padding[frame.Top] = dim(style, "padding-top")
	box.Padding[frame.Right] = dim(style, "padding-right")
	box.Padding[frame.Bottom] = dim(style, "padding-bottom")
	box.Padding[frame.Left] = dim(style, "padding-left")

	setBorderEdge(box, frame.Top, style, "border-top-style", "border-top-width")
	setBorderEdge(box, frame.Right, style, "border-right-style", "border-right-width")
	setBorderEdge(box, frame.Bottom, style, "border-bottom-style", "border-bottom-width")
	setBorderEdge(box, frame.Left, style, "border-left-style", "border-left-width")

	box.Margins[frame.Top] = dim(style, "margin-top")
	box.Margins[frame.Right] = dim(style, "margin-right")
	box.Margins[frame.Bottom] = dim(style, "margin-bottom")
	box.Margins[frame.Left] = dim(style, "margin-left")

	if style != nil {
		box.BorderBoxSizing = style.Property("box-sizing") == "border-box"
	}
	box.W = dim(style, "width")
	box.H = dim(style, "height")
	box.Min.W = dim(style, "min-width")
	box.Min.H = dim(style, "min-height")
	box.Max.W = dim(style, "max-width")
	box.Max.H = dim(style, "max-height")
}

func setBorderEdge(box *frame.Box, edge int, style Styler, styleProp, widthProp string) {
	if style != nil && style.Property(styleProp) != "" && style.Property(styleProp) != "none" {
		box.BorderWidth[edge] = dim(style, widthProp)
	} else {
		box.BorderWidth[edge] = css.JustDimen(0)
	}
}

func setVisualStyles(c *PrincipalBox, style Styler) {
	if style == nil {
		return
	}
	fg := style.Property("color")
	bg := style.Property("background-color")
	border := style.Property("border-top-color")
	if border == "" && fg != "" {
		border = fg // border-color defaults to currentcolor, CSS 2.2 §8.5.3
	}
	lineStyles := [4]string{
		style.Property("border-top-style"),
		style.Property("border-right-style"),
		style.Property("border-bottom-style"),
		style.Property("border-left-style"),
	}
	hasLineStyle := lineStyles[frame.Top] != "" || lineStyles[frame.Right] != "" ||
		lineStyles[frame.Bottom] != "" || lineStyles[frame.Left] != ""
	if fg == "" && bg == "" && border == "" && !hasLineStyle {
		return
	}
	c.StyledBox.Styles = frame.DefaultStyling()
	if col, ok := parseColor(fg); ok {
		c.StyledBox.Styles.Colors.Foreground = col
	}
	if col, ok := parseColor(bg); ok {
		c.StyledBox.Styles.Colors.Background = col
	}
	if col, ok := parseColor(border); ok {
		for i := range c.StyledBox.Styles.Borders {
			c.StyledBox.Styles.Borders[i].LineColor = col
		}
	}
	for i, raw := range lineStyles {
		c.StyledBox.Styles.Borders[i].Style = borderLineStyle(raw)
	}
}

// borderLineStyle maps a CSS `border-*-style` value to the LineStyle enum
// engine/render uses to pick single- or double-rule box-drawing glyphs.
// An empty or "none" value still maps to the solid default rather than
// LSNone: whether a border is painted at all is decided by BorderWidth
// (set to 0 by setBorderEdge for "none"), not by this field.
func borderLineStyle(value string) frame.LineStyle {
	switch value {
	case "double":
		return frame.LSDouble
	case "dashed":
		return frame.LSDashed
	case "dotted":
		return frame.LSDotted
	default:
		return frame.LSSolid
	}
}

func setWhitespaceProperties(t *TextBox, parentStyle Styler) {
	if parentStyle == nil {
		return
	}
	switch parentStyle.Property("white-space") {
	case "nowrap":
		t.WSCollapse, t.WSWrap = true, false
	case "pre":
		t.WSCollapse, t.WSWrap = false, false
	case "pre-wrap", "pre-line", "break-spaces":
		t.WSCollapse, t.WSWrap = false, true
	default: // normal
		t.WSCollapse, t.WSWrap = true, true
	}
}
