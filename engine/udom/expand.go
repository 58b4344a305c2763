package udom

import "strings"

// expandInto folds one raw (property, value) declaration into decls,
// expanding CSS shorthand properties into the longhand keys
// engine/boxtree/attribute.go actually queries (margin-top, border-left-
// style, and so on). douceur's parser hands back shorthands unexpanded, so
// this is the one place in the cascade that knows the CSS 2.2 §8 box-model
// shorthand grammar; everything downstream only ever sees longhands.
func expandInto(decls map[string]string, prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	value = strings.TrimSpace(value)
	if prop == "" || value == "" {
		return
	}
	switch prop {
	case "margin":
		expandEdges(decls, value, "margin-top", "margin-right", "margin-bottom", "margin-left")
	case "padding":
		expandEdges(decls, value, "padding-top", "padding-right", "padding-bottom", "padding-left")
	case "border-width":
		expandEdges(decls, value, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	case "border-style":
		expandEdges(decls, value, "border-top-style", "border-right-style", "border-bottom-style", "border-left-style")
	case "border-color":
		expandEdges(decls, value, "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")
	case "border":
		expandBorderSide(decls, value, "top")
		expandBorderSide(decls, value, "right")
		expandBorderSide(decls, value, "bottom")
		expandBorderSide(decls, value, "left")
	case "border-top", "border-right", "border-bottom", "border-left":
		side := strings.TrimPrefix(prop, "border-")
		expandBorderSide(decls, value, side)
	case "list-style":
		expandListStyle(decls, value)
	case "font":
		expandFont(decls, value)
	default:
		decls[prop] = value
	}
}

// expandEdges applies CSS's 1-, 2-, 3- and 4-value shorthand rule: one value
// sets all four edges, two alternate top/bottom and left/right, three add a
// distinct bottom, four go clockwise from top.
func expandEdges(decls map[string]string, value string, top, right, bottom, left string) {
	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		decls[top], decls[right], decls[bottom], decls[left] = parts[0], parts[0], parts[0], parts[0]
	case 2:
		decls[top], decls[bottom] = parts[0], parts[0]
		decls[right], decls[left] = parts[1], parts[1]
	case 3:
		decls[top] = parts[0]
		decls[right], decls[left] = parts[1], parts[1]
		decls[bottom] = parts[2]
	case 4:
		decls[top], decls[right], decls[bottom], decls[left] = parts[0], parts[1], parts[2], parts[3]
	}
}

var borderStyleKeywords = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// expandBorderSide splits a `border[-side]: <width> || <style> || <color>`
// shorthand into the three longhands for one edge. Per CSS 2.2 §8.5.4 each
// component is optional and order-independent; width is identified as
// anything that isn't a recognized style keyword (a dimension, or the
// "thin"/"medium"/"thick" keywords, which this renderer treats as raw width
// tokens css.ParseDimen already rejects gracefully to zero).
func expandBorderSide(decls map[string]string, value, side string) {
	for _, tok := range strings.Fields(value) {
		lower := strings.ToLower(tok)
		switch {
		case borderStyleKeywords[lower]:
			decls["border-"+side+"-style"] = tok
		case isColorToken(lower):
			decls["border-"+side+"-color"] = tok
		default:
			decls["border-"+side+"-width"] = tok
		}
	}
}

// borderColorKeywords covers the CSS named colors this renderer's
// engine/boxtree/colors.go palette understands (kept duplicated here in
// miniature rather than exported, since border-shorthand token
// classification is udom's concern, not boxtree's).
var borderColorKeywords = map[string]bool{
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"yellow": true, "cyan": true, "magenta": true, "gray": true, "grey": true,
	"silver": true, "maroon": true, "olive": true, "lime": true, "aqua": true,
	"teal": true, "navy": true, "fuchsia": true, "purple": true, "orange": true,
	"transparent": true, "currentcolor": true,
}

func isColorToken(tok string) bool {
	if strings.HasPrefix(tok, "#") || strings.HasPrefix(tok, "rgb") || strings.HasPrefix(tok, "hsl") {
		return true
	}
	return borderColorKeywords[tok]
}

// expandListStyle splits `list-style: <type> || <position> || <image>`.
func expandListStyle(decls map[string]string, value string) {
	for _, tok := range strings.Fields(value) {
		switch strings.ToLower(tok) {
		case "inside", "outside":
			decls["list-style-position"] = tok
		case "none":
			decls["list-style-type"] = tok
			decls["list-style-image"] = tok
		default:
			if strings.HasPrefix(tok, "url(") {
				decls["list-style-image"] = tok
			} else {
				decls["list-style-type"] = tok
			}
		}
	}
}

// expandFont splits the handful of `font: <style> <weight> <size> <family>`
// components this renderer cares about; line-height ("size/line-height") and
// font-variant are not tracked beyond passthrough since nothing downstream
// reads them.
func expandFont(decls map[string]string, value string) {
	for _, tok := range strings.Fields(value) {
		lower := strings.ToLower(tok)
		switch lower {
		case "italic", "oblique":
			decls["font-style"] = tok
		case "bold", "bolder", "lighter":
			decls["font-weight"] = tok
		default:
			if isDigits(lower) {
				decls["font-weight"] = tok
			} else if strings.ContainsAny(tok, "0123456789") {
				decls["font-size"] = strings.SplitN(tok, "/", 2)[0]
			} else {
				decls["font-family"] = tok
			}
		}
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
