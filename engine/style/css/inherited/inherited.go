// Package inherited names the CSS 2.2 properties that propagate from a
// parent's computed value to a child that declares nothing of its own
// (CSS 2.2 §6.1), so engine/udom's cascade can decide, per property, whether
// an unset value falls back to the parent or to the property's initial
// value.
package inherited

// Set is the inherited-property membership table this module's cascade
// consults. It covers the text, list and font-related properties CSS 2.2
// marks "Inherited: yes" that this renderer's property set actually uses;
// box-model properties (margin, border, padding, width, height, position,
// display, float, ...) are absent because CSS 2.2 marks them
// non-inherited.
var Set = map[string]bool{
	"color":               true,
	"font-family":         true,
	"font-size":           true,
	"font-style":          true,
	"font-weight":         true,
	"font-variant":        true,
	"line-height":         true,
	"text-align":          true,
	"text-indent":         true,
	"text-transform":      true,
	"white-space":         true,
	"letter-spacing":      true,
	"word-spacing":        true,
	"visibility":          true,
	"cursor":              true,
	"direction":           true,
	"list-style-type":     true,
	"list-style-position": true,
	"list-style-image":    true,
	"list-style":          true,
	"quotes":              true,
	"lang":                true,
}
