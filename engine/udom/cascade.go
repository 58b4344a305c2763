package udom

import (
	"strings"

	"github.com/foilterm/foil/engine/boxtree"
	cssom "github.com/foilterm/foil/engine/css"
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/style/css/inherited"
	"github.com/foilterm/foil/engine/tree"
	"golang.org/x/net/html"
)

// cascadedStyles memoizes one computedStyle per DOM node for a single
// LoadEDOM call, so that a descendant's inheritance lookup and a later
// mutation's re-resolve of the same node never redo the selector match.
type cascadedStyles struct {
	sheet *cssom.Stylesheet
	cache map[*tree.Node]*computedStyle
}

func newCascadedStyles(sheet *cssom.Stylesheet) *cascadedStyles {
	return &cascadedStyles{sheet: sheet, cache: map[*tree.Node]*computedStyle{}}
}

// resolverFor adapts cs into the boxtree.StyleResolver every box-generation
// and layout call in this package threads through.
func (cs *cascadedStyles) resolverFor(domRoot *tree.Node) boxtree.StyleResolver {
	_ = domRoot
	return func(n *tree.Node) boxtree.Styler {
		s := cs.resolve(n)
		if s == nil {
			return nil
		}
		return s
	}
}

// invalidate drops n's cached computed style (and, since a property change
// can affect inheriting descendants, every descendant's), forcing the next
// resolve to recompute it against the current stylesheet and attribute
// state. Used by mutate.go after an attribute/style edit.
func (cs *cascadedStyles) invalidate(n *tree.Node) {
	delete(cs.cache, n)
	for _, c := range n.Children() {
		cs.invalidate(c)
	}
}

// resolve computes (or returns the cached) computedStyle for n, matching
// cs.sheet against n's element and overlaying its `style` attribute, the
// CSS 2.2 §6.4.4 "style attribute beats any stylesheet rule" rule (modeled
// here simply as the last-applied, and therefore highest-priority, set of
// declarations).
func (cs *cascadedStyles) resolve(n *tree.Node) *computedStyle {
	if n == nil {
		return nil
	}
	if s, ok := cs.cache[n]; ok {
		return s
	}
	w := dom.Node(n)
	var parent *computedStyle
	if p := n.Parent(); p != nil {
		parent = cs.resolve(p)
	}
	decls := map[string]string{}
	if w != nil && w.NodeType() == html.ElementNode {
		for _, d := range cs.sheet.MatchedDeclarations(w.HTMLNode()) {
			expandInto(decls, d.Property, d.Value)
		}
		if attr, ok := w.Attr("style"); ok && attr != "" {
			for _, d := range parseInlineDeclarations(attr) {
				expandInto(decls, d.Property, d.Value)
			}
		}
	}
	s := &computedStyle{node: n, parent: parent, decls: decls, sheet: cs.sheet}
	cs.cache[n] = s
	return s
}

// computedStyle is the boxtree.Styler LoadEDOM's cascade produces: a flat
// property map resolved for one element, falling back to its parent's
// computed value for CSS 2.2's inherited properties (engine/style/css/
// inherited.Set) when this element declares nothing of its own, and to the
// CSS initial value (the empty string — every property lookup in this
// module already treats "" as "unset/initial") otherwise.
type computedStyle struct {
	node   *tree.Node
	parent *computedStyle
	decls  map[string]string
	sheet  *cssom.Stylesheet
}

var _ boxtree.Styler = (*computedStyle)(nil)

// Display resolves this element's `display` keyword to a css.DisplayMode.
func (s *computedStyle) Display() css.DisplayMode {
	return css.ParseDisplay(s.Property("display"))
}

// Property returns name's resolved value: this element's own declaration
// (following a literal "inherit" up to the parent), the inherited value
// from the nearest styled ancestor when name is in CSS 2.2's inherited set
// and this element declares nothing, or "" (the initial value) otherwise.
func (s *computedStyle) Property(name string) string {
	if v, ok := s.decls[name]; ok {
		if v == "inherit" {
			if s.parent != nil {
				return s.parent.Property(name)
			}
			return ""
		}
		return v
	}
	if inherited.Set[name] && s.parent != nil {
		return s.parent.Property(name)
	}
	return ""
}

// sheetPseudoDecls returns the raw ::before/::after declarations matching
// w, letting content.go expand and read them without reaching into the
// cascade's private stylesheet field itself.
func (s *computedStyle) sheetPseudoDecls(w *dom.W3Node, kind string) []cssom.Declaration {
	if s == nil || s.sheet == nil || w == nil {
		return nil
	}
	return s.sheet.MatchedPseudoDeclarations(w.HTMLNode(), kind)
}

// Lang reports the nearest `lang` attribute in scope, for quotes.Lookup.
func (s *computedStyle) Lang() string {
	w := dom.Node(s.node)
	if w == nil {
		return ""
	}
	return w.Lang()
}

// parseInlineDeclarations parses a `style="prop: value; prop2: value2"`
// attribute into the same css.Declaration shape a stylesheet rule yields,
// for expandInto to fold in alongside matched rules. douceur's parser only
// parses whole stylesheets, not a bare declaration list, so this is a
// small hand-rolled split — the same "no grammar-generator dependency
// exists in the pack" situation executor/rule's parser document.
func parseInlineDeclarations(style string) []cssom.Declaration {
	var decls []cssom.Declaration
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.IndexByte(part, ':')
		if i < 0 {
			continue
		}
		prop := strings.TrimSpace(part[:i])
		value := strings.TrimSpace(part[i+1:])
		important := false
		if strings.HasSuffix(value, "!important") {
			important = true
			value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		}
		decls = append(decls, cssom.Declaration{Property: prop, Value: value, Important: important})
	}
	return decls
}
