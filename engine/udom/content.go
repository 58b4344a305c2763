package udom

import (
	"strconv"
	"strings"

	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/style/counters"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/style/quotes"
)

// attachGeneratedContent is LoadEDOM's second box-generation pass: it walks
// the already-built box tree top-down threading one counters.Scope, shared
// by the whole walk, and a quotes.Depth that is forked for each child
// branch, attaching a list-item's ::marker box via
// boxtree.AttachMarker and a ::before/::after element's generated box via
// boxtree.GeneratePseudoBox. It mirrors spec.md §3's counter/quote
// threading model as implemented by the teacher's counter-scoped walk over
// engine/frame/boxtree's generate.go, generalized here from a single
// list-item pass to the full CSS 2.2 §12 generated-content surface.
func attachGeneratedContent(root *boxtree.PrincipalBox, resolve boxtree.StyleResolver) {
	if root == nil {
		return
	}
	walk(root, resolve, counters.NewScope(), &quotes.Depth{})
}

func walk(box *boxtree.PrincipalBox, resolve boxtree.StyleResolver, scope *counters.Scope, depth *quotes.Depth) {
	style := resolve(box.DOMTreeNode())
	applyCounterProperties(style, scope)

	lang := ""
	if w := dom.Node(box.DOMTreeNode()); w != nil {
		lang = w.Lang()
	}
	table := quotes.Lookup(lang)
	if style != nil {
		if custom := parseQuotesProperty(style.Property("quotes")); custom != nil {
			table = custom
		}
	}
	cc := &boxtree.ContentContext{Quotes: table, Depth: depth, Counters: scope}

	attachPseudo(box, resolve, "before", cc)
	if style != nil && style.Display().Contains(css.ListItemMode) {
		attachMarker(box, style, scope)
	}

	// Each child's own siblings share this branch's counter scope (CSS 2.2
	// §12.4: counters are visible to a later sibling and its descendants)
	// but fork the quote depth, since quote nesting does not cross sibling
	// boundaries (spec.md §3.2).
	for _, child := range box.TreeNode().Children() {
		if childBox, ok := child.Payload.(*boxtree.PrincipalBox); ok {
			walk(childBox, resolve, scope, depth.Fork())
		}
	}

	attachPseudo(box, resolve, "after", cc)
}

// attachPseudo generates and inserts a ::before/::after box for owner when
// its element declares (or the stylesheet matches) a non-empty `content`
// value for that pseudo-element.
func attachPseudo(owner *boxtree.PrincipalBox, resolve boxtree.StyleResolver, kind string, cc *boxtree.ContentContext) {
	cs, ok := resolve(owner.DOMTreeNode()).(*computedStyle)
	if !ok || cs == nil {
		return
	}
	w := dom.Node(owner.DOMTreeNode())
	if w == nil || w.HTMLNode() == nil {
		return
	}
	decls := map[string]string{}
	for _, d := range cs.sheetPseudoDecls(w, kind) {
		expandInto(decls, d.Property, d.Value)
	}
	raw, ok := decls["content"]
	if !ok {
		return
	}
	tokens := boxtree.ParseContent(raw)
	text := boxtree.ResolveContent(tokens, owner.DOMTreeNode(), cc)
	mode := css.InlineMode
	if dv, ok := decls["display"]; ok {
		mode = css.ParseDisplay(dv)
	}
	boxtree.GeneratePseudoBox(owner, kind, mode, text)
}

// attachMarker computes the ::marker text for a list-item box and attaches
// it via boxtree.AttachMarker. Numbering resolves from an explicit
// `counter-increment` name when present, otherwise the UA stylesheet's
// implicit "list-item" counter, matching CSS 2.2 §12.5.1's default
// <ol>/<ul> numbering.
func attachMarker(box *boxtree.PrincipalBox, style boxtree.Styler, scope *counters.Scope) {
	name := counterName(style.Property("counter-increment"))
	if name == "" {
		name = "list-item"
	}
	value, ok := scope.Value(name)
	if !ok {
		value = siblingIndex(box) + 1
	}
	text := formatMarker(value, style.Property("list-style-type"))
	boxtree.AttachMarker(box, text)
}

// formatMarker renders a list-item's ordinal value per its list-style-type,
// following spec.md §8 scenario 2's convention: a glyph bullet
// (disc/circle/square) is followed by a single space, an ordinal style is
// followed by ") ".
func formatMarker(value int, styleType string) string {
	style := boxtree.StyleKeyword(styleType)
	text := counters.Format(value, style)
	switch style {
	case counters.Disc, counters.Circle, counters.Square:
		return text + " "
	default:
		return text + ") "
	}
}

// applyCounterProperties applies a box's own `counter-reset`/
// `counter-increment` declarations (CSS 2.2 §12.4 syntax: a whitespace-
// separated list of name, optional integer pairs) to scope.
func applyCounterProperties(style boxtree.Styler, scope *counters.Scope) {
	if style == nil {
		return
	}
	for name, value := range parseCounterPairs(style.Property("counter-reset"), 0) {
		scope.Reset(name, value)
	}
	for name, value := range parseCounterPairs(style.Property("counter-increment"), 1) {
		scope.Increment(name, value)
	}
}

// parseCounterPairs parses "name1 value1 name2 value2 ..." into a map,
// defaulting a name with no following integer to implied: 1 for
// counter-increment, 0 for counter-reset (CSS 2.2 §12.4).
func parseCounterPairs(value string, implied int) map[string]int {
	fields := strings.Fields(value)
	pairs := map[string]int{}
	for i := 0; i < len(fields); i++ {
		name := fields[i]
		if name == "none" {
			continue
		}
		amount := implied
		if i+1 < len(fields) {
			if n, err := strconv.Atoi(fields[i+1]); err == nil {
				amount = n
				i++
			}
		}
		pairs[name] = amount
	}
	return pairs
}

// counterName extracts the first counter name from a `counter-increment`
// value, ignoring any trailing integer.
func counterName(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// siblingIndex returns box's 0-based position among its PrincipalBox
// siblings, the fallback ordinal when no counter is in scope.
func siblingIndex(box *boxtree.PrincipalBox) int {
	parent := box.TreeNode().Parent()
	if parent == nil {
		return 0
	}
	idx := 0
	for _, sib := range parent.Children() {
		if sib.Payload == box {
			return idx
		}
		if _, ok := sib.Payload.(*boxtree.PrincipalBox); ok {
			idx++
		}
	}
	return 0
}

// parseQuotesProperty parses a `quotes: "«" "»" "‹" "›"` declaration into a
// Table, or returns nil if value is empty or "none"/"auto" (letting the
// language default stand).
func parseQuotesProperty(value string) *quotes.Table {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" || value == "auto" {
		return nil
	}
	toks := splitQuoted(value)
	if len(toks) < 2 || len(toks)%2 != 0 {
		return nil
	}
	var pairs []quotes.Pair
	for i := 0; i+1 < len(toks); i += 2 {
		pairs = append(pairs, quotes.Pair{Open: toks[i], Close: toks[i+1]})
	}
	return quotes.NewTable("", pairs...)
}

// splitQuoted splits a sequence of "..." tokens, discarding the quote
// characters themselves.
func splitQuoted(s string) []string {
	var out []string
	for {
		start := strings.IndexByte(s, '"')
		if start < 0 {
			break
		}
		s = s[start+1:]
		end := strings.IndexByte(s, '"')
		if end < 0 {
			break
		}
		out = append(out, s[:end])
		s = s[end+1:]
	}
	return out
}
