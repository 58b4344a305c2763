/*
Package css is the default CSS selection and cascade adapter: it parses
stylesheet text with douceur's parser and compiles each rule's selectors
with cascadia so they can be matched against golang.org/x/net/html nodes,
exactly the pairing the teacher's own CSSOM package documents as "the one
non-standard external library" available for this in the Go ecosystem.

spec.md treats "CSSEng" as an external collaborator outside this module's
scope; this package is the concrete default implementation the uDOM driver
wires in when no other engine is supplied, the same role
engine/dom/cssom plays for the teacher.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package css

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// Declaration is one property:value pair of a matched rule.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a parsed, selector-compiled style rule.
type Rule struct {
	raw         string
	sel         cascadia.Selector
	specificity [3]int
	order       int
	decls       []Declaration
	pseudo      string // "", "before", "after" — trailing ::before/::after stripped from raw before compiling
}

// Stylesheet is an ordered collection of compiled rules.
type Stylesheet struct {
	rules []*Rule
}

// Parse parses CSS source text into a Stylesheet, compiling every rule's
// selector list with cascadia. A rule whose selector fails to compile is
// dropped (matching a browser's "ignore invalid rule" behavior) rather
// than aborting the whole sheet.
func Parse(source string) (*Stylesheet, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	ss := &Stylesheet{}
	order := 0
	for _, r := range sheet.Rules {
		decls := make([]Declaration, 0, len(r.Declarations))
		for _, d := range r.Declarations {
			decls = append(decls, Declaration{Property: d.Property, Value: d.Value, Important: d.Important})
		}
		for _, selText := range r.Selectors {
			base, pseudo := splitPseudoElement(selText)
			compiled, err := cascadia.Compile(base)
			if err != nil {
				continue
			}
			ss.rules = append(ss.rules, &Rule{
				raw:         selText,
				sel:         compiled,
				specificity: specificityOf(selText),
				order:       order,
				decls:       decls,
				pseudo:      pseudo,
			})
			order++
		}
	}
	return ss, nil
}

// specificityOf computes a CSS 2.2 §6.4.3 specificity triple
// (ids, classes-attrs-pseudoclasses, type-selectors) from a selector's raw
// text. cascadia does not expose specificity itself, so this does a coarse
// lexical count; combinators and pseudo-elements are not distinguished
// further than spec.md's cascade needs.
func specificityOf(sel string) [3]int {
	var spec [3]int
	runes := []rune(sel)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '#':
			spec[0]++
			for i+1 < len(runes) && isIdentRune(runes[i+1]) {
				i++
			}
		case '.', ':':
			spec[1]++
			for i+1 < len(runes) && isIdentRune(runes[i+1]) {
				i++
			}
		case '[':
			spec[1]++
			for i+1 < len(runes) && runes[i+1] != ']' {
				i++
			}
		default:
			if (runes[i] >= 'a' && runes[i] <= 'z') || (runes[i] >= 'A' && runes[i] <= 'Z') {
				if i == 0 || (runes[i-1] != '.' && runes[i-1] != '#' && runes[i-1] != ':' && runes[i-1] != '[') {
					spec[2]++
					for i+1 < len(runes) && isIdentRune(runes[i+1]) {
						i++
					}
				}
			}
		}
	}
	return spec
}

// splitPseudoElement strips a trailing ::before/::after (or the legacy
// single-colon :before/:after form) from a selector, returning the element
// selector cascadia can compile plus the pseudo-element name, so ::before/
// ::after rules can be matched against their owning element (cascadia has
// no notion of a pseudo-element, since there is no node for it).
func splitPseudoElement(sel string) (base, pseudo string) {
	for _, suffix := range []string{"::before", ":before"} {
		if strings.HasSuffix(sel, suffix) {
			return strings.TrimSuffix(sel, suffix), "before"
		}
	}
	for _, suffix := range []string{"::after", ":after"} {
		if strings.HasSuffix(sel, suffix) {
			return strings.TrimSuffix(sel, suffix), "after"
		}
	}
	return sel, ""
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}

// MatchedDeclarations returns every declaration from rules whose selector
// matches n, in cascade order (lowest specificity first, source order as
// tiebreaker, every !important declaration moved after all normal ones in
// that same order) — the order a
// caller should apply them in so that later writes win, per CSS 2.2 §6.4.
func (ss *Stylesheet) MatchedDeclarations(n *html.Node) []Declaration {
	return ss.matched(n, "")
}

// MatchedPseudoDeclarations returns, in the same cascade order as
// MatchedDeclarations, every declaration from a `selector::kind { ... }`
// rule (kind is "before" or "after") whose base selector matches n — the
// generated-content counterpart of MatchedDeclarations.
func (ss *Stylesheet) MatchedPseudoDeclarations(n *html.Node, kind string) []Declaration {
	return ss.matched(n, kind)
}

func (ss *Stylesheet) matched(n *html.Node, pseudo string) []Declaration {
	var matched []*Rule
	for _, r := range ss.rules {
		if r.pseudo != pseudo {
			continue
		}
		if r.sel.Match(n) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].specificity, matched[j].specificity
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		if a[2] != b[2] {
			return a[2] < b[2]
		}
		return matched[i].order < matched[j].order
	})
	var normal, important []Declaration
	for _, r := range matched {
		for _, d := range r.decls {
			if d.Important {
				important = append(important, d)
			} else {
				normal = append(normal, d)
			}
		}
	}
	return append(normal, important...)
}

// Append adds other's rules after ss's own, renumbering their source-order
// index so ties in MatchedDeclarations's specificity sort still favor the
// later sheet — the CSS 2.2 §6.4.1 rule that breaks an equal-specificity
// tie in favor of the later cascade origin (author stylesheets appended
// after the user-agent sheet, so they win ties against it).
func (ss *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	base := len(ss.rules)
	for i, r := range other.rules {
		rc := *r
		rc.order = base + i
		ss.rules = append(ss.rules, &rc)
	}
}

// Query returns every node in the subtree rooted at root (inclusive) that
// matches selText, using cascadia directly — a convenience used by the
// executor framework's CSS-flavored KEY patterns over a rendered tree.
func Query(root *html.Node, selText string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selText)
	if err != nil {
		return nil, err
	}
	return sel.MatchAll(root), nil
}
