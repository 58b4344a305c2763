/*
Package quotes implements the open/close quotation mark tables used by the
CSS `quotes` property and the `open-quote`/`close-quote`/`no-open-quote`/
`no-close-quote` content keywords (CSS 2.2 §12.2).

Quote nesting depth is tracked per box-tree branch: every `open-quote`
pushes a level, every `close-quote` pops one, and the mark chosen at each
level repeats the language's last configured pair if the nesting runs
deeper than the table provides.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package quotes

// Pair is one level of opening/closing quotation marks.
type Pair struct {
	Open  string
	Close string
}

// Table holds the ordered quote-pair levels for one language, as set by a
// `quotes: "..." "..." ...` declaration.
type Table struct {
	Lang  string
	Pairs []Pair
}

// defaults holds built-in tables for the languages spec.md calls out by
// name; callers needing others must build their own Table via NewTable and
// Register it.
var defaults = map[string]*Table{
	"en": {Lang: "en", Pairs: []Pair{{Open: "“", Close: "”"}, {Open: "‘", Close: "’"}}},
	"zh": {Lang: "zh", Pairs: []Pair{{Open: "「", Close: "」"}, {Open: "『", Close: "』"}}},
}

// NewTable builds a quote table for a language from explicit pairs.
func NewTable(lang string, pairs ...Pair) *Table {
	return &Table{Lang: lang, Pairs: pairs}
}

// registry holds user-registered tables, consulted before defaults.
var registry = map[string]*Table{}

// Register installs t, making it the table used for t.Lang.
func Register(t *Table) {
	registry[t.Lang] = t
}

// Lookup returns the table for lang, falling back to "en" if lang is
// unconfigured.
func Lookup(lang string) *Table {
	if t, ok := registry[lang]; ok {
		return t
	}
	if t, ok := defaults[lang]; ok {
		return t
	}
	return defaults["en"]
}

// At returns the quote pair for nesting depth (0-based), repeating the
// table's last pair if depth runs past the end — CSS 2.2 §12.2 says a
// user agent "must" supply deeper-nested quotes by repeating the last
// specified pair.
func (t *Table) At(depth int) Pair {
	if len(t.Pairs) == 0 {
		return Pair{}
	}
	if depth < len(t.Pairs) {
		return t.Pairs[depth]
	}
	return t.Pairs[len(t.Pairs)-1]
}

// Depth is an open-quote nesting counter, one per box-tree
// branch (quote nesting is scoped to a box and its descendants, reset at
// siblings, per spec.md §3.2).
type Depth struct {
	level int
}

// Open increments the nesting level and returns the quote mark to emit for
// `open-quote`/`no-open-quote` content.
func (d *Depth) Open(t *Table, suppressed bool) string {
	pair := t.At(d.level)
	d.level++
	if suppressed {
		return ""
	}
	return pair.Open
}

// Close decrements the nesting level (never below zero — CSS 2.2 says an
// unmatched close-quote is simply a no-op) and returns the quote mark to
// emit for `close-quote`/`no-close-quote` content.
func (d *Depth) Close(t *Table, suppressed bool) string {
	if d.level == 0 {
		return ""
	}
	d.level--
	pair := t.At(d.level)
	if suppressed {
		return ""
	}
	return pair.Close
}

// Level reports the current nesting depth.
func (d *Depth) Level() int { return d.level }

// Fork returns a copy of d for a sibling branch, so that sibling subtrees
// do not see each other's open/close-quote bookkeeping.
func (d *Depth) Fork() *Depth {
	return &Depth{level: d.level}
}
