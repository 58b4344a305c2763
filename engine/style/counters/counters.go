/*
Package counters implements CSS 2.2 §12.4 named counters: counter-reset,
counter-increment, and the counter()/counters() content functions, including
list-style-type-driven numeral formatting.

A Scope is created per box that establishes a new counter context (any box
with a counter-reset) and is linked to its parent scope, mirroring the way
CSS counters nest with the box tree rather than living in one global table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package counters

import "strconv"

// Style selects the numeral system used to render a counter value, as named
// by list-style-type / the counter() function's second argument.
type Style int

const (
	Decimal Style = iota
	DecimalLeadingZero
	LowerRoman
	UpperRoman
	LowerAlpha
	UpperAlpha
	Disc
	Circle
	Square
)

// Scope holds the live counters visible at one point of the box tree. A new
// Scope is pushed by any box carrying counter-reset, and counter-increment
// mutates the nearest enclosing scope that already defines the named
// counter (creating one at the current scope if none exists, per CSS 2.2
// §12.4's "implied 'counter-reset: name 0'" rule).
type Scope struct {
	parent *Scope
	values map[string]int
}

// NewScope creates a root scope with no parent.
func NewScope() *Scope {
	return &Scope{values: map[string]int{}}
}

// Push creates a child scope of s.
func (s *Scope) Push() *Scope {
	return &Scope{parent: s, values: map[string]int{}}
}

// Reset applies a counter-reset declaration: name is (re)initialized to
// value in this scope, shadowing any counter of the same name from an
// ancestor scope.
func (s *Scope) Reset(name string, value int) {
	s.values[name] = value
}

// Increment applies a counter-increment declaration: the nearest scope
// (starting at s) that defines name is incremented by delta. If no scope
// defines it, it is created at s with an implied reset of 0 before being
// incremented.
func (s *Scope) Increment(name string, delta int) {
	owner := s.findOwner(name)
	if owner == nil {
		s.values[name] = 0
		owner = s
	}
	owner.values[name] += delta
}

func (s *Scope) findOwner(name string) *Scope {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.values[name]; ok {
			return sc
		}
	}
	return nil
}

// Value returns the current value of name as seen from s (nearest
// definition in s or an ancestor), and whether it is defined at all.
func (s *Scope) Value(name string) (int, bool) {
	owner := s.findOwner(name)
	if owner == nil {
		return 0, false
	}
	return owner.values[name], true
}

// Chain returns the value of name at every nesting level from the
// outermost scope that defines it down to s, for the counters() function
// (which renders one value per nested list, joined by a separator).
func (s *Scope) Chain(name string) []int {
	var levels []*Scope
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.values[name]; ok {
			levels = append(levels, sc)
		}
	}
	values := make([]int, len(levels))
	for i := range levels {
		values[len(levels)-1-i] = levels[i].values[name]
	}
	return values
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

const alphaAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Format renders value according to style, matching the subset of
// list-style-type keywords spec.md requires.
func Format(value int, style Style) string {
	switch style {
	case DecimalLeadingZero:
		s := strconv.Itoa(value)
		if value >= 0 && value < 10 {
			return "0" + s
		}
		return s
	case LowerRoman:
		return toRoman(value)
	case UpperRoman:
		return upper(toRoman(value))
	case LowerAlpha:
		return toAlpha(value)
	case UpperAlpha:
		return upper(toAlpha(value))
	case Disc:
		return "●"
	case Circle:
		return "◦"
	case Square:
		return "▪"
	default:
		return strconv.Itoa(value)
	}
}

func toRoman(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	out := ""
	for _, r := range romanTable {
		for n >= r.value {
			out += r.symbol
			n -= r.value
		}
	}
	return out
}

// toAlpha renders n (1-based) as a base-26 alphabetic numeral, the way
// list-style-type: lower-alpha counts: a, b, ..., z, aa, ab, ...
func toAlpha(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{alphaAlphabet[n%26]}, out...)
		n /= 26
	}
	return string(out)
}

func upper(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
