/*
Package option implements a small option/Match type, used throughout the
CSS dimension algebra of engine/style/css and engine/layout.

Handling the many small "auto | percent | fixed | unset" rules of CSS box
resolution reads much more directly with a match expression than with a
cascade of if/else. Without generics this is necessarily a little informal:
callers type-assert the result of Match. As soon as this module requires a
Go version old enough to lack generics support this package can be
collapsed into plain type switches; for now the concise notation wins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package option

import "errors"

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")

// MaybeOption tags the two generic matching outcomes: a value is present,
// or it is absent.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
)

// Maybe is a match table keyed by None/Some, used when callers do not care
// about the concrete absent/present value, only whether one exists.
type Maybe map[MaybeOption]interface{}

// Of is a match table that tries concrete values first, then falls back to
// a None/Some match. Concrete keys let callers special-case values such as
// "auto" or a specific unit without the Type implementation needing to know
// about Of at all.
type Of map[interface{}]interface{}

// Type is implemented by option-like values (css.DimenT and friends).
type Type interface {
	// MatchValue returns the concrete key to look up in an Of table (for
	// css.DimenT a string such as "auto"), or nil if none applies.
	MatchValue() interface{}
	IsNone() bool
}

// Match resolves o against choices, which must be an Of or Maybe table.
func Match(o Type, choices interface{}) (interface{}, error) {
	switch c := choices.(type) {
	case Of:
		return c.match(o)
	case Maybe:
		return c.match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) match(o Type) (interface{}, error) {
	if v := o.MatchValue(); v != nil {
		if result, ok := of[v]; ok {
			return result, nil
		}
	}
	if o.IsNone() {
		if result, ok := of[None]; ok {
			return result, nil
		}
		return nil, ErrCannotMatchUnsetValue
	}
	if result, ok := of[Some]; ok {
		return result, nil
	}
	return nil, ErrNoSuchMatchPattern
}

func (m Maybe) match(o Type) (interface{}, error) {
	if o.IsNone() {
		if result, ok := m[None]; ok {
			return result, nil
		}
		return nil, ErrCannotMatchUnsetValue
	}
	if result, ok := m[Some]; ok {
		return result, nil
	}
	return nil, ErrNoSuchMatchPattern
}

// Safe calls a (value, error) producing function at once, when the Of/Maybe
// table holding its result is built, so the result can sit in the table
// without a panic mid-lookup. It yields fn's value, or fn's error itself as
// the value when fn fails; Match hands that value back with a nil error, so
// a failure shows up among the matched values, not in Match's error return.
func Safe(fn func() (interface{}, error)) interface{} {
	v, err := fn()
	if err != nil {
		return err
	}
	return v
}
