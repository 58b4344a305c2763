package executor

import (
	"strings"

	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// charTokenExecutor implements CHAR and TOKEN: CHAR iterates a string's
// Unicode scalar values, TOKEN splits it on a delimiter set (default
// whitespace) and iterates the resulting tokens, both sliced by
// from/to/advance like RANGE and optionally halted early by an until
// predicate (original_source/Source/PurC/executors/exe_char.c,
// exe_token.c).
type charTokenExecutor struct {
	elements  []string
	destroyed bool
	errMsg    string
}

func newCharTokenExecutor(input variant.Value, split func(string) []string) (Instance, error) {
	if input.Kind() != variant.String {
		return nil, errf(BadArg, "CHAR/TOKEN requires a string input, got %s", input.Kind())
	}
	return &charTokenExecutor{elements: split(input.Str())}, nil
}

// NewCharExecutor creates a CHAR executor instance over input's code
// points, each represented as a one-rune string.
func NewCharExecutor(input variant.Value, _ bool) (Instance, error) {
	return newCharTokenExecutor(input, func(s string) []string {
		runes := []rune(s)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out
	})
}

// NewTokenExecutor creates a TOKEN executor instance over input, kept
// whole at Create time; ItBegin/Choose/Reduce split it on demand by the
// rule's DELIMITER clause, or by whitespace when the rule has none.
func NewTokenExecutor(input variant.Value, _ bool) (Instance, error) {
	if input.Kind() != variant.String {
		return nil, errf(BadArg, "TOKEN requires a string input, got %s", input.Kind())
	}
	return &charTokenExecutor{elements: []string{input.Str()}}, nil
}

func init() {
	mustRegister("CHAR", NewCharExecutor)
	mustRegister("TOKEN", NewTokenExecutor)
}

func (e *charTokenExecutor) ErrMsg() string { return e.errMsg }
func (e *charTokenExecutor) Destroy()       { e.destroyed = true }

// tokenize re-splits the original source string (preserved as the sole
// element for a TOKEN instance until first use) by r's delimiter, or
// whitespace if none was given.
func (e *charTokenExecutor) tokenize(r *rule.CharTokenRule) []string {
	if len(e.elements) != 1 {
		return e.elements // already a CHAR instance (one rune per element)
	}
	src := e.elements[0]
	delim := r.Delimiter
	if !r.HasDelimiter {
		return strings.Fields(src)
	}
	if delim == "" {
		return strings.Fields(src)
	}
	return strings.FieldsFunc(src, func(r rune) bool { return strings.ContainsRune(delim, r) })
}

func (e *charTokenExecutor) evaluate(ruleSrc string) (*rule.CharTokenRule, []string, bool) {
	r, err := rule.ParseCharToken(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil, false
	}
	e.errMsg = ""
	elems := e.tokenize(r)
	n := len(elems)
	to := r.To
	if !r.HasTo {
		if r.Advance >= 0 {
			to = n
		} else {
			to = -1
		}
	}
	adv := r.Advance
	if adv == 0 {
		adv = 1
	}
	var out []string
	for i := r.From; (adv > 0 && i < to) || (adv < 0 && i > to); i += adv {
		if i < 0 || i >= n {
			break
		}
		if r.Until != nil && r.Until.EvalString(elems[i]) {
			break
		}
		out = append(out, elems[i])
	}
	return r, out, true
}

func (e *charTokenExecutor) Choose(ruleSrc string) (variant.Value, error) {
	_, out, ok := e.evaluate(ruleSrc)
	if !ok {
		return variant.UndefinedValue, nil
	}
	items := make([]variant.Value, len(out))
	for i, s := range out {
		items[i] = variant.NewString(s)
	}
	return variant.NewArray(items...), nil
}

func (e *charTokenExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	_, out, ok := e.evaluate(ruleSrc)
	if !ok {
		return nil, nil
	}
	items := make([]variant.Value, len(out))
	for i, s := range out {
		items[i] = variant.NewString(s)
	}
	return newSliceIterator(items, &e.destroyed), nil
}

func (e *charTokenExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	_, out, ok := e.evaluate(ruleSrc)
	if !ok {
		return variant.UndefinedValue, nil
	}
	items := make([]variant.Value, len(out))
	for i, s := range out {
		items[i] = variant.NewString(s)
	}
	return reduceValues(items), nil
}
