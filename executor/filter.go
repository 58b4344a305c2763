package executor

import (
	"strconv"

	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// filterExecutor implements FILTER: like KEY, but its predicate tests each
// element's value (numerically or as a string) rather than an object's key
// names, so it also accepts array/set input (original_source/Source/PurC/
// executors/exe_filter.c).
type filterExecutor struct {
	input     variant.Value
	ascending bool
	errMsg    string
	destroyed bool
}

// NewFilterExecutor creates a FILTER executor instance.
func NewFilterExecutor(input variant.Value, ascending bool) (Instance, error) {
	switch input.Kind() {
	case variant.Array, variant.Set, variant.Object:
	default:
		return nil, errf(BadArg, "FILTER requires an object/array/set input, got %s", input.Kind())
	}
	return &filterExecutor{input: input, ascending: ascending}, nil
}

func init() { mustRegister("FILTER", NewFilterExecutor) }

func (e *filterExecutor) ErrMsg() string { return e.errMsg }
func (e *filterExecutor) Destroy()       { e.destroyed = true }

// entries returns the input's elements as key/value pairs: an object's own
// keys, or an array/set's zero-based index stringified as its key.
func (e *filterExecutor) entries() []matchedKV {
	if e.input.Kind() == variant.Object {
		var out []matchedKV
		for _, k := range e.input.SortedKeys(e.ascending) {
			v, _ := e.input.Get(k)
			out = append(out, matchedKV{key: k, value: v})
		}
		return out
	}
	items := e.input.Ordered(e.ascending)
	out := make([]matchedKV, len(items))
	for i, v := range items {
		out[i] = matchedKV{key: strconv.Itoa(i), value: v}
	}
	return out
}

func (e *filterExecutor) evaluate(ruleSrc string) (*rule.FilterRule, []matchedKV, bool) {
	fr, err := rule.ParseFilter(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil, false
	}
	e.errMsg = ""
	var matched []matchedKV
	for _, entry := range e.entries() {
		if fr.NumMatch != nil && !fr.NumMatch.EvalNumber(entry.value.Numerify()) {
			continue
		}
		if fr.StrMatch != nil && !fr.StrMatch.EvalString(entry.value.Stringify()) {
			continue
		}
		matched = append(matched, entry)
	}
	return fr, matched, true
}

func (e *filterExecutor) Choose(ruleSrc string) (variant.Value, error) {
	fr, matched, ok := e.evaluate(ruleSrc)
	if !ok {
		return variant.UndefinedValue, nil
	}
	return buildResult(fr.For, matched), nil
}

func (e *filterExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	_, matched, ok := e.evaluate(ruleSrc)
	if !ok {
		return nil, nil
	}
	values := make([]variant.Value, len(matched))
	for i, m := range matched {
		values[i] = m.value
	}
	return newSliceIterator(values, &e.destroyed), nil
}

func (e *filterExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	_, matched, ok := e.evaluate(ruleSrc)
	if !ok {
		return variant.UndefinedValue, nil
	}
	values := make([]variant.Value, len(matched))
	for i, m := range matched {
		values[i] = m.value
	}
	return reduceValues(values), nil
}
