package executor

import (
	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// keyExecutor implements KEY: choose keys of an object-shaped input whose
// name matches a string-matching predicate (original_source/Source/PurC/
// executors/exe_key.c).
type keyExecutor struct {
	input     variant.Value
	ascending bool
	errMsg    string
	destroyed bool
}

// NewKeyExecutor creates a KEY executor instance. input must be
// object-shaped (BadArg otherwise).
func NewKeyExecutor(input variant.Value, ascending bool) (Instance, error) {
	if input.Kind() != variant.Object {
		return nil, errf(BadArg, "KEY requires an object-shaped input, got %s", input.Kind())
	}
	return &keyExecutor{input: input, ascending: ascending}, nil
}

func init() { mustRegister("KEY", NewKeyExecutor) }

func (e *keyExecutor) ErrMsg() string { return e.errMsg }
func (e *keyExecutor) Destroy()       { e.destroyed = true }

// evaluate parses rule and returns every key (in asc_desc order) whose name
// matches the predicate, alongside its value.
func (e *keyExecutor) evaluate(ruleSrc string) (*rule.KeyRule, []matchedKV, bool) {
	kr, err := rule.ParseKey(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil, false
	}
	e.errMsg = ""
	var matched []matchedKV
	for _, key := range e.input.SortedKeys(e.ascending) {
		if kr.Match.EvalString(key) {
			val, _ := e.input.Get(key)
			matched = append(matched, matchedKV{key: key, value: val})
		}
	}
	return kr, matched, true
}

func (e *keyExecutor) Choose(ruleSrc string) (variant.Value, error) {
	kr, matched, ok := e.evaluate(ruleSrc)
	if !ok {
		return variant.UndefinedValue, nil
	}
	return buildResult(kr.For, matched), nil
}

func (e *keyExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	_, matched, ok := e.evaluate(ruleSrc)
	if !ok {
		return nil, nil
	}
	if len(matched) == 0 {
		return nil, errf(NoKeysSelected, "KEY rule %q matched no keys", ruleSrc)
	}
	values := make([]variant.Value, len(matched))
	for i, m := range matched {
		values[i] = m.value
	}
	return newSliceIterator(values, &e.destroyed), nil
}

func (e *keyExecutor) Reduce(ruleSrc string) (variant.Value, error) {
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
