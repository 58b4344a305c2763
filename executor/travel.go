package executor

import (
	"strings"

	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// travelExecutor implements TRAVEL: a recursive descent over a nested
// object, matching a KEY-style string predicate against each entry's
// dotted path rather than a single flat key name.
//
// original_source/Source/PurC/executors/exe_travel.c never got past a
// stub (its parse_rule unconditionally returns PCEXECUTOR_ERROR_NOT_
// IMPLEMENTED upstream) and spec.md itself only names TRAVEL among the
// executor set without pinning a rule grammar, so this port's concrete
// semantics — "travel" as a recursive KEY, walking nested objects by
// dotted path — is this module's own Open Question decision (see
// DESIGN.md), reusing KEY's rule.KeyRule grammar rather than inventing a
// new one.
type travelExecutor struct {
	input     variant.Value
	ascending bool
	errMsg    string
	destroyed bool
}

// NewTravelExecutor creates a TRAVEL executor instance over an
// object-shaped input.
func NewTravelExecutor(input variant.Value, ascending bool) (Instance, error) {
	if input.Kind() != variant.Object {
		return nil, errf(BadArg, "TRAVEL requires an object-shaped input, got %s", input.Kind())
	}
	return &travelExecutor{input: input, ascending: ascending}, nil
}

func init() { mustRegister("TRAVEL", NewTravelExecutor) }

func (e *travelExecutor) ErrMsg() string { return e.errMsg }
func (e *travelExecutor) Destroy()       { e.destroyed = true }

// walk recursively collects every leaf entry of obj under prefix, in
// asc_desc key order at each level.
func (e *travelExecutor) walk(obj variant.Value, prefix string, out *[]matchedKV) {
	for _, k := range obj.SortedKeys(e.ascending) {
		v, _ := obj.Get(k)
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if v.Kind() == variant.Object {
			e.walk(v, path, out)
			continue
		}
		*out = append(*out, matchedKV{key: path, value: v})
	}
}

func (e *travelExecutor) evaluate(ruleSrc string) (*rule.KeyRule, []matchedKV, bool) {
	kr, err := rule.ParseKey(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil, false
	}
	e.errMsg = ""
	var all []matchedKV
	e.walk(e.input, "", &all)
	var matched []matchedKV
	for _, entry := range all {
		if kr.Match.EvalString(entry.key) || kr.Match.EvalString(lastSegment(entry.key)) {
			matched = append(matched, entry)
		}
	}
	return kr, matched, true
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func (e *travelExecutor) Choose(ruleSrc string) (variant.Value, error) {
	kr, matched, ok := e.evaluate(ruleSrc)
	if !ok {
		return variant.UndefinedValue, nil
	}
	return buildResult(kr.For, matched), nil
}

func (e *travelExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	_, matched, ok := e.evaluate(ruleSrc)
	if !ok {
		return nil, nil
	}
	if len(matched) == 0 {
		return nil, errf(NoKeysSelected, "TRAVEL rule %q matched no keys", ruleSrc)
	}
	values := make([]variant.Value, len(matched))
	for i, m := range matched {
		values[i] = m.value
	}
	return newSliceIterator(values, &e.destroyed), nil
}

func (e *travelExecutor) Reduce(ruleSrc string) (variant.Value, error) {
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
