package executor

import (
	"math"

	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// formulaExecutor implements FORMULA: an iteration over a single variable
// `X`, seeded from numerify(input), advanced each step by the rule's
// formula and gated by its number-compare predicate (original_source/
// Source/PurC/executors/exe_formula.c). Unlike exe_formula.c's literal C
// (which keeps re-emitting the converged value forever), this stops the
// instant `X` reaches a fixed point, matching spec.md §8's explicit
// testable property ("the instance detects convergence (curr==next) and
// stops") over the C source's behavior.
type formulaExecutor struct {
	start     float64
	destroyed bool
	errMsg    string
}

// NewFormulaExecutor creates a FORMULA executor instance.
func NewFormulaExecutor(input variant.Value, _ bool) (Instance, error) {
	return &formulaExecutor{start: input.Numerify()}, nil
}

func init() { mustRegister("FORMULA", NewFormulaExecutor) }

func (e *formulaExecutor) ErrMsg() string { return e.errMsg }
func (e *formulaExecutor) Destroy()       { e.destroyed = true }

func (e *formulaExecutor) iterate(ruleSrc string) ([]float64, error) {
	r, err := rule.ParseFormula(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil
	}
	e.errMsg = ""
	cur := e.start
	if math.IsNaN(cur) || math.IsInf(cur, 0) {
		return nil, errf(OutOfRange, "FORMULA starting value is not finite")
	}
	var out []float64
	for step := 0; step < maxArithSteps; step++ {
		if r.Cmp != nil && !r.Cmp.EvalNumber(cur) {
			break
		}
		out = append(out, cur)
		next := r.Formula.Eval(map[string]float64{"X": cur})
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return out, errf(OutOfRange, "FORMULA produced a non-finite value")
		}
		if next == cur {
			break
		}
		cur = next
	}
	return out, nil
}

func numbersToValues(ns []float64) []variant.Value {
	out := make([]variant.Value, len(ns))
	for i, n := range ns {
		out[i] = variant.NewNumber(n)
	}
	return out
}

func (e *formulaExecutor) Choose(ruleSrc string) (variant.Value, error) {
	out, err := e.iterate(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	if out == nil {
		return variant.UndefinedValue, nil
	}
	return variant.NewArray(numbersToValues(out)...), nil
}

func (e *formulaExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	out, err := e.iterate(ruleSrc)
	if err != nil {
		return nil, err
	}
	return newSliceIterator(numbersToValues(out), &e.destroyed), nil
}

func (e *formulaExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	out, err := e.iterate(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	return reduceValues(numbersToValues(out)), nil
}

// objFormulaExecutor implements OBJFORMULA: iterates an object-valued
// input by repeatedly applying an ordered list of `key = formula`
// assignments (each formula's variable environment is the current
// object's own numerified fields, and every field the assignment list
// doesn't mention passes through unchanged), gated by a predicate tested
// against the first assignment's target field's current value.
//
// original_source/Source/PurC/executors/exe_objformula.h names a
// "value-number-comparing logical expression" but ships no
// exe_objformula.c to pin its exact semantics; testing the lead
// assignment's live field (rather than, say, an aggregate over the whole
// object) is this port's documented Open Question decision — see
// DESIGN.md.
type objFormulaExecutor struct {
	start     variant.Value
	destroyed bool
	errMsg    string
}

// NewObjFormulaExecutor creates an OBJFORMULA executor instance over an
// object-shaped input.
func NewObjFormulaExecutor(input variant.Value, _ bool) (Instance, error) {
	if input.Kind() != variant.Object {
		return nil, errf(BadArg, "OBJFORMULA requires an object input, got %s", input.Kind())
	}
	return &objFormulaExecutor{start: input}, nil
}

func init() { mustRegister("OBJFORMULA", NewObjFormulaExecutor) }

func (e *objFormulaExecutor) ErrMsg() string { return e.errMsg }
func (e *objFormulaExecutor) Destroy()       { e.destroyed = true }

func env(obj variant.Value) map[string]float64 {
	m := map[string]float64{}
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		m[k] = v.Numerify()
	}
	return m
}

// applyAssignments evaluates every assignment's formula against obj's
// current numerified fields and returns obj with those keys updated,
// preserving any field the assignment list does not mention.
func applyAssignments(obj variant.Value, assigns []rule.Assignment) variant.Value {
	e := env(obj)
	updated := map[string]float64{}
	for _, a := range assigns {
		updated[a.Key] = a.Formula.Eval(e)
	}
	kvs := make([]variant.KV, 0, len(obj.Pairs())+len(assigns))
	seen := map[string]bool{}
	for _, kv := range obj.Pairs() {
		if n, ok := updated[kv.Key]; ok {
			kvs = append(kvs, variant.KV{Key: kv.Key, Value: variant.NewNumber(n)})
		} else {
			kvs = append(kvs, kv)
		}
		seen[kv.Key] = true
	}
	for _, a := range assigns {
		if !seen[a.Key] {
			kvs = append(kvs, variant.KV{Key: a.Key, Value: variant.NewNumber(updated[a.Key])})
		}
	}
	return variant.NewObject(kvs...)
}

// predicateValue picks the numeric value the OBJFORMULA predicate tests:
// the current value of the first assignment's target key, falling back to
// the object's field count when there are no assignments yet.
func predicateValue(obj variant.Value, assigns []rule.Assignment) float64 {
	if len(assigns) == 0 {
		return obj.Numerify()
	}
	if v, ok := obj.Get(assigns[0].Key); ok {
		return v.Numerify()
	}
	return 0
}

func sameObject(a, b variant.Value) bool {
	ae, be := env(a), env(b)
	if len(ae) != len(be) {
		return false
	}
	for k, v := range ae {
		if be[k] != v {
			return false
		}
	}
	return true
}

func (e *objFormulaExecutor) iterate(ruleSrc string) ([]variant.Value, error) {
	r, err := rule.ParseObjFormula(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil
	}
	e.errMsg = ""
	cur := e.start
	var out []variant.Value
	for step := 0; step < maxArithSteps; step++ {
		d := predicateValue(cur, r.Assignments)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return out, errf(OutOfRange, "OBJFORMULA reached a non-finite value")
		}
		if r.Cmp != nil && !r.Cmp.EvalNumber(d) {
			break
		}
		out = append(out, cur)
		next := applyAssignments(cur, r.Assignments)
		if sameObject(cur, next) {
			break
		}
		cur = next
	}
	return out, nil
}

func (e *objFormulaExecutor) Choose(ruleSrc string) (variant.Value, error) {
	out, err := e.iterate(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	if out == nil {
		return variant.UndefinedValue, nil
	}
	return variant.NewArray(out...), nil
}

func (e *objFormulaExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	out, err := e.iterate(ruleSrc)
	if err != nil {
		return nil, err
	}
	return newSliceIterator(out, &e.destroyed), nil
}

func (e *objFormulaExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	out, err := e.iterate(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	return reduceValues(out), nil
}
