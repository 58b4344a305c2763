package executor

import (
	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// rangeExecutor implements RANGE: a flat-cache ordered array of the input
// (object/array/set), sliced by from/to/advance (original_source/Source/
// PurC/executors/exe_range.c).
type rangeExecutor struct {
	ordered   []variant.Value
	destroyed bool
	errMsg    string
}

// NewRangeExecutor creates a RANGE executor instance over the ordered
// (ascending or descending, per ascending) flattening of input.
func NewRangeExecutor(input variant.Value, ascending bool) (Instance, error) {
	switch input.Kind() {
	case variant.Array, variant.Set, variant.Object:
	default:
		return nil, errf(BadArg, "RANGE requires an object/array/set input, got %s", input.Kind())
	}
	return &rangeExecutor{ordered: input.Ordered(ascending)}, nil
}

func init() { mustRegister("RANGE", NewRangeExecutor) }

func (e *rangeExecutor) ErrMsg() string { return e.errMsg }
func (e *rangeExecutor) Destroy()       { e.destroyed = true }

// slice validates and materializes the selected sub-range, per spec.md
// §4.2's "advance≠0; from in bounds; advance>0 ⇒ from<to".
func (e *rangeExecutor) slice(ruleSrc string) ([]variant.Value, error) {
	r, err := rule.ParseRange(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil
	}
	e.errMsg = ""
	n := len(e.ordered)
	if r.Advance == 0 {
		return nil, errf(BadArg, "RANGE advance must not be 0")
	}
	if r.From < 0 || (n > 0 && r.From >= n) || (n == 0 && r.From != 0) {
		return nil, errf(OutOfRange, "RANGE from=%d out of bounds for length %d", r.From, n)
	}
	to := r.To
	if !r.HasTo {
		if r.Advance > 0 {
			to = n
		} else {
			to = -1
		}
	}
	if r.Advance > 0 && r.From >= to {
		return nil, errf(OutOfRange, "RANGE requires from<to when advance>0 (from=%d to=%d)", r.From, to)
	}
	var out []variant.Value
	for i := r.From; (r.Advance > 0 && i < to) || (r.Advance < 0 && i > to); i += r.Advance {
		if i < 0 || i >= n {
			break
		}
		out = append(out, e.ordered[i])
	}
	return out, nil
}

func (e *rangeExecutor) Choose(ruleSrc string) (variant.Value, error) {
	out, err := e.slice(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	if out == nil && e.errMsg != "" {
		return variant.UndefinedValue, nil
	}
	return variant.NewArray(out...), nil
}

func (e *rangeExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	out, err := e.slice(ruleSrc)
	if err != nil {
		return nil, err
	}
	return newSliceIterator(out, &e.destroyed), nil
}

func (e *rangeExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	out, err := e.slice(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	return reduceValues(out), nil
}
