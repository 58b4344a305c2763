package executor

import (
	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// externalExecutor implements EXTERNAL: identical to FUNC, but the rule
// carries a trailing numeric predicate the selection is additionally
// filtered through (spec.md §3.5: "EXTERNAL = same as FUNC plus a numeric
// predicate"; original_source/Source/PurC/executors/exe_external.c).
type externalExecutor struct {
	input     variant.Value
	ascending bool
	errMsg    string
	ops       *FuncOps
	destroyed bool
}

// NewExternalExecutor creates an EXTERNAL executor instance.
func NewExternalExecutor(input variant.Value, ascending bool) (Instance, error) {
	return &externalExecutor{input: input, ascending: ascending}, nil
}

func init() { mustRegister("EXTERNAL", NewExternalExecutor) }

func (e *externalExecutor) ErrMsg() string { return e.errMsg }
func (e *externalExecutor) Destroy()       { e.destroyed = true }

func (e *externalExecutor) resolve(ruleSrc string) (*rule.ExternalRule, error) {
	er, err := rule.ParseExternal(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil
	}
	e.errMsg = ""
	return er, nil
}

func (e *externalExecutor) load(er *rule.ExternalRule) error {
	if e.ops != nil {
		return nil
	}
	sym, err := loadSymbol(er.Module, er.Symbol)
	if err != nil {
		return err
	}
	ops, ok := sym.(*FuncOps)
	if !ok {
		return errf(BadSystemCall, "symbol %q does not implement executor.FuncOps", er.Symbol)
	}
	e.ops = ops
	return nil
}

func (e *externalExecutor) filter(er *rule.ExternalRule, values []variant.Value) []variant.Value {
	if er.Cmp == nil {
		return values
	}
	var out []variant.Value
	for _, v := range values {
		if er.Cmp.EvalNumber(v.Numerify()) {
			out = append(out, v)
		}
	}
	return out
}

func (e *externalExecutor) Choose(ruleSrc string) (variant.Value, error) {
	er, err := e.resolve(ruleSrc)
	if err != nil || er == nil {
		return variant.UndefinedValue, err
	}
	if err := e.load(er); err != nil {
		return variant.UndefinedValue, err
	}
	if e.ops.Choose == nil {
		return variant.UndefinedValue, errf(NotImplementedErr, "EXTERNAL symbol %q has no chooser", er.Symbol)
	}
	v, err := e.ops.Choose(e.input, variant.NewString(ruleSrc))
	if err != nil {
		return variant.UndefinedValue, err
	}
	if er.Cmp == nil {
		return v, nil
	}
	return variant.NewArray(e.filter(er, v.Items())...), nil
}

func (e *externalExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	er, err := e.resolve(ruleSrc)
	if err != nil || er == nil {
		return nil, err
	}
	if err := e.load(er); err != nil {
		return nil, err
	}
	if e.ops.Iterate == nil {
		return nil, errf(NotImplementedErr, "EXTERNAL symbol %q has no iterator", er.Symbol)
	}
	values, err := e.ops.Iterate(e.input, variant.NewString(ruleSrc))
	if err != nil {
		return nil, err
	}
	return newSliceIterator(e.filter(er, values), &e.destroyed), nil
}

func (e *externalExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	er, err := e.resolve(ruleSrc)
	if err != nil || er == nil {
		return variant.UndefinedValue, err
	}
	if err := e.load(er); err != nil {
		return variant.UndefinedValue, err
	}
	if e.ops.Reduce != nil {
		return e.ops.Reduce(e.input, variant.NewString(ruleSrc))
	}
	if e.ops.Iterate == nil {
		return variant.UndefinedValue, errf(NotImplementedErr, "EXTERNAL symbol %q has no reducer or iterator", er.Symbol)
	}
	values, err := e.ops.Iterate(e.input, variant.NewString(ruleSrc))
	if err != nil {
		return variant.UndefinedValue, err
	}
	return reduceValues(e.filter(er, values)), nil
}
