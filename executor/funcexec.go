package executor

import (
	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// FuncOps is the symbol a FUNC plugin exports under its bare symbol name
// (no `_instantiate` suffix, unlike CLASS): a small table of optional
// chooser/iterator/reducer functions, mirroring exe_func.c's commented-out
// `chooser`/`iterator`/`reducer`/`sorter` function-pointer fields
// (original_source/Source/PurC/executors/exe_func.c). A nil field reports
// NotImplementedErr if invoked.
type FuncOps struct {
	Choose func(input variant.Value, with variant.Value) (variant.Value, error)
	Iterate func(input variant.Value, with variant.Value) ([]variant.Value, error)
	Reduce  func(input variant.Value, with variant.Value) (variant.Value, error)
}

// funcExecutor implements FUNC: dlsym a bare-named FuncOps table and
// drive its chooser/iterator/reducer against `input` and the rule's
// `with`-value (here: the rule source itself is reparsed for its
// symbol/module on every call, matching exe_func.c's load-once-cache
// pattern via the cached `ops` field).
type funcExecutor struct {
	input     variant.Value
	ascending bool
	errMsg    string
	ops       *FuncOps
	destroyed bool
}

// NewFuncExecutor creates a FUNC executor instance.
func NewFuncExecutor(input variant.Value, ascending bool) (Instance, error) {
	return &funcExecutor{input: input, ascending: ascending}, nil
}

func init() { mustRegister("FUNC", NewFuncExecutor) }

func (e *funcExecutor) ErrMsg() string { return e.errMsg }
func (e *funcExecutor) Destroy()       { e.destroyed = true }

func (e *funcExecutor) resolve(ruleSrc string) (*rule.SymbolRule, error) {
	sr, err := rule.ParseSymbol(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil
	}
	e.errMsg = ""
	return sr, nil
}

func (e *funcExecutor) load(sr *rule.SymbolRule) error {
	if e.ops != nil {
		return nil
	}
	sym, err := loadSymbol(sr.Module, sr.Symbol)
	if err != nil {
		return err
	}
	ops, ok := sym.(*FuncOps)
	if !ok {
		return errf(BadSystemCall, "symbol %q does not implement executor.FuncOps", sr.Symbol)
	}
	e.ops = ops
	return nil
}

func (e *funcExecutor) Choose(ruleSrc string) (variant.Value, error) {
	sr, err := e.resolve(ruleSrc)
	if err != nil || sr == nil {
		return variant.UndefinedValue, err
	}
	if err := e.load(sr); err != nil {
		return variant.UndefinedValue, err
	}
	if e.ops.Choose == nil {
		return variant.UndefinedValue, errf(NotImplementedErr, "FUNC symbol %q has no chooser", sr.Symbol)
	}
	return e.ops.Choose(e.input, variant.NewString(ruleSrc))
}

func (e *funcExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	sr, err := e.resolve(ruleSrc)
	if err != nil || sr == nil {
		return nil, err
	}
	if err := e.load(sr); err != nil {
		return nil, err
	}
	if e.ops.Iterate == nil {
		return nil, errf(NotImplementedErr, "FUNC symbol %q has no iterator", sr.Symbol)
	}
	values, err := e.ops.Iterate(e.input, variant.NewString(ruleSrc))
	if err != nil {
		return nil, err
	}
	return newSliceIterator(values, &e.destroyed), nil
}

func (e *funcExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	sr, err := e.resolve(ruleSrc)
	if err != nil || sr == nil {
		return variant.UndefinedValue, err
	}
	if err := e.load(sr); err != nil {
		return variant.UndefinedValue, err
	}
	if e.ops.Reduce == nil {
		return variant.UndefinedValue, errf(NotImplementedErr, "FUNC symbol %q has no reducer", sr.Symbol)
	}
	return e.ops.Reduce(e.input, variant.NewString(ruleSrc))
}
