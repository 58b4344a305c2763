package executor

import (
	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// ClassIterator is the contract a CLASS plugin's `<symbol>_instantiate`
// entry point must satisfy: exe_class.c dlsym's a factory function and
// then drives it through the same begin/value/next shape every built-in
// executor implements, so the Go analogue is simply Instance itself.
type ClassIterator = Instance

// ClassFactory is the symbol CLASS looks up: `<symbol>_instantiate`,
// matching exe_class.c's `"%s_instantiate"` symbol-name convention.
type ClassFactory func(input variant.Value, ascending bool) (ClassIterator, error)

// classExecutor implements CLASS: dlopen/dlsym (via Go's plugin package)
// a shared object named by the rule's module, look up
// `<symbol>_instantiate`, and delegate every Instance method to the
// loaded factory's result (original_source/Source/PurC/executors/
// exe_class.c).
type classExecutor struct {
	input     variant.Value
	ascending bool
	errMsg    string
	delegate  Instance
}

// NewClassExecutor creates a CLASS executor instance; the actual plugin
// load is deferred to the first Choose/ItBegin/Reduce call, since only
// then is the rule (naming the module and symbol) available.
func NewClassExecutor(input variant.Value, ascending bool) (Instance, error) {
	return &classExecutor{input: input, ascending: ascending}, nil
}

func init() { mustRegister("CLASS", NewClassExecutor) }

func (e *classExecutor) ErrMsg() string { return e.errMsg }

func (e *classExecutor) Destroy() {
	if e.delegate != nil {
		e.delegate.Destroy()
	}
}

func (e *classExecutor) resolve(ruleSrc string) (*rule.SymbolRule, error) {
	sr, err := rule.ParseSymbol(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil
	}
	e.errMsg = ""
	return sr, nil
}

func (e *classExecutor) load(sr *rule.SymbolRule) error {
	if e.delegate != nil {
		return nil
	}
	sym, err := loadSymbol(sr.Module, sr.Symbol+"_instantiate")
	if err != nil {
		return err
	}
	factory, ok := sym.(*ClassFactory)
	if !ok {
		return errf(BadSystemCall, "symbol %q does not implement executor.ClassFactory", sr.Symbol+"_instantiate")
	}
	inst, err := (*factory)(e.input, e.ascending)
	if err != nil {
		return err
	}
	e.delegate = inst
	return nil
}

func (e *classExecutor) Choose(ruleSrc string) (variant.Value, error) {
	sr, err := e.resolve(ruleSrc)
	if err != nil || sr == nil {
		return variant.UndefinedValue, err
	}
	if err := e.load(sr); err != nil {
		return variant.UndefinedValue, err
	}
	return e.delegate.Choose(ruleSrc)
}

func (e *classExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	sr, err := e.resolve(ruleSrc)
	if err != nil || sr == nil {
		return nil, err
	}
	if err := e.load(sr); err != nil {
		return nil, err
	}
	return e.delegate.ItBegin(ruleSrc)
}

func (e *classExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	sr, err := e.resolve(ruleSrc)
	if err != nil || sr == nil {
		return variant.UndefinedValue, err
	}
	if err := e.load(sr); err != nil {
		return variant.UndefinedValue, err
	}
	return e.delegate.Reduce(ruleSrc)
}
