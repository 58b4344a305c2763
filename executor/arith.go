package executor

import (
	"math"

	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// maxArithSteps bounds an ADD/SUB/MUL/FORMULA iteration against a
// non-converging, non-fixed-point predicate+operand pair that would
// otherwise spin forever; spec.md's own examples (§8) only ever expect
// convergence in a handful of steps.
const maxArithSteps = 1 << 20

// arithExecutor implements ADD/SUB/MUL: a numeric iteration starting at
// numerify(input), applying the rule's operator+operand at each step,
// testing the running value against a number-compare predicate, and
// stopping when the predicate rejects, the value stops changing (the
// ADD-with-zero-operand fixed point, §8), or the value goes non-finite
// (§7: "Numeric NaN/Inf terminates iteration with OUT_OF_RANGE").
type arithExecutor struct {
	start     float64
	op        byte // '+', '-', '*'
	destroyed bool
	errMsg    string
}

func newArithExecutor(op byte) Factory {
	return func(input variant.Value, _ bool) (Instance, error) {
		return &arithExecutor{start: input.Numerify(), op: op}, nil
	}
}

func init() {
	mustRegister("ADD", newArithExecutor('+'))
	mustRegister("SUB", newArithExecutor('-'))
	mustRegister("MUL", newArithExecutor('*'))
}

func (e *arithExecutor) ErrMsg() string { return e.errMsg }
func (e *arithExecutor) Destroy()       { e.destroyed = true }

func (e *arithExecutor) apply(cur float64, operand float64) float64 {
	switch e.op {
	case '+':
		return cur + operand
	case '-':
		return cur - operand
	case '*':
		return cur * operand
	}
	return cur
}

func (e *arithExecutor) iterate(ruleSrc string) (*rule.ArithRule, []float64, bool, error) {
	r, err := rule.ParseArith(ruleSrc)
	if err != nil {
		e.errMsg = err.Error()
		return nil, nil, false, nil
	}
	e.errMsg = ""
	var out []float64
	cur := e.start
	if math.IsNaN(cur) || math.IsInf(cur, 0) {
		return r, nil, true, errf(OutOfRange, "ADD/SUB/MUL starting value is not finite")
	}
	for step := 0; step < maxArithSteps; step++ {
		if r.Cmp != nil && !r.Cmp.EvalNumber(cur) {
			break
		}
		out = append(out, cur)
		next := e.apply(cur, r.Operand)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return r, out, true, errf(OutOfRange, "ADD/SUB/MUL produced a non-finite value")
		}
		if next == cur {
			break
		}
		cur = next
	}
	return r, out, true, nil
}

func (e *arithExecutor) Choose(ruleSrc string) (variant.Value, error) {
	_, out, ok, err := e.iterate(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	if !ok {
		return variant.UndefinedValue, nil
	}
	items := make([]variant.Value, len(out))
	for i, n := range out {
		items[i] = variant.NewNumber(n)
	}
	return variant.NewArray(items...), nil
}

func (e *arithExecutor) ItBegin(ruleSrc string) (Iterator, error) {
	_, out, ok, err := e.iterate(ruleSrc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	items := make([]variant.Value, len(out))
	for i, n := range out {
		items[i] = variant.NewNumber(n)
	}
	return newSliceIterator(items, &e.destroyed), nil
}

func (e *arithExecutor) Reduce(ruleSrc string) (variant.Value, error) {
	_, out, ok, err := e.iterate(ruleSrc)
	if err != nil {
		return variant.UndefinedValue, err
	}
	if !ok {
		return variant.UndefinedValue, nil
	}
	items := make([]variant.Value, len(out))
	for i, n := range out {
		items[i] = variant.NewNumber(n)
	}
	return reduceValues(items), nil
}
