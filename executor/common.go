package executor

import (
	"math"

	"github.com/foilterm/foil/executor/rule"
	"github.com/foilterm/foil/executor/variant"
)

// matchedKV is one candidate entry surviving a choose() predicate, kept
// with both its key and value so buildResult can honor any for-clause.
type matchedKV struct {
	key   string
	value variant.Value
}

// buildResult assembles matched entries into the array a for-clause of
// value|key|kv requests (spec.md §4.2's KEY/FILTER "returns an array of
// {value|key|kv} by the for-clause").
func buildResult(forClause rule.ForClause, matched []matchedKV) variant.Value {
	items := make([]variant.Value, len(matched))
	for i, m := range matched {
		switch forClause {
		case rule.ForKey:
			items[i] = variant.NewString(m.key)
		case rule.ForKV:
			items[i] = variant.NewObject(
				variant.KV{Key: "key", Value: variant.NewString(m.key)},
				variant.KV{Key: "value", Value: m.value},
			)
		default:
			items[i] = m.value
		}
	}
	return variant.NewArray(items...)
}

// reduceValues aggregates matched values into {count,sum,avg,max,min},
// spec.md §4.2's shared reduce() contract across KEY/RANGE/FILTER/CHAR/
// TOKEN/ADD/SUB/MUL. Non-finite numbers are excluded from sum/avg/max/min
// (but still counted), matching §7's "NaN/Inf terminates iteration with
// OUT_OF_RANGE" policy for the arithmetic executors that feed this.
func reduceValues(values []variant.Value) variant.Value {
	count := len(values)
	sum, max, min := 0.0, math.Inf(-1), math.Inf(1)
	finite := 0
	for _, v := range values {
		n := v.Numerify()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			continue
		}
		finite++
		sum += n
		if n > max {
			max = n
		}
		if n < min {
			min = n
		}
	}
	avg := 0.0
	if finite > 0 {
		avg = sum / float64(finite)
	} else {
		max, min = 0, 0
	}
	return variant.NewObject(
		variant.KV{Key: "count", Value: variant.NewNumber(float64(count))},
		variant.KV{Key: "sum", Value: variant.NewNumber(sum)},
		variant.KV{Key: "avg", Value: variant.NewNumber(avg)},
		variant.KV{Key: "max", Value: variant.NewNumber(max)},
		variant.KV{Key: "min", Value: variant.NewNumber(min)},
	)
}

// sliceIterator is the shared Iterator implementation every selector-style
// executor (KEY/RANGE/FILTER/CHAR/TOKEN) hands out: its whole selection is
// materialized once by choose's evaluation and then walked by index. This
// is a documented simplification of spec.md's "lazy iteration" wording —
// acceptable because every input this module's variant.Value can hold is
// already in memory, so laziness would only defer work, never bound it.
type sliceIterator struct {
	values    []variant.Value
	idx       int
	destroyed *bool
}

func newSliceIterator(values []variant.Value, destroyed *bool) Iterator {
	if len(values) == 0 {
		return nil
	}
	return &sliceIterator{values: values, destroyed: destroyed}
}

func (it *sliceIterator) Value() variant.Value { return it.values[it.idx] }

func (it *sliceIterator) Next() (Iterator, error) {
	if *it.destroyed {
		return nil, errf(NotAllowed, "iterator used after its executor instance was destroyed")
	}
	if it.idx+1 >= len(it.values) {
		return nil, nil
	}
	return &sliceIterator{values: it.values, idx: it.idx + 1, destroyed: it.destroyed}, nil
}
