package executor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foilterm/foil/executor"
	"github.com/foilterm/foil/executor/variant"
)

func obj(pairs ...variant.KV) variant.Value { return variant.NewObject(pairs...) }
func num(n float64) variant.Value            { return variant.NewNumber(n) }
func str(s string) variant.Value             { return variant.NewString(s) }

// drain walks an Iterator to completion and returns every value it yielded.
func drain(t *testing.T, it executor.Iterator) []variant.Value {
	t.Helper()
	var out []variant.Value
	for it != nil {
		out = append(out, it.Value())
		next, err := it.Next()
		require.NoError(t, err)
		it = next
	}
	return out
}

func TestRegistryCollisionLeavesStateUnchanged(t *testing.T) {
	r := executor.NewRegistry()
	require.NoError(t, r.Register("X", executor.NewKeyExecutor))
	err := r.Register("X", executor.NewFilterExecutor)
	require.Error(t, err)
	var execErr *executor.Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, executor.AlreadyExists, execErr.Kind)
	assert.True(t, r.Lookup("X"))
	// the original factory must still be the one installed, not overwritten
	inst, err := r.Create("X", obj(variant.KV{Key: "foo1", Value: num(1)}), true)
	require.NoError(t, err)
	require.NotNil(t, inst)
	// KEY rejects an array input that FILTER would accept.
	_, err = r.Create("X", variant.NewArray(num(1)), true)
	assert.Error(t, err)
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	for _, name := range []string{
		"KEY", "RANGE", "FILTER", "CHAR", "TOKEN",
		"ADD", "SUB", "MUL", "FORMULA", "OBJFORMULA",
		"TRAVEL", "CLASS", "FUNC", "EXTERNAL",
	} {
		assert.True(t, executor.Default.Lookup(name), "missing builtin %q", name)
	}
}

func TestKeyChooseRoundTrip(t *testing.T) {
	input := obj(
		variant.KV{Key: "foo1", Value: num(1)},
		variant.KV{Key: "foo2", Value: num(2)},
		variant.KV{Key: "bar3", Value: num(3)},
	)
	inst, err := executor.NewKeyExecutor(input, true)
	require.NoError(t, err)
	v, err := inst.Choose(`LIKE '^foo' for value`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []float64{1, 2}, numsOf(v.Items()))
}

func TestKeyNoKeysSelectedOnIteration(t *testing.T) {
	input := obj(variant.KV{Key: "a", Value: num(1)})
	inst, err := executor.NewKeyExecutor(input, true)
	require.NoError(t, err)
	_, err = inst.ItBegin(`LIKE 'zzz'`)
	require.Error(t, err)
	var execErr *executor.Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, executor.NoKeysSelected, execErr.Kind)
}

func TestRangeSlice(t *testing.T) {
	input := variant.NewArray(num(10), num(20), num(30), num(40), num(50))
	inst, err := executor.NewRangeExecutor(input, true)
	require.NoError(t, err)
	it, err := inst.ItBegin(`FROM 1 TO 4 ADVANCE 2`)
	require.NoError(t, err)
	got := drain(t, it)
	assert.Equal(t, []float64{20, 40}, numsOf(got))
}

func TestRangeOutOfBounds(t *testing.T) {
	input := variant.NewArray(num(1), num(2))
	inst, err := executor.NewRangeExecutor(input, true)
	require.NoError(t, err)
	_, err = inst.ItBegin(`FROM 5 TO 6`)
	require.Error(t, err)
}

func TestFilterNumericPredicate(t *testing.T) {
	input := variant.NewArray(num(3), num(7), num(12), num(1))
	inst, err := executor.NewFilterExecutor(input, true)
	require.NoError(t, err)
	v, err := inst.Choose(`>= 5 for value`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []float64{7, 12}, numsOf(v.Items()))
}

func TestCharSplitsRunes(t *testing.T) {
	inst, err := executor.NewCharExecutor(str("abcd"), false)
	require.NoError(t, err)
	it, err := inst.ItBegin(`FROM 0 TO 2`)
	require.NoError(t, err)
	got := drain(t, it)
	assert.Equal(t, []string{"a", "b"}, strsOf(got))
}

func TestTokenSplitsOnWhitespaceByDefault(t *testing.T) {
	inst, err := executor.NewTokenExecutor(str("the quick fox"), false)
	require.NoError(t, err)
	v, err := inst.Choose(`FROM 0`)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "quick", "fox"}, strsOf(v.Items()))
}

func TestTokenCustomDelimiter(t *testing.T) {
	inst, err := executor.NewTokenExecutor(str("a,b,,c"), false)
	require.NoError(t, err)
	v, err := inst.Choose(`DELIMITER ',' FROM 0`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, strsOf(v.Items()))
}

func TestAddTerminatesAtFixedPointWithZeroOperand(t *testing.T) {
	inst, err := executor.Default.Create("ADD", num(5), true)
	require.NoError(t, err)
	it, err := inst.ItBegin(`< 100 0`)
	require.NoError(t, err)
	got := drain(t, it)
	assert.Equal(t, []float64{5}, numsOf(got))
}

func TestAddIteratesUntilPredicateRejects(t *testing.T) {
	inst, err := executor.Default.Create("ADD", num(0), true)
	require.NoError(t, err)
	it, err := inst.ItBegin(`< 3 1`)
	require.NoError(t, err)
	got := drain(t, it)
	assert.Equal(t, []float64{0, 1, 2}, numsOf(got))
}

func TestSubDecreasing(t *testing.T) {
	inst, err := executor.Default.Create("SUB", num(10), true)
	require.NoError(t, err)
	it, err := inst.ItBegin(`> 7 1`)
	require.NoError(t, err)
	got := drain(t, it)
	assert.Equal(t, []float64{10, 9, 8}, numsOf(got))
}

func TestMulConverges(t *testing.T) {
	inst, err := executor.Default.Create("MUL", num(0), true)
	require.NoError(t, err)
	it, err := inst.ItBegin(`< 100 2`)
	require.NoError(t, err)
	got := drain(t, it)
	assert.Equal(t, []float64{0}, numsOf(got))
}

func TestFormulaConvergesAtFixedPoint(t *testing.T) {
	inst, err := executor.NewFormulaExecutor(num(1), true)
	require.NoError(t, err)
	it, err := inst.ItBegin(`!= 0 : X / 2`)
	require.NoError(t, err)
	got := numsOf(drain(t, it))
	require.NotEmpty(t, got)
	assert.Equal(t, 1.0, got[0])
	for _, n := range got {
		assert.NotEqual(t, 0.0, n)
	}
}

func TestObjFormulaAppliesAssignments(t *testing.T) {
	input := obj(variant.KV{Key: "x", Value: num(1)})
	inst, err := executor.NewObjFormulaExecutor(input, true)
	require.NoError(t, err)
	it, err := inst.ItBegin(`!= 0 : x = 0`)
	require.NoError(t, err)
	got := drain(t, it)
	require.Len(t, got, 1)
	v, ok := got[0].Get("x")
	require.True(t, ok)
	assert.Equal(t, float64(1), v.Num())
}

func TestTravelWalksNestedObject(t *testing.T) {
	input := obj(
		variant.KV{Key: "a", Value: obj(variant.KV{Key: "foo", Value: num(1)})},
		variant.KV{Key: "b", Value: num(2)},
	)
	inst, err := executor.NewTravelExecutor(input, true)
	require.NoError(t, err)
	v, err := inst.Choose(`LIKE '*foo' for key`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.foo"}, strsOf(v.Items()))
}

func TestSortNumberAscendingDescending(t *testing.T) {
	on := variant.NewArray(num(3), num(1), num(2))
	asc := executor.Sort(on, executor.SortOptions{Ascending: true})
	assert.Equal(t, []float64{1, 2, 3}, numsOf(asc.Items()))
	desc := executor.Sort(on, executor.SortOptions{Ascending: false})
	assert.Equal(t, []float64{3, 2, 1}, numsOf(desc.Items()))
}

func TestSortByObjectKey(t *testing.T) {
	on := variant.NewArray(
		obj(variant.KV{Key: "n", Value: num(2)}),
		obj(variant.KV{Key: "n", Value: num(1)}),
	)
	sorted := executor.Sort(on, executor.SortOptions{Against: "n", Ascending: true})
	items := sorted.Items()
	v0, _ := items[0].Get("n")
	v1, _ := items[1].Get("n")
	assert.Equal(t, float64(1), v0.Num())
	assert.Equal(t, float64(2), v1.Num())
}

func numsOf(vs []variant.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Num()
	}
	return out
}

func strsOf(vs []variant.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Str()
	}
	return out
}
