package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foilterm/foil/executor/rule"
)

func TestParseKeyLikeMatch(t *testing.T) {
	r, err := rule.ParseKey(`LIKE '^foo'`)
	assert.NoError(t, err)
	assert.Equal(t, rule.ForValue, r.For)
	assert.True(t, r.Match.EvalString("foo1"))
	assert.False(t, r.Match.EvalString("barfoo"))
}

func TestParseKeyForKey(t *testing.T) {
	r, err := rule.ParseKey(`LIKE '*' for key`)
	assert.NoError(t, err)
	assert.Equal(t, rule.ForKey, r.For)
}

func TestParseRangeFromToAdvance(t *testing.T) {
	r, err := rule.ParseRange(`FROM 1 TO 5 ADVANCE 2`)
	assert.NoError(t, err)
	assert.Equal(t, 1, r.From)
	assert.Equal(t, 5, r.To)
	assert.Equal(t, 2, r.Advance)
}

func TestParseRangeNoTo(t *testing.T) {
	r, err := rule.ParseRange(`FROM 0`)
	assert.NoError(t, err)
	assert.False(t, r.HasTo)
	assert.Equal(t, 1, r.Advance)
}

func TestParseArith(t *testing.T) {
	r, err := rule.ParseArith(`< 100 1`)
	assert.NoError(t, err)
	assert.True(t, r.Cmp.EvalNumber(50))
	assert.False(t, r.Cmp.EvalNumber(150))
	assert.Equal(t, float64(1), r.Operand)
}

func TestParseFormula(t *testing.T) {
	r, err := rule.ParseFormula(`< 10 : X + 1`)
	assert.NoError(t, err)
	v := r.Formula.Eval(map[string]float64{"X": 4})
	assert.Equal(t, float64(5), v)
}

func TestParseObjFormula(t *testing.T) {
	r, err := rule.ParseObjFormula(`!= 0 : x = X * 2, y = X - 1`)
	assert.NoError(t, err)
	assert.Len(t, r.Assignments, 2)
	assert.Equal(t, float64(8), r.Assignments[0].Formula.Eval(map[string]float64{"X": 4}))
}

func TestParseCharToken(t *testing.T) {
	r, err := rule.ParseCharToken(`DELIMITER ' ' FROM 0 TO 3`)
	assert.NoError(t, err)
	assert.Equal(t, " ", r.Delimiter)
	assert.Equal(t, 0, r.From)
	assert.Equal(t, 3, r.To)
}

func TestParseSymbol(t *testing.T) {
	r, err := rule.ParseSymbol(`mymod.myfunc`)
	assert.NoError(t, err)
	assert.Equal(t, "mymod", r.Module)
	assert.Equal(t, "myfunc", r.Symbol)
}

func TestParseExternal(t *testing.T) {
	r, err := rule.ParseExternal(`myfunc >= 3`)
	assert.NoError(t, err)
	assert.Equal(t, "myfunc", r.Symbol)
	assert.True(t, r.Cmp.EvalNumber(5))
}

func TestParseFilterStringAndNumber(t *testing.T) {
	r, err := rule.ParseFilter(`>= 10 'x' for kv`)
	assert.NoError(t, err)
	assert.NotNil(t, r.NumMatch)
	assert.Equal(t, rule.ForKV, r.For)
}

func TestLogicalAndOrNot(t *testing.T) {
	r, err := rule.ParseKey(`not 'a' and 'b' or 'c'`)
	assert.NoError(t, err)
	assert.True(t, r.Match.EvalString("c"))
	assert.True(t, r.Match.EvalString("b"))
	assert.False(t, r.Match.EvalString("a"))
}
