package counters_test

import (
	"testing"

	"github.com/foilterm/foil/engine/style/counters"
	"github.com/stretchr/testify/assert"
)

func TestResetAndIncrement(t *testing.T) {
	root := counters.NewScope()
	root.Reset("item", 0)
	root.Increment("item", 1)
	root.Increment("item", 1)
	v, ok := root.Value("item")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestIncrementImpliesReset(t *testing.T) {
	root := counters.NewScope()
	root.Increment("section", 1)
	v, ok := root.Value("section")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestNestedScopeShadowing(t *testing.T) {
	root := counters.NewScope()
	root.Reset("item", 0)
	root.Increment("item", 1)

	child := root.Push()
	child.Reset("item", 0)
	child.Increment("item", 1)
	child.Increment("item", 1)

	childVal, _ := child.Value("item")
	rootVal, _ := root.Value("item")
	assert.Equal(t, 2, childVal)
	assert.Equal(t, 1, rootVal)
}

func TestChainAcrossNesting(t *testing.T) {
	root := counters.NewScope()
	root.Reset("item", 1)
	child := root.Push()
	child.Reset("item", 1)
	grandchild := child.Push()
	grandchild.Increment("item", 1)

	chain := grandchild.Chain("item")
	assert.Equal(t, []int{1, 2}, chain)
}

func TestFormatStyles(t *testing.T) {
	assert.Equal(t, "4", counters.Format(4, counters.Decimal))
	assert.Equal(t, "04", counters.Format(4, counters.DecimalLeadingZero))
	assert.Equal(t, "iv", counters.Format(4, counters.LowerRoman))
	assert.Equal(t, "IV", counters.Format(4, counters.UpperRoman))
	assert.Equal(t, "d", counters.Format(4, counters.LowerAlpha))
	assert.Equal(t, "aa", counters.Format(27, counters.LowerAlpha))
	assert.Equal(t, "●", counters.Format(1, counters.Disc))
}
