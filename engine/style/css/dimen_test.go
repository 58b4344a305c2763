package css_test

import (
	"testing"

	"github.com/foilterm/foil/engine/style/css"
	"github.com/stretchr/testify/assert"
)

func TestParseDimenKeywords(t *testing.T) {
	d, err := css.ParseDimen("auto")
	assert.NoError(t, err)
	assert.True(t, d.IsAuto())

	d, err = css.ParseDimen("inherit")
	assert.NoError(t, err)
	assert.True(t, d.IsInherit())

	d, err = css.ParseDimen("")
	assert.NoError(t, err)
	assert.True(t, d.IsNone())
}

func TestParseDimenBorderKeywords(t *testing.T) {
	thin, err := css.ParseDimen("thin")
	assert.NoError(t, err)
	assert.True(t, thin.IsAbsolute())
	assert.EqualValues(t, 0, thin.Unwrap())

	medium, err := css.ParseDimen("medium")
	assert.NoError(t, err)
	assert.True(t, medium.IsAbsolute())
	assert.EqualValues(t, 1, medium.Unwrap())
}

func TestParseDimenPercent(t *testing.T) {
	d, err := css.ParseDimen("50%")
	assert.NoError(t, err)
	assert.True(t, d.IsPercent())
	assert.EqualValues(t, 50, d.PercentValue())
}

func TestParseDimenCells(t *testing.T) {
	d, err := css.ParseDimen("12")
	assert.NoError(t, err)
	assert.True(t, d.IsAbsolute())
	assert.EqualValues(t, 12, d.Unwrap())
}

func TestParseDimenInvalid(t *testing.T) {
	_, err := css.ParseDimen("not-a-dimen")
	assert.Error(t, err)
}

func TestResolvePercent(t *testing.T) {
	d, _ := css.ParseDimen("25%")
	resolved := d.ResolvePercent(40)
	assert.True(t, resolved.IsAbsolute())
	assert.EqualValues(t, 10, resolved.Unwrap())
}

func TestDisplayModeBlockOrInline(t *testing.T) {
	d := css.BlockMode
	d = d.BlockOrInline(false)
	assert.True(t, d.IsInline())
	assert.False(t, d.IsBlock())
}

func TestDisplayModeSymbol(t *testing.T) {
	assert.Equal(t, "list-item", css.ListItemMode.Symbol())
	assert.Equal(t, "block", css.BlockMode.Symbol())
}
