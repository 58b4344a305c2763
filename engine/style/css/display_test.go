package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foilterm/foil/engine/style/css"
)

func TestParseDisplayKnownKeywords(t *testing.T) {
	assert.Equal(t, css.DisplayNone, css.ParseDisplay("none"))
	assert.Equal(t, css.BlockMode, css.ParseDisplay("block"))
	assert.Equal(t, css.InlineMode, css.ParseDisplay("inline"))
	assert.True(t, css.ParseDisplay("list-item").Contains(css.ListItemMode))
	assert.True(t, css.ParseDisplay("flex").Contains(css.FlexMode))
}

func TestParseDisplayUnknownFallsBackToInline(t *testing.T) {
	assert.Equal(t, css.InlineMode, css.ParseDisplay(""))
	assert.Equal(t, css.InlineMode, css.ParseDisplay("ruby"))
}
