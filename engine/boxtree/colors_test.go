package boxtree

import (
	"testing"

	"github.com/foilterm/foil/engine/frame"
	"github.com/stretchr/testify/assert"
)

func TestParseColorNamed(t *testing.T) {
	c, ok := parseColor("Red")
	assert.True(t, ok)
	assert.Equal(t, frame.RGB(255, 0, 0), c)
}

func TestParseColorHexLongAndShort(t *testing.T) {
	long, ok := parseColor("#336699")
	assert.True(t, ok)
	short, ok := parseColor("#369")
	assert.True(t, ok)
	assert.Equal(t, long, short)
}

func TestParseColorTransparentAndCurrentColor(t *testing.T) {
	_, ok := parseColor("transparent")
	assert.False(t, ok)
	_, ok = parseColor("currentColor")
	assert.False(t, ok)
	_, ok = parseColor("")
	assert.False(t, ok)
}

func TestParseColorUnknownIsRejected(t *testing.T) {
	_, ok := parseColor("not-a-color")
	assert.False(t, ok)
}
