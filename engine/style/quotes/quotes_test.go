package quotes_test

import (
	"testing"

	"github.com/foilterm/foil/engine/style/quotes"
	"github.com/stretchr/testify/assert"
)

func TestLookupDefaultsToEnglish(t *testing.T) {
	tbl := quotes.Lookup("fr")
	assert.Equal(t, "en", tbl.Lang)
}

func TestLookupRegistered(t *testing.T) {
	quotes.Register(quotes.NewTable("de", quotes.Pair{Open: "„", Close: "“"}))
	tbl := quotes.Lookup("de")
	assert.Equal(t, "de", tbl.Lang)
	assert.Equal(t, "„", tbl.At(0).Open)
}

func TestDepthOpenCloseCycles(t *testing.T) {
	tbl := quotes.Lookup("en")
	var d quotes.Depth
	first := d.Open(tbl, false)
	second := d.Open(tbl, false)
	assert.Equal(t, "“", first)
	assert.Equal(t, "‘", second)
	assert.Equal(t, 2, d.Level())

	closed := d.Close(tbl, false)
	assert.Equal(t, "’", closed)
	assert.Equal(t, 1, d.Level())
}

func TestDepthCloseNeverNegative(t *testing.T) {
	tbl := quotes.Lookup("en")
	var d quotes.Depth
	assert.Equal(t, "", d.Close(tbl, false))
	assert.Equal(t, 0, d.Level())
}

func TestDepthForkIsIndependent(t *testing.T) {
	tbl := quotes.Lookup("en")
	var d quotes.Depth
	d.Open(tbl, false)
	sibling := d.Fork()
	sibling.Open(tbl, false)
	assert.Equal(t, 1, d.Level())
	assert.Equal(t, 2, sibling.Level())
}
