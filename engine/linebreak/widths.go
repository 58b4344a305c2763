package linebreak

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

var graphemeSetup sync.Once

// CellWidth measures the terminal cell width of s as the sum of each
// grapheme cluster's rune width — the same grapheme-cluster-then-measure
// pipeline as the teacher's monospace shaper (engine/glyphing/monospace/
// monospace.go's msshape.Shape), but scaled in terminal cells via
// github.com/mattn/go-runewidth instead of uax11.Width against a font's
// em-box: spec.md's Non-goal on font metrics leaves only the terminal's
// one fixed grid cell to measure against.
func CellWidth(s string) int {
	if s == "" {
		return 0
	}
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	breaker := grapheme.NewBreaker(1)
	seg := segment.NewSegmenter(breaker)
	seg.Init(strings.NewReader(s))

	width := 0
	for seg.Next() {
		width += runewidth.StringWidth(seg.Text())
	}
	return width
}
