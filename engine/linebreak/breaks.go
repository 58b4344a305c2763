package linebreak

import (
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Break is one UAX#14 line-break opportunity within a paragraph's plain
// text: Pos is a byte offset, Penalty follows the same cost scale as the
// teacher's khipu pipeline (InfinityPenalty = never break here,
// MandatoryPenalty = always break here).
type Break struct {
	Pos     int
	Penalty Penalty
}

// ComputeBreaks finds every UAX#14 line-break opportunity in text, reusing
// the segment.Segmenter + uax14.LineWrap pipeline the teacher's
// khipu.Khipukamayuq typesetting pipeline drives (engine/khipu/
// khipukamayuq.go's PrepareTypesettingPipeline) — but instead of folding
// each fragment into a khipu.Knot sequence, it records the opportunity as
// a flat (position, penalty) vector, matching spec.md's break-opportunity
// model.
func ComputeBreaks(text string) []Break {
	if text == "" {
		return nil
	}
	linewrap := uax14.NewLineWrap()
	seg := segment.NewSegmenter(linewrap)
	seg.Init(strings.NewReader(text))

	var breaks []Break
	pos := 0
	for seg.Next() {
		frag := seg.Text()
		pos += len(frag)
		p1, _ := seg.Penalties()
		if p1 < int(InfinityPenalty) {
			breaks = append(breaks, Break{Pos: pos, Penalty: Penalty(p1)})
		}
	}
	if len(breaks) == 0 || breaks[len(breaks)-1].Pos != len(text) {
		breaks = append(breaks, Break{Pos: len(text), Penalty: MandatoryPenalty})
	}
	return breaks
}
