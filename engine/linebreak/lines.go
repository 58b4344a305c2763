package linebreak

// Line is one laid-out line of a paragraph: the half-open byte range
// [Start, End) of the paragraph's text it covers, and its measured cell
// width.
type Line struct {
	Start, End int
	Width      int
}

// Text returns the line's slice of the paragraph it was laid out from.
func (l Line) Text(p *Paragraph) string {
	return p.String()[l.Start:l.End]
}

// LayLines breaks a paragraph into lines that fit shape's per-line cell
// budget, choosing for each line the last break opportunity that still
// fits (first-fit, greedy) — the simplest strategy that respects UAX#14
// opportunities, appropriate for a fixed grid with no stretch/shrink to
// optimize against (unlike the teacher's Knuth-Plass pass over elastic
// glue). A run with no fitting break at all is placed on its own
// overflowing line rather than silently dropped or sliced mid-grapheme.
func LayLines(p *Paragraph, breaks []Break, shape ParShape) []Line {
	text := p.String()
	if text == "" || len(breaks) == 0 {
		return nil
	}
	var lines []Line
	start := 0
	lineNo := 0
	for start < len(text) {
		budget := shape.LineWidth(lineNo)
		chosen := -1
		chosenWidth := 0
		for _, b := range breaks {
			if b.Pos <= start {
				continue
			}
			w := CellWidth(text[start:b.Pos])
			if w <= budget {
				chosen, chosenWidth = b.Pos, w
				if b.Penalty <= MandatoryPenalty {
					break // a mandatory break always wins over fitting further
				}
				continue
			}
			if chosen == -1 {
				// Not even the first candidate fits: take it anyway so an
				// overlong word still ends the line, rather than looping.
				chosen, chosenWidth = b.Pos, w
			}
			break
		}
		if chosen == -1 || chosen <= start {
			break
		}
		lines = append(lines, Line{Start: start, End: chosen, Width: chosenWidth})
		start = chosen
		lineNo++
	}
	return lines
}
