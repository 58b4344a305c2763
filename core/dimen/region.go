package dimen

// Region is an ordered list of non-overlapping rectangles. It is the
// primitive floats are placed against: the available space within a block
// formatting context, minus whatever float margin boxes have already been
// carved out of it.
type Region struct {
	rects []Rect
}

// NewRegion creates a region consisting of a single rectangle.
func NewRegion(r Rect) *Region {
	return &Region{rects: []Rect{r}}
}

// Rects returns the rectangles of the region, in the order Subtract and
// Union left them (not sorted by position).
func (reg *Region) Rects() []Rect {
	return reg.rects
}

// Empty reports whether the region has no area left.
func (reg *Region) Empty() bool {
	return len(reg.rects) == 0
}

// FirstFit scans the region top-to-bottom for the first rectangle at or
// below minTop that can host a box of size w x h, per spec.md §4.3.6
// step 1-2. It returns the rectangle and true, or the zero Rect and false.
func (reg *Region) FirstFit(w, h DU, minTop DU) (Rect, bool) {
	best, found := Rect{}, false
	for _, r := range reg.rects {
		if r.TopL.Y < minTop || r.W < w || r.H < h {
			continue
		}
		if !found || r.TopL.Y < best.TopL.Y || (r.TopL.Y == best.TopL.Y && r.TopL.X < best.TopL.X) {
			best, found = r, true
		}
	}
	return best, found
}

// Subtract removes the area of cut from the region, splitting any
// overlapping rectangle into the (up to four) remaining pieces. Used after
// a float has been placed to shrink the available area for subsequent
// floats and in-flow content.
func (reg *Region) Subtract(cut Rect) {
	if cut.Empty() {
		return
	}
	var next []Rect
	for _, r := range reg.rects {
		if !r.Overlaps(cut) {
			next = append(next, r)
			continue
		}
		next = append(next, splitAround(r, cut)...)
	}
	reg.rects = next
}

// splitAround returns the parts of r that remain after carving out cut,
// as up to four axis-aligned rectangles (top, bottom, left, right bands).
func splitAround(r, cut Rect) []Rect {
	var out []Rect
	// Top band: full width of r, above cut.
	if cut.TopL.Y > r.TopL.Y {
		out = append(out, Rect{TopL: r.TopL, W: r.W, H: cut.TopL.Y - r.TopL.Y})
	}
	// Bottom band: full width of r, below cut.
	if cut.Bottom() < r.Bottom() {
		out = append(out, Rect{
			TopL: Point{r.TopL.X, cut.Bottom()},
			W:    r.W,
			H:    r.Bottom() - cut.Bottom(),
		})
	}
	midTop := max(r.TopL.Y, cut.TopL.Y)
	midBottom := min(r.Bottom(), cut.Bottom())
	midH := midBottom - midTop
	if midH > 0 {
		// Left band: to the left of cut, within the vertical middle strip.
		if cut.TopL.X > r.TopL.X {
			out = append(out, Rect{
				TopL: Point{r.TopL.X, midTop},
				W:    cut.TopL.X - r.TopL.X,
				H:    midH,
			})
		}
		// Right band: to the right of cut, within the vertical middle strip.
		if cut.Right() < r.Right() {
			out = append(out, Rect{
				TopL: Point{cut.Right(), midTop},
				W:    r.Right() - cut.Right(),
				H:    midH,
			})
		}
	}
	return out
}

// BandAt reports the available horizontal band at row y: the left offset
// and width of the widest rectangle in the region overlapping y. A line of
// text laid out at y should start at left and may grow up to width wide
// before it would run into an excluded area (a float's margin box). If no
// rectangle overlaps y, BandAt returns (0, fallbackWidth) — the row is
// outside the region entirely, so nothing constrains it.
func (reg *Region) BandAt(y DU, fallbackWidth DU) (left, width DU) {
	best := Rect{}
	found := false
	for _, r := range reg.rects {
		if y < r.TopL.Y || y >= r.Bottom() {
			continue
		}
		if !found || r.W > best.W {
			best = r
			found = true
		}
	}
	if !found {
		return Zero, fallbackWidth
	}
	return best.TopL.X, best.W
}

// Union merges another region's rectangles into this one. Overlap is not
// resolved (callers union disjoint regions only, e.g. combining float
// exclusion areas from independent formatting contexts); a more thorough
// plane-sweep union is not needed by any spec.md operation.
func (reg *Region) Union(other *Region) {
	reg.rects = append(reg.rects, other.rects...)
}
