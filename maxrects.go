package bento

// maxRects is the free-list state of a single bin, tracking maximal
// free rectangles after each insertion (Jukka Jylänki's MaxRects
// algorithm). It never rotates a candidate; that is a Non-goal.
type maxRects struct {
	w, h   int
	free   []Rect
	placed []Rect
}

func newMaxRects(w, h int) *maxRects {
	return &maxRects{
		w:    w,
		h:    h,
		free: []Rect{{X: 0, Y: 0, W: w, H: h}},
	}
}

// insert places a w×h rectangle using heuristic, returning the placed
// Rect and true, or false if no free rectangle admits it.
func (mr *maxRects) insert(w, h int, heuristic Heuristic) (Rect, bool) {
	best, ok := mr.findPosition(w, h, heuristic)
	if !ok {
		return Rect{}, false
	}
	mr.place(best)
	mr.placed = append(mr.placed, best)
	return best, true
}

// canFit reports whether a w×h rect admits into any current free rect.
func (mr *maxRects) canFit(w, h int) bool {
	for _, f := range mr.free {
		if f.Fits(w, h) {
			return true
		}
	}
	return false
}

type score struct {
	primary, secondary int64
	y, x               int
}

func (s score) less(o score) bool {
	if s.primary != o.primary {
		return s.primary < o.primary
	}
	if s.secondary != o.secondary {
		return s.secondary < o.secondary
	}
	if s.y != o.y {
		return s.y < o.y
	}
	return s.x < o.x
}

func (mr *maxRects) findPosition(w, h int, heuristic Heuristic) (Rect, bool) {
	var (
		best   Rect
		bestSc score
		found  bool
	)

	for _, f := range mr.free {
		if !f.Fits(w, h) {
			continue
		}
		cand := Rect{X: f.X, Y: f.Y, W: w, H: h}
		sc := mr.scoreFor(f, w, h, heuristic)
		sc.y, sc.x = cand.Y, cand.X

		if !found || sc.less(bestSc) {
			best = cand
			bestSc = sc
			found = true
		}
	}

	return best, found
}

func (mr *maxRects) scoreFor(f Rect, w, h int, heuristic Heuristic) score {
	leftoverW := int64(f.W - w)
	leftoverH := int64(f.H - h)
	short := leftoverW
	long := leftoverH
	if leftoverH < leftoverW {
		short, long = leftoverH, leftoverW
	}

	switch heuristic {
	case HeuristicBestShortSideFit:
		return score{primary: short, secondary: long}
	case HeuristicBestLongSideFit:
		return score{primary: long, secondary: short}
	case HeuristicBestAreaFit:
		return score{primary: f.Area() - int64(w)*int64(h), secondary: short}
	case HeuristicBottomLeft:
		return score{primary: int64(f.Y + h), secondary: int64(f.X)}
	case HeuristicContactPoint:
		return score{primary: -mr.contactScore(f.X, f.Y, w, h)}
	default:
		return score{primary: short, secondary: long}
	}
}

// contactScore measures how much of the candidate rect's perimeter
// coincides with the bin edges or already-placed rects.
func (mr *maxRects) contactScore(x, y, w, h int) int64 {
	var total int64

	if x == 0 {
		total += int64(h)
	}
	if y == 0 {
		total += int64(w)
	}
	if x+w == mr.w {
		total += int64(h)
	}
	if y+h == mr.h {
		total += int64(w)
	}

	for _, p := range mr.placed {
		if x == p.Right() || x+w == p.X {
			start := maxInt(y, p.Y)
			end := minInt(y+h, p.Bottom())
			if end > start {
				total += int64(end - start)
			}
		}
		if y == p.Bottom() || y+h == p.Y {
			start := maxInt(x, p.X)
			end := minInt(x+w, p.Right())
			if end > start {
				total += int64(end - start)
			}
		}
	}

	return total
}

// place splits every free rect that intersects the newly placed rect
// into up to four child strips (top/bottom/left/right), then prunes
// rects that are fully contained within another free rect.
func (mr *maxRects) place(r Rect) {
	var kept []Rect

	for _, f := range mr.free {
		if !f.Intersects(r) {
			kept = append(kept, f)
			continue
		}

		if r.X > f.X {
			kept = append(kept, Rect{X: f.X, Y: f.Y, W: r.X - f.X, H: f.H})
		}
		if r.Right() < f.Right() {
			kept = append(kept, Rect{X: r.Right(), Y: f.Y, W: f.Right() - r.Right(), H: f.H})
		}
		if r.Y > f.Y {
			kept = append(kept, Rect{X: f.X, Y: f.Y, W: f.W, H: r.Y - f.Y})
		}
		if r.Bottom() < f.Bottom() {
			kept = append(kept, Rect{X: f.X, Y: r.Bottom(), W: f.W, H: f.Bottom() - r.Bottom()})
		}
	}

	mr.free = pruneContained(kept)
}

// pruneContained removes any rect fully contained within another.
func pruneContained(rects []Rect) []Rect {
	out := make([]Rect, 0, len(rects))
	for i, r := range rects {
		contained := false
		for j, o := range rects {
			if i == j {
				continue
			}
			if o.Contains(r) && (!r.Contains(o) || j < i) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, r)
		}
	}
	return out
}

// occupancy estimates used area as a fraction of bin area; trial
// scoring (trialBetter) does not use it. Free rects can overlap, so
// their summed area is an upper bound on free area, not exact until the
// bin is fully packed.
func (mr *maxRects) occupancy() float64 {
	total := int64(mr.w) * int64(mr.h)
	if total == 0 {
		return 0
	}
	var free int64
	for _, f := range mr.free {
		free += f.Area()
	}
	used := total - free
	if used < 0 {
		used = 0
	}
	return float64(used) / float64(total)
}
