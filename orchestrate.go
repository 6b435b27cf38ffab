package bento

import "sort"

// bin is one trial's working state: the free-rect packer, the
// placements it has accepted (inner, unpadded rects), and the
// bounding box of the inflated rects actually reserved in mr.
type bin struct {
	mr           *maxRects
	placements   []*Placement
	maxX, maxY   int // bounding box of inflated (padded+extruded) rects
}

// trialResult is a completed (ordering, heuristic) attempt.
type trialResult struct {
	bins       []*bin
	placements []*Placement // in winning-ordering placement order, across all bins
	totalArea  int64
	bboxArea   int64
}

// orchestrator drives preprocessing output through orderings and
// heuristics, retries overflowing bins, and scores trials (spec §4.4).
type orchestrator struct {
	cfg    *Config
	cancel *CancelFlag
	report ProgressFunc
}

func newOrchestrator(cfg *Config, cancel *CancelFlag, report ProgressFunc) *orchestrator {
	return &orchestrator{cfg: cfg, cancel: cancel, report: report}
}

// run evaluates every (ordering, heuristic) pair implied by cfg and
// returns the winning trial, or an error (SpriteTooLarge, Cancelled).
func (o *orchestrator) run(sprites []*TrimmedSprite) (*trialResult, error) {
	orderings := []ordering{orderingInput}
	if o.cfg.PackMode == PackModeBest {
		orderings = allOrderings
	}

	heuristics := []Heuristic{o.cfg.Heuristic}
	if o.cfg.Heuristic == HeuristicBest {
		heuristics = concreteHeuristics
	}

	var best *trialResult

	for _, ord := range orderings {
		ordered := orderSprites(sprites, ord)
		for _, h := range heuristics {
			if o.cancel.Cancelled() {
				return nil, errCancelled()
			}
			reportProgress(o.report, "trial", 0, 1)

			result, err := o.runTrial(ordered, h)
			if err != nil {
				return nil, err
			}
			if best == nil || trialBetter(result, best) {
				best = result
			}
		}
	}

	return best, nil
}

// runTrial inserts sprites one at a time into bins, opening a fresh bin
// on overflow and retrying the failed sprite there. A sprite whose
// inflated size exceeds the max bin dimensions fails the whole trial.
//
// The packer inserts effective (padded+extruded) sizes; the Placement
// recorded for each sprite is the inner rect — the sprite's actual
// (w,h), offset by extrude from the inflated rect's top-left, per
// spec §4.3. The remaining padding is left as an untouched gap toward
// the inflated rect's far edge.
func (o *orchestrator) runTrial(sprites []*TrimmedSprite, h Heuristic) (*trialResult, error) {
	var bins []*bin
	var placements []*Placement

	openBin := func() *bin {
		b := &bin{mr: newMaxRects(o.cfg.MaxWidth, o.cfg.MaxHeight)}
		bins = append(bins, b)
		return b
	}

	cur := openBin()

	for _, s := range sprites {
		if o.cancel.Cancelled() {
			return nil, errCancelled()
		}

		pw := s.W + 2*o.cfg.Extrude + o.cfg.Padding
		ph := s.H + 2*o.cfg.Extrude + o.cfg.Padding

		if pw > o.cfg.MaxWidth || ph > o.cfg.MaxHeight {
			return nil, errSpriteTooLarge(s.SourceName, pw, ph, o.cfg.MaxWidth, o.cfg.MaxHeight)
		}

		inflated, ok := cur.mr.insert(pw, ph, h)
		if !ok {
			cur = openBin()
			inflated, ok = cur.mr.insert(pw, ph, h)
			if !ok {
				return nil, errSpriteTooLarge(s.SourceName, pw, ph, o.cfg.MaxWidth, o.cfg.MaxHeight)
			}
		}

		inner := Rect{
			X: inflated.X + o.cfg.Extrude,
			Y: inflated.Y + o.cfg.Extrude,
			W: s.W,
			H: s.H,
		}

		p := &Placement{
			Sprite:   s,
			BinIndex: len(bins) - 1,
			Rect:     inner,
		}
		cur.placements = append(cur.placements, p)
		cur.maxX = maxInt(cur.maxX, inflated.Right())
		cur.maxY = maxInt(cur.maxY, inflated.Bottom())
		placements = append(placements, p)

		reportProgress(o.report, "insert", len(placements), len(sprites))
	}

	var totalArea, bboxArea int64
	for _, b := range bins {
		for _, p := range b.placements {
			totalArea += p.Rect.Area()
		}
		bboxArea += int64(b.maxX) * int64(b.maxY)
	}

	return &trialResult{bins: bins, placements: placements, totalArea: totalArea, bboxArea: bboxArea}, nil
}

// trialBetter implements spec §4.4's trial scoring: fewer bins, then
// less total occupied area, then smaller bounding-box area.
func trialBetter(a, b *trialResult) bool {
	if len(a.bins) != len(b.bins) {
		return len(a.bins) < len(b.bins)
	}
	if a.totalArea != b.totalArea {
		return a.totalArea < b.totalArea
	}
	return a.bboxArea < b.bboxArea
}

// orderSprites returns a stably-sorted copy of sprites per the given
// ordering key. Ties keep input order (Go's sort.SliceStable).
func orderSprites(sprites []*TrimmedSprite, ord ordering) []*TrimmedSprite {
	out := make([]*TrimmedSprite, len(sprites))
	copy(out, sprites)

	var less func(i, j int) bool
	switch ord {
	case orderingInput:
		return out
	case orderingDescArea:
		less = func(i, j int) bool {
			return int64(out[i].W)*int64(out[i].H) > int64(out[j].W)*int64(out[j].H)
		}
	case orderingDescPerimeter:
		less = func(i, j int) bool {
			return out[i].W+out[i].H > out[j].W+out[j].H
		}
	case orderingDescMaxSide:
		less = func(i, j int) bool {
			return maxInt(out[i].W, out[i].H) > maxInt(out[j].W, out[j].H)
		}
	}

	sort.SliceStable(out, less)
	return out
}

// finalizeBinSize computes a bin's final atlas dimensions: the
// bounding box of its placed inflated rects, optionally rounded up to
// a power of two and capped at the configured maximum.
func finalizeBinSize(b *bin, cfg *Config) (w, h int) {
	w, h = b.maxX, b.maxY
	if cfg.POT {
		w = minInt(nextPowerOfTwo(w), cfg.MaxWidth)
		h = minInt(nextPowerOfTwo(h), cfg.MaxHeight)
	}
	return w, h
}
