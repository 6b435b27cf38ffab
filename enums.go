package bento

// Heuristic selects which free rectangle the MaxRects packer prefers
// when several candidates admit the same sprite.
type Heuristic int

const (
	// HeuristicBestShortSideFit minimizes the shorter leftover side.
	HeuristicBestShortSideFit Heuristic = iota
	// HeuristicBestLongSideFit minimizes the longer leftover side.
	HeuristicBestLongSideFit
	// HeuristicBestAreaFit picks the smallest admitting free rectangle.
	HeuristicBestAreaFit
	// HeuristicBottomLeft prefers low, then left, placements.
	HeuristicBottomLeft
	// HeuristicContactPoint maximizes contact with placed rects and bin edges.
	HeuristicContactPoint
	// HeuristicBest evaluates all five heuristics and keeps the winner.
	HeuristicBest
)

var heuristicNames = map[Heuristic]string{
	HeuristicBestShortSideFit: "best-short-side-fit",
	HeuristicBestLongSideFit:  "best-long-side-fit",
	HeuristicBestAreaFit:      "best-area-fit",
	HeuristicBottomLeft:       "bottom-left",
	HeuristicContactPoint:     "contact-point",
	HeuristicBest:             "best",
}

// String renders the heuristic's canonical config/CLI name.
func (h Heuristic) String() string {
	if s, ok := heuristicNames[h]; ok {
		return s
	}
	return "unknown"
}

// ParseHeuristic parses the canonical name into a Heuristic.
func ParseHeuristic(s string) (Heuristic, bool) {
	for h, name := range heuristicNames {
		if name == s {
			return h, true
		}
	}
	return 0, false
}

// concreteHeuristics lists the five real scoring heuristics, excluding
// HeuristicBest which is a meta-selector resolved by the orchestrator.
var concreteHeuristics = []Heuristic{
	HeuristicBestShortSideFit,
	HeuristicBestLongSideFit,
	HeuristicBestAreaFit,
	HeuristicBottomLeft,
	HeuristicContactPoint,
}

// PackMode selects whether the orchestrator tries only the input's
// given ordering or several orderings, keeping the best result.
type PackMode int

const (
	// PackModeSingle preserves input order.
	PackModeSingle PackMode = iota
	// PackModeBest evaluates several sprite orderings.
	PackModeBest
)

func (m PackMode) String() string {
	if m == PackModeBest {
		return "best"
	}
	return "single"
}

// ParsePackMode parses the canonical name into a PackMode.
func ParsePackMode(s string) (PackMode, bool) {
	switch s {
	case "single":
		return PackModeSingle, true
	case "best":
		return PackModeBest, true
	}
	return 0, false
}

// ordering is one of the four candidate sprite orderings tried under
// PackModeBest.
type ordering int

const (
	orderingInput ordering = iota
	orderingDescArea
	orderingDescPerimeter
	orderingDescMaxSide
)

var allOrderings = []ordering{orderingInput, orderingDescArea, orderingDescPerimeter, orderingDescMaxSide}

// Compress is a PNG compression directive handed to the image-encode
// collaborator. The zero value means "off".
type Compress struct {
	set   bool
	max   bool
	level int // 0-6, meaningful only when set && !max
}

// CompressOff is the default: no compression hint, encoder picks its own default.
var CompressOff = Compress{}

// CompressLevel requests a specific 0-6 PNG compression level.
func CompressLevel(level int) Compress {
	return Compress{set: true, level: level}
}

// CompressMax requests maximum PNG compression.
func CompressMax() Compress {
	return Compress{set: true, max: true}
}

// Enabled reports whether a compression hint was specified at all.
func (c Compress) Enabled() bool { return c.set }

// Max reports whether maximum compression was requested.
func (c Compress) Max() bool { return c.max }

// Level returns the 0-6 level; meaningless unless Enabled() && !Max().
func (c Compress) Level() int { return c.level }
