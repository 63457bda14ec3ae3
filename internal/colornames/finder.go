package colornames

import (
	"colorpick/pkg/colormath"

	"github.com/lucasb-eyer/go-colorful"
)

// exactThreshold is the CIEDE2000 distance under which two colors are
// reported as the same.
const exactThreshold = 1e-6

type parsedEntry struct {
	Entry
	color colorful.Color
}

// Finder answers nearest-name queries against a catalog using CIEDE2000.
// It is safe for concurrent use once built.
type Finder struct {
	entries []parsedEntry
}

var _ colormath.NameFinder = (*Finder)(nil)

// NewFinder parses the catalog up front. Entries with malformed hex values
// are skipped.
func NewFinder(c Catalog) *Finder {
	f := &Finder{entries: make([]parsedEntry, 0, len(c))}
	for _, e := range c {
		col, err := colorful.Hex(e.Hex)
		if err != nil {
			continue
		}
		f.entries = append(f.entries, parsedEntry{Entry: e, color: col})
	}
	return f
}

// Len returns the number of usable entries.
func (f *Finder) Len() int {
	if f == nil {
		return 0
	}
	return len(f.entries)
}

// FindClosest returns the catalog entry perceptually closest to hex.
func (f *Finder) FindClosest(hex string) (colormath.Match, bool) {
	if f.Len() == 0 {
		return colormath.Match{}, false
	}
	norm, ok := colormath.Normalize(hex)
	if !ok {
		return colormath.Match{}, false
	}
	target, err := colorful.Hex(norm)
	if err != nil {
		return colormath.Match{}, false
	}

	best := -1
	bestDist := 0.0
	for i, e := range f.entries {
		d := target.DistanceCIEDE2000(e.color)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}

	e := f.entries[best]
	return colormath.Match{
		Name:     e.Name,
		Hex:      e.Hex,
		Distance: bestDist,
		Exact:    bestDist < exactThreshold,
	}, true
}
