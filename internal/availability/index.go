package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Entry is one booked period of an asset
type Entry struct {
	ID           int64
	Reference    string
	ContractName string
	Start        time.Time
	End          time.Time
}

// Index answers "does anything overlap [start, end]" for the bookings of one asset.
// Entries are sorted by start; for every prefix it keeps the two entries with the
// latest end, so a lookup is one binary search even when one id is excluded.
type Index struct {
	entries []Entry
	best    []int // index into entries of the latest end in entries[:i+1]
	second  []int // runner-up, -1 when the prefix has a single entry
}

// NewIndex builds an index over entries; the slice is copied
func NewIndex(entries []Entry) *Index {
	sorted := make([]Entry, len(entries))
	for i, e := range entries {
		e.Start, e.End = domain.DateOnly(e.Start), domain.DateOnly(e.End)
		sorted[i] = e
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	idx := &Index{
		entries: sorted,
		best:    make([]int, len(sorted)),
		second:  make([]int, len(sorted)),
	}

	best, second := -1, -1
	for i := range sorted {
		switch {
		case best == -1 || sorted[i].End.After(sorted[best].End):
			best, second = i, best
		case second == -1 || sorted[i].End.After(sorted[second].End):
			second = i
		}
		idx.best[i], idx.second[i] = best, second
	}
	return idx
}

// Len returns the number of indexed entries
func (x *Index) Len() int {
	return len(x.entries)
}

// FindConflict returns an entry overlapping [start, end] (inclusive), ignoring the
// entry with excludeID. Pass 0 to exclude nothing.
func (x *Index) FindConflict(start, end time.Time, excludeID int64) (Entry, bool) {
	start, end = domain.DateOnly(start), domain.DateOnly(end)

	// entries[:k] are the ones starting on or before end
	k := sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].Start.After(end)
	})
	if k == 0 {
		return Entry{}, false
	}

	for _, i := range []int{x.best[k-1], x.second[k-1]} {
		if i < 0 {
			continue
		}
		e := x.entries[i]
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if !e.End.Before(start) {
			return e, true
		}
		// ends are ordered best >= second, nothing else can reach start
		return Entry{}, false
	}
	return Entry{}, false
}
