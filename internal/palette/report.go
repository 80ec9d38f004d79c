package palette

import (
	"fmt"
	"log"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Entry is one bucket's share of the visible samples.
type Entry struct {
	Color   Color
	Count   int
	Percent float64
}

// Report lists bucket occupancy, most frequent first.
type Report struct {
	Entries []Entry
	Total   int // visible samples
}

// NewReport converts buckets into percentages of their combined count.
// Entries are ordered by descending count; equal counts keep bucket order.
func NewReport(buckets []Bucket) Report {
	counts := make([]float64, len(buckets))
	for i, b := range buckets {
		counts[i] = float64(b.Count)
	}
	total := floats.Sum(counts)
	if total == 0 {
		return Report{}
	}

	// Divide first so a bucket holding every sample comes out at exactly 100.
	percents := make([]float64, len(counts))
	for i, c := range counts {
		percents[i] = c / total
	}
	floats.Scale(100, percents)

	entries := make([]Entry, len(buckets))
	for i, b := range buckets {
		entries[i] = Entry{Color: b.Color, Count: b.Count, Percent: percents[i]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return Report{Entries: entries, Total: int(total)}
}

// Len returns the number of entries.
func (r Report) Len() int { return len(r.Entries) }

// Top returns at most n leading entries.
func (r Report) Top(n int) []Entry {
	if n < 0 || n >= len(r.Entries) {
		return r.Entries
	}
	return r.Entries[:n]
}

// PercentSum adds up all percentages; 100 for any non-empty report, give or
// take rounding.
func (r Report) PercentSum() float64 {
	p := make([]float64, len(r.Entries))
	for i, e := range r.Entries {
		p[i] = e.Percent
	}
	return floats.Sum(p)
}

// Find returns the first entry, in report order, whose color is within
// tolerance of target.
func (r Report) Find(target Color, tolerance float64) (Entry, bool) {
	cmp := Comparer{Tolerance: tolerance}
	for _, e := range r.Entries {
		if cmp.Equal(e.Color, target) {
			return e, true
		}
	}
	return Entry{}, false
}

// IsDominant reports whether an entry matching target occupies strictly more
// than limit percent. Entries are tried in report order and the first one
// that matches and exceeds the limit decides.
func IsDominant(r Report, target Color, tolerance, limit float64) (bool, error) {
	if !(tolerance > 0) {
		return false, fmt.Errorf("%w: got %v", ErrInvalidTolerance, tolerance)
	}
	if !(limit >= 0 && limit <= 100) {
		return false, fmt.Errorf("%w: got %v", ErrInvalidLimit, limit)
	}

	cmp := Comparer{Tolerance: tolerance}
	for _, e := range r.Entries {
		if cmp.Equal(e.Color, target) && e.Percent > limit {
			log.Printf("palette: dominant color %s at %.2f%%", e.Color, e.Percent)
			return true, nil
		}
	}
	return false, nil
}
