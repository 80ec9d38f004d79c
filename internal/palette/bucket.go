package palette

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTolerance = errors.New("tolerance must be positive")
	ErrInvalidLimit     = errors.New("dominance limit must be within [0, 100]")
	ErrInvalidCutoff    = errors.New("alpha cutoff must be within [0, 1]")
)

// Bucket is a cluster of samples represented by the first color seen in it.
type Bucket struct {
	Color Color // representative
	Count int
}

// Bucketer assigns colors to buckets in a single pass. Buckets are matched
// in creation order against their representatives only, so the result is
// deterministic for a fixed sample order.
//
// With an index, candidate buckets are looked up through the comparer's
// hash cells. Every candidate is still checked with Comparer.Equal and the
// lowest creation index wins, which yields exactly the linear-scan result.
type Bucketer struct {
	cmp     Comparer
	buckets []Bucket
	index   map[int64][]int // cell hash -> bucket indices, ascending
	total   int
}

// NewBucketer returns an empty Bucketer for the given tolerance.
func NewBucketer(tolerance float64, indexed bool) (*Bucketer, error) {
	if !(tolerance > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTolerance, tolerance)
	}
	b := &Bucketer{cmp: Comparer{Tolerance: tolerance}}
	if indexed {
		b.index = make(map[int64][]int)
	}
	return b, nil
}

// Add counts one opaque sample.
func (b *Bucketer) Add(c Color) {
	b.total++
	if i := b.find(c); i >= 0 {
		b.buckets[i].Count++
		return
	}
	b.buckets = append(b.buckets, Bucket{Color: c, Count: 1})
	if b.index != nil {
		h := b.cmp.Hash(c)
		b.index[h] = append(b.index[h], len(b.buckets)-1)
	}
}

func (b *Bucketer) find(c Color) int {
	if b.index == nil {
		for i := range b.buckets {
			if b.cmp.Equal(b.buckets[i].Color, c) {
				return i
			}
		}
		return -1
	}

	best := -1
	r, g, bl := b.cmp.cell(c)
	for dr := int64(-1); dr <= 1; dr++ {
		for dg := int64(-1); dg <= 1; dg++ {
			for db := int64(-1); db <= 1; db++ {
				for _, i := range b.index[cellHash(r+dr, g+dg, bl+db)] {
					if best >= 0 && i >= best {
						break
					}
					if b.cmp.Equal(b.buckets[i].Color, c) {
						best = i
						break
					}
				}
			}
		}
	}
	return best
}

// Buckets returns the buckets in creation order. The slice is a copy.
func (b *Bucketer) Buckets() []Bucket {
	out := make([]Bucket, len(b.buckets))
	copy(out, b.buckets)
	return out
}

// Len returns the number of buckets.
func (b *Bucketer) Len() int { return len(b.buckets) }

// Total returns the number of samples added.
func (b *Bucketer) Total() int { return b.total }

// BucketColors groups samples by linear scan over existing representatives.
func BucketColors(samples []Color, tolerance float64) ([]Bucket, error) {
	return bucketColors(samples, tolerance, false)
}

func bucketColors(samples []Color, tolerance float64, indexed bool) ([]Bucket, error) {
	b, err := NewBucketer(tolerance, indexed)
	if err != nil {
		return nil, err
	}
	for _, c := range samples {
		b.Add(c)
	}
	return b.buckets, nil
}
