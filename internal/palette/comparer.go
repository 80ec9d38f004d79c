package palette

import "math"

// Hash offsets for the red and green cells.
const (
	hashOffsetR = 1_000_000
	hashOffsetG = 1_000
)

// Comparer decides approximate color equality under a per-channel tolerance.
// Alpha is ignored.
type Comparer struct {
	Tolerance float64
}

// Equal reports whether every RGB channel differs by strictly less than the
// tolerance. The relation is not transitive.
func (c Comparer) Equal(a, b Color) bool {
	return math.Abs(a.R-b.R) < c.Tolerance &&
		math.Abs(a.G-b.G) < c.Tolerance &&
		math.Abs(a.B-b.B) < c.Tolerance
}

// Hash maps a color to a coarse cell. Colors within tolerance usually share
// a cell but may land in a neighbouring one, so a hash match is never proof
// of equality.
func (c Comparer) Hash(col Color) int64 {
	r, g, b := c.cell(col)
	return cellHash(r, g, b)
}

func (c Comparer) cell(col Color) (r, g, b int64) {
	return int64(math.Round(col.R / c.Tolerance)),
		int64(math.Round(col.G / c.Tolerance)),
		int64(math.Round(col.B / c.Tolerance))
}

func cellHash(r, g, b int64) int64 {
	return r*hashOffsetR + g*hashOffsetG + b
}
