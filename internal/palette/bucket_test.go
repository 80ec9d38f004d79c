package palette

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	red   = RGB(1, 0, 0)
	green = RGB(0, 1, 0)
	blue  = RGB(0, 0, 1)
	black = RGB(0, 0, 0)
	white = RGB(1, 1, 1)
	gray  = RGB(0.5, 0.5, 0.5)
)

func repeat(c Color, n int) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func concat(parts ...[]Color) []Color {
	var out []Color
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestComparerEqual(t *testing.T) {
	eq := Comparer{Tolerance: 0.05}
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"identical", gray, gray, true},
		{"within on all channels", gray, RGB(0.53, 0.47, 0.54), true},
		{"one channel out", gray, RGB(0.53, 0.6, 0.5), false},
		{"alpha ignored", Color{R: 0.5, G: 0.5, B: 0.5, A: 0}, gray, true},
		{"far apart", black, white, false},
	}
	for _, tt := range tests {
		got := eq.Equal(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("%s: Equal(%v, %v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}

	// Exactly at the tolerance boundary.
	c := Comparer{Tolerance: 0.25}
	if c.Equal(RGB(0, 0, 0), RGB(0.25, 0, 0)) {
		t.Error("difference equal to tolerance must not match")
	}
}

func TestComparerNotTransitive(t *testing.T) {
	c := Comparer{Tolerance: 0.05}
	a, b, d := RGB(0.5, 0.5, 0.5), RGB(0.54, 0.5, 0.5), RGB(0.58, 0.5, 0.5)
	if !c.Equal(a, b) || !c.Equal(b, d) {
		t.Fatal("neighbours should match")
	}
	if c.Equal(a, d) {
		t.Error("a and d are 0.08 apart and must not match")
	}
}

func TestComparerHash(t *testing.T) {
	c := Comparer{Tolerance: 0.05}
	if got, want := c.Hash(RGB(0.5, 0.25, 0.1)), int64(10*1_000_000+5*1_000+2); got != want {
		t.Errorf("Hash = %d, want %d", got, want)
	}
	if c.Hash(RGB(0.5, 0.5, 0.5)) != c.Hash(RGB(0.51, 0.49, 0.5)) {
		t.Error("close colors should usually share a cell")
	}
}

func TestBucketColorsEmpty(t *testing.T) {
	got, err := BucketColors(nil, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no buckets, got %v", got)
	}
}

func TestBucketColorsInvalidTolerance(t *testing.T) {
	for _, tol := range []float64{0, -0.1} {
		_, err := BucketColors([]Color{red}, tol)
		if !errors.Is(err, ErrInvalidTolerance) {
			t.Errorf("tolerance %v: got err %v, want ErrInvalidTolerance", tol, err)
		}
	}
}

func TestBucketColorsFirstMatchWins(t *testing.T) {
	// b is close to both a and c, but a was created first.
	a := RGB(0.50, 0.5, 0.5)
	c := RGB(0.58, 0.5, 0.5)
	b := RGB(0.54, 0.5, 0.5)

	got, err := BucketColors([]Color{a, c, b, b}, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	want := []Bucket{
		{Color: a, Count: 3},
		{Color: c, Count: 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("buckets mismatch (-want +got):\n%s", d)
	}
}

func TestBucketColorsRepresentativeIsFirstSample(t *testing.T) {
	first := RGB(0.2, 0.2, 0.2)
	got, err := BucketColors([]Color{first, RGB(0.23, 0.2, 0.2), RGB(0.17, 0.21, 0.2)}, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Color != first || got[0].Count != 3 {
		t.Errorf("got %v, want one bucket of 3 represented by %v", got, first)
	}
}

func TestBucketerPartition(t *testing.T) {
	samples := randomSamples(rand.New(rand.NewSource(7)), 2000)
	for _, tol := range []float64{0.01, 0.05, 0.2} {
		b, err := NewBucketer(tol, false)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range samples {
			b.Add(c)
		}
		sum := 0
		for _, bk := range b.Buckets() {
			if bk.Count <= 0 {
				t.Errorf("tol %v: bucket with count %d", tol, bk.Count)
			}
			sum += bk.Count
		}
		if b.Len() != len(b.Buckets()) {
			t.Errorf("tol %v: Len %d, %d buckets", tol, b.Len(), len(b.Buckets()))
		}
		if sum != len(samples) || b.Total() != len(samples) {
			t.Errorf("tol %v: counts sum to %d (Total %d), want %d", tol, sum, b.Total(), len(samples))
		}
	}
}

func TestBucketerIndexedMatchesLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	samples := randomSamples(rng, 5000)
	for _, tol := range []float64{0.004, 0.02, 0.05, 0.1, 0.3} {
		linear, err := bucketColors(samples, tol, false)
		if err != nil {
			t.Fatal(err)
		}
		indexed, err := bucketColors(samples, tol, true)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(linear, indexed); d != "" {
			t.Errorf("tol %v: indexed result differs from linear scan (-linear +indexed):\n%s", tol, d)
		}
	}
}

func TestBucketCountShrinksWithTolerance(t *testing.T) {
	// Six well separated base colors, each with three shades 0.004 apart.
	var samples []Color
	for _, base := range []Color{red, green, blue, black, white, gray} {
		for _, off := range []float64{0, 0.004, 0.008} {
			c := base
			if c.G >= 0.5 {
				c.G -= off
			} else {
				c.G += off
			}
			samples = append(samples, c, c)
		}
	}

	tests := []struct {
		tol  float64
		want int
	}{
		{0.001, 18},
		{0.02, 6},
		{0.05, 6},
		{0.1, 6},
	}
	prev := len(samples)
	for _, tt := range tests {
		got, err := BucketColors(samples, tt.tol)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("tol %v: %d buckets, want %d", tt.tol, len(got), tt.want)
		}
		if len(got) > prev {
			t.Errorf("tol %v: bucket count grew from %d to %d", tt.tol, prev, len(got))
		}
		prev = len(got)
	}
}

// randomSamples draws from a small sprite-like palette with 8-bit jitter so
// that buckets are both merged and split across tolerances.
func randomSamples(rng *rand.Rand, n int) []Color {
	base := []Color{red, green, blue, black, white, gray, RGB(0.8, 0.6, 0.2), RGB(0.1, 0.4, 0.35)}
	out := make([]Color, n)
	for i := range out {
		c := base[rng.Intn(len(base))]
		out[i] = RGB(jitter(rng, c.R), jitter(rng, c.G), jitter(rng, c.B))
	}
	return out
}

func jitter(rng *rand.Rand, v float64) float64 {
	q := int(v*255) + rng.Intn(25) - 12
	if q < 0 {
		q = 0
	}
	if q > 255 {
		q = 255
	}
	return float64(q) / 255
}
