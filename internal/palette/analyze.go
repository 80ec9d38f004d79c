package palette

import "fmt"

// PixelSource supplies the visible samples of an image region, alpha forced
// to 1, in row-major order.
type PixelSource interface {
	VisibleOpaqueColors(cutoff float64) ([]Color, error)
}

// IsColorDominant buckets already visible, opaque samples and reports
// whether target occupies more than limit percent of them.
func IsColorDominant(samples []Color, target Color, tolerance, limit float64) (bool, error) {
	buckets, err := BucketColors(samples, tolerance)
	if err != nil {
		return false, err
	}
	return IsDominant(NewReport(buckets), target, tolerance, limit)
}

// Analyze reads samples from src and builds their occupancy report.
func Analyze(src PixelSource, p Params) (Report, error) {
	if err := p.Validate(); err != nil {
		return Report{}, err
	}
	samples, err := src.VisibleOpaqueColors(p.AlphaCutoff)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read pixels: %w", err)
	}
	buckets, err := bucketColors(samples, p.Tolerance, p.Indexed)
	if err != nil {
		return Report{}, err
	}
	return NewReport(buckets), nil
}

// IsSourceColorDominant is Analyze followed by IsDominant.
func IsSourceColorDominant(src PixelSource, target Color, limit float64, p Params) (bool, error) {
	if !(limit >= 0 && limit <= 100) {
		return false, fmt.Errorf("%w: got %v", ErrInvalidLimit, limit)
	}
	r, err := Analyze(src, p)
	if err != nil {
		return false, err
	}
	return IsDominant(r, target, p.Tolerance, limit)
}
