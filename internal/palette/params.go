package palette

import (
	"encoding/json"
	"fmt"
	"os"
)

// Params configures an analysis.
type Params struct {
	// Maximum per-channel difference (exclusive) for two colors to share a bucket.
	Tolerance float64 `json:"tolerance"`

	// Samples with alpha below this are ignored entirely.
	AlphaCutoff float64 `json:"alpha_cutoff"`

	// Use the hash index instead of a plain linear scan. Results are identical.
	Indexed bool `json:"indexed"`
}

// DefaultParams returns the default analysis parameters.
func DefaultParams() Params {
	return Params{
		Tolerance:   0.05,
		AlphaCutoff: DefaultAlphaCutoff,
	}
}

// WithTolerance returns a copy of p with a different tolerance.
func (p Params) WithTolerance(tolerance float64) Params {
	p.Tolerance = tolerance
	return p
}

// WithAlphaCutoff returns a copy of p with a different visibility cutoff.
func (p Params) WithAlphaCutoff(cutoff float64) Params {
	p.AlphaCutoff = cutoff
	return p
}

// WithIndex returns a copy of p with hash indexing switched on or off.
func (p Params) WithIndex(indexed bool) Params {
	p.Indexed = indexed
	return p
}

// Validate checks p for contract violations.
func (p Params) Validate() error {
	if !(p.Tolerance > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidTolerance, p.Tolerance)
	}
	if !(p.AlphaCutoff >= 0 && p.AlphaCutoff <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidCutoff, p.AlphaCutoff)
	}
	return nil
}

// Save writes the parameters to a JSON file.
func (p Params) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadParams reads parameters from a JSON file. Fields missing from the file
// keep their default values.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("unmarshal params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("params %s: %w", path, err)
	}
	return p, nil
}
