// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fieldprof/field"
)

// Sampler returns field values at arbitrary coordinates by interpolation.
// It holds only a reference to the field and its configuration, so it is
// safe for concurrent use.
type Sampler struct {
	f          *field.Field
	rows, cols int
	method     Method
	bounds     BoundsMode
}

// New builds a Sampler over f. Errors: ErrNilField.
func New(f *field.Field, opts ...Option) (*Sampler, error) {
	if f == nil {
		return nil, fmt.Errorf("sampler.New: %w", ErrNilField)
	}
	o := gatherOptions(opts...)
	rows, cols := f.Shape()

	return &Sampler{f: f, rows: rows, cols: cols, method: o.method, bounds: o.bounds}, nil
}

// Method returns the configured interpolation kernel.
func (s *Sampler) Method() Method { return s.method }

// Bounds returns the configured out-of-range policy.
func (s *Sampler) Bounds() BoundsMode { return s.bounds }

// At interpolates the field at (x, y).
//
// Errors: ErrOutOfBounds for NaN/±Inf coordinates, and for coordinates outside
// the covered range when the bounds mode is Fail.
func (s *Sampler) At(x, y float64) (float64, error) {
	if nonFinite(x) || nonFinite(y) {
		return 0, fmt.Errorf("Sampler.At(%g, %g): %w", x, y, ErrOutOfBounds)
	}
	j, tj, inX := s.f.LocateX(x)
	i, ti, inY := s.f.LocateY(y)
	if s.bounds == Fail && !(inX && inY) {
		xmin, xmax, ymin, ymax := s.f.Extent()
		return 0, fmt.Errorf("Sampler.At(%g, %g): covered x∈[%g, %g], y∈[%g, %g]: %w",
			x, y, xmin, xmax, ymin, ymax, ErrOutOfBounds)
	}

	return kernels[s.method](s, i, ti, j, tj), nil
}

// Polar interpolates the field at radius r and angle deg (degrees,
// counter-clockwise from +x): x = r·cos θ, y = r·sin θ.
func (s *Sampler) Polar(r, deg float64) (float64, error) {
	x, y := toCartesian(r, deg)
	v, err := s.At(x, y)
	if err != nil {
		return 0, fmt.Errorf("Sampler.Polar(%g, %g°): %w", r, deg, err)
	}

	return v, nil
}

// ExactX samples along the x-axis at y = 0; one value per coordinate.
func (s *Sampler) ExactX(xs ...float64) ([]float64, error) {
	return s.ExactXY(xs, nil)
}

// ExactY samples along the y-axis at x = 0; one value per coordinate.
func (s *Sampler) ExactY(ys ...float64) ([]float64, error) {
	if len(ys) == 0 {
		return []float64{}, nil
	}

	return s.ExactXY([]float64{0}, ys)
}

// ExactXY samples at paired coordinates.
//
// Pairing:
//   - ys empty: y = 0 for every x.
//   - equal lengths: zipped pairwise (xs[k], ys[k]).
//   - one side of length 1: that value is repeated to the other's length.
//   - anything else: ErrShapeMismatch. Sequences are never expanded to a
//     Cartesian product.
func (s *Sampler) ExactXY(xs, ys []float64) ([]float64, error) {
	if len(ys) == 0 {
		ys = []float64{0}
	}
	n, err := pairLen(len(xs), len(ys))
	if err != nil {
		return nil, fmt.Errorf("Sampler.ExactXY: %w", err)
	}
	out := make([]float64, n)
	for k := range out {
		if out[k], err = s.At(pick(xs, k), pick(ys, k)); err != nil {
			return nil, fmt.Errorf("Sampler.ExactXY[%d]: %w", k, err)
		}
	}

	return out, nil
}

// ExactPolar samples at paired polar coordinates (degrees). Pairing follows
// ExactXY; degs empty means 0°.
func (s *Sampler) ExactPolar(rs, degs []float64) ([]float64, error) {
	if len(degs) == 0 {
		degs = []float64{0}
	}
	n, err := pairLen(len(rs), len(degs))
	if err != nil {
		return nil, fmt.Errorf("Sampler.ExactPolar: %w", err)
	}
	out := make([]float64, n)
	for k := range out {
		if out[k], err = s.Polar(pick(rs, k), pick(degs, k)); err != nil {
			return nil, fmt.Errorf("Sampler.ExactPolar[%d]: %w", k, err)
		}
	}

	return out, nil
}

// node reads sample (i, j) with both indices clamped into the grid.
func (s *Sampler) node(i, j int) float64 {
	// Clamped indices are always in range; Value cannot fail.
	v, _ := s.f.Value(clamp(i, s.rows), clamp(j, s.cols))

	return v
}

func clamp(i, n int) int { return min(max(i, 0), n-1) }

// pairLen returns the broadcast length of two coordinate sequences.
func pairLen(a, b int) (int, error) {
	switch {
	case a == b, b == 1:
		return a, nil
	case a == 1:
		return b, nil
	}

	return 0, fmt.Errorf("lengths %d and %d: %w", a, b, ErrShapeMismatch)
}

// pick returns s[k], or s[0] for a broadcast length-1 sequence.
func pick(s []float64, k int) float64 {
	if len(s) == 1 {
		return s[0]
	}

	return s[k]
}

func toCartesian(r, deg float64) (x, y float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)

	return r * cos, r * sin
}

func nonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
