// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"github.com/katalvlaran/fieldprof/matrix"
)

// Field is an immutable, uniformly (or at least monotonically) sampled 2-D
// scalar field with physical coordinate axes.
//
// Invariants:
//   - samples is rows×cols with rows == len(y) and cols == len(x);
//   - x and y are finite and strictly monotonic;
//   - nothing reachable from the public surface can mutate samples or axes.
//
// NaN samples are allowed and mark masked points (e.g. outside an aperture).
// A Field is safe for concurrent readers.
type Field struct {
	samples  *matrix.Dense
	x, y     []float64
	xm, ym   axisMeta
	producer Producer
}

// Option configures a Field at construction.
type Option func(*Field)

// WithProducer tags the field with the pipeline stage that produced it.
func WithProducer(p Producer) Option {
	return func(f *Field) { f.producer = p }
}

// New builds a Field from a sample grid and its axes. The grid and the axes
// are deep-copied; later writes by the caller are not observed.
//
// Errors:
//   - ErrNilSamples for a nil grid.
//   - ErrShapeMismatch when rows != len(y) or cols != len(x).
//   - ErrNonFiniteAxis / ErrAxisNotMonotonic for malformed axes.
//   - matrix.ErrNaNInf when a sample is ±Inf.
func New(samples *matrix.Dense, x, y []float64, opts ...Option) (*Field, error) {
	if samples == nil {
		return nil, fmt.Errorf("field.New: %w", ErrNilSamples)
	}
	rows, cols := samples.Shape()
	if len(y) != rows || len(x) != cols {
		return nil, fmt.Errorf("field.New: samples %dx%d, len(y)=%d, len(x)=%d: %w",
			rows, cols, len(y), len(x), ErrShapeMismatch)
	}
	if err := validateAxis("x", x); err != nil {
		return nil, fmt.Errorf("field.New: %w", err)
	}
	if err := validateAxis("y", y); err != nil {
		return nil, fmt.Errorf("field.New: %w", err)
	}

	// Re-ingest under the masked-sample policy: NaN admitted, ±Inf rejected.
	owned, err := matrix.NewDenseFrom(rows, cols, samples.Values(), matrix.WithAllowNaN())
	if err != nil {
		return nil, fmt.Errorf("field.New: %w", err)
	}

	f := &Field{
		samples: owned,
		x:       append([]float64(nil), x...),
		y:       append([]float64(nil), y...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.xm = describeAxis(f.x)
	f.ym = describeAxis(f.y)

	return f, nil
}

// FromRows builds a Field from rows[i][j] (row i ↔ y[i], column j ↔ x[j]).
// Ragged rows or a row count that disagrees with y report ErrShapeMismatch.
func FromRows(rows [][]float64, x, y []float64, opts ...Option) (*Field, error) {
	m, err := matrix.FromRows(rows, matrix.WithAllowNaN())
	if err != nil {
		return nil, fmt.Errorf("field.FromRows: %w: %w", ErrShapeMismatch, err)
	}

	return New(m, x, y, opts...)
}

// Shape returns (rows, cols) == (len(y), len(x)).
func (f *Field) Shape() (rows, cols int) { return f.samples.Shape() }

// X returns a copy of the x-axis coordinates.
func (f *Field) X() []float64 { return append([]float64(nil), f.x...) }

// Y returns a copy of the y-axis coordinates.
func (f *Field) Y() []float64 { return append([]float64(nil), f.y...) }

// Value returns the sample at (row, col).
// Errors: matrix.ErrOutOfRange.
func (f *Field) Value(row, col int) (float64, error) { return f.samples.At(row, col) }

// Row returns a copy of the samples at y[i].
func (f *Field) Row(i int) ([]float64, error) { return f.samples.Row(i) }

// Col returns a copy of the samples at x[j].
func (f *Field) Col(j int) ([]float64, error) { return f.samples.Col(j) }

// Samples returns a deep copy of the sample grid.
func (f *Field) Samples() *matrix.Dense { return f.samples.CloneDense() }

// Do visits every sample in row-major order with its physical coordinates.
// Returning false stops the sweep.
func (f *Field) Do(fn func(x, y, v float64) bool) {
	f.samples.Do(func(i, j int, v float64) bool {
		return fn(f.x[j], f.y[i], v)
	})
}

// Spacing returns the mean sample spacing along x and y (0 for single-sample axes).
func (f *Field) Spacing() (dx, dy float64) { return f.xm.spacing, f.ym.spacing }

// Uniform reports whether each axis is uniformly spaced.
func (f *Field) Uniform() (x, y bool) { return f.xm.uniform, f.ym.uniform }

// Extent returns the covered coordinate range.
func (f *Field) Extent() (xmin, xmax, ymin, ymax float64) {
	return f.xm.min, f.xm.max, f.ym.min, f.ym.max
}

// Producer returns the producer tag (Generic unless WithProducer was given).
func (f *Field) Producer() Producer { return f.producer }

// NearestCol returns the column whose x coordinate is closest to x.
func (f *Field) NearestCol(x float64) int { return nearestIndex(f.x, x) }

// NearestRow returns the row whose y coordinate is closest to y.
func (f *Field) NearestRow(y float64) int { return nearestIndex(f.y, y) }

// LocateX brackets x between columns i and i+1, with t the fractional offset
// from x[i]. inside is false (and i, t are clamped to the nearest edge) when
// x is outside the covered range.
func (f *Field) LocateX(x float64) (i int, t float64, inside bool) { return locate(f.x, f.xm.asc, x) }

// LocateY is LocateX for the y-axis (rows).
func (f *Field) LocateY(y float64) (i int, t float64, inside bool) { return locate(f.y, f.ym.asc, y) }

// Ascending reports the direction of each axis.
func (f *Field) Ascending() (x, y bool) { return f.xm.asc, f.ym.asc }

// Transpose returns the field with its axes swapped: sample (i, j) at
// (x_j, y_i) moves to (j, i) at (y_i, x_j). The producer is kept.
// The y profile of f equals the x profile of f.Transpose().
func (f *Field) Transpose() *Field {
	t, _ := matrix.Transpose(f.samples) // samples is never nil

	return &Field{
		samples:  t,
		x:        append([]float64(nil), f.y...),
		y:        append([]float64(nil), f.x...),
		xm:       f.ym,
		ym:       f.xm,
		producer: f.producer,
	}
}
