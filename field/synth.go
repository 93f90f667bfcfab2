// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fieldprof/matrix"
)

// FromFunc samples f(x, y) on the grid spanned by the axes.
// f may return NaN to mask a point; ±Inf is rejected with matrix.ErrNaNInf.
func FromFunc(x, y []float64, f func(x, y float64) float64, opts ...Option) (*Field, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("field.FromFunc: len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrShapeMismatch)
	}
	m, err := matrix.NewDense(len(y), len(x), matrix.WithAllowNaN())
	if err != nil {
		return nil, fmt.Errorf("field.FromFunc: %w", err)
	}
	if err = m.Apply(func(i, j int, _ float64) float64 { return f(x[j], y[i]) }); err != nil {
		return nil, fmt.Errorf("field.FromFunc: %w", err)
	}

	return New(m, x, y, opts...)
}

// Radial samples g(r), r = sqrt(x² + y²), on the grid spanned by the axes.
func Radial(x, y []float64, g func(r float64) float64, opts ...Option) (*Field, error) {
	return FromFunc(x, y, func(x, y float64) float64 {
		return g(math.Sqrt(x*x + y*y))
	}, opts...)
}

// Gaussian returns an n×n field of peak·exp(-r²/(2σ²)) on CenteredAxis(n, spacing),
// so the peak sits on the origin grid point. sigma is in axis units.
func Gaussian(n int, spacing, sigma, peak float64, opts ...Option) (*Field, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("field.Gaussian: sigma=%g: %w", sigma, ErrInvalidAxis)
	}
	ax, err := CenteredAxis(n, spacing)
	if err != nil {
		return nil, fmt.Errorf("field.Gaussian: %w", err)
	}
	k := 1 / (2 * sigma * sigma)

	return Radial(ax, ax, func(r float64) float64 { return peak * math.Exp(-r*r*k) }, opts...)
}
