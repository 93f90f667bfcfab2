// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// uniformTol is the relative deviation of a step from the mean step under
// which an axis is reported as uniform.
const uniformTol = 1e-9

// CenteredAxis returns n coordinates (i - n/2) * spacing, i = 0..n-1.
// The element at index n/2 is exactly 0, so the origin always lies on a grid
// point: n=33, spacing=1 yields -16..16; n=4 yields -2,-1,0,1 (times spacing).
//
// Errors: ErrInvalidAxis when n < 1 or spacing is not finite and positive.
func CenteredAxis(n int, spacing float64) ([]float64, error) {
	if n < 1 || !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("CenteredAxis(%d, %g): %w", n, spacing, ErrInvalidAxis)
	}
	out := make([]float64, n)
	half := n / 2
	for i := range out {
		out[i] = float64(i-half) * spacing
	}

	return out, nil
}

// validateAxis checks finiteness and strict monotonicity.
// A single-element axis is trivially monotonic.
func validateAxis(name string, a []float64) error {
	if floats.HasNaN(a) {
		return fmt.Errorf("%s axis: %w", name, ErrNonFiniteAxis)
	}
	for i, v := range a {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%s axis[%d]: %w", name, i, ErrNonFiniteAxis)
		}
	}
	if len(a) < 2 {
		return nil
	}
	asc := a[1] > a[0]
	for i := 1; i < len(a); i++ {
		if (asc && !(a[i] > a[i-1])) || (!asc && !(a[i] < a[i-1])) {
			return fmt.Errorf("%s axis[%d]: %w", name, i, ErrAxisNotMonotonic)
		}
	}

	return nil
}

// axisMeta is the derived scalar metadata of one axis, computed once.
type axisMeta struct {
	spacing float64 // mean |step|; 0 for single-sample axes
	uniform bool    // every |step| within uniformTol of spacing
	asc     bool    // increasing coordinates
	min     float64
	max     float64
}

func describeAxis(a []float64) axisMeta {
	m := axisMeta{
		uniform: true,
		asc:     len(a) < 2 || a[1] > a[0],
		min:     floats.Min(a),
		max:     floats.Max(a),
	}
	if len(a) < 2 {
		return m
	}
	m.spacing = (m.max - m.min) / float64(len(a)-1)
	for i := 1; i < len(a); i++ {
		if math.Abs(math.Abs(a[i]-a[i-1])-m.spacing) > uniformTol*m.spacing {
			m.uniform = false
			break
		}
	}

	return m
}

// nearestIndex returns the index of the coordinate closest to v; ties keep
// the lower index.
func nearestIndex(a []float64, v float64) int {
	best, bestD := 0, math.Inf(1)
	for i, c := range a {
		if d := math.Abs(c - v); d < bestD {
			best, bestD = i, d
		}
	}

	return best
}

// locate finds the cell [i, i+1] of a monotonic axis bracketing v and the
// fractional position t of v inside it (t=0 at a[i], t=1 at a[i+1]).
// inside is false when v lies outside [min, max]; i and t are then clamped
// to the nearest edge. Single-sample axes return (0, 0, v == a[0]).
func locate(a []float64, asc bool, v float64) (i int, t float64, inside bool) {
	n := len(a)
	if n == 1 {
		return 0, 0, v == a[0]
	}
	k := sort.Search(n, func(k int) bool {
		if asc {
			return a[k] >= v
		}
		return a[k] <= v
	})
	switch {
	case k == 0:
		if v == a[0] {
			return 0, 0, true
		}
		return 0, 0, false
	case k == n:
		return n - 2, 1, false
	}
	i = k - 1
	t = (v - a[i]) / (a[i+1] - a[i])

	return i, t, true
}
