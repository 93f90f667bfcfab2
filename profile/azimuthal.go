// SPDX-License-Identifier: MIT

// Azimuthal statistics over concentric annuli.
//
// Algorithm:
//  1. r(i,j) = sqrt(x_j² + y_i²) for every sample (cached radius grid).
//  2. r_max = largest radius among finite samples; NaN samples are masked out.
//  3. bins equal-width annuli over [0, r_max]: k = floor(r / w), w = r_max/bins,
//     the outer edge r == r_max belongs to the last bin.
//  4. Each non-empty bin keeps its values sorted ascending (cached).
//  5. A statistic reduces each bin; output pairs are (bin center, statistic)
//     by increasing radius. Empty bins are omitted.
//
// Complexity: cache O(N log N) once; each statistic O(N) afterwards.

package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/fieldprof/field"
	"github.com/katalvlaran/fieldprof/matrix"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// radialCache is the per-Extractor azimuthal precomputation.
type radialCache struct {
	grid    *matrix.Dense // r(i,j), same shape as the field
	rmax    float64
	width   float64     // annulus width (0 when r_max == 0)
	bins    int         // effective bin count after defaulting and clamping
	centers []float64   // bin centers of non-empty bins, increasing
	groups  [][]float64 // sorted finite samples per non-empty bin
}

// reducer turns one sorted, non-empty annulus into a statistic.
type reducer func(sorted []float64) float64

var reducers = [kindCount]reducer{
	AzAvg:    func(s []float64) float64 { return stat.Mean(s, nil) },
	AzMedian: median,
	AzMin:    func(s []float64) float64 { return s[0] },
	AzMax:    func(s []float64) float64 { return s[len(s)-1] },
	AzPV:     func(s []float64) float64 { return s[len(s)-1] - s[0] },
	AzVar:    func(s []float64) float64 { return stat.PopVariance(s, nil) },
	AzStd:    func(s []float64) float64 { return stat.PopStdDev(s, nil) },
}

// median of a sorted slice; even counts average the two middle values.
func median(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

func (e *Extractor) azimuthal(k Kind) (Profile, error) {
	red := reducers[k]
	if red == nil {
		return Profile{}, fmt.Errorf("azimuthal(%s): %w", k, ErrUnknownProfile)
	}
	rc, err := e.radialBins()
	if err != nil {
		return Profile{}, fmt.Errorf("Extractor.Profile(%s): %w", k, err)
	}
	values := make([]float64, len(rc.groups))
	for i, g := range rc.groups {
		values[i] = red(g)
	}

	return Profile{
		Kind:   k,
		Coords: append([]float64(nil), rc.centers...),
		Values: values,
	}, nil
}

// radialBins returns the cache, building it on first use.
func (e *Extractor) radialBins() (*radialCache, error) {
	e.radialOnce.Do(func() {
		e.radial, e.radialErr = buildRadial(e.f, e.bins)
		if e.radialErr == nil {
			e.log.Debug("radial cache built",
				zap.Int("bins", e.radial.bins),
				zap.Int("annuli", len(e.radial.groups)),
				zap.Float64("rmax", e.radial.rmax))
		}
	})

	return e.radial, e.radialErr
}

// effectiveBins applies the default and the sample-count clamp.
func effectiveBins(requested, rows, cols, finite int) int {
	n := requested
	if n == DefaultBins {
		n = min(rows, cols) / 2
	}
	n = max(n, 1)

	return min(n, finite)
}

func buildRadial(f *field.Field, requested int) (*radialCache, error) {
	rows, cols := f.Shape()
	x, y := f.X(), f.Y()

	grid, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = grid.Apply(func(i, j int, _ float64) float64 {
		return math.Sqrt(x[j]*x[j] + y[i]*y[i])
	}); err != nil {
		return nil, err
	}

	radii := make([]float64, 0, rows*cols)
	vals := make([]float64, 0, rows*cols)
	f.Do(func(xc, yc, v float64) bool {
		if !math.IsNaN(v) {
			radii = append(radii, math.Sqrt(xc*xc+yc*yc))
			vals = append(vals, v)
		}
		return true
	})
	if len(vals) == 0 {
		return nil, fmt.Errorf("all %d samples are masked: %w", rows*cols, ErrInsufficientSamples)
	}

	rc := &radialCache{
		grid: grid,
		rmax: floats.Max(radii),
		bins: effectiveBins(requested, rows, cols, len(vals)),
	}
	rc.width = rc.rmax / float64(rc.bins)

	groups := make([][]float64, rc.bins)
	var k int
	for i, r := range radii {
		k = 0
		if rc.width > 0 {
			k = min(int(r/rc.width), rc.bins-1)
		}
		groups[k] = append(groups[k], vals[i])
	}
	for k = range groups {
		if len(groups[k]) == 0 {
			continue
		}
		sort.Float64s(groups[k])
		rc.centers = append(rc.centers, (float64(k)+0.5)*rc.width)
		rc.groups = append(rc.groups, groups[k])
	}

	return rc, nil
}
