// SPDX-License-Identifier: MIT

package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fieldprof/field"
	"github.com/katalvlaran/fieldprof/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAxis(t *testing.T, n int, spacing float64) []float64 {
	t.Helper()
	ax, err := field.CenteredAxis(n, spacing)
	require.NoError(t, err)

	return ax
}

// TestNew_ShapeMismatch: a 10×8 buffer with an x-axis of length 5 is rejected.
func TestNew_ShapeMismatch(t *testing.T) {
	m, err := matrix.NewDense(10, 8)
	require.NoError(t, err)

	_, err = field.New(m, mustAxis(t, 5, 1), mustAxis(t, 10, 1))
	require.ErrorIs(t, err, field.ErrShapeMismatch)

	_, err = field.New(m, mustAxis(t, 8, 1), mustAxis(t, 9, 1))
	require.ErrorIs(t, err, field.ErrShapeMismatch)

	_, err = field.New(m, mustAxis(t, 8, 1), mustAxis(t, 10, 1))
	require.NoError(t, err)
}

func TestNew_NilSamples(t *testing.T) {
	_, err := field.New(nil, []float64{0}, []float64{0})
	require.ErrorIs(t, err, field.ErrNilSamples)
}

func TestNew_AxisValidation(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	y := []float64{0, 1}

	_, err = field.New(m, []float64{0, 1, 1}, y)
	assert.ErrorIs(t, err, field.ErrAxisNotMonotonic, "repeated coordinate")

	_, err = field.New(m, []float64{0, 2, 1}, y)
	assert.ErrorIs(t, err, field.ErrAxisNotMonotonic, "direction change")

	_, err = field.New(m, []float64{0, math.NaN(), 1}, y)
	assert.ErrorIs(t, err, field.ErrNonFiniteAxis)

	_, err = field.New(m, []float64{0, 1, math.Inf(1)}, y)
	assert.ErrorIs(t, err, field.ErrNonFiniteAxis)

	_, err = field.New(m, []float64{2, 1, 0}, y)
	assert.NoError(t, err, "strictly decreasing axes are legal")
}

func TestFromRows(t *testing.T) {
	f, err := field.FromRows([][]float64{{1, 2, 3}, {4, math.NaN(), 6}}, []float64{-1, 0, 1}, []float64{0, 1})
	require.NoError(t, err, "NaN marks a masked sample")

	rows, cols := f.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	v, err := f.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	v, err = f.Value(1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, err = f.Value(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = field.FromRows([][]float64{{1, 2}, {3}}, []float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, field.ErrShapeMismatch)

	_, err = field.FromRows([][]float64{{1, math.Inf(1)}}, []float64{0, 1}, []float64{0})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestImmutability: neither caller buffers nor returned copies alias the field.
func TestImmutability(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	f, err := field.New(m, x, y)
	require.NoError(t, err)

	x[0] = 99
	require.NoError(t, m.Set(0, 0, 99))
	f.X()[1] = 99
	row, err := f.Row(0)
	require.NoError(t, err)
	row[1] = 99
	require.NoError(t, f.Samples().Set(1, 1, 99))

	assert.Equal(t, []float64{0, 1}, f.X())
	got, err := f.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)
	col, err := f.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, col)
}

func TestMetadata(t *testing.T) {
	f, err := field.FromFunc([]float64{-2, -1, 0, 1, 2}, []float64{3, 1, -1}, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)

	dx, dy := f.Spacing()
	assert.InDelta(t, 1.0, dx, 1e-15)
	assert.InDelta(t, 2.0, dy, 1e-15)

	ux, uy := f.Uniform()
	assert.True(t, ux)
	assert.True(t, uy)

	ax, ay := f.Ascending()
	assert.True(t, ax)
	assert.False(t, ay)

	xmin, xmax, ymin, ymax := f.Extent()
	assert.Equal(t, []float64{-2, 2, -1, 3}, []float64{xmin, xmax, ymin, ymax})

	assert.Equal(t, 2, f.NearestCol(0.2))
	assert.Equal(t, 1, f.NearestRow(0), "y=1 and y=-1 tie; the lower index wins")
	assert.Equal(t, field.Generic, f.Producer())

	nu, err := field.FromFunc([]float64{0, 1, 3}, []float64{0, 1}, func(x, y float64) float64 { return 0 },
		field.WithProducer(field.MTF))
	require.NoError(t, err)
	ux, _ = nu.Uniform()
	assert.False(t, ux)
	assert.Equal(t, field.MTF, nu.Producer())
}

func TestLocate(t *testing.T) {
	f, err := field.FromFunc([]float64{0, 1, 2, 4}, []float64{1, 0, -1}, func(x, y float64) float64 { return 0 })
	require.NoError(t, err)

	i, tt, in := f.LocateX(3)
	assert.Equal(t, 2, i)
	assert.InDelta(t, 0.5, tt, 1e-15)
	assert.True(t, in)

	i, tt, in = f.LocateX(0)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0.0, tt)
	assert.True(t, in)

	i, tt, in = f.LocateX(4)
	assert.Equal(t, 2, i)
	assert.Equal(t, 1.0, tt)
	assert.True(t, in)

	_, _, in = f.LocateX(-0.1)
	assert.False(t, in)
	i, tt, in = f.LocateX(9)
	assert.Equal(t, 2, i)
	assert.Equal(t, 1.0, tt)
	assert.False(t, in)

	// Decreasing y-axis: y=0.25 lies between rows 0 (y=1) and 1 (y=0).
	i, tt, in = f.LocateY(0.25)
	assert.Equal(t, 0, i)
	assert.InDelta(t, 0.75, tt, 1e-15)
	assert.True(t, in)

	_, _, in = f.LocateY(1.5)
	assert.False(t, in)
}

func TestCenteredAxis(t *testing.T) {
	ax := mustAxis(t, 33, 1)
	require.Len(t, ax, 33)
	assert.Equal(t, -16.0, ax[0])
	assert.Equal(t, 0.0, ax[16])
	assert.Equal(t, 16.0, ax[32])

	assert.Equal(t, []float64{-0.5, -0.25, 0, 0.25}, mustAxis(t, 4, 0.25))
	assert.Equal(t, []float64{0}, mustAxis(t, 1, 3))

	for _, tc := range []struct {
		n       int
		spacing float64
	}{{0, 1}, {3, 0}, {3, -1}, {3, math.NaN()}, {3, math.Inf(1)}} {
		_, err := field.CenteredAxis(tc.n, tc.spacing)
		assert.ErrorIs(t, err, field.ErrInvalidAxis, "n=%d spacing=%g", tc.n, tc.spacing)
	}
}

func TestGaussian(t *testing.T) {
	f, err := field.Gaussian(33, 1, 5, 1, field.WithProducer(field.PSF))
	require.NoError(t, err)

	v, err := f.Value(16, 16)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = f.Value(16, 21) // x = 5 = sigma
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-0.5), v, 1e-15)
	assert.Equal(t, field.PSF, f.Producer())

	_, err = field.Gaussian(33, 1, 0, 1)
	assert.ErrorIs(t, err, field.ErrInvalidAxis)
}

func TestFromFunc_Errors(t *testing.T) {
	_, err := field.FromFunc(nil, []float64{0}, func(x, y float64) float64 { return 0 })
	assert.ErrorIs(t, err, field.ErrShapeMismatch)

	_, err = field.FromFunc([]float64{0, 1}, []float64{0}, func(x, y float64) float64 { return math.Inf(1) })
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDo_Coordinates(t *testing.T) {
	f, err := field.FromFunc([]float64{10, 20}, []float64{1, 2}, func(x, y float64) float64 { return x * y })
	require.NoError(t, err)

	var got [][3]float64
	f.Do(func(x, y, v float64) bool {
		got = append(got, [3]float64{x, y, v})
		return true
	})
	assert.Equal(t, [][3]float64{{10, 1, 10}, {20, 1, 20}, {10, 2, 20}, {20, 2, 40}}, got)
}

func TestProducer_Parse(t *testing.T) {
	for _, p := range field.Producers() {
		got, err := field.ParseProducer(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	p, err := field.ParseProducer(" PSF ")
	require.NoError(t, err)
	assert.Equal(t, field.PSF, p)

	p, err = field.ParseProducer("")
	require.NoError(t, err)
	assert.Equal(t, field.Generic, p)

	_, err = field.ParseProducer("hologram")
	assert.ErrorIs(t, err, field.ErrUnknownProducer)
	assert.Equal(t, "Producer(42)", field.Producer(42).String())
}

func TestTranspose(t *testing.T) {
	f, err := field.FromRows([][]float64{
		{1, 2, 3},
		{4, math.NaN(), 6},
	}, []float64{0, 1, 2}, []float64{10, 5}, field.WithProducer(field.PSF))
	require.NoError(t, err)

	tr := f.Transpose()
	rows, cols := tr.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []float64{10, 5}, tr.X())
	assert.Equal(t, []float64{0, 1, 2}, tr.Y())
	assert.Equal(t, field.PSF, tr.Producer())
	ax, ay := tr.Ascending()
	assert.False(t, ax)
	assert.True(t, ay)

	v, err := tr.Value(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	back := tr.Transpose()
	ok, err := matrix.AllClose(f.Samples(), back.Samples(), 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "masked samples survive a round trip")
}
