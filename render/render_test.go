// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/fieldprof/field"
	"github.com/katalvlaran/fieldprof/profile"
	"github.com/katalvlaran/fieldprof/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves fixed profiles by name.
type fakeSource map[string]profile.Profile

func (f fakeSource) ByName(name string) (profile.Profile, error) {
	p, ok := f[name]
	if !ok {
		return profile.Profile{}, profile.ErrUnknownProfile
	}

	return p.Clone(), nil
}

func testSource() fakeSource {
	return fakeSource{
		"x":     {Kind: profile.X, Coords: []float64{-1, 0, 1}, Values: []float64{0.5, 1, 0.5}},
		"azavg": {Kind: profile.AzAvg, Coords: []float64{0.5, 1.5}, Values: []float64{0.9, 0}},
	}
}

func TestNewPlot_Errors(t *testing.T) {
	_, err := render.NewPlot(nil, []string{"x"})
	require.ErrorIs(t, err, render.ErrNilSource)

	_, err = render.NewPlot(testSource(), nil)
	require.ErrorIs(t, err, render.ErrNoProfiles)

	_, err = render.NewPlot(testSource(), []string{"x", "diagonal"})
	require.ErrorIs(t, err, profile.ErrUnknownProfile)

	_, err = render.NewPlot(testSource(), []string{"x"}, render.WithLimits(render.AxisX, 1, 1))
	require.ErrorIs(t, err, render.ErrInvalidLimits)
	_, err = render.NewPlot(testSource(), []string{"x"}, render.WithLimits(render.AxisY, math.NaN(), 1))
	require.ErrorIs(t, err, render.ErrInvalidLimits)

	assert.Panics(t, func() { render.WithInvert(render.Axis(5)) })
}

func TestNewPlot_StyleBroadcast(t *testing.T) {
	names := []string{"x", "azavg"}

	tests := []struct {
		name    string
		opts    []render.Option
		want    []render.Style
		wantErr bool
	}{
		{
			name: "defaults",
			want: []render.Style{
				{LineWidth: render.DefaultLineWidth, Alpha: render.DefaultAlpha},
				{LineWidth: render.DefaultLineWidth, Alpha: render.DefaultAlpha},
			},
		},
		{
			name: "uniform",
			opts: []render.Option{render.WithLineWidths(3), render.WithAlphas(0.4), render.WithZOrders(2)},
			want: []render.Style{{LineWidth: 3, Alpha: 0.4, ZOrder: 2}, {LineWidth: 3, Alpha: 0.4, ZOrder: 2}},
		},
		{
			name: "positional",
			opts: []render.Option{render.WithLineWidths(1, 2), render.WithZOrders(5, -1)},
			want: []render.Style{{LineWidth: 1, Alpha: 1, ZOrder: 5}, {LineWidth: 2, Alpha: 1, ZOrder: -1}},
		},
		{name: "too many widths", opts: []render.Option{render.WithLineWidths(1, 2, 3)}, wantErr: true},
		{name: "too many alphas", opts: []render.Option{render.WithAlphas(1, 1, 1)}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := render.NewPlot(testSource(), names, tc.opts...)
			if tc.wantErr {
				require.ErrorIs(t, err, render.ErrStyleMismatch)
				return
			}
			require.NoError(t, err)
			require.Len(t, p.Series, 2)
			for i, s := range p.Series {
				assert.Equal(t, names[i], s.Name)
				assert.Equal(t, tc.want[i], s.Style)
			}
		})
	}
}

func TestTableRenderer_Default(t *testing.T) {
	p, err := render.NewPlot(testSource(), []string{"x", "azavg"})
	require.NoError(t, err)

	var tr render.TableRenderer
	require.NoError(t, tr.Render(context.Background(), p))
	want := "profile,coord,value\n" +
		"x,-1,0.5\nx,0,1\nx,1,0.5\n" +
		"azavg,0.5,0.9\nazavg,1.5,0\n"
	assert.Equal(t, want, tr.String())
}

func TestTableRenderer_Layout(t *testing.T) {
	p, err := render.NewPlot(testSource(), []string{"x", "azavg"},
		render.WithZOrders(1, 0),
		render.WithScale(render.AxisY, render.Log),
		render.WithLimits(render.AxisX, -0.5, 2),
		render.WithInvert(render.AxisX),
		render.WithLegend(false),
	)
	require.NoError(t, err)
	assert.Equal(t, render.Log, p.Scale(render.AxisY))
	assert.True(t, p.Inverted(render.AxisX))
	assert.False(t, p.Inverted(render.AxisY))
	assert.Equal(t, render.Limits{Lo: -0.5, Hi: 2, Set: true}, p.Limits(render.AxisX))

	var buf bytes.Buffer
	tr := render.TableRenderer{W: &buf, Comma: '\t'}
	require.NoError(t, tr.Render(context.Background(), p))
	// azavg draws first (z=0); its zero value is dropped by the log axis.
	// x loses -1 to the limits; rows run high to low.
	want := "coord\tvalue\n" +
		"0.5\t0.9\n" +
		"1\t0.5\n0\t1\n"
	assert.Equal(t, want, buf.String())
	assert.Empty(t, tr.String(), "external writer bypasses the buffer")
}

func TestTableRenderer_HiddenAndUnlabeled(t *testing.T) {
	p, err := render.NewPlot(testSource(), []string{"x", "azavg"},
		render.WithAlphas(0, 1), render.WithLabels(false))
	require.NoError(t, err)

	var tr render.TableRenderer
	require.NoError(t, tr.Render(context.Background(), p))
	assert.Equal(t, "azavg,0.5,0.9\nazavg,1.5,0\n", tr.String())

	// A second render replaces the buffer.
	require.NoError(t, tr.Render(context.Background(), p))
	assert.Equal(t, "azavg,0.5,0.9\nazavg,1.5,0\n", tr.String())
}

func TestTableRenderer_Canceled(t *testing.T) {
	p, err := render.NewPlot(testSource(), []string{"x"})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var tr render.TableRenderer
	require.ErrorIs(t, tr.Render(ctx, p), context.Canceled)
	require.ErrorIs(t, tr.Render(context.Background(), nil), render.ErrNilPlot)
}

func TestJSONRenderer(t *testing.T) {
	src := testSource()
	src["x"] = profile.Profile{Kind: profile.X, Coords: []float64{0, 1}, Values: []float64{math.NaN(), 2}}
	p, err := render.NewPlot(src, []string{"x"}, render.WithLimits(render.AxisX, 0, 5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&render.JSONRenderer{W: &buf}).Render(context.Background(), p))

	var doc struct {
		Series []struct {
			Name   string     `json:"name"`
			Coords []float64  `json:"coords"`
			Values []*float64 `json:"values"`
			Style  struct {
				LineWidth float64 `json:"line_width"`
			} `json:"style"`
		} `json:"series"`
		X struct {
			Scale  string    `json:"scale"`
			Limits []float64 `json:"limits"`
		} `json:"x"`
		Legend bool `json:"legend"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Series, 1)
	assert.Equal(t, []float64{0, 1}, doc.Series[0].Coords)
	assert.Nil(t, doc.Series[0].Values[0], "NaN encodes as null")
	assert.Equal(t, 2.0, *doc.Series[0].Values[1])
	assert.Equal(t, render.DefaultLineWidth, doc.Series[0].Style.LineWidth)
	assert.Equal(t, "linear", doc.X.Scale)
	assert.Equal(t, []float64{0, 5}, doc.X.Limits)
	assert.True(t, doc.Legend)

	require.ErrorIs(t, (&render.JSONRenderer{}).Render(context.Background(), p), render.ErrNilWriter)
}

func TestJSONRenderer_HiddenSeries(t *testing.T) {
	p, err := render.NewPlot(testSource(), []string{"x", "azavg"}, render.WithAlphas(0, 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&render.JSONRenderer{W: &buf}).Render(context.Background(), p))

	var doc struct {
		Series []struct {
			Name string `json:"name"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Series, 1)
	assert.Equal(t, "azavg", doc.Series[0].Name)
}

// TestExtractorAsSource renders real profiles of a Gaussian field.
func TestExtractorAsSource(t *testing.T) {
	f, err := field.Gaussian(9, 1, 2, 1)
	require.NoError(t, err)
	e, err := profile.New(f)
	require.NoError(t, err)

	p, err := render.NewPlot(e, profile.Names())
	require.NoError(t, err)
	require.Len(t, p.Series, len(profile.Names()))

	var tr render.TableRenderer
	require.NoError(t, tr.Render(context.Background(), p))
	lines := strings.Split(strings.TrimSpace(tr.String()), "\n")
	assert.Equal(t, "profile,coord,value", lines[0])
	assert.Contains(t, lines, "x,0,1")
}

func TestParseScale(t *testing.T) {
	s, err := render.ParseScale("LOG")
	require.NoError(t, err)
	assert.Equal(t, render.Log, s)
	_, err = render.ParseScale("symlog")
	require.ErrorIs(t, err, render.ErrUnknownScale)
}
