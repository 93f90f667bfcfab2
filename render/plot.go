// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/fieldprof/profile"
)

// Source resolves a profile by name. *profile.Extractor satisfies it.
type Source interface {
	ByName(name string) (profile.Profile, error)
}

// Renderer draws a Plot onto some output.
type Renderer interface {
	Render(ctx context.Context, p *Plot) error
}

// Axis selects a plot axis.
type Axis int

const (
	// AxisX is the coordinate axis.
	AxisX Axis = iota
	// AxisY is the value axis.
	AxisY

	axisCount
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}

	return fmt.Sprintf("Axis(%d)", int(a))
}

// Scale is an axis scale mode.
type Scale int

const (
	// Linear is the default axis scale.
	Linear Scale = iota
	// Log plots log10 of the axis quantity; non-positive points are dropped.
	Log
)

func (s Scale) String() string {
	if s == Log {
		return "log"
	}

	return "linear"
}

// ParseScale resolves "linear" or "log" (case-insensitive).
func ParseScale(name string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "":
		return Linear, nil
	case "log":
		return Log, nil
	}

	return Linear, fmt.Errorf("ParseScale(%q): %w", name, ErrUnknownScale)
}

// Style is the per-series drawing style.
type Style struct {
	LineWidth float64 `json:"line_width"`
	Alpha     float64 `json:"alpha"`
	ZOrder    int     `json:"z_order"`
}

// Default style values.
const (
	DefaultLineWidth = 1.5
	DefaultAlpha     = 1.0
	DefaultZOrder    = 0
)

// Series is one named profile with its resolved style.
type Series struct {
	Name    string
	Profile profile.Profile
	Style   Style
}

// Limits is an axis range; Set is false when the axis auto-scales.
type Limits struct {
	Lo, Hi float64
	Set    bool
}

// Contains reports whether v lies in [Lo, Hi], or true when l is unset.
func (l Limits) Contains(v float64) bool {
	return !l.Set || (v >= l.Lo && v <= l.Hi)
}

type axisOpts struct {
	scale  Scale
	invert bool
	limits Limits
}

// Plot is a fully resolved rendering request: the series in request order
// plus the axis layout.
type Plot struct {
	Series []Series

	axes   [axisCount]axisOpts
	legend bool
	labels bool
}

// Scale returns the scale of axis a.
func (p *Plot) Scale(a Axis) Scale { return p.axes[a].scale }

// Inverted reports whether axis a runs from high to low.
func (p *Plot) Inverted(a Axis) bool { return p.axes[a].invert }

// Limits returns the range of axis a.
func (p *Plot) Limits(a Axis) Limits { return p.axes[a].limits }

// Legend reports whether series are identified.
func (p *Plot) Legend() bool { return p.legend }

// Labels reports whether axis labels are shown.
func (p *Plot) Labels() bool { return p.labels }

// NewPlot resolves names against src and applies opts.
//
// Style lists (WithLineWidths, WithAlphas, WithZOrders) hold either one value,
// applied to every series, or exactly one value per name, matched by
// position. Any other length fails with ErrStyleMismatch.
func NewPlot(src Source, names []string, opts ...Option) (*Plot, error) {
	if src == nil {
		return nil, fmt.Errorf("render.NewPlot: %w", ErrNilSource)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("render.NewPlot: %w", ErrNoProfiles)
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, fmt.Errorf("render.NewPlot: %w", o.err)
	}
	if err := checkStyleLen("line widths", len(o.lineWidths), len(names)); err != nil {
		return nil, fmt.Errorf("render.NewPlot: %w", err)
	}
	if err := checkStyleLen("alphas", len(o.alphas), len(names)); err != nil {
		return nil, fmt.Errorf("render.NewPlot: %w", err)
	}
	if err := checkStyleLen("z-orders", len(o.zorders), len(names)); err != nil {
		return nil, fmt.Errorf("render.NewPlot: %w", err)
	}

	p := &Plot{
		Series: make([]Series, 0, len(names)),
		axes:   o.axes,
		legend: o.legend,
		labels: o.labels,
	}
	for i, name := range names {
		prof, err := src.ByName(name)
		if err != nil {
			return nil, fmt.Errorf("render.NewPlot(%q): %w", name, err)
		}
		p.Series = append(p.Series, Series{
			Name:    name,
			Profile: prof,
			Style: Style{
				LineWidth: pickOr(o.lineWidths, i, DefaultLineWidth),
				Alpha:     pickOr(o.alphas, i, DefaultAlpha),
				ZOrder:    pickOr(o.zorders, i, DefaultZOrder),
			},
		})
	}

	return p, nil
}

func checkStyleLen(what string, got, names int) error {
	if got == 0 || got == 1 || got == names {
		return nil
	}

	return fmt.Errorf("%d %s for %d profiles: %w", got, what, names, ErrStyleMismatch)
}

// pickOr returns vs[i], vs[0] for a uniform list, or def when vs is empty.
func pickOr[T any](vs []T, i int, def T) T {
	switch len(vs) {
	case 0:
		return def
	case 1:
		return vs[0]
	}

	return vs[i]
}

func validLimits(lo, hi float64) bool {
	return !math.IsNaN(lo) && !math.IsNaN(hi) && !math.IsInf(lo, 0) && !math.IsInf(hi, 0) && lo < hi
}

// DrawOrder returns the series sorted by ascending z-order; equal z-orders
// keep request order.
func (p *Plot) DrawOrder() []Series {
	out := slices.Clone(p.Series)
	slices.SortStableFunc(out, func(a, b Series) int { return cmp.Compare(a.Style.ZOrder, b.Style.ZOrder) })

	return out
}

// Visible returns the points of s that survive the axis limits and log
// scales, as fresh slices. NaN values are kept unless the value axis is
// limited or logarithmic.
func (p *Plot) Visible(s Series) (coords, values []float64) {
	ax, ay := p.axes[AxisX], p.axes[AxisY]
	for i, c := range s.Profile.Coords {
		v := s.Profile.Values[i]
		if !ax.limits.Contains(c) || !ay.limits.Contains(v) {
			continue
		}
		if (ax.scale == Log && !(c > 0)) || (ay.scale == Log && !(v > 0)) {
			continue
		}
		coords = append(coords, c)
		values = append(values, v)
	}

	return coords, values
}
