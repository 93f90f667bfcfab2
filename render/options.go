// SPDX-License-Identifier: MIT

package render

import "fmt"

const panicAxisInvalid = "render: unknown axis"

// Option configures a Plot.
type Option func(*Options)

// Options collects the raw plot configuration. Style list lengths and limit
// pairs are checked by NewPlot, not by the setters.
type Options struct {
	lineWidths []float64
	alphas     []float64
	zorders    []int
	axes       [axisCount]axisOpts
	legend     bool
	labels     bool
	err        error // first invalid setter argument
}

// WithLineWidths sets one line width for every series, or one per name.
func WithLineWidths(ws ...float64) Option {
	ws = append([]float64(nil), ws...)
	return func(o *Options) { o.lineWidths = ws }
}

// WithAlphas sets one opacity for every series, or one per name.
func WithAlphas(as ...float64) Option {
	as = append([]float64(nil), as...)
	return func(o *Options) { o.alphas = as }
}

// WithZOrders sets one z-order for every series, or one per name.
// Higher z-orders draw on top.
func WithZOrders(zs ...int) Option {
	zs = append([]int(nil), zs...)
	return func(o *Options) { o.zorders = zs }
}

// WithScale sets the scale of axis a. Panics on an unknown Axis.
func WithScale(a Axis, s Scale) Option {
	mustAxis(a)
	return func(o *Options) { o.axes[a].scale = s }
}

// WithInvert runs axis a from high to low. Panics on an unknown Axis.
func WithInvert(a Axis) Option {
	mustAxis(a)
	return func(o *Options) { o.axes[a].invert = true }
}

// WithLimits restricts axis a to [lo, hi]. NewPlot reports ErrInvalidLimits
// unless lo < hi and both are finite. Panics on an unknown Axis.
func WithLimits(a Axis, lo, hi float64) Option {
	mustAxis(a)
	return func(o *Options) {
		if !validLimits(lo, hi) {
			if o.err == nil {
				o.err = fmt.Errorf("%s limits [%g, %g]: %w", a, lo, hi, ErrInvalidLimits)
			}
			return
		}
		o.axes[a].limits = Limits{Lo: lo, Hi: hi, Set: true}
	}
}

// WithLegend toggles series identification (default on).
func WithLegend(on bool) Option {
	return func(o *Options) { o.legend = on }
}

// WithLabels toggles axis labels (default on).
func WithLabels(on bool) Option {
	return func(o *Options) { o.labels = on }
}

func mustAxis(a Axis) {
	if a < 0 || a >= axisCount {
		panic(panicAxisInvalid)
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{legend: true, labels: true}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
