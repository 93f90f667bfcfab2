// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/katalvlaran/fieldprof/internal/config"
	"github.com/katalvlaran/fieldprof/profile"
	"github.com/katalvlaran/fieldprof/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Profile flags
var (
	profKinds    []string
	profBins     int
	profTwoSided bool
	profProducer string

	styleWidths  []float64
	styleAlphas  []float64
	styleZOrders []int

	logX, logY       bool
	invertX, invertY bool
	xLim, yLim       []float64
	noLegend         bool
	noLabels         bool
)

// profileCmd extracts named profiles from each input
var profileCmd = &cobra.Command{
	Use:   "profile [files...]",
	Short: "Extract and render named profiles",
	Long: `Extracts the requested profiles from every input and renders them.

Inputs are processed concurrently, each with its own extractor; output keeps
the argument order.

Example:
  fieldprof profile --kinds x,azavg,azstd psf.json
  fieldprof profile --kinds azavg --log-y --alpha 0.5 a.yaml b.yaml`,
	RunE: runProfile,
}

func init() {
	f := profileCmd.Flags()
	f.StringSliceVarP(&profKinds, "kinds", "k", nil, "Profile names (default from config)")
	f.IntVar(&profBins, "bins", profile.DefaultBins, "Radial bins (0 = automatic)")
	f.BoolVar(&profTwoSided, "two-sided", true, "Cartesian profiles over the full axis (default by producer)")
	f.StringVar(&profProducer, "producer", "", "Producer of inputs that do not name one")
	f.Float64SliceVar(&styleWidths, "line-width", nil, "Line width, one or one per profile")
	f.Float64SliceVar(&styleAlphas, "alpha", nil, "Opacity, one or one per profile (0 hides)")
	f.IntSliceVar(&styleZOrders, "zorder", nil, "Z-order, one or one per profile")
	f.BoolVar(&logX, "log-x", false, "Logarithmic coordinate axis")
	f.BoolVar(&logY, "log-y", false, "Logarithmic value axis")
	f.BoolVar(&invertX, "invert-x", false, "Invert the coordinate axis")
	f.BoolVar(&invertY, "invert-y", false, "Invert the value axis")
	f.Float64SliceVar(&xLim, "xlim", nil, "Coordinate axis limits lo,hi")
	f.Float64SliceVar(&yLim, "ylim", nil, "Value axis limits lo,hi")
	f.BoolVar(&noLegend, "no-legend", false, "Omit series identification")
	f.BoolVar(&noLabels, "no-labels", false, "Omit axis labels")
	addGaussianFlags(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	start := time.Now()
	applyProfileFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	plotOpts, err := plotOptions()
	if err != nil {
		return err
	}

	ins := inputsFor(args)
	outs := make([]bytes.Buffer, len(ins))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range ins {
		i, in := i, in
		g.Go(func() error {
			return renderInput(ctx, in, names, plotOpts, &outs[i])
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i := range outs {
		if len(ins) > 1 && cfg.Output.Format != config.FormatJSON {
			if _, err = fmt.Fprintf(w, "# %s\n", ins[i].name); err != nil {
				return err
			}
		}
		if _, err = w.Write(outs[i].Bytes()); err != nil {
			return err
		}
	}
	logger.Info("profiles rendered",
		zap.Int("inputs", len(ins)),
		zap.Strings("kinds", names),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// renderInput runs one input through its own extractor and renderer.
func renderInput(ctx context.Context, in input, names []string, opts []render.Option, w io.Writer) error {
	log := logger.With(zap.String("input", in.name))
	f, err := in.load()
	if err != nil {
		return err
	}
	e, err := profile.New(f, append(cfg.ProfileOptions(), profile.WithLogger(log))...)
	if err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	p, err := render.NewPlot(e, names, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	if err = newRenderer(cfg.Output.Format, w).Render(ctx, p); err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	rows, cols := f.Shape()
	log.Debug("input rendered",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Stringer("producer", f.Producer()),
		zap.Bool("two_sided", e.TwoSided()))

	return nil
}

func newRenderer(format string, w io.Writer) render.Renderer {
	switch format {
	case config.FormatJSON:
		return &render.JSONRenderer{W: w}
	case config.FormatCSV:
		return &render.TableRenderer{W: w}
	default:
		return &render.TableRenderer{W: w, Comma: '\t'}
	}
}

// applyProfileFlags overlays explicitly set flags on cfg.
func applyProfileFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("kinds") {
		cfg.Profile.Kinds = profKinds
	}
	if flags.Changed("bins") {
		cfg.Profile.Bins = profBins
	}
	if flags.Changed("two-sided") {
		ts := profTwoSided
		cfg.Profile.TwoSided = &ts
	}
	if flags.Changed("producer") {
		cfg.Profile.Producer = profProducer
	}
}

func plotOptions() ([]render.Option, error) {
	opts := []render.Option{
		render.WithLineWidths(styleWidths...),
		render.WithAlphas(styleAlphas...),
		render.WithZOrders(styleZOrders...),
		render.WithLegend(!noLegend),
		render.WithLabels(!noLabels),
	}
	axes := []struct {
		axis   render.Axis
		log    bool
		invert bool
		lim    []float64
	}{
		{render.AxisX, logX, invertX, xLim},
		{render.AxisY, logY, invertY, yLim},
	}
	for _, a := range axes {
		if a.log {
			opts = append(opts, render.WithScale(a.axis, render.Log))
		}
		if a.invert {
			opts = append(opts, render.WithInvert(a.axis))
		}
		switch len(a.lim) {
		case 0:
		case 2:
			opts = append(opts, render.WithLimits(a.axis, a.lim[0], a.lim[1]))
		default:
			return nil, fmt.Errorf("%s limits need 2 values, got %d: %w", a.axis, len(a.lim), render.ErrInvalidLimits)
		}
	}

	return opts, nil
}
