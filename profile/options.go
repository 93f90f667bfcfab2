// SPDX-License-Identifier: MIT

// Functional configuration of an Extractor.
//
// Defaults (single source of truth):
//   - two-sided: keyed by the field's producer, see DefaultTwoSided.
//   - bins: DefaultBins (0 = auto, max(1, min(rows, cols)/2)), clamped to the
//     number of finite samples.
//   - logger: zap.NewNop().
//
// Constructors panic only on nonsensical values (programmer error).

package profile

import (
	"github.com/katalvlaran/fieldprof/field"
	"go.uber.org/zap"
)

// DefaultBins selects the automatic radial bin count.
const DefaultBins = 0

const panicBinsInvalid = "profile: WithBins: bins must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (last write wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	twoSided *bool       // nil → DefaultTwoSided(producer)
	bins     int         // DefaultBins
	logger   *zap.Logger // nil → Nop
}

// WithTwoSided overrides the producer default: true returns Cartesian profiles
// over the full axis, false only over the non-negative half.
// Azimuthal profiles are one-sided by construction and ignore this flag.
func WithTwoSided(twoSided bool) Option {
	return func(o *Options) { o.twoSided = &twoSided }
}

// WithBins sets the number of radial bins spanning [0, r_max].
// 0 selects the automatic count. Panics on negative values.
func WithBins(bins int) Option {
	if bins < 0 {
		panic(panicBinsInvalid)
	}

	return func(o *Options) { o.bins = bins }
}

// WithLogger injects a logger for cache diagnostics (Debug level).
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// DefaultTwoSided is the documented per-producer default:
//
//	generic, pupil, psf, interferogram, convolved → two-sided
//	mtf                                            → one-sided
//
// An MTF is symmetric in frequency and only its non-negative half carries
// information; every spatial-domain producer is shown in full.
func DefaultTwoSided(p field.Producer) bool {
	switch p {
	case field.MTF:
		return false
	default:
		return true
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{bins: DefaultBins}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}
