// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the Dense numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - validateNaNInf controls whether Set()/ingestion rejects non-finite values at all.
//   - allowNaN is a narrow exception: NaN is admitted as a "masked sample" marker
//     (unmeasured points outside an aperture, detector dropouts). ±Inf remains
//     rejected under validation even when allowNaN=true.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowNaN admits NaN (but never ±Inf) under validation when true.
	DefaultAllowNaN = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowNaN       bool // DefaultAllowNaN
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation entirely.
// Use only for scratch buffers whose content is sanitized later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowNaN admits NaN as a masked-sample marker while still rejecting ±Inf.
// Implementation:
//   - Stage 1: keep validation on.
//   - Stage 2: flip the NaN exception.
//
// AI-Hints:
//   - This is the policy field.Field uses for its sample grid.
func WithAllowNaN() Option {
	return func(o *Options) {
		o.validateNaNInf = true
		o.allowNaN = true
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowNaN:       DefaultAllowNaN,
	}
}

// gatherOptions applies setters over the defaults in order (last write wins).
// Nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// rejects reports whether v violates the policy described by o.
// Complexity: O(1).
func (o Options) rejects(v float64) bool {
	if !o.validateNaNInf {
		return false
	}
	if isNaN(v) {
		return !o.allowNaN
	}

	return isInf(v)
}
