// SPDX-License-Identifier: MIT

// Sampler configuration: interpolation method and out-of-range policy.
//
// Defaults:
//   - Method: Bilinear.
//   - Bounds: Saturate (clamp to the nearest edge value).

package sampler

import (
	"fmt"
	"strings"
)

// Method selects the interpolation kernel.
type Method int

const (
	// Nearest returns the value of the closest grid node.
	Nearest Method = iota
	// Bilinear blends the 2×2 neighborhood; exact at grid nodes.
	Bilinear
	// Bicubic applies Catmull-Rom weights over the 4×4 neighborhood,
	// clamping indices at the edges; exact at grid nodes.
	Bicubic

	methodCount
)

var methodNames = [methodCount]string{
	Nearest:  "nearest",
	Bilinear: "bilinear",
	Bicubic:  "bicubic",
}

func (m Method) String() string {
	if m < 0 || m >= methodCount {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a method name (case-insensitive). Errors: ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m := Nearest; m < methodCount; m++ {
		if methodNames[m] == n {
			return m, nil
		}
	}

	return DefaultMethod, fmt.Errorf("ParseMethod(%q): %w", name, ErrUnknownMethod)
}

// BoundsMode selects the behavior for coordinates outside the covered range.
type BoundsMode int

const (
	// Saturate clamps the coordinate to the covered range and returns the edge value.
	Saturate BoundsMode = iota
	// Fail rejects the coordinate with ErrOutOfBounds.
	Fail

	boundsCount
)

var boundsNames = [boundsCount]string{
	Saturate: "saturate",
	Fail:     "fail",
}

func (b BoundsMode) String() string {
	if b < 0 || b >= boundsCount {
		return fmt.Sprintf("BoundsMode(%d)", int(b))
	}

	return boundsNames[b]
}

// ParseBounds resolves a bounds mode name (case-insensitive). Errors: ErrUnknownBounds.
func ParseBounds(name string) (BoundsMode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for b := Saturate; b < boundsCount; b++ {
		if boundsNames[b] == n {
			return b, nil
		}
	}

	return DefaultBounds, fmt.Errorf("ParseBounds(%q): %w", name, ErrUnknownBounds)
}

const (
	// DefaultMethod is the interpolation used when WithMethod is not given.
	DefaultMethod = Bilinear
	// DefaultBounds is the out-of-range policy used when WithBounds is not given.
	DefaultBounds = Saturate
)

const (
	panicMethodInvalid = "sampler: WithMethod: unknown method"
	panicBoundsInvalid = "sampler: WithBounds: unknown bounds mode"
)

// Option configures a Sampler.
type Option func(*Options)

// Options holds the resolved Sampler configuration.
type Options struct {
	method Method
	bounds BoundsMode
}

// WithMethod selects the interpolation kernel. Panics on an undeclared Method.
func WithMethod(m Method) Option {
	if m < 0 || m >= methodCount {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithBounds selects the out-of-range policy. Panics on an undeclared BoundsMode.
func WithBounds(b BoundsMode) Option {
	if b < 0 || b >= boundsCount {
		panic(panicBoundsInvalid)
	}

	return func(o *Options) { o.bounds = b }
}

func gatherOptions(opts ...Option) Options {
	o := Options{method: DefaultMethod, bounds: DefaultBounds}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
