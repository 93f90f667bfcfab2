// SPDX-License-Identifier: MIT

package render

import "errors"

// Sentinel errors for plot construction and rendering. Match with errors.Is.
var (
	// ErrStyleMismatch indicates a per-series style list whose length is
	// neither 1 nor the number of profile names.
	ErrStyleMismatch = errors.New("render: style list length mismatch")

	// ErrNilSource indicates a nil Source was passed to NewPlot.
	ErrNilSource = errors.New("render: nil source")

	// ErrNoProfiles indicates an empty profile name list.
	ErrNoProfiles = errors.New("render: no profiles requested")

	// ErrInvalidLimits indicates an axis limit pair with lo >= hi or a
	// non-finite bound.
	ErrInvalidLimits = errors.New("render: invalid axis limits")

	// ErrNilPlot indicates a nil *Plot was passed to a Renderer.
	ErrNilPlot = errors.New("render: nil plot")

	// ErrNilWriter indicates a renderer with no destination writer.
	ErrNilWriter = errors.New("render: nil writer")

	// ErrUnknownScale indicates an unrecognized axis scale name.
	ErrUnknownScale = errors.New("render: unknown axis scale")
)
