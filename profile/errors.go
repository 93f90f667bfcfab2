// SPDX-License-Identifier: MIT

package profile

import "errors"

// Sentinel errors for profile extraction. Match with errors.Is.
var (
	// ErrUnknownProfile indicates an unrecognized profile name or Kind.
	ErrUnknownProfile = errors.New("profile: unknown profile")

	// ErrInsufficientSamples indicates a field too small to extract from:
	// fewer than 2 samples along either axis, or no finite sample to bin.
	ErrInsufficientSamples = errors.New("profile: insufficient samples")

	// ErrNilField indicates a nil *field.Field was passed to New.
	ErrNilField = errors.New("profile: nil field")
)
