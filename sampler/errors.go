// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"

	"github.com/katalvlaran/fieldprof/field"
)

// Sentinel errors for point sampling. Match with errors.Is.
var (
	// ErrOutOfBounds indicates a coordinate outside the field's covered range
	// under the Fail bounds mode, or a NaN/±Inf coordinate under any mode.
	ErrOutOfBounds = errors.New("sampler: coordinate out of bounds")

	// ErrShapeMismatch is shared with package field: two coordinate sequences
	// of differing lengths, neither of length 1.
	ErrShapeMismatch = field.ErrShapeMismatch

	// ErrNilField indicates a nil *field.Field was passed to New.
	ErrNilField = errors.New("sampler: nil field")

	// ErrUnknownMethod indicates an unrecognized interpolation method name.
	ErrUnknownMethod = errors.New("sampler: unknown interpolation method")

	// ErrUnknownBounds indicates an unrecognized bounds mode name.
	ErrUnknownBounds = errors.New("sampler: unknown bounds mode")
)
