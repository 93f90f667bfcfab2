// SPDX-License-Identifier: MIT

package field

import "errors"

// Sentinel errors for field construction and access. Match with errors.Is.
var (
	// ErrNilSamples indicates a nil sample grid was passed to a constructor.
	ErrNilSamples = errors.New("field: nil sample grid")

	// ErrShapeMismatch indicates the sample grid shape disagrees with the axes:
	// rows must equal len(y) and columns must equal len(x).
	ErrShapeMismatch = errors.New("field: shape mismatch")

	// ErrAxisNotMonotonic indicates an axis that is not strictly increasing or
	// strictly decreasing.
	ErrAxisNotMonotonic = errors.New("field: axis is not strictly monotonic")

	// ErrNonFiniteAxis indicates an axis containing NaN or ±Inf.
	ErrNonFiniteAxis = errors.New("field: axis contains NaN or Inf")

	// ErrInvalidAxis indicates nonsensical axis generator parameters
	// (non-positive length or spacing).
	ErrInvalidAxis = errors.New("field: invalid axis parameters")

	// ErrUnknownProducer indicates an unrecognized producer name.
	ErrUnknownProducer = errors.New("field: unknown producer")
)
