// Package sampler reads a field.Field at arbitrary, possibly off-grid,
// coordinates.
//
// Coordinates may be Cartesian (At, ExactX, ExactY, ExactXY) or polar with the
// angle in degrees (Polar, ExactPolar). Sequence queries pair coordinates
// element by element; a length-1 sequence is broadcast to the other's length.
//
// Interpolation (WithMethod): Nearest, Bilinear (default), Bicubic.
// Out-of-range coordinates (WithBounds): Saturate (default) returns the edge
// value, Fail returns ErrOutOfBounds.
//
//	s, _ := sampler.New(f, sampler.WithMethod(sampler.Bicubic))
//	vs, _ := s.ExactPolar([]float64{0, 1, 2}, []float64{45})
package sampler
