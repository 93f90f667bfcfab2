// Package field defines Field, an immutable 2-D scalar field sampled on a
// rectangular grid with physical x/y coordinate axes.
//
// A Field is what every producer in an optical pipeline hands over: a pupil,
// a PSF, an MTF, a measured interferogram, a convolved sensor image. The
// profile and sampler packages only ever read from it.
//
// Layout:
//
//	samples[i][j] ↔ (x[j], y[i])   rows follow y, columns follow x
//
// Construction deep-copies the samples and axes; accessors return copies.
// NaN samples are legal and mean "masked"; ±Inf samples are rejected.
//
// Synthetic producers (FromFunc, Radial, Gaussian, CenteredAxis) build test
// fixtures and CLI demo inputs without an external pipeline.
package field
