// Package fieldprof extracts 1-D profiles from sampled 2-D fields such as
// pupils, point-spread functions, MTFs and interferograms.
//
// 🚀 What is fieldprof?
//
//	A small toolkit that brings together:
//		• field      an immutable grid of samples with physical x/y axes
//		• profile    named profiles: x, y and azimuthal statistics
//		              (azavg, azmedian, azmin, azmax, azpv, azvar, azstd)
//		• sampler    exact values at off-grid coordinates, Cartesian or polar
//		• render     the rendering contract plus table and JSON renderers
//		• matrix     the row-major dense storage underneath
//
// Under the hood:
//
//	field/       samples, axes, producer tag, synthetic fields
//	profile/     Extractor with a one-shot radial cache per instance
//	sampler/     nearest / bilinear / bicubic, saturate or fail at the edges
//	render/      Plot requests with per-series style broadcast
//	cmd/         the fieldprof command line
//
// Quick example:
//
//	f, _ := field.Gaussian(33, 1, 5, 1)
//	e, _ := profile.New(f)
//	avg, _ := e.AzAvg()        // (radius, mean) pairs, radius increasing
//	s, _ := sampler.New(f)
//	v, _ := s.ExactX(0, 0.5)   // values at (0, 0) and (0.5, 0)
//
//	go install github.com/katalvlaran/fieldprof/cmd/fieldprof@latest
package fieldprof
