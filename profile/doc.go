// Package profile extracts named 1-D profiles from a field.Field.
//
// 🚀 What is a profile?
//
//	A pair of equal-length sequences (coordinate, value) derived from a 2-D
//	field, either by slicing through the origin or by reducing concentric
//	annuli to one statistic each.
//
// Kinds:
//
//	x, y                              Cartesian slices through the origin
//	azavg, azmedian, azmin, azmax,    azimuthal statistics by radius
//	azpv, azvar, azstd
//
// Kinds form a closed enumeration (Kind) dispatched through one table; names
// are parsed once with ParseKind, and unknown names fail with ErrUnknownProfile.
//
// Two-sided vs one-sided:
//
//	Cartesian profiles span the whole axis when two-sided and only the
//	non-negative half otherwise. The default comes from the field's producer
//	(DefaultTwoSided: an MTF is one-sided, everything else two-sided) and is
//	overridden with WithTwoSided. Azimuthal profiles are always one-sided.
//
// Caching:
//
//	The radius grid and the annulus binning are computed on the first
//	azimuthal request and reused by every later azimuthal request on the same
//	Extractor. Create one Extractor per query session.
//
// Quick example:
//
//	f, _ := field.Gaussian(33, 1, 5, 1)
//	e, _ := profile.New(f)
//	p, _ := e.AzAvg()
//	fmt.Println(p.Coords[0], p.Values[0])
package profile
