// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/fieldprof/field"
	"github.com/katalvlaran/fieldprof/matrix"
	"go.uber.org/zap"
)

// Profile is one extracted 1-D profile: Coords and Values have equal length
// and Coords increase monotonically.
type Profile struct {
	Kind   Kind
	Coords []float64
	Values []float64
}

// Len returns the number of (coordinate, value) pairs.
func (p Profile) Len() int { return len(p.Coords) }

// Name returns the profile name of p.Kind.
func (p Profile) Name() string { return p.Kind.String() }

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	return Profile{
		Kind:   p.Kind,
		Coords: append([]float64(nil), p.Coords...),
		Values: append([]float64(nil), p.Values...),
	}
}

// extractFunc computes one profile kind. Every Kind has exactly one entry in
// dispatch; TestDispatch_Complete guards against gaps.
type extractFunc func(e *Extractor, k Kind) (Profile, error)

var dispatch = [kindCount]extractFunc{
	X:        (*Extractor).cartesian,
	Y:        (*Extractor).cartesian,
	AzAvg:    (*Extractor).azimuthal,
	AzMedian: (*Extractor).azimuthal,
	AzMin:    (*Extractor).azimuthal,
	AzMax:    (*Extractor).azimuthal,
	AzPV:     (*Extractor).azimuthal,
	AzVar:    (*Extractor).azimuthal,
	AzStd:    (*Extractor).azimuthal,
}

// Extractor produces named profiles from one field without mutating it.
//
// The radial binning of all azimuthal kinds is computed once, on the first
// azimuthal request, and reused for every later azimuthal request on the
// same Extractor. The cache lives and dies with the Extractor.
//
// An Extractor is safe for concurrent use: the cache is filled under
// sync.Once and never written afterwards.
type Extractor struct {
	f        *field.Field
	twoSided bool
	bins     int
	log      *zap.Logger

	radialOnce sync.Once
	radial     *radialCache
	radialErr  error
}

// New builds an Extractor over f.
//
// Errors:
//   - ErrNilField for a nil field.
//   - ErrInsufficientSamples when f has fewer than 2 samples along either axis.
func New(f *field.Field, opts ...Option) (*Extractor, error) {
	if f == nil {
		return nil, fmt.Errorf("profile.New: %w", ErrNilField)
	}
	rows, cols := f.Shape()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("profile.New: field is %dx%d: %w", rows, cols, ErrInsufficientSamples)
	}
	o := gatherOptions(opts...)
	twoSided := DefaultTwoSided(f.Producer())
	if o.twoSided != nil {
		twoSided = *o.twoSided
	}

	return &Extractor{
		f:        f,
		twoSided: twoSided,
		bins:     o.bins,
		log:      o.logger.With(zap.Stringer("producer", f.Producer())),
	}, nil
}

// Field returns the field being profiled.
func (e *Extractor) Field() *field.Field { return e.f }

// TwoSided reports the effective two-sided setting for Cartesian profiles.
func (e *Extractor) TwoSided() bool { return e.twoSided }

// Profile extracts the profile of kind k.
// Repeated calls return equal, independently owned results.
//
// Errors: ErrUnknownProfile for an undeclared Kind; ErrInsufficientSamples
// when an azimuthal kind is requested on a field with no finite sample.
func (e *Extractor) Profile(k Kind) (Profile, error) {
	if !k.Valid() {
		return Profile{}, fmt.Errorf("Extractor.Profile(%s): %w", k, ErrUnknownProfile)
	}

	return dispatch[k](e, k)
}

// ByName extracts the profile named name ("x", "azavg", ...).
func (e *Extractor) ByName(name string) (Profile, error) {
	k, err := ParseKind(name)
	if err != nil {
		return Profile{}, err
	}

	return e.Profile(k)
}

// Many extracts several kinds in order; it fails on the first error.
func (e *Extractor) Many(kinds ...Kind) ([]Profile, error) {
	out := make([]Profile, 0, len(kinds))
	for _, k := range kinds {
		p, err := e.Profile(k)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// RadialGrid returns a copy of the cached radius grid r(i,j) = sqrt(x_j² + y_i²),
// building the cache if needed.
func (e *Extractor) RadialGrid() (*matrix.Dense, error) {
	rc, err := e.radialBins()
	if err != nil {
		return nil, err
	}

	return rc.grid.CloneDense(), nil
}

// X is shorthand for Profile(X).
func (e *Extractor) X() (Profile, error) { return e.Profile(X) }

// Y is shorthand for Profile(Y).
func (e *Extractor) Y() (Profile, error) { return e.Profile(Y) }

// AzAvg is shorthand for Profile(AzAvg).
func (e *Extractor) AzAvg() (Profile, error) { return e.Profile(AzAvg) }

// AzMedian is shorthand for Profile(AzMedian).
func (e *Extractor) AzMedian() (Profile, error) { return e.Profile(AzMedian) }

// AzMin is shorthand for Profile(AzMin).
func (e *Extractor) AzMin() (Profile, error) { return e.Profile(AzMin) }

// AzMax is shorthand for Profile(AzMax).
func (e *Extractor) AzMax() (Profile, error) { return e.Profile(AzMax) }

// AzPV is shorthand for Profile(AzPV).
func (e *Extractor) AzPV() (Profile, error) { return e.Profile(AzPV) }

// AzVar is shorthand for Profile(AzVar).
func (e *Extractor) AzVar() (Profile, error) { return e.Profile(AzVar) }

// AzStd is shorthand for Profile(AzStd).
func (e *Extractor) AzStd() (Profile, error) { return e.Profile(AzStd) }
