// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"strings"
)

// Kind enumerates the named profiles an Extractor can produce.
// Cartesian kinds slice the grid through the origin; azimuthal kinds reduce
// concentric annuli to one statistic each.
type Kind int

const (
	// X is the row nearest y=0, indexed by the x-axis.
	X Kind = iota
	// Y is the column nearest x=0, indexed by the y-axis.
	Y
	// AzAvg is the mean of each annulus.
	AzAvg
	// AzMedian is the median of each annulus.
	AzMedian
	// AzMin is the minimum of each annulus.
	AzMin
	// AzMax is the maximum of each annulus.
	AzMax
	// AzPV is the peak-to-valley (max − min) of each annulus.
	AzPV
	// AzVar is the population variance of each annulus.
	AzVar
	// AzStd is the population standard deviation of each annulus.
	AzStd

	kindCount // sentinel; keep last
)

var kindNames = [kindCount]string{
	X:        "x",
	Y:        "y",
	AzAvg:    "azavg",
	AzMedian: "azmedian",
	AzMin:    "azmin",
	AzMax:    "azmax",
	AzPV:     "azpv",
	AzVar:    "azvar",
	AzStd:    "azstd",
}

// String returns the profile name ("x", "azavg", ...).
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= X && k < kindCount }

// Azimuthal reports whether k is an annulus statistic.
func (k Kind) Azimuthal() bool { return k >= AzAvg && k < kindCount }

// ParseKind resolves a profile name (case-insensitive, surrounding space ignored).
// Errors: ErrUnknownProfile.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := X; k < kindCount; k++ {
		if kindNames[k] == n {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownProfile)
}

// ParseKinds resolves several names, failing on the first unknown one.
func ParseKinds(names ...string) ([]Kind, error) {
	out := make([]Kind, 0, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}

// Kinds lists every profile kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := X; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// Names lists every profile name in declaration order.
func Names() []string {
	return append([]string(nil), kindNames[:]...)
}
