// SPDX-License-Identifier: MIT

package profile

import "fmt"

// cartesian slices the row (X) or column (Y) passing closest to the origin.
// Coordinates are returned increasing; a decreasing axis is reversed together
// with its values. One-sided extraction keeps coordinates >= 0 only.
// No caching: a single row or column copy is already O(n).
func (e *Extractor) cartesian(k Kind) (Profile, error) {
	var coords, values []float64
	var asc bool
	var err error

	ax, ay := e.f.Ascending()
	switch k {
	case X:
		coords, asc = e.f.X(), ax
		values, err = e.f.Row(e.f.NearestRow(0))
	case Y:
		coords, asc = e.f.Y(), ay
		values, err = e.f.Col(e.f.NearestCol(0))
	default:
		return Profile{}, fmt.Errorf("cartesian(%s): %w", k, ErrUnknownProfile)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("Extractor.Profile(%s): %w", k, err)
	}
	if !asc {
		reverse(coords)
		reverse(values)
	}
	if !e.twoSided {
		coords, values = nonNegative(coords, values)
	}

	return Profile{Kind: k, Coords: coords, Values: values}, nil
}

// nonNegative keeps the pairs whose coordinate is >= 0. coords must be increasing.
func nonNegative(coords, values []float64) ([]float64, []float64) {
	start := len(coords)
	for i, c := range coords {
		if c >= 0 {
			start = i
			break
		}
	}

	return coords[start:], values[start:]
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
