// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

// opErrorf wraps err with the package-level operation tag, "matrix.<op>: %w".
func opErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// Transpose returns a new Dense where rows and columns of m are swapped.
// The result inherits m's numeric policy.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): data[i*cols+j] → res.data[j*rows+i].
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// Stage 2: Allocate result with flipped dimensions
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, len(m.data)), policy: m.policy}

	// Stage 3: Flat copy with swapped offsets
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN elements compare equal to NaN and unequal to anything else, so two
// grids with the same masked samples can be close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, opErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, opErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, opErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, opErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // bounds ensured by shape check
			bv, _ = b.At(i, j)
			if isNaN(av) || isNaN(bv) {
				if isNaN(av) != isNaN(bv) {
					return false, nil
				}
				continue
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
