// SPDX-License-Identifier: MIT

package profile

// Test bridge (white-box) for the dispatch tables.

// DispatchGaps_TestOnly lists every Kind without an extractor, and every
// azimuthal Kind without a reducer.
func DispatchGaps_TestOnly() []Kind {
	var gaps []Kind
	for k := X; k < kindCount; k++ {
		if dispatch[k] == nil || (k.Azimuthal() && reducers[k] == nil) {
			gaps = append(gaps, k)
		}
	}

	return gaps
}

// KindCount_TestOnly exposes the number of declared kinds.
const KindCount_TestOnly = int(kindCount)

// EffectiveBins_TestOnly exposes the bin defaulting rule.
func EffectiveBins_TestOnly(requested, rows, cols, finite int) int {
	return effectiveBins(requested, rows, cols, finite)
}
