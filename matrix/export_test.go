// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot.
// Lives in a _test file, so it is invisible in production builds.

// OptionsSnapshot is a stable, read-only view of the internal Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	AllowNaN       bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults and snapshots the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf, AllowNaN: o.allowNaN}
}
