// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fieldprof/matrix"
)

// TestDefaultOptions_Documented verifies that the resolved defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
	if o.AllowNaN != matrix.DefaultAllowNaN {
		t.Fatalf("allowNaN default mismatch: got %v, want %v", o.AllowNaN, matrix.DefaultAllowNaN)
	}
}

// TestGatherOptions_LastWriterWins ensures options apply in order and nil setters are skipped.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	if !o.ValidateNaNInf {
		t.Fatalf("last-writer-wins failed: validateNaNInf=%v, want true", o.ValidateNaNInf)
	}

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithAllowNaN())
	if !o.ValidateNaNInf || !o.AllowNaN {
		t.Fatalf("WithAllowNaN must keep validation on and admit NaN: %+v", o)
	}
}
