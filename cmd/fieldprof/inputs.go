// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/fieldprof/field"
	"github.com/katalvlaran/fieldprof/internal/fieldfile"
	"github.com/spf13/cobra"
)

// Synthetic input flags
var (
	gaussSize    int
	gaussSpacing float64
	gaussSigma   float64
)

// input is one field source, loaded lazily so loads run inside workers.
type input struct {
	name string
	load func() (*field.Field, error)
}

// inputsFor maps file arguments to inputs; no arguments yields the synthetic
// Gaussian. Documents without a producer get the configured one.
func inputsFor(paths []string) []input {
	producer := cfg.Producer()
	if len(paths) == 0 {
		return []input{{
			name: fmt.Sprintf("gaussian(n=%d, sigma=%g)", gaussSize, gaussSigma),
			load: func() (*field.Field, error) {
				return field.Gaussian(gaussSize, gaussSpacing, gaussSigma, 1, field.WithProducer(producer))
			},
		}}
	}
	out := make([]input, len(paths))
	for i, p := range paths {
		p := p
		out[i] = input{
			name: p,
			load: func() (*field.Field, error) { return fieldfile.Load(p, producer) },
		}
	}

	return out
}

func addGaussianFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&gaussSize, "size", 33, "Synthetic Gaussian grid size (n×n)")
	cmd.Flags().Float64Var(&gaussSpacing, "spacing", 1, "Synthetic Gaussian grid spacing")
	cmd.Flags().Float64Var(&gaussSigma, "sigma", 5, "Synthetic Gaussian width in axis units")
}
