// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/fieldprof/profile"
	"github.com/spf13/cobra"
)

// kindsCmd lists the recognized profile names
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the recognized profile names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, k := range profile.Kinds() {
			class := "cartesian"
			if k.Azimuthal() {
				class = "azimuthal"
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", k, class); err != nil {
				return err
			}
		}

		return nil
	},
}
