// SPDX-License-Identifier: MIT

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/refactor/refactor"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ReFACTor version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ReFACTor v%s\n", refactor.Version)
			return err
		},
	}
}
