// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/refactor/methylation"
	"github.com/katalvlaran/refactor/pca"
	"github.com/katalvlaran/refactor/refactor"
)

// Exit statuses returned by Main.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitInvalid = 2
)

// ErrUsage marks command-line mistakes (unknown flag, missing argument, bad enum value).
var ErrUsage = errors.New("usage error")

// NewRootCmd builds the command tree. Every call returns fresh flag state,
// so repeated invocations never share configuration.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "refactor",
		Short: "Reference-free adjustment for cell-type composition in methylation data",
		Long: `refactor ranks the sites of a sites × samples methylation matrix by how well
a rank-k PCA reconstruction explains them, then computes principal components
on the t best-explained sites only.

Outputs:
  • a ranked list of all sites (refactor.out.rankedlist.txt)
  • the ReFACTor components, one line per sample (refactor.out.components.txt)

Examples:
  # Run with k=5 structural components and the default t=500
  refactor run --data betas.txt -k 5

  # Gzip input, 1000 sites, keep 8 components, draw PC1 vs PC2
  refactor run --data betas.txt.gz -k 5 -t 1000 --num-components 8 --plot pcs.png`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SuggestionsMinimumDistance = 2
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the command tree against os.Args and returns the exit status.
func Execute() int {
	return Main(os.Args[1:], os.Stdout, os.Stderr)
}

// Main runs the command tree with args, printing progress to stdout and
// diagnostics to stderr, and returns the process exit status.
func Main(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	code := ExitCode(err)
	fmt.Fprintf(stderr, "ERROR: %v\n", err)
	if code == ExitInvalid {
		fmt.Fprintln(stderr, refactor.StatusTerminated)
	}

	return code
}

// ExitCode maps an error to an exit status: ExitInvalid for parameter,
// input-artifact and usage errors, ExitFailure for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, refactor.ErrInvalidParameter),
		errors.Is(err, refactor.ErrUnknownPolicy),
		errors.Is(err, pca.ErrUnknownProvider),
		errors.Is(err, methylation.ErrInputNotFound),
		errors.Is(err, methylation.ErrInputShape),
		errors.Is(err, ErrUsage):
		return ExitInvalid
	default:
		return ExitFailure
	}
}
