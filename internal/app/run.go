// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/refactor/matrix"
	"github.com/katalvlaran/refactor/methylation"
	"github.com/katalvlaran/refactor/output"
	"github.com/katalvlaran/refactor/pca"
	"github.com/katalvlaran/refactor/refactor"
)

type runOptions struct {
	dataPath      string
	k             int
	t             int
	numComponents int
	rankedOut     string
	componentsOut string
	plotOut       string
	provider      string
	zeroNorm      string
	quiet         bool
}

func newRunCmd() *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rank sites and compute the ReFACTor components",
		Long: `Load a sites × samples matrix, rank its sites against a rank-k PCA
reconstruction and compute principal components on the t lowest-distance sites.

The input is a whitespace or tab separated text file: a header with sample IDs,
then one line per site ("<site> <v_1> ... <v_n>"). Files ending in .gz, .zst,
.s2 or .lz4 are decompressed on the fly.

Both output files are rendered in memory first and replaced atomically, so a
failed run leaves no partial artifact.`,
		Example: `  # Default outputs in the working directory
  refactor run --data betas.txt -k 5

  # Jacobi eigen backend, constant sites kept at zero distance
  refactor run --data betas.txt -k 5 --pca jacobi --zero-norm keep`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.dataPath == "" {
				return fmt.Errorf("%w: --data is required", ErrUsage)
			}
			if !cmd.Flags().Changed("k") {
				return fmt.Errorf("%w: -k is required", ErrUsage)
			}
			return runRefactor(o, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.dataPath, "data", "", "sites × samples input matrix (required)")
	f.IntVarP(&o.k, "k", "k", 0, "number of structural components, 2 ≤ k ≤ samples (required)")
	f.IntVarP(&o.t, "t", "t", refactor.DefaultT, "number of top-ranked sites used for the final PCA, k ≤ t ≤ sites")
	f.IntVar(&o.numComponents, "num-components", 0, "number of components to save, k ≤ n ≤ samples (default k)")
	f.StringVar(&o.rankedOut, "ranked-out", output.DefaultRankedFilename, "ranked site list output path")
	f.StringVar(&o.componentsOut, "components-out", output.DefaultComponentsFilename, "components output path")
	f.StringVar(&o.plotOut, "plot", "", "optional PC1 vs PC2 scatter plot (.png, .svg, .pdf, ...)")
	f.StringVar(&o.provider, "pca", pca.NameSVD, "PCA backend: svd or jacobi")
	f.StringVar(&o.zeroNorm, "zero-norm", refactor.DefaultZeroNormPolicy.String(), "constant-site handling: nan (rank last) or keep (zero vector)")
	f.BoolVar(&o.quiet, "quiet", false, "suppress progress output")

	return cmd
}

func runRefactor(o *runOptions, stdout io.Writer) error {
	var status refactor.Reporter = refactor.ReporterFunc(func(string) {})
	if !o.quiet {
		status = output.NewStatus(stdout)
	}

	provider, err := pca.ByName(o.provider)
	if err != nil {
		return err
	}
	policy, err := parseZeroNorm(o.zeroNorm)
	if err != nil {
		return err
	}

	status.Status(fmt.Sprintf("Loading file %s...", o.dataPath))
	data, err := methylation.Load(o.dataPath)
	if err != nil {
		return err
	}
	status.Status(fmt.Sprintf("Loaded %d sites × %d samples (xxh64 %016x)", data.Sites, data.Samples, data.Digest()))

	params, err := refactor.NewParams(data.Samples, data.Sites, o.k, o.t, o.numComponents)
	if err != nil {
		return err
	}
	res, err := refactor.Run(data, params,
		refactor.WithProvider(provider),
		refactor.WithZeroNormPolicy(policy),
		refactor.WithReporter(status),
	)
	if err != nil {
		return err
	}

	files := output.Files{
		RankedPath:     o.rankedOut,
		ComponentsPath: o.componentsOut,
		PlotPath:       o.plotOut,
		Reporter:       status,
	}
	if err = output.WriteResult(files, data, res); err != nil {
		return err
	}
	status.Status(refactor.StatusDone)

	return nil
}

// parseZeroNorm maps the --zero-norm spelling to a policy.
func parseZeroNorm(s string) (matrix.ZeroNormPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case matrix.ZeroNormNaN.String():
		return matrix.ZeroNormNaN, nil
	case matrix.ZeroNormKeep.String():
		return matrix.ZeroNormKeep, nil
	default:
		return 0, fmt.Errorf("--zero-norm %q: %w", s, refactor.ErrUnknownPolicy)
	}
}
