// SPDX-License-Identifier: MIT

// Package refactor implements ReFACTor: reference-free adjustment for cell-type
// composition in methylation data.
//
// Given a sites × samples matrix, Run
//
//  1. computes a standard PCA of the samples,
//  2. reconstructs the data from its K leading components,
//  3. scores every site by how far its centered, unit-length profile lies from
//     the reconstruction (SiteDistances) and ranks the sites ascending (RankSites),
//  4. recomputes the principal components on the T lowest-distance sites only
//     (ReExtract) and keeps NumComponents of them.
//
// Parameters are validated up front by NewParams; an out-of-range value is a
// *ValidationError and no computation happens. The package performs no I/O:
// loading lives in methylation, the ranked list and component files in output.
//
// Example:
//
//	p, err := refactor.NewParams(data.Samples, data.Sites, 5, 500, 0)
//	if err != nil { ... }
//	res, err := refactor.Run(data, p, refactor.WithProvider(pca.Jacobi{}))
package refactor
