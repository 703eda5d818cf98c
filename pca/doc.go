// Package pca implements the principal-component provider used by ReFACTor.
//
// A Provider takes a samples × features matrix, centers every feature and
// returns a Result whose Scores are an orthonormal samples × samples basis
// ordered by decreasing explained variance, with Loadings (features × samples)
// paired column-wise so that Scores·Loadingsᵀ reproduces the centered input.
//
// Two providers are available:
//
//   - SVD: singular value decomposition from gonum.org/v1/gonum/mat.
//   - Jacobi: Jacobi eigen-decomposition of the samples × samples Gram matrix,
//     built on the matrix package kernels.
//
// Both are deterministic: the sign of every score column is fixed so that its
// largest-magnitude entry is positive (the first such entry wins ties).
package pca
