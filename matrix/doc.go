// SPDX-License-Identifier: MIT

// Package matrix offers a small dense float64 matrix and the products the
// demo needs.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with safe accessors (At/Set return errors,
//     never panic) and an optional finite-only numeric policy.
//   - Mul, Transpose and MulTransposed (a·bᵗ without materializing bᵗ).
//   - Validators shared by every operation, returning package sentinels.
//   - ToGonum / FromGonum bridges to gonum.org/v1/gonum/mat.
//
// All arithmetic is plain double precision with fixed loop orders, so the
// same inputs always produce bitwise-identical outputs.
package matrix
