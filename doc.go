// Package jmatrix is a small, deterministic matrix toolkit built around two
// ideas: a dense float64 matrix with an explicit "uninitialized" state, and a
// closed set of error identities with stable numeric codes.
//
// 🚀 What is jmatrix?
//
//	A compact, dependency-light library that brings together:
//		• matrix  — dense 2D container: constructors, deep copy, structural
//		  predicates, element access, arithmetic and row/column editing
//		• errcode — fixed error-identity set (INVIDX, INVTYP, NULLMT, UNKERR)
//		  with errno/mnemonic lookup and a canonical CODE[errno] rendering
//
// ✨ Why choose jmatrix?
//
//   - Explicit null state – an uninitialized matrix is never confused with a
//     zero-filled one; Size reports absence, not 0×0
//   - Loud, typed failures – sentinel errors matched with errors.Is, mapped
//     onto stable error identities for cross-process reporting
//   - Pure Go – no cgo, deterministic loops, no hidden numeric policy
//
// Everything is organized under two public subpackages:
//
//	matrix/  — the dense container and its operations
//	errcode/ — error identities, lookups and canonical formatting
//
// Quick example:
//
//	m, _ := matrix.NewOf([][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}})
//	c := m.DeepCopy()      // equal values, independent storage
//	_ = c.Equals(m)        // true
//	_ = c == m             // false: distinct instances
//
// See the package documentation of matrix and errcode for details.
package jmatrix
