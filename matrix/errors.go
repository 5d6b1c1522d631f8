// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus the mapping onto stable error identities. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/jmatrix/errcode"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when requested dimensions are
	// non-positive (or negative where a zero dimension is allowed).
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidShape indicates malformed input entries: a nil
	// two-dimensional array, or a jagged one (rows of unequal length).
	ErrInvalidShape = errors.New("matrix: entries must be rectangular and non-nil")

	// ErrNilMatrix indicates that an operation required initialized entries
	// but found the null state (or a nil *Matrix operand).
	ErrNilMatrix = errors.New("matrix: matrix is null")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes, or Mul where
	// a.cols != b.rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Trace, Det).
	ErrNonSquare = errors.New("matrix: matrix is not square")
)

// CodeOf classifies err as one of the stable error identities. Sentinels of
// this package (possibly wrapped with %w) map as follows:
//
//	ErrOutOfRange                                   → errcode.InvalidIndex
//	ErrInvalidDimensions, ErrInvalidShape,
//	ErrDimensionMismatch, ErrNonSquare              → errcode.InvalidType
//	ErrNilMatrix                                    → errcode.NullMatrix
//
// Anything else, including nil, yields errcode.Unknown. Callers reporting
// failures across a process boundary should select identities through this
// function rather than inventing codes.
func CodeOf(err error) errcode.ErrorCode {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return errcode.InvalidIndex
	case errors.Is(err, ErrInvalidDimensions),
		errors.Is(err, ErrInvalidShape),
		errors.Is(err, ErrDimensionMismatch),
		errors.Is(err, ErrNonSquare):
		return errcode.InvalidType
	case errors.Is(err, ErrNilMatrix):
		return errcode.NullMatrix
	}

	return errcode.Unknown
}
