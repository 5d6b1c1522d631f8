// SPDX-License-Identifier: MIT

// Package errcode: error-identity values and lookups.
//
// Purpose:
//   - Keep the identity set closed: values are package-level vars with
//     unexported fields, so no new identity can be minted by callers.
//   - Keep lookups deterministic: the scan order below is the declaration
//     order of the table, fixed once.

package errcode

import (
	"errors"
	"strconv"
)

// ErrUnknownCode is returned by ByCode when the given mnemonic does not name
// one of the fixed identities. Callers match it via errors.Is.
var ErrUnknownCode = errors.New("errcode: unknown error code")

// ErrorCode is a single error identity: an integer error number, a short
// uppercase mnemonic and a descriptive message. The zero value is None, the
// quiet "not found" sentinel; every real identity satisfies Known().
//
// ErrorCode is a comparable value type; identities are compared with ==.
type ErrorCode struct {
	errno   int    // stable numeric code, unique across the set
	code    string // uppercase mnemonic, unique across the set
	message string // human-readable description, never empty for real identities
}

// The closed identity set. errno values are unique and correspond 1:1 with
// mnemonics; both are frozen external contracts.
var (
	// InvalidIndex reports a row or column index outside the valid bounds.
	InvalidIndex = ErrorCode{errno: 201, code: "INVIDX", message: "Given index is out of bounds"}

	// InvalidType reports an invalid matrix type or shape: jagged input,
	// incompatible dimensions, or a square-only operation on a rectangle.
	InvalidType = ErrorCode{errno: 202, code: "INVTYP", message: "Matrix has invalid type of matrix"}

	// NullMatrix reports an operation that required initialized entries but
	// found the null (uninitialized) state.
	NullMatrix = ErrorCode{errno: 203, code: "NULLMT", message: "Matrix is null"}

	// Unknown is the identity for failures that fit no other class.
	Unknown = ErrorCode{errno: 400, code: "UNKERR", message: "Unknown error"}

	// None is the zero ErrorCode, returned by the permissive lookup when a
	// key cannot be resolved. It is not a member of the identity set.
	None = ErrorCode{}
)

// table fixes the scan order for lookups. Declaration order, never sorted.
var table = [...]ErrorCode{InvalidIndex, InvalidType, NullMatrix, Unknown}

// Known reports whether c is one of the fixed identities (false only for None).
func (c ErrorCode) Known() bool { return c != None }

// Errno returns the integer error number.
func (c ErrorCode) Errno() int { return c.errno }

// ErrnoStr returns the error number as a string prefixed with "JM", with no
// separator, padding or sign: "JM203".
func (c ErrorCode) ErrnoStr() string { return "JM" + strconv.Itoa(c.errno) }

// Code returns the uppercase mnemonic, e.g. "INVIDX".
func (c ErrorCode) Code() string { return c.code }

// Message returns the descriptive message associated with this identity.
func (c ErrorCode) Message() string { return c.message }

// String renders the canonical form CODE[errno], e.g. "INVIDX[201]".
// The exact punctuation is a frozen contract; do not change it.
func (c ErrorCode) String() string { return c.code + "[" + strconv.Itoa(c.errno) + "]" }

// ByCode returns the identity whose mnemonic matches code exactly.
// Unknown mnemonics fail loudly with ErrUnknownCode; this is the strict
// counterpart of Lookup.
// Complexity: O(1) — the table has four entries.
func ByCode(code string) (ErrorCode, error) {
	for _, ec := range table {
		if ec.code == code {
			return ec, nil
		}
	}

	return None, ErrUnknownCode
}

// ByErrno returns the identity with the given error number, comma-ok style.
// Complexity: O(1) — the table has four entries.
func ByErrno(n int) (ErrorCode, bool) {
	for _, ec := range table {
		if ec.errno == n {
			return ec, true
		}
	}

	return None, false
}

// Lookup resolves key, which may be a mnemonic string or an integer error
// number (int, int32 or int64).
//
// A string key delegates to ByCode and therefore keeps its loud failure:
// a well-typed but unknown mnemonic yields ErrUnknownCode. An integer key
// that matches no errno, or a key of any other type, degrades quietly to
// (None, nil). The asymmetry is deliberate and part of the contract:
// unknown mnemonics fail loudly, unknown key shapes do not fail at all.
func Lookup(key any) (ErrorCode, error) {
	switch k := key.(type) {
	case string:
		return ByCode(k)
	case int:
		ec, _ := ByErrno(k)
		return ec, nil
	case int32:
		ec, _ := ByErrno(int(k))
		return ec, nil
	case int64:
		ec, _ := ByErrno(int(k))
		return ec, nil
	}

	// Unsupported key shape: quiet sentinel, no error.
	return None, nil
}
