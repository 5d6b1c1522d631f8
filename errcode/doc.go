// Package errcode defines the closed set of error identities used across
// jmatrix.
//
// Each identity pairs a stable integer error number with a short uppercase
// mnemonic and a human-readable message:
//
//	InvalidIndex — JM201 / INVIDX — index out of bounds
//	InvalidType  — JM202 / INVTYP — invalid matrix type or shape
//	NullMatrix   — JM203 / NULLMT — operation on an uninitialized matrix
//	Unknown      — JM400 / UNKERR — unclassified failure
//
// Identities are immutable values and safe to share. Two lookup surfaces are
// provided with deliberately different failure contracts: ByCode is strict
// and fails loudly on an unknown mnemonic, while Lookup accepts either a
// mnemonic or an error number and degrades quietly to None when the key
// cannot be resolved by shape.
//
// The canonical textual form of an identity is CODE[errno], e.g.
// INVIDX[201]; downstream logs and tests depend on that exact rendering.
package errcode
