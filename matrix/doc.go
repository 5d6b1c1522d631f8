// Package matrix implements a dense two-dimensional float64 container with
// an explicit uninitialized state.
//
// A Matrix owns a strictly rectangular backing array. A value built with New
// is in the null-entries state: it holds no storage, and Size reports
// absence rather than 0×0. That state is always distinguishable from an
// allocated zero-filled matrix, and the distinction is preserved by every
// operation in the package.
//
// Construction is explicit: NewZero, NewFilled, NewOf and NewIdentity
// allocate storage up front and validate their inputs; Create and CreateZero
// (re)initialize an existing value. DeepCopy produces a fully independent
// instance — equal by Equals, distinct by pointer identity.
//
// All user-triggered failures are sentinel errors (ErrNilMatrix,
// ErrOutOfRange, ...) matched with errors.Is; none of the operations panic
// on bad input. CodeOf maps any such failure onto the stable identities of
// the errcode package for cross-process reporting.
//
// Matrices are best treated as immutable after construction when shared:
// nothing in this package synchronizes mutation.
package matrix
