// SPDX-License-Identifier: MIT

package errcode_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/jmatrix/errcode"
	"github.com/stretchr/testify/require"
)

// all returns the full identity set in declaration order.
func all() []errcode.ErrorCode {
	return []errcode.ErrorCode{
		errcode.InvalidIndex,
		errcode.InvalidType,
		errcode.NullMatrix,
		errcode.Unknown,
	}
}

func TestErrorCode_Accessors(t *testing.T) {
	require.Equal(t, 201, errcode.InvalidIndex.Errno())
	require.Equal(t, "INVIDX", errcode.InvalidIndex.Code())
	require.Equal(t, "Given index is out of bounds", errcode.InvalidIndex.Message())

	require.Equal(t, 202, errcode.InvalidType.Errno())
	require.Equal(t, "INVTYP", errcode.InvalidType.Code())

	require.Equal(t, 203, errcode.NullMatrix.Errno())
	require.Equal(t, "NULLMT", errcode.NullMatrix.Code())

	require.Equal(t, 400, errcode.Unknown.Errno())
	require.Equal(t, "UNKERR", errcode.Unknown.Code())
}

func TestErrorCode_DerivedForms(t *testing.T) {
	for _, ec := range all() {
		errno := strconv.Itoa(ec.Errno())
		// "JM" + errno, no separator, no padding.
		require.Equal(t, "JM"+errno, ec.ErrnoStr())
		// Canonical rendering CODE[errno], exact punctuation.
		require.Equal(t, ec.Code()+"["+errno+"]", ec.String())
		// Every identity carries a message.
		require.NotEmpty(t, ec.Message())
		require.True(t, ec.Known())
	}
}

func TestErrorCode_SetIsInjective(t *testing.T) {
	errnos := make(map[int]bool)
	codes := make(map[string]bool)
	for _, ec := range all() {
		require.False(t, errnos[ec.Errno()], "duplicate errno %d", ec.Errno())
		require.False(t, codes[ec.Code()], "duplicate code %s", ec.Code())
		errnos[ec.Errno()] = true
		codes[ec.Code()] = true
	}
}

func TestByCode_Strict(t *testing.T) {
	ec, err := errcode.ByCode("NULLMT")
	require.NoError(t, err)
	require.Equal(t, errcode.NullMatrix, ec)

	// Well-typed but unknown mnemonic fails loudly.
	ec, err = errcode.ByCode("UNKNOWN")
	require.ErrorIs(t, err, errcode.ErrUnknownCode)
	require.Equal(t, errcode.None, ec)
	require.False(t, ec.Known())
}

func TestByErrno(t *testing.T) {
	ec, ok := errcode.ByErrno(202)
	require.True(t, ok)
	require.Equal(t, errcode.InvalidType, ec)

	_, ok = errcode.ByErrno(999)
	require.False(t, ok)
}

func TestLookup_StringKey(t *testing.T) {
	ec, err := errcode.Lookup("NULLMT")
	require.NoError(t, err)
	require.Equal(t, 203, ec.Errno())

	// String keys delegate to the strict lookup and keep its loud failure.
	_, err = errcode.Lookup("BOGUS")
	require.ErrorIs(t, err, errcode.ErrUnknownCode)
}

func TestLookup_IntKey(t *testing.T) {
	ec, err := errcode.Lookup(201)
	require.NoError(t, err)
	require.Equal(t, "INVIDX", ec.Code())

	ec, err = errcode.Lookup(int32(203))
	require.NoError(t, err)
	require.Equal(t, errcode.NullMatrix, ec)

	ec, err = errcode.Lookup(int64(400))
	require.NoError(t, err)
	require.Equal(t, errcode.Unknown, ec)

	// Unknown errno degrades quietly.
	ec, err = errcode.Lookup(777)
	require.NoError(t, err)
	require.Equal(t, errcode.None, ec)
}

func TestLookup_UnsupportedShapeIsQuiet(t *testing.T) {
	for _, key := range []any{3.14, []int{201}, map[string]int{"INVIDX": 201}, nil, true} {
		ec, err := errcode.Lookup(key)
		require.NoError(t, err, "key %v must not fail", key)
		require.Equal(t, errcode.None, ec)
		require.False(t, ec.Known())
	}
}
