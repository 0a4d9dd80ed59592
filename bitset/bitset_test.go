// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBitset(t testing.TB, length int) *Bitset {
	b, err := New(length)
	require.NoError(t, err)
	return b
}

func TestBitset(t *testing.T) {
	b := newBitset(t, 128)

	require.Equal(t, 4, len(b.words))
	require.Equal(t, 128, b.length)
	require.Equal(t, 128, b.Len())

	err := b.SetTrue(132)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))

	zero := []uint32{0, 0, 0, 0}
	require.Equal(t, zero, b.words)

	require.False(t, b.IsSet(7))
	require.NoError(t, b.SetTrue(7))
	require.True(t, b.IsSet(7))
	require.NoError(t, b.SetTrue(8))
	require.True(t, b.IsSet(8))
	require.NoError(t, b.SetFalse(7))
	require.False(t, b.IsSet(7))
	require.True(t, b.IsSet(8))
	require.NoError(t, b.SetFalse(8))
	require.Equal(t, zero, b.words)

	for i := 0; i < 128; i++ {
		require.NoError(t, b.SetTrue(i))
	}

	full := []uint32{^uint32(0), ^uint32(0), ^uint32(0), ^uint32(0)}
	require.Equal(t, full, b.words)

	err = b.SetFalse(137)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.Equal(t, full, b.words)
}

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		length   int
		words    int
		capacity int
	}{
		{0, 0, 0},
		{1, 1, 32},
		{31, 1, 32},
		{32, 1, 32},
		{33, 2, 64},
		{70, 3, 96},
		{1000, 32, 1024},
	} {
		b := newBitset(t, tc.length)
		require.NotNil(t, b.words)
		require.Equal(t, tc.words, len(b.words), "New(%d)", tc.length)
		require.Equal(t, tc.capacity, b.Len(), "New(%d)", tc.length)
		require.Equal(t, tc.length, b.LogicalLen())
		require.Equal(t, 0, b.PopCount())
	}

	b, err := New(-1)
	require.Nil(t, b)
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestGetBounds(t *testing.T) {
	b := newBitset(t, 70)

	for _, off := range []int{-1, 96, 97, 1 << 20} {
		_, err := b.Get(off)
		require.True(t, errors.Is(err, ErrIndexOutOfRange), "Get(%d)", off)
		require.True(t, errors.Is(b.SetTrue(off), ErrIndexOutOfRange))
		require.True(t, errors.Is(b.SetFalse(off), ErrIndexOutOfRange))
		require.True(t, errors.Is(b.Set(off, true), ErrIndexOutOfRange))
		require.False(t, b.IsSet(off))
		_, err = b.BitAt(off)
		require.True(t, errors.Is(err, ErrIndexOutOfRange))
	}
	require.Equal(t, 0, b.PopCount())

	// padding bits past the logical length are still addressable
	require.NoError(t, b.SetTrue(95))
	set, err := b.Get(95)
	require.NoError(t, err)
	require.True(t, set)
}

func TestSet(t *testing.T) {
	b := newBitset(t, 64)
	for _, off := range []int{0, 1, 30, 31, 32, 33, 62, 63} {
		require.NoError(t, b.Set(off, true))
		set, err := b.Get(off)
		require.NoError(t, err)
		require.True(t, set)

		bit, err := b.BitAt(off)
		require.NoError(t, err)
		require.True(t, bit.AsBool())
		require.Equal(t, 1, bit.AsInt())

		require.NoError(t, b.Set(off, false))
		set, err = b.Get(off)
		require.NoError(t, err)
		require.False(t, set)

		bit, err = b.BitAt(off)
		require.NoError(t, err)
		require.False(t, bit.AsBool())
		require.Equal(t, 0, bit.AsInt())
	}
	require.Equal(t, []uint32{0, 0}, b.words)
}

func TestCloneAliasing(t *testing.T) {
	b := newBitset(t, 40)
	require.NoError(t, b.SetTrue(3))

	alias := b
	clone := b.Clone()
	require.True(t, clone.Equal(b))
	require.Equal(t, b.Hash(), clone.Hash())

	require.NoError(t, alias.SetTrue(35))
	require.True(t, b.IsSet(35))
	require.False(t, clone.IsSet(35))
	require.False(t, clone.Equal(b))

	require.NoError(t, clone.SetTrue(35))
	require.True(t, clone.Equal(b))
	require.Equal(t, b.Hash(), clone.Hash())
}

func TestEqualAndHash(t *testing.T) {
	a := newBitset(t, 33)
	b := newBitset(t, 34)
	// same words, different logical length
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Hash(), b.Hash())

	b.Resize(33)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, a.SetTrue(32))
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Hash(), b.Hash())

	empty := newBitset(t, 0)
	require.True(t, empty.Equal(newBitset(t, 0)))
	require.False(t, empty.Equal(a))
}

func TestString(t *testing.T) {
	b := newBitset(t, 6)
	require.Equal(t, "000000", b.String())
	require.NoError(t, b.SetTrue(0))
	require.NoError(t, b.SetTrue(4))
	// padding is not rendered
	require.NoError(t, b.SetTrue(10))
	require.Equal(t, "100010", b.String())
	require.Equal(t, "", newBitset(t, 0).String())
}
