// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset provides a packed bit-vector: a dense []bool stored as
// 32-bit words, with word-parallel range operations and population counts.
package bitset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/dgryski/go-farm"
)

const (
	wordBits     = 32
	log2WordBits = 5
	wordMask     = wordBits - 1
	allOnes      = ^uint32(0)
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Bitset is an in-memory bitmap that is conceptually similar to []bool, but
// more memory efficient.
//
// Storage is rounded up to a whole number of 32-bit words, so Len (the
// backing capacity) can exceed the length passed to New.  Bits between
// LogicalLen and Len are padding: they are addressable, and PopCount and
// SetAll operate on them, but LogicalPopCount ignores them.
//
// A Bitset is not safe for concurrent use.  Copying the *Bitset pointer
// aliases the same words; use Clone for an independent copy.
type Bitset struct {
	words  []uint32
	length int
}

// wordCount returns the number of words needed to hold length bits.
func wordCount(length int) int {
	if length <= 0 {
		return 0
	}
	return ((length - 1) >> log2WordBits) + 1
}

func getOffsets(off int) (wordOff int, bitOff uint) {
	wordOff = off >> log2WordBits
	bitOff = uint(off) & wordMask
	return
}

// New returns a new bitset of at least length bits, all initially false.
func New(length int) (*Bitset, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	return &Bitset{
		words:  make([]uint32, wordCount(length)),
		length: length,
	}, nil
}

// Len returns the number of bits backed by storage: the length passed to New
// rounded up to a multiple of 32.
func (b *Bitset) Len() int {
	return len(b.words) << log2WordBits
}

// LogicalLen returns the length most recently passed to New or Resize.
func (b *Bitset) LogicalLen() int {
	return b.length
}

func (b *Bitset) checkIndex(off int) error {
	if off < 0 || off >= b.Len() {
		return fmt.Errorf("%w: offset (%d) out of range (len %d)", ErrIndexOutOfRange, off, b.Len())
	}
	return nil
}

// Get reports whether the bit at position `off` is 1.
func (b *Bitset) Get(off int) (bool, error) {
	if err := b.checkIndex(off); err != nil {
		return false, err
	}
	wordOff, bitOff := getOffsets(off)
	return b.words[wordOff]&(1<<bitOff) != 0, nil
}

// IsSet returns true if the bit at position `off` is 1.  Offsets outside
// [0, Len()) are never set.
func (b *Bitset) IsSet(off int) bool {
	set, err := b.Get(off)
	return err == nil && set
}

// SetTrue sets the bit at position `off` to 1.
func (b *Bitset) SetTrue(off int) error {
	if err := b.checkIndex(off); err != nil {
		return err
	}
	wordOff, bitOff := getOffsets(off)
	b.words[wordOff] |= 1 << bitOff
	return nil
}

// SetFalse sets the bit at position `off` to 0.
func (b *Bitset) SetFalse(off int) error {
	if err := b.checkIndex(off); err != nil {
		return err
	}
	wordOff, bitOff := getOffsets(off)
	b.words[wordOff] &^= 1 << bitOff
	return nil
}

func (b *Bitset) Set(off int, value bool) error {
	if value {
		return b.SetTrue(off)
	}
	return b.SetFalse(off)
}

// Clone returns a copy of b that shares no storage with it.
func (b *Bitset) Clone() *Bitset {
	words := make([]uint32, len(b.words))
	copy(words, b.words)
	return &Bitset{
		words:  words,
		length: b.length,
	}
}

// Equal reports whether b and other have the same logical length and the
// same backing bits, padding included.
func (b *Bitset) Equal(other *Bitset) bool {
	if b.length != other.length || len(b.words) != len(other.words) {
		return false
	}
	for i, w := range b.words {
		if other.words[i] != w {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit FarmHash of the bitset's logical length and words.
// Bitsets that are Equal have the same Hash.
func (b *Bitset) Hash() uint64 {
	buf := make([]byte, 8+4*len(b.words))
	binary.LittleEndian.PutUint64(buf[:8], uint64(b.length))
	for i, w := range b.words {
		binary.LittleEndian.PutUint32(buf[8+4*i:], w)
	}
	return farm.Hash64(buf)
}

// String renders bits [0, LogicalLen()) as '0' and '1', lowest index first.
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for i := 0; i < b.length; i++ {
		if b.IsSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
