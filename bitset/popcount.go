// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"github.com/bpowers/bitvec/internal/popcount"
)

// Bit is the value of a single position in a Bitset.
type Bit uint8

func (b Bit) AsBool() bool {
	return b != 0
}

func (b Bit) AsInt() int {
	return int(b)
}

// BitAt returns the bit at position `off`; its AsInt is the population count
// of that single position.
func (b *Bitset) BitAt(off int) (Bit, error) {
	if err := b.checkIndex(off); err != nil {
		return 0, err
	}
	wordOff, bitOff := getOffsets(off)
	return Bit(b.words[wordOff] >> bitOff & 1), nil
}

// PopCount returns the number of set bits in the whole backing store,
// including padding bits past LogicalLen.
func (b *Bitset) PopCount() int {
	return popcount.Uint32s(b.words)
}

// LogicalPopCount returns the number of set bits in [0, LogicalLen()).
func (b *Bitset) LogicalPopCount() int {
	// [0, length) is always inside the backing store
	n, _ := b.PopCountRange(0, b.length)
	return n
}

// PopCountRange returns the number of set bits in [from, to).  An empty
// range (from >= to) counts 0 regardless of bounds.
func (b *Bitset) PopCountRange(from, to int) (int, error) {
	if from >= to {
		return 0, nil
	}
	first, last, err := b.checkRange(from, to)
	if err != nil {
		return 0, err
	}

	if first == last {
		return popcount.Uint32(b.words[first] & lowMask(from) & highMask(to)), nil
	}

	// both partial words fit in a single 64-bit reduction
	edges := uint64(b.words[first]&lowMask(from)) | uint64(b.words[last]&highMask(to))<<wordBits
	return popcount.Uint64(edges) + popcount.Uint32s(b.words[first+1:last]), nil
}
