// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"fmt"

	"github.com/bpowers/bitvec/internal/fill"
)

// lowMask has every bit at or above from's offset within its word set.
func lowMask(from int) uint32 {
	return allOnes << (uint(from) & wordMask)
}

// highMask has every bit below to's offset within the word holding bit
// to-1 set.  The shift is in [0, 31]; a range ending on a word boundary
// selects the whole word rather than shifting by the word width.
func highMask(to int) uint32 {
	return allOnes >> (wordMask - (uint(to-1) & wordMask))
}

// checkRange validates a non-empty half-open range [from, to) and returns
// the indices of the first and last words it touches.
func (b *Bitset) checkRange(from, to int) (first, last int, err error) {
	if from < 0 || to > b.Len() {
		return 0, 0, fmt.Errorf("%w: range [%d, %d) out of range (len %d)", ErrIndexOutOfRange, from, to, b.Len())
	}
	return from >> log2WordBits, (to - 1) >> log2WordBits, nil
}

// SetTrueRange sets bits in [from, to) to 1.  An empty range (from >= to)
// is a no-op regardless of bounds.
func (b *Bitset) SetTrueRange(from, to int) error {
	if from >= to {
		return nil
	}
	first, last, err := b.checkRange(from, to)
	if err != nil {
		return err
	}

	if first == last {
		b.words[first] |= lowMask(from) & highMask(to)
		return nil
	}

	b.words[first] |= lowMask(from)
	b.words[last] |= highMask(to)
	fill.OnesU32(b.words[first+1 : last])
	return nil
}

// SetFalseRange sets bits in [from, to) to 0.  An empty range (from >= to)
// is a no-op regardless of bounds.
func (b *Bitset) SetFalseRange(from, to int) error {
	if from >= to {
		return nil
	}
	first, last, err := b.checkRange(from, to)
	if err != nil {
		return err
	}

	if first == last {
		b.words[first] &^= lowMask(from) & highMask(to)
		return nil
	}

	b.words[first] &^= lowMask(from)
	b.words[last] &^= highMask(to)
	fill.ZeroU32(b.words[first+1 : last])
	return nil
}

func (b *Bitset) SetRange(from, to int, value bool) error {
	if value {
		return b.SetTrueRange(from, to)
	}
	return b.SetFalseRange(from, to)
}

// SetAll sets every backing bit, padding included, to value.
func (b *Bitset) SetAll(value bool) {
	if value {
		fill.OnesU32(b.words)
	} else {
		fill.ZeroU32(b.words)
	}
}
