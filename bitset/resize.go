// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

// Resize changes the logical length of b to newLength, reallocating the
// backing words when their count changes.  Bits below both the old and new
// logical lengths are preserved and every other bit, padding included, is
// zero afterwards.  A newLength <= 0 empties the bitset.
func (b *Bitset) Resize(newLength int) {
	if newLength < 0 {
		newLength = 0
	}

	keep := b.length
	if newLength < keep {
		keep = newLength
	}
	// words past the one holding bit keep-1 are either truncated below or
	// freshly allocated, so only that word needs masking.
	if keep > 0 {
		b.words[(keep-1)>>log2WordBits] &= highMask(keep)
	}

	n := wordCount(newLength)
	if n != len(b.words) {
		words := make([]uint32, n)
		copy(words, b.words)
		b.words = words
	}
	b.length = newLength
}
