// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package popcount computes Hamming weights of fixed-width words with
// SWAR (SIMD within a register) arithmetic.
package popcount

const (
	m1x32  = ^uint32(0) / 3   // 0x55555555
	m2x32  = ^uint32(0) / 5   // 0x33333333
	m4x32  = ^uint32(0) / 17  // 0x0F0F0F0F
	h01x32 = ^uint32(0) / 255 // 0x01010101

	m1x64  = ^uint64(0) / 3
	m2x64  = ^uint64(0) / 5
	m4x64  = ^uint64(0) / 17
	h01x64 = ^uint64(0) / 255
)

// Uint32 returns the number of set bits in x.
func Uint32(x uint32) int {
	x -= (x >> 1) & m1x32
	x = (x & m2x32) + ((x >> 2) & m2x32)
	x = (((x + (x >> 4)) & m4x32) * h01x32) >> 24
	return int(x)
}

// Uint64 returns the number of set bits in x.
func Uint64(x uint64) int {
	x -= (x >> 1) & m1x64
	x = (x & m2x64) + ((x >> 2) & m2x64)
	x = (((x + (x >> 4)) & m4x64) * h01x64) >> 56
	return int(x)
}

// Uint32s returns the total number of set bits in words.
func Uint32s(words []uint32) int {
	n := 0
	for _, w := range words {
		n += Uint32(w)
	}
	return n
}
