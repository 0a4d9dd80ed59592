// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fill overwrites slices of words with a single value.
package fill

// U32 sets every element of b to v.
func U32(b []uint32, v uint32) {
	for i := 0; i < len(b); i++ {
		b[i] = v
	}
}

func ZeroU32(b []uint32) {
	U32(b, 0)
}

func OnesU32(b []uint32) {
	U32(b, ^uint32(0))
}
