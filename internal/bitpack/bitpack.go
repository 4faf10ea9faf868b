// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitpack implements a fixed-block-length, minimum-bit-width
// integer packer: it packs exactly BlockSize uint32 values into a
// contiguous bit-stream at a caller-chosen bit width, and unpacks them
// back. It carries no block header, exception table, or zig-zag
// encoding of its own; callers that need those wrap this package with
// their own framing, as framing.go does.
package bitpack

import (
	"math/bits"
)

// BlockSize is the fixed number of integers packed or unpacked per call.
// It matches the block length of the Rust BitPacker4x reference this
// package's framing contract was originally validated against.
const BlockSize = 128

// RequiredWidth returns the minimum bit width w, 0 <= w <= 32, needed to
// losslessly represent every value in values. An empty or all-zero slice
// requires width 0.
func RequiredWidth(values []uint32) uint8 {
	var width int
	for _, v := range values {
		if w := bits.Len32(v); w > width {
			width = w
		}
	}
	return uint8(width)
}

// PackedLen returns the number of bytes Pack writes for a BlockSize block
// packed at width bits per value.
func PackedLen(width uint8) int {
	return int(width) * BlockSize / 8
}

// Pack packs exactly BlockSize values from values (which must have length
// BlockSize) into PackedLen(width) bytes at the given bit width and
// appends them to dst, returning the grown slice. Pack does not validate
// that every value fits in width bits; RequiredWidth must be used to pick
// a sufficient width beforehand.
func Pack(dst []byte, values []uint32, width uint8) []byte {
	if width == 0 {
		return dst
	}

	start := len(dst)
	dst = append(dst, make([]byte, PackedLen(width))...)
	out := dst[start:]

	// BlockSize is a multiple of 8, so width*BlockSize bits always drain to
	// a whole number of bytes: accBits returns to exactly 0 once every
	// value has been folded in, with nothing left over to flush.
	var acc uint64
	var accBits uint
	pos := 0
	for _, v := range values {
		acc |= uint64(v) << accBits
		accBits += uint(width)
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	return dst
}

// Unpack reads exactly PackedLen(width) bytes from buf and decodes
// BlockSize values at the given bit width into dst, which must have
// length BlockSize. It returns the number of bytes consumed from buf.
func Unpack(dst []uint32, buf []byte, width uint8) int {
	n := PackedLen(width)
	if width == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return 0
	}

	mask := uint64(1)<<uint(width) - 1
	var acc uint64
	var accBits uint
	pos := 0
	for i := range dst {
		for accBits < uint(width) {
			acc |= uint64(buf[pos]) << accBits
			accBits += 8
			pos++
		}
		dst[i] = uint32(acc & mask)
		acc >>= uint(width)
		accBits -= uint(width)
	}
	return n
}
