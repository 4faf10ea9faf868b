// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package permcompress

import (
	"encoding/binary"

	"github.com/dsnet/permcompress/internal/bitpack"
)

const headerLen = 4

// encodeFrames writes the framed byte stream for values: a 4-byte
// little-endian length header carrying len(values), followed by one block
// per bitpack.BlockSize-sized chunk of values (the final chunk zero-padded
// in the logical domain before packing). Each block is a single bit-width
// byte followed by its packed payload.
func encodeFrames(values []uint32) []byte {
	n := len(values)
	provision := n
	if provision < bitpack.BlockSize {
		provision = bitpack.BlockSize
	}
	numBlocks := (provision + bitpack.BlockSize - 1) / bitpack.BlockSize
	out := make([]byte, 0, headerLen+provision*4+numBlocks)

	out = append(out, make([]byte, headerLen)...)
	binary.LittleEndian.PutUint32(out[:headerLen], uint32(n))

	var padded [bitpack.BlockSize]uint32
	for start := 0; start < n; start += bitpack.BlockSize {
		stop := start + bitpack.BlockSize
		var block []uint32
		if stop <= n {
			block = values[start:stop]
		} else {
			for i := range padded {
				padded[i] = 0
			}
			copy(padded[:], values[start:n])
			block = padded[:]
		}

		width := bitpack.RequiredWidth(block)
		out = append(out, byte(width))
		out = bitpack.Pack(out, block, width)
	}

	return out
}

// decodeFrames parses the framed byte stream produced by encodeFrames and
// returns the original values, truncated to the length carried in the
// header. It panics with ErrCorrupt if the header is missing or a block
// is truncated mid-frame.
func decodeFrames(data []byte) []uint32 {
	if len(data) < headerLen {
		panic(ErrCorrupt)
	}
	n := int(binary.LittleEndian.Uint32(data[:headerLen]))
	pos := headerLen

	out := make([]uint32, 0, n)
	var block [bitpack.BlockSize]uint32
	for pos < len(data) {
		width := uint8(data[pos])
		pos++

		need := bitpack.PackedLen(width)
		if pos+need > len(data) {
			panic(ErrCorrupt)
		}
		bitpack.Unpack(block[:], data[pos:pos+need], width)
		pos += need

		out = append(out, block[:]...)
	}

	if len(out) < n {
		panic(ErrCorrupt)
	}
	return out[:n]
}

// decodeFramesRange parses the framed byte stream and returns only the
// logical sub-slice [lo, hi), decoding every block along the way (the
// packer has no random-access entry point) but collecting output only
// from blocks that overlap the requested window. It panics with
// ErrRangeOutOfBounds unless lo <= hi <= N, and with ErrCorrupt if the
// header is missing, a block is truncated mid-frame, or the stream ends
// before the last block the range needs.
func decodeFramesRange(data []byte, lo, hi uint32) []uint32 {
	if len(data) < headerLen {
		panic(ErrCorrupt)
	}
	n := uint32(binary.LittleEndian.Uint32(data[:headerLen]))
	if lo > hi || hi > n {
		panic(ErrRangeOutOfBounds)
	}
	pos := headerLen

	first := lo / bitpack.BlockSize
	last := hi / bitpack.BlockSize

	out := make([]uint32, 0, hi-lo)
	var block [bitpack.BlockSize]uint32
	var blockIdx uint32
	for pos < len(data) {
		width := uint8(data[pos])
		pos++

		need := bitpack.PackedLen(width)
		if pos+need > len(data) {
			panic(ErrCorrupt)
		}
		bitpack.Unpack(block[:], data[pos:pos+need], width)
		pos += need

		if blockIdx >= first && blockIdx <= last {
			blockStart := blockIdx * bitpack.BlockSize
			relStart := uint32(0)
			if lo > blockStart {
				relStart = lo - blockStart
			}
			relEnd := uint32(bitpack.BlockSize)
			if hi < blockStart+bitpack.BlockSize {
				relEnd = hi - blockStart
			}
			if relEnd > relStart {
				out = append(out, block[relStart:relEnd]...)
			}
		}

		blockIdx++
	}

	// last is hi/B, which overshoots by one whole (harmless, zero-contributing)
	// block when hi is an exact multiple of B; the true index of the last
	// block actually needed is (hi-1)/B.
	if hi > 0 && blockIdx <= (hi-1)/bitpack.BlockSize {
		panic(ErrCorrupt)
	}

	return out
}
