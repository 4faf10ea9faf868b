// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package permcompress compresses and decompresses permutations of
// {0, 1, ..., N-1} into a compact byte sequence, with two selectable
// modes trading compression ratio for CPU cost, and supports
// range-selective decompression of contiguous sub-ranges.
//
// The core of the package is a Lehmer-code transform (see lehmer.go),
// backed by a bit-indexed rank/select structure in internal/lrarray, and a
// block-oriented bit-packing codec (see framing.go), backed by
// internal/bitpack. Every operation is purely computational,
// single-threaded per call, and performs no I/O; multiple calls may run
// concurrently across goroutines as long as each owns its own input and
// output slices.
package permcompress

// Mode selects the trade-off between compression ratio and CPU cost.
type Mode int

const (
	// Fast stores the permutation's values directly, bit-packed per
	// block. It supports cheap range-selective decompression.
	Fast Mode = iota

	// Slow runs the Lehmer-code transform before bit-packing, trading
	// extra CPU time for a tighter bound on the per-value bit width.
	// Because the Lehmer transform is global, range-selective
	// decompression in Slow mode falls back to a full decompress.
	Slow
)

// Compress consumes perm, a permutation of {0, ..., len(perm)-1}, and
// returns its framed, bit-packed byte encoding under the given mode.
// perm may be overwritten by the call.
func Compress(mode Mode, perm []uint32) (data []byte, err error) {
	defer errRecover(&err)
	if mode == Slow {
		forwardLehmer(perm)
	}
	return encodeFrames(perm), nil
}

// Decompress parses a byte stream produced by Compress under the given
// mode and returns the original permutation.
func Decompress(mode Mode, data []byte) (values []uint32, err error) {
	defer errRecover(&err)
	values = decodeFrames(data)
	if mode == Slow {
		inverseLehmer(values)
	}
	return values, nil
}

// DecompressRange parses a byte stream produced by Compress under the
// given mode and returns only the sub-permutation at [lo, hi). It
// returns ErrRangeOutOfBounds if hi > N or lo > hi, where N is the
// permutation length carried in data's header.
//
// In Fast mode this walks and decodes every block but collects values only
// from the blocks overlapping [lo, hi). In Slow
// mode the Lehmer transform is global (the value at position i depends on
// all preceding positions), so this falls back to a full Decompress
// followed by a slice.
func DecompressRange(mode Mode, data []byte, lo, hi uint32) (values []uint32, err error) {
	defer errRecover(&err)
	if mode == Slow {
		full, err := Decompress(mode, data)
		if err != nil {
			return nil, err
		}
		if lo > hi || hi > uint32(len(full)) {
			panic(ErrRangeOutOfBounds)
		}
		return full[lo:hi], nil
	}
	return decodeFramesRange(data, lo, hi), nil
}
