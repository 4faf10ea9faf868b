// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package permcompress

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "permcompress: " + string(e) }

var (
	// ErrInvalidInput reports a non-permutation/non-Lehmer-code input, such
	// as a value passed to SetKthUnsetBit with no free bit left to select.
	ErrInvalidInput error = Error("invalid input")

	// ErrCorrupt reports a framed byte stream that is missing its header
	// or ends in the middle of a block.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrRangeOutOfBounds reports a DecompressRange call whose [lo, hi)
	// arguments violate 0 <= lo <= hi <= N.
	ErrRangeOutOfBounds error = Error("range out of bounds")
)

// errRecover is deferred at the top of every exported entry point. The
// internal transform and framing code signals failure by panicking with
// one of this package's own Errors (inverseLehmer converts an
// internal/lrarray Error into ErrInvalidInput); errRecover turns that
// panic into a plain returned error. A runtime.Error (e.g. an out-of-range
// slice index from a genuine bug) is re-panicked rather than swallowed.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
