// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package permcompress

import (
	"runtime"

	"github.com/dsnet/permcompress/internal/lrarray"
)

// forwardLehmer overwrites perm (a permutation of {0, ..., len(perm)-1}) in
// place with its Lehmer code: perm[i] becomes the number of entries to the
// right of position i in the original permutation that were smaller than
// perm[i].
//
// It is a defect (permutation invariant violated by the caller) if any
// value repeats; that case is reported by panicking with ErrInvalidInput
// rather than silently producing a wrong answer.
func forwardLehmer(perm []uint32) {
	lr := lrarray.New(uint32(len(perm)))
	for i, v := range perm {
		perm[i] = lr.UnsetBefore(v)
		if lr.SetNthBit(v) {
			panic(ErrInvalidInput)
		}
	}
}

// inverseLehmer overwrites lehmer (a valid Lehmer code, lehmer[i] in
// [0, len(lehmer)-1-i]) in place with the permutation it encodes. It
// panics with ErrInvalidInput if some lehmer[i] has no unset bit left to
// select, which lrarray reports as its own ErrOutOfRange.
func inverseLehmer(lehmer []uint32) {
	defer func() {
		if ex := recover(); ex != nil {
			if _, ok := ex.(runtime.Error); ok {
				panic(ex)
			}
			panic(ErrInvalidInput)
		}
	}()
	lr := lrarray.New(uint32(len(lehmer)))
	for i, k := range lehmer {
		lehmer[i] = lr.SetKthUnsetBit(k)
	}
}
