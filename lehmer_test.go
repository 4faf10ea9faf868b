// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package permcompress

import (
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

func u32s(vs ...int) []uint32 {
	out := make([]uint32, len(vs))
	for i, v := range vs {
		out[i] = uint32(v)
	}
	return out
}

func TestForwardLehmerWikiExample(t *testing.T) {
	perm := u32s(1, 5, 0, 6, 3, 4, 2)
	want := u32s(1, 4, 0, 3, 1, 1, 0)

	forwardLehmer(perm)
	if !slices.Equal(perm, want) {
		t.Fatalf("forwardLehmer = %v, want %v", perm, want)
	}

	inverseLehmer(perm)
	if want := u32s(1, 5, 0, 6, 3, 4, 2); !slices.Equal(perm, want) {
		t.Fatalf("inverseLehmer = %v, want %v", perm, want)
	}
}

func TestForwardLehmerIdentity(t *testing.T) {
	perm := u32s(0, 1, 2, 3, 4)
	want := u32s(0, 0, 0, 0, 0)
	forwardLehmer(perm)
	if !slices.Equal(perm, want) {
		t.Fatalf("forwardLehmer = %v, want %v", perm, want)
	}
}

func TestForwardLehmerReverse(t *testing.T) {
	perm := u32s(4, 3, 2, 1, 0)
	want := u32s(4, 3, 2, 1, 0)
	forwardLehmer(perm)
	if !slices.Equal(perm, want) {
		t.Fatalf("forwardLehmer = %v, want %v", perm, want)
	}
}

func TestForwardLehmerNonPermutationIsRejected(t *testing.T) {
	perm := u32s(0, 0)
	defer func() {
		ex := recover()
		if ex != ErrInvalidInput {
			t.Fatalf("forwardLehmer on non-permutation panic = %v, want ErrInvalidInput", ex)
		}
	}()
	forwardLehmer(perm)
	t.Fatalf("forwardLehmer on non-permutation did not panic")
}

// randomLehmer generates a uniformly random Lehmer code of length sz: each
// entry i is uniform over [0, sz-i).
func randomLehmer(rnd *rand.Rand, sz int) []uint32 {
	out := make([]uint32, sz)
	for i := range out {
		out[i] = uint32(rnd.Intn(sz - i))
	}
	return out
}

func TestLehmerRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for seed := 0; seed < 1000; seed++ {
		lehmer := randomLehmer(rnd, 20)
		orig := slices.Clone(lehmer)

		perm := slices.Clone(lehmer)
		inverseLehmer(perm)

		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		for i, v := range sorted {
			if v != uint32(i) {
				t.Fatalf("seed %d: inverseLehmer produced non-permutation %v", seed, perm)
			}
		}

		back := slices.Clone(perm)
		forwardLehmer(back)
		if !slices.Equal(back, orig) {
			t.Fatalf("seed %d: forward(inverse(L)) = %v, want %v", seed, back, orig)
		}

		roundTrip := slices.Clone(perm)
		forwardLehmer(roundTrip)
		inverseLehmer(roundTrip)
		if !slices.Equal(roundTrip, perm) {
			t.Fatalf("seed %d: inverse(forward(P)) = %v, want %v", seed, roundTrip, perm)
		}
	}
}
