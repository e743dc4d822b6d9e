//
// zorro - an Othello/Reversi engine core in GO
//
// MIT License
//
// Copyright (c) 2021 zorro contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package board

import "github.com/mkopp/zorro/internal/types"

// zobristPiece[color][square] holds the two independent 32-bit random
// streams used to build the 64-bit position key, per spec.md §4.4: h1,h2
// are kept as separate 32-bit words (rather than folded into one 64-bit
// xorshift stream) specifically because their concatenation gives a
// negligible collision probability that a single 64-bit stream built from
// the same generator would not guarantee.
var (
	zobristPieceH1 [2][100]uint32
	zobristPieceH2 [2][100]uint32

	// flipColorH1/H2 are XORed into (h1,h2) when the side to move passes,
	// and XORed again to undo the pass. No piece moves on a pass, so these
	// are the only bits distinguishing "same board, other side to move".
	flipColorH1 uint32
	flipColorH2 uint32
)

// xorshift64star is the teacher's position-package PRNG (internal/position
// /random.go), reused verbatim for zobrist seeding since it has no
// chess-specific semantics to strip.
type xorshift64star struct {
	s uint64
}

func newXorshift64star(seed uint64) *xorshift64star {
	if seed == 0 {
		panic("zobrist seed must not be 0")
	}
	return &xorshift64star{s: seed}
}

func (r *xorshift64star) next64() uint64 {
	r.s ^= r.s << 13
	r.s ^= r.s >> 7
	r.s ^= r.s << 17
	return r.s * 2685821657736338717
}

func (r *xorshift64star) next32() uint32 {
	return uint32(r.next64() >> 32)
}

func init() {
	rng := newXorshift64star(0x5EED5EED5EED5EED)
	for c := 0; c < 2; c++ {
		for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
			if !sq.IsPlayable() {
				continue
			}
			zobristPieceH1[c][sq] = rng.next32()
			zobristPieceH2[c][sq] = rng.next32()
		}
	}
	flipColorH1 = rng.next32()
	flipColorH2 = rng.next32()
}

// keyOf concatenates the two 32-bit streams into the 64-bit transposition
// table key.
func keyOf(h1, h2 uint32) types.Key {
	return types.HashPair{H1: h1, H2: h2}.Key()
}
