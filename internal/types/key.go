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

package types

// Key is the 64-bit transposition table key. spec.md §9 (Design Notes)
// keeps the position hash as two independent 32-bit words (H1, H2) rather
// than consolidating into one u64, because H2 doubles as a cheap
// collision-check digest stored alongside the H1-indexed bucket; Key is
// only the concatenation of the two words used to address/verify a table
// slot, not a replacement for the pair.
type Key uint64

// HashPair is the two-word Zobrist hash carried on every ply state
// (spec.md §3, Game state: "Zobrist hash pair (h1,h2)").
type HashPair struct {
	H1 uint32
	H2 uint32
}

// Key concatenates the pair into a single 64-bit transposition table key.
func (p HashPair) Key() Key {
	return Key(uint64(p.H1))<<32 | Key(uint64(p.H2))
}

// XOR merges another pair into this one in place (used for incremental
// Zobrist updates on make/unmake and for the pass side-to-move flip,
// spec.md §4.4).
func (p *HashPair) XOR(other HashPair) {
	p.H1 ^= other.H1
	p.H2 ^= other.H2
}
