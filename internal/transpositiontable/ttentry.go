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

package transpositiontable

import (
	. "github.com/mkopp/zorro/internal/types"
)

// TtEntry is one slot of the transposition table (C4): a hash entry
// keyed by the board's 64-bit Zobrist key, holding the best move,
// the static eval, the search value, and a packed metadata word (spec.md
// §4.4). Each entry is 16 bytes, matching the teacher's chess TtEntry
// layout almost exactly — only vmeta grows one bit, to carry which of the
// two namespaces (midgame/endgame) the value and bound belong to.
type TtEntry struct {
	key   Key    // 64-bit Zobrist key (board.Board.Key())
	move  uint16 // move part, convert with Move(e.move)
	eval  int16  // static evaluator value
	value int16  // search value
	vmeta uint16 // age 3-bit, vtype 2-bit, depth 7-bit, kind 1-bit
}

const (
	// TtEntrySize is the size in bytes of each TtEntry.
	TtEntrySize = 16

	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
	kindMask   = uint16(0b0001_0000_0000_0000)
	kindShift  = uint16(12)
)

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the entry's stored Zobrist key.
func (e *TtEntry) Key() Key {
	return e.key
}

// Move returns the entry's stored best move.
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Value returns the entry's stored search value.
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval returns the entry's stored static evaluation.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the search depth (or remaining-empties count, for
// endgame entries) the entry was stored at.
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns the number of generations since the entry was last
// refreshed by a probe hit.
func (e *TtEntry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

// Vtype returns the bound kind (Exact/Lower/Upper) of the stored value.
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}

// Kind reports whether the stored value belongs to the midgame or
// endgame namespace (spec.md §4.4: "mode selects between a midgame
// namespace and an endgame namespace" — the two share a table but must
// never be read across the boundary).
func (e *TtEntry) Kind() ScoreKind {
	if e.vmeta&kindMask != 0 {
		return Endgame
	}
	return Midgame
}
