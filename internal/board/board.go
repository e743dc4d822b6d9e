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

// Package board holds the dual board representation (C1) and the flip
// engine (C2): a sentinel-padded 10x10 array is the authoritative state for
// day-to-day move making, with a pair of 64-bit bitboards (mover/opponent
// relative) derived from it on demand (SyncBitboards), per spec.md §4.1's
// conversion contract. The two-word Zobrist hash is not derived on demand:
// it is updated incrementally as moves and passes are made and restored on
// UndoMove.
package board

import (
	"fmt"
	"strings"

	"github.com/mkopp/zorro/internal/assert"
	"github.com/mkopp/zorro/internal/types"
)

// undoRecord captures everything DoMove/Pass needs to reverse a ply,
// mirroring the teacher's position.historyState entry.
type undoRecord struct {
	move     types.Move
	flips    []types.Square
	prevH1   uint32
	prevH2   uint32
	wasPass  bool
}

// Board is the Othello board state: array-form cells, side to move, the
// two-word Zobrist hash and the move history needed to undo moves and
// passes. It is not safe for concurrent use; each search goroutine owns
// its own Board (see internal/engine).
type Board struct {
	cells       [types.ArraySize]types.Color
	sideToMove  types.Color
	h1, h2      uint32
	disksPlayed int
	history     []undoRecord

	// mine/opp are the bitboard-form representation, relative to
	// sideToMove. They are stale until SyncBitboards is called, per
	// spec.md §4.1's "called at every entry to the endgame solver and
	// stability analyzer" contract.
	mine, opp uint64
}

// startSquares are the four center discs of the standard Othello opening
// position, in (square, color) pairs.
var startSquares = []struct {
	sq    types.Square
	color types.Color
}{
	{types.SquareOf(4, 4), types.White},
	{types.SquareOf(4, 5), types.Black},
	{types.SquareOf(5, 4), types.Black},
	{types.SquareOf(5, 5), types.White},
}

// NewBoard returns a Board in the standard Othello starting position with
// Black to move.
func NewBoard() *Board {
	b := &Board{sideToMove: types.Black}
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if sq.IsPlayable() {
			b.cells[sq] = types.Empty
		} else {
			b.cells[sq] = types.Wall
		}
	}
	for _, s := range startSquares {
		b.cells[s.sq] = s.color
		b.h1 ^= zobristPieceH1[s.color][s.sq]
		b.h2 ^= zobristPieceH2[s.color][s.sq]
	}
	b.disksPlayed = 4
	return b
}

// Get returns the color on sq: Black, White, Empty or Wall for a border
// sentinel.
func (b *Board) Get(sq types.Square) types.Color {
	return b.cells[sq]
}

// SideToMove returns the color to move next.
func (b *Board) SideToMove() types.Color {
	return b.sideToMove
}

// DisksPlayed returns the number of discs on the board (4 at game start).
func (b *Board) DisksPlayed() int {
	return b.disksPlayed
}

// Key returns the 64-bit transposition table key formed by concatenating
// the board's two 32-bit Zobrist streams.
func (b *Board) Key() types.Key {
	return keyOf(b.h1, b.h2)
}

// HashWords exposes the raw two-word Zobrist streams, e.g. for the
// transposition table's bucket index (h1) and tag (h2).
func (b *Board) HashWords() (h1, h2 uint32) {
	return b.h1, b.h2
}

// PopCount returns the number of discs of the given color on the board.
func (b *Board) PopCount(c types.Color) int {
	n := 0
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if sq.IsPlayable() && b.cells[sq] == c {
			n++
		}
	}
	return n
}

// EmptyCount returns the number of empty playable squares.
func (b *Board) EmptyCount() int {
	return 64 - b.disksPlayed
}

// DoFlipsHash plays mover's disc on sq, flips the captured discs, and XORs
// the incremental Zobrist delta into the board hash in one step (spec.md
// §4.2, "hash-updating do"). It returns the flipped squares, or nil without
// side effects if the move is illegal.
func (b *Board) DoFlipsHash(sq types.Square, mover types.Color) []types.Square {
	flips := b.doFlips(sq, mover)
	if flips == nil {
		return nil
	}
	opp := mover.Opponent()
	b.h1 ^= zobristPieceH1[mover][sq]
	b.h2 ^= zobristPieceH2[mover][sq]
	for _, f := range flips {
		b.h1 ^= zobristPieceH1[opp][f]
		b.h1 ^= zobristPieceH1[mover][f]
		b.h2 ^= zobristPieceH2[opp][f]
		b.h2 ^= zobristPieceH2[mover][f]
	}
	return flips
}

// DoMove plays a move for the current side to move, updates the hash,
// advances disksPlayed, toggles the side to move, and pushes an undo
// record. It returns an error (InvalidMoveInSequence territory; the caller
// decides how to classify it) if the move has no legal flips.
func (b *Board) DoMove(sq types.Square) error {
	if assert.DEBUG {
		assert.Assert(sq.IsPlayable(), "DoMove: square %s is not playable", sq.String())
	}
	mover := b.sideToMove
	prevH1, prevH2 := b.h1, b.h2
	flips := b.DoFlipsHash(sq, mover)
	if flips == nil {
		return fmt.Errorf("illegal move: %s has no flips for %s", sq.String(), mover.String())
	}
	b.disksPlayed++
	b.history = append(b.history, undoRecord{
		move:   types.Move(sq),
		flips:  flips,
		prevH1: prevH1,
		prevH2: prevH2,
	})
	b.sideToMove = mover.Opponent()
	return nil
}

// UndoMove reverses the most recent DoMove or Pass.
func (b *Board) UndoMove() {
	if assert.DEBUG {
		assert.Assert(len(b.history) > 0, "UndoMove: history is empty")
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.sideToMove = b.sideToMove.Opponent()
	if last.wasPass {
		b.h1, b.h2 = last.prevH1, last.prevH2
		return
	}
	b.undoFlips(last.move.Square(), last.flips, b.sideToMove.Opponent())
	b.disksPlayed--
	b.h1, b.h2 = last.prevH1, last.prevH2
}

// Pass records a forced pass: no board cell changes, but the side to move
// toggles and the flip-color Zobrist constants are XORed in (spec.md §4.4,
// "Flipping side to move").
func (b *Board) Pass() {
	prevH1, prevH2 := b.h1, b.h2
	b.h1 ^= flipColorH1
	b.h2 ^= flipColorH2
	b.history = append(b.history, undoRecord{
		move:    types.MovePass,
		prevH1:  prevH1,
		prevH2:  prevH2,
		wasPass: true,
	})
	b.sideToMove = b.sideToMove.Opponent()
}

// HasLegalMove reports whether mover has at least one legal move on the
// current board.
func (b *Board) HasLegalMove(mover types.Color) bool {
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if sq.IsPlayable() && b.cells[sq] == types.Empty && b.CountFlips(sq, mover) > 0 {
			return true
		}
	}
	return false
}

// SyncBitboards recomputes the mover/opponent-relative bitboards from the
// array form. Per spec.md §4.1 this is called once at every entry to the
// endgame solver and the stability analyzer, not on every move.
func (b *Board) SyncBitboards() {
	b.mine, b.opp = 0, 0
	mover := b.sideToMove
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if !sq.IsPlayable() {
			continue
		}
		switch b.cells[sq] {
		case mover:
			b.mine |= sq.ToBitSquare().Bit()
		case mover.Opponent():
			b.opp |= sq.ToBitSquare().Bit()
		}
	}
}

// MineBits returns the mover-relative bitboard computed by the last
// SyncBitboards call.
func (b *Board) MineBits() uint64 { return b.mine }

// OppBits returns the opponent-relative bitboard computed by the last
// SyncBitboards call.
func (b *Board) OppBits() uint64 { return b.opp }

// String renders an 8x8 board diagram with disc glyphs, for debugging and
// host logging.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 1; r <= 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for c := 1; c <= 8; c++ {
			sb.WriteByte(b.cells[types.SquareOf(r, c)].Disc())
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("to move: %s  discs played: %d\n", b.sideToMove.String(), b.disksPlayed))
	return sb.String()
}
