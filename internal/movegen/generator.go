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

// Package movegen contains the move generator (C3): generate_all(side) and
// valid_move(square, color) from spec.md §4.3, plus the empties list (§4.6)
// used by the endgame solver for O(1) square removal/restoration.
package movegen

import (
	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/moveslice"
	"github.com/mkopp/zorro/internal/types"
)

// Generator produces legal moves for a board. It carries no state of its
// own — every method is a pure function of the board passed in — so a
// single Generator can be shared across goroutines.
type Generator struct{}

// NewGenerator returns a Generator. There is no configuration: unlike the
// teacher's chess Movegen, Othello move generation needs no killer/PV
// bookkeeping because a position has no more than a few dozen candidate
// squares to test directly against the flip engine (board.CountFlips).
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateLegalMoves returns every legal move for mover on b: each empty,
// playable square where CountFlips reports at least one captured disc
// (spec.md §4.3's generate_all). The returned slice is freshly allocated
// and safe to retain past the next call.
func (g *Generator) GenerateLegalMoves(b *board.Board, mover types.Color) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(types.MaxMoves)
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if !sq.IsPlayable() || b.Get(sq) != types.Empty {
			continue
		}
		if b.CountFlips(sq, mover) > 0 {
			ml.PushBack(types.Move(sq))
		}
	}
	return ml
}

// HasLegalMove reports whether mover has at least one legal move on b,
// short-circuiting at the first candidate found. Delegates to the board
// package's own HasLegalMove, which iterates in the same square order.
func (g *Generator) HasLegalMove(b *board.Board, mover types.Color) bool {
	return b.HasLegalMove(mover)
}

// ValidMove reports whether sq is a legal move for mover on b (spec.md
// §4.3's valid_move(square, color)).
func (g *Generator) ValidMove(b *board.Board, sq types.Square, mover types.Color) bool {
	if !sq.IsPlayable() || b.Get(sq) != types.Empty {
		return false
	}
	return b.CountFlips(sq, mover) > 0
}
