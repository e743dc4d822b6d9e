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

// Package book declares the opening-book boundary spec.md §6 names: the
// core only ever observes the book through GetBookMove and
// FillMoveAlternatives, never its on-disk representation. "Opening book on
// disk in a compressed form... unpacked into a native binary on first
// run" is explicitly out of scope (spec.md §1's non-goals) - this
// package's interface is satisfied by badgerbook.Book without
// reimplementing that legacy unpack step.
package book

import (
	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/types"
)

// Book is the opening-book collaborator internal/engine consults before
// falling back to a search. Unlike spec.md's literal
// get_book_move(side, pass_allowed, *eval_out) signature, GetBookMove
// also takes the board: a lookup keyed by side alone cannot identify a
// unique position, and the book must be queryable for any reachable
// position, not only one the book subsystem tracks move-by-move itself.
type Book interface {
	// GetBookMove looks up a book move for side to play on b. passAllowed
	// mirrors spec.md's pass_allowed flag: when false, a book reply that
	// is itself a forced pass is not offered. The bool result reports
	// whether a book move was found at all (spec.md §7's "BookMiss" is
	// silent: no error, just false here).
	GetBookMove(b *board.Board, side types.Color, passAllowed bool) (types.Move, types.Value, bool)

	// FillMoveAlternatives returns every book move known for b's position
	// restricted by flags (book-specific selection bits, e.g. "human-style
	// only"), for practice_mode's candidate-move display.
	FillMoveAlternatives(b *board.Board, side types.Color, flags uint8) []types.Move

	// Learn appends a finished game (its move sequence and final
	// disc-difference result) to the book. Persistence atomicity for the
	// append is the book subsystem's responsibility, per spec.md §6.
	Learn(moves []types.Move, result types.Value) error

	// Close releases any resources (file handles, database connections)
	// the book implementation holds.
	Close() error
}
