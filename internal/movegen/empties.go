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

package movegen

import "github.com/mkopp/zorro/internal/types"

// head and tail are the sentinel indices of the Empties doubly-linked
// list, embedded in the same 100-slot index space as the board array
// (spec.md §4.6: "embedded in a 100-slot array with head=0 and tail=99").
const (
	emptiesHead = 0
	emptiesTail = 99
)

// worstToBestOrder seeds the initial traversal order of the empties list:
// corner squares are strongest and go last, X-squares (diagonal neighbors
// of a corner) are weakest and go first, per spec.md §4.6's "fixed
// worst-to-best heuristic (C1/A1/H8 corners last, X-squares first, etc.)".
// Squares not named here follow in board order between the two groups.
var worstToBestOrder = buildWorstToBestOrder()

func buildWorstToBestOrder() []types.Square {
	xSquares := []types.Square{
		types.SquareOf(2, 2), types.SquareOf(2, 7),
		types.SquareOf(7, 2), types.SquareOf(7, 7),
	}
	corners := []types.Square{
		types.SquareOf(1, 1), types.SquareOf(1, 8),
		types.SquareOf(8, 1), types.SquareOf(8, 8),
	}
	isSpecial := func(sq types.Square) bool {
		for _, x := range xSquares {
			if x == sq {
				return true
			}
		}
		for _, c := range corners {
			if c == sq {
				return true
			}
		}
		return false
	}
	order := make([]types.Square, 0, 64)
	order = append(order, xSquares...)
	for r := 1; r <= 8; r++ {
		for c := 1; c <= 8; c++ {
			sq := types.SquareOf(r, c)
			if !isSpecial(sq) {
				order = append(order, sq)
			}
		}
	}
	order = append(order, corners...)
	return order
}

// quadrantOf returns the 4x4 quadrant index (0..3) a square belongs to:
// 0=top-left, 1=top-right, 2=bottom-left, 3=bottom-right.
func quadrantOf(sq types.Square) uint {
	q := uint(0)
	if sq.Col() > 4 {
		q |= 1
	}
	if sq.Row() > 4 {
		q |= 2
	}
	return q
}

// emptiesNode is one slot of the doubly-linked empties list.
type emptiesNode struct {
	pred, succ types.Square
	inList     bool
}

// Empties is the doubly-linked empty-square list plus the 4-bit quadrant
// parity vector described in spec.md §4.6. It exists to give the endgame
// solver O(1) make/unmake over the remaining empty squares without
// rescanning the board, and O(1) parity-ordering decisions.
//
// Rebuilt fresh at each endgame entry (spec.md: "Lifetime: rebuilt at each
// endgame entry"); not used by the midgame search.
type Empties struct {
	nodes  [types.ArraySize]emptiesNode
	parity uint8 // bit q set iff quadrant q currently holds an odd number of empties
}

// NewEmpties builds the list from every playable square that isEmpty
// reports as empty, in the fixed worst-to-best traversal order.
func NewEmpties(isEmpty func(sq types.Square) bool) *Empties {
	e := &Empties{}
	prev := types.Square(emptiesHead)
	for _, sq := range worstToBestOrder {
		if !isEmpty(sq) {
			continue
		}
		e.nodes[prev].succ = sq
		e.nodes[sq].pred = prev
		e.nodes[sq].inList = true
		e.parity ^= 1 << quadrantOf(sq)
		prev = sq
	}
	e.nodes[prev].succ = emptiesTail
	e.nodes[emptiesTail].pred = prev
	return e
}

// Parity returns the current 4-bit quadrant parity vector.
func (e *Empties) Parity() uint8 {
	return e.parity
}

// First returns the first square in the list, or emptiesTail if empty.
func (e *Empties) First() types.Square {
	return e.nodes[emptiesHead].succ
}

// Next returns the square following sq in the list.
func (e *Empties) Next(sq types.Square) types.Square {
	return e.nodes[sq].succ
}

// End reports whether sq is the tail sentinel (i.e. iteration is done).
func (e *Empties) End(sq types.Square) bool {
	return sq == emptiesTail
}

// IsOddParity reports whether sq's quadrant currently holds an odd number
// of empties.
func (e *Empties) IsOddParity(sq types.Square) bool {
	return e.parity&(1<<quadrantOf(sq)) != 0
}

// Remove splices sq out of the list in O(1) and flips its quadrant's
// parity bit (spec.md §4.6: "`make` removes the played square from the
// list in O(1) by splicing ... `region_parity` is XORed with the square's
// quadrant bit on both transitions").
func (e *Empties) Remove(sq types.Square) {
	n := &e.nodes[sq]
	e.nodes[n.pred].succ = n.succ
	e.nodes[n.succ].pred = n.pred
	e.parity ^= 1 << quadrantOf(sq)
}

// Restore splices sq back into the list between its recorded neighbors,
// the inverse of Remove, and flips its quadrant's parity bit back.
func (e *Empties) Restore(sq types.Square) {
	n := &e.nodes[sq]
	e.nodes[n.pred].succ = sq
	e.nodes[n.succ].pred = sq
	e.parity ^= 1 << quadrantOf(sq)
}

// OddThenEven iterates the list twice, first yielding squares in odd-
// parity quadrants, then squares in even-parity quadrants, calling visit
// for each (spec.md §4.6 "Parity ordering"). Iteration stops early if
// visit returns false.
func (e *Empties) OddThenEven(visit func(sq types.Square) bool) {
	for sq := e.First(); !e.End(sq); sq = e.Next(sq) {
		if e.IsOddParity(sq) {
			if !visit(sq) {
				return
			}
		}
	}
	for sq := e.First(); !e.End(sq); sq = e.Next(sq) {
		if !e.IsOddParity(sq) {
			if !visit(sq) {
				return
			}
		}
	}
}
