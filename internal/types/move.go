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

// Move is a played square. Unlike a chess move it carries no piece or
// promotion information — a disc takes the color of the side to move.
type Move Square

// MoveNone marks the absence of a move (e.g. an empty hash slot).
const MoveNone Move = Move(NoSquare)

// MovePass represents a forced pass (spec.md §3, Move generator: "if the
// count is 0 the caller must treat this as a pass").
const MovePass Move = -2

// Square converts the move back to the array-form square it plays, valid
// only when the move is neither MoveNone nor MovePass.
func (m Move) Square() Square {
	return Square(m)
}

// IsPass reports whether the move is a forced pass.
func (m Move) IsPass() bool {
	return m == MovePass
}

// String renders the move using algebraic square notation, "pass" or "-".
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "-"
	case MovePass:
		return "pass"
	default:
		return m.Square().String()
	}
}
