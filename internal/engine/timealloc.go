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

package engine

import "time"

// safety is the fixed reserve spec.md §4.8 subtracts from the raw time
// budget before dividing it across the remaining moves.
const safety = 10 * time.Second

// moveTimeFactor and panicFactor are the 0.7/1.6 tuning constants Design
// Notes §9 flags as empirically derived and not to be retuned without
// evidence; they are kept unaltered here.
const moveTimeFactor = 0.7
const panicFactor = 1.6

// minMovesRemaining is the floor spec.md's moves_remaining formula is
// clamped to once the game is deep enough that the raw estimate would
// fall below it.
const minMovesRemaining = 2.0

// TimeAllocation implements spec.md §4.8's time allocation formula
// literally: moves_remaining ≈ max((65-disksPlayed)/2 - 5, 2); per-move
// budget = (timeLeft + ponderedTime + moves_remaining*increment -
// SAFETY) / (moves_remaining+1) * 0.7, capped at timeLeft/4; panic
// threshold = per-move * 1.6.
func TimeAllocation(timeLeft, ponderedTime, increment time.Duration, disksPlayed int) (perMove, panicLimit time.Duration) {
	movesRemaining := float64(65-disksPlayed)/2 - 5
	if movesRemaining < minMovesRemaining {
		movesRemaining = minMovesRemaining
	}

	budget := timeLeft + ponderedTime + time.Duration(movesRemaining*float64(increment)) - safety

	perMove = time.Duration(float64(budget) / (movesRemaining + 1) * moveTimeFactor)
	if perMove < 0 {
		perMove = 0
	}
	if cap := timeLeft / 4; perMove > cap {
		perMove = cap
	}

	panicLimit = time.Duration(float64(perMove) * panicFactor)
	return perMove, panicLimit
}
