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

package moveslice

import "github.com/mkopp/zorro/internal/types"

// ScoredMove pairs a move with an ordering score. The teacher's chess
// MoveSlice packs a score into the move's upper bits and sorts on the
// packed int64 (Move == chess square pair + value in one word); that trick
// does not fit types.Move here (an int8 square index has no spare bits for
// a 16-bit centi-disc score), so move ordering for search and the endgame
// solver (§4.6, §4.7) uses this explicit pair instead.
type ScoredMove struct {
	Move  types.Move
	Score types.Value
}

// ScoredMoveSlice is a slice of ScoredMove, sorted by Sort() highest-score
// first.
type ScoredMoveSlice []ScoredMove

// Sort orders the slice by descending Score using a stable insertion sort,
// mirroring the teacher's MoveSlice.Sort: move lists here are small (at
// most 32 legal moves) and often nearly sorted already (carried over from
// hash-move ordering), so insertion sort outperforms a general-purpose
// sort.
func (s ScoredMoveSlice) Sort() {
	for i := 1; i < len(s); i++ {
		tmp := s[i]
		j := i
		for j > 0 && tmp.Score > s[j-1].Score {
			s[j] = s[j-1]
			j--
		}
		s[j] = tmp
	}
}

// Moves extracts just the Move values, in current slice order.
func (s ScoredMoveSlice) Moves() MoveSlice {
	out := make(MoveSlice, len(s))
	for i, sm := range s {
		out[i] = sm.Move
	}
	return out
}
