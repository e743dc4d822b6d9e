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

package endgame

import (
	"sort"

	"github.com/mkopp/zorro/internal/types"
)

// candidate is one legal move under consideration at an internal node,
// carrying its fastest-first goodness once scored.
type candidate struct {
	sq    types.Square
	score int
}

// negamax is the n>4 endgame recursion: parity ordering always, hash
// probe/store once n exceeds lowLevelDepth, and fastest-first move
// ordering once n exceeds fastestFirstDepth (spec.md §4.6's level table).
// It returns the side-to-move's score and its best move.
func negamax(c *ctx, alpha, beta int) (int, types.Move) {
	c.nodes++

	n := c.b.EmptyCount()
	if n == 0 {
		return finalScore(c.b), types.MoveNone
	}
	if n <= 4 {
		var squares []types.Square
		for sq := c.empties.First(); !c.empties.End(sq); sq = c.empties.Next(sq) {
			squares = append(squares, sq)
		}
		return solveSmall(c, squares, alpha, beta)
	}

	useHash := n > lowLevelDepth
	useFastestFirst := n > fastestFirstDepth
	origAlpha := alpha

	var hashMove types.Move = types.MoveNone
	if useHash && c.tt != nil {
		if e := c.tt.Probe(c.b.Key()); e != nil && e.Kind() == types.Endgame {
			hashMove = e.Move()
			if int(e.Depth()) >= n {
				v := int(e.Value())
				switch e.Vtype() {
				case types.Exact:
					return v, e.Move()
				case types.Lower:
					if v >= beta {
						return v, e.Move()
					}
				case types.Upper:
					if v <= alpha {
						return v, e.Move()
					}
				}
			}
		}
	}

	a, be, cutoff := stabilityCutoff(c.b, alpha, beta)
	if cutoff {
		return a, types.MoveNone
	}
	alpha, beta = a, be

	if useHash {
		if score, cut := mpcCut(c, c.selectivity, alpha, beta); cut {
			return score, hashMove
		}
	}

	var candidates []candidate
	mover := c.b.SideToMove()
	c.empties.OddThenEven(func(sq types.Square) bool {
		if c.b.CountFlips(sq, mover) > 0 {
			candidates = append(candidates, candidate{sq: sq})
		}
		return true
	})

	if len(candidates) == 0 {
		if !c.b.HasLegalMove(mover.Opponent()) {
			return finalScore(c.b), types.MoveNone
		}
		c.b.Pass()
		score, _ := negamax(c, -beta, -alpha)
		c.b.UndoMove()
		return -score, types.MovePass
	}

	if useFastestFirst {
		scoreFastestFirst(c, candidates, hashMove)
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	}

	best := negInfinity
	bestMove := candidates[0].sq
	for i, cand := range candidates {
		c.empties.Remove(cand.sq)
		if err := c.b.DoMove(cand.sq); err != nil {
			c.empties.Restore(cand.sq)
			continue
		}

		var score int
		if i == 0 {
			score, _ = negamax(c, -beta, -alpha)
			score = -score
		} else {
			score, _ = negamax(c, -alpha-1, -alpha)
			score = -score
			if score > alpha && score < beta {
				score, _ = negamax(c, -beta, -score)
				score = -score
			}
		}

		c.b.UndoMove()
		c.empties.Restore(cand.sq)

		if score > best {
			best = score
			bestMove = cand.sq
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	if useHash && c.tt != nil {
		vtype := types.Exact
		switch {
		case best <= origAlpha:
			vtype = types.Upper
		case best >= beta:
			vtype = types.Lower
		}
		c.tt.Put(c.b.Key(), types.Move(bestMove), int8(n), types.Value(best), vtype, types.Value(best), types.Endgame)
	}

	return best, types.Move(bestMove)
}

// scoreFastestFirst fills in each candidate's goodness score: the
// per-square/parity bonus table, a bonus for matching the hash move, minus
// a weighted count of the opponent's resulting mobility (spec.md §4.6
// "Fastest-first"). It plays and unplays each candidate once to measure
// the opponent's reply count, restoring the board and empties list fully
// before returning.
func scoreFastestFirst(c *ctx, candidates []candidate, hashMove types.Move) {
	for i := range candidates {
		sq := candidates[i].sq
		oddParity := c.empties.IsOddParity(sq)

		c.empties.Remove(sq)
		_ = c.b.DoMove(sq)
		mobility := c.gen.GenerateLegalMoves(c.b, c.b.SideToMove()).Len()
		c.b.UndoMove()
		c.empties.Restore(sq)

		score := squareBonus(sq, oddParity) - mobilityWeight*mobility
		if hashMove != types.MoveNone && sq == hashMove.Square() {
			score += hashMoveBonus
		}
		candidates[i].score = score
	}
}
