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

// Package stability implements the edge-stability table (C5): at startup
// it computes, for all 3^8 = 6561 edge configurations, which discs are
// provably stable against any future sequence of legal moves, then
// specializes that table per color into a weighted stable-disc count
// (corners weighted 1, non-corners weighted 2, so the four edges of a
// board can be summed without double-counting a corner twice). Grounded
// on original_source/project/jni/zebra/stable.c's init_stable /
// recursive_find_stable / count_color_stable dynamic program, expressed
// over a plain [8]int row instead of a packed base-3 int and bitboard
// masks — the DP recursion is identical, only the encoding is idiomatic
// Go rather than C bit tricks.
package stability

import "github.com/mkopp/zorro/internal/types"

// edgeConfigs is the number of distinct 8-cell edge configurations
// (each cell in {Black, White, Empty}).
const edgeConfigs = 6561 // 3^8

// undetermined marks an edgeStable slot not yet computed by the DP.
const undetermined = -1

// pow3 holds 3^i for i in 0..7, used to convert an 8-cell row into its
// base-3 index and back.
var pow3 = [8]int{1, 3, 9, 27, 81, 243, 729, 2187}

// edgeStable[pattern] is an 8-bit mask: bit i set means cell i of that
// edge pattern can never be flipped by any future legal move sequence.
var edgeStable [edgeConfigs]int

// blackStable/whiteStable[pattern] is the weighted count of stable discs
// of that color in the edge pattern (corners=1, non-corners=2).
var blackStable, whiteStable [edgeConfigs]uint8

// base3 converts an 8-bit "is this color present here" mask into the
// corresponding base-3 digit sum (grounded on stable.c's
// base_conversion[256]).
var base3 [256]int

func init() {
	for i := 0; i < 256; i++ {
		v := 0
		for j := 0; j < 8; j++ {
			if i&(1<<uint(j)) != 0 {
				v += pow3[j]
			}
		}
		base3[i] = v
	}

	for i := range edgeStable {
		edgeStable[i] = undetermined
	}
	for i := 0; i < edgeConfigs; i++ {
		if edgeStable[i] == undetermined {
			recursiveFindStable(i)
		}
	}
	countColorStable()
}

// rowOf decodes pattern into its 8 base-3 digits (0=Black, 1=White,
// 2=Empty, matching types.Color's numbering for the first three values).
func rowOf(pattern int) [8]types.Color {
	var row [8]types.Color
	for i := 0; i < 8; i++ {
		row[i] = types.Color(pattern % 3)
		pattern /= 3
	}
	return row
}

func patternOf(row [8]types.Color) int {
	p := 0
	for i := 0; i < 8; i++ {
		p += pow3[i] * int(row[i])
	}
	return p
}

// recursiveFindStable computes (and memoizes) the stability mask for
// pattern: a cell is stable unless some legal move — played at any empty
// cell in the row, for either color, including the discs it flips — can
// eventually change it, checked recursively on the resulting pattern.
func recursiveFindStable(pattern int) int {
	if edgeStable[pattern] != undetermined {
		return edgeStable[pattern]
	}

	row := rowOf(pattern)
	stable := 0xFF

	for i := 0; i < 8; i++ {
		if row[i] != types.Empty {
			continue
		}
		stable &^= 1 << uint(i)

		for _, mover := range []types.Color{types.Black, types.White} {
			trial := row
			trial[i] = mover
			// flip left of i while opponent discs are contiguous and
			// terminate on a mover disc
			if i >= 2 {
				j := i - 1
				for j >= 1 && trial[j] == mover.Opponent() {
					j--
				}
				if trial[j] == mover {
					for j++; j < i; j++ {
						trial[j] = mover
						stable &^= 1 << uint(j)
					}
				}
			}
			// flip right of i symmetrically
			if i <= 5 {
				j := i + 1
				for j <= 6 && trial[j] == mover.Opponent() {
					j++
				}
				if trial[j] == mover {
					for j--; j > i; j-- {
						trial[j] = mover
						stable &^= 1 << uint(j)
					}
				}
			}
			stable &= recursiveFindStable(patternOf(trial))
		}
	}

	edgeStable[pattern] = stable
	return stable
}

// countColorStable specializes edgeStable per color into a weighted
// stable-disc count (corners weight 1, non-corners weight 2), grounded on
// stable.c's count_color_stable.
func countColorStable() {
	stableIncr := [8]uint8{1, 2, 2, 2, 2, 2, 2, 1}
	for pattern := 0; pattern < edgeConfigs; pattern++ {
		row := rowOf(pattern)
		var b, w uint8
		for j := 0; j < 8; j++ {
			if edgeStable[pattern]&(1<<uint(j)) == 0 {
				continue
			}
			switch row[j] {
			case types.Black:
				b += stableIncr[j]
			case types.White:
				w += stableIncr[j]
			}
		}
		blackStable[pattern] = b
		whiteStable[pattern] = w
	}
}

// edgeSquares returns the 8 squares of one of the board's 4 border lines,
// in a1->h1 / a8->h8 / a1->a8 / h1->h8 order as used by the original's
// edge_a1h1/edge_a8h8/edge_a1a8/edge_h1h8 indices.
func edgeSquares(which int) [8]types.Square {
	var sq [8]types.Square
	switch which {
	case 0: // row 1 (a1..h1)
		for c := 1; c <= 8; c++ {
			sq[c-1] = types.SquareOf(1, c)
		}
	case 1: // row 8 (a8..h8)
		for c := 1; c <= 8; c++ {
			sq[c-1] = types.SquareOf(8, c)
		}
	case 2: // col a (a1..a8)
		for r := 1; r <= 8; r++ {
			sq[r-1] = types.SquareOf(r, 1)
		}
	case 3: // col h (h1..h8)
		for r := 1; r <= 8; r++ {
			sq[r-1] = types.SquareOf(r, 8)
		}
	}
	return sq
}

// CountEdgeStable returns the number of edge discs of mover's color
// provably stable, summed over the board's 4 border lines (spec.md §4.5:
// "corners weighted 1, non-corners weighted 2 so the four edges can be
// summed without double-counting"). Corners are shared by two edges, so
// the raw sum double-counts them by construction and is halved, exactly
// mirroring stable.c's count_edge_stable.
func CountEdgeStable(get func(types.Square) types.Color, mover types.Color) int {
	total := 0
	for which := 0; which < 4; which++ {
		row := [8]types.Color{}
		for i, sq := range edgeSquares(which) {
			row[i] = get(sq)
		}
		pattern := patternOf(row)
		if mover == types.Black {
			total += int(blackStable[pattern])
		} else {
			total += int(whiteStable[pattern])
		}
	}
	return total / 2
}
