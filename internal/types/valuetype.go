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

// ValueType is the bound flag stored with a hash entry's score
// (spec.md §3, Hash entry: bound_flag in {EXACT, LOWER, UPPER}).
type ValueType uint8

const (
	// NoValueType marks an entry that has never been written.
	NoValueType ValueType = 0
	// Exact means the stored score is the true minimax value.
	Exact ValueType = 1
	// Lower means the stored score is a lower bound (a beta cutoff,
	// i.e. "fail high": true value >= score).
	Lower ValueType = 2
	// Upper means the stored score is an upper bound (an alpha cutoff,
	// i.e. "fail low": true value <= score).
	Upper ValueType = 3
)

func (t ValueType) String() string {
	switch t {
	case Exact:
		return "EXACT"
	case Lower:
		return "LOWER"
	case Upper:
		return "UPPER"
	default:
		return "NONE"
	}
}

// ScoreKind tags whether a hash entry's score came from the midgame search
// or the endgame solver (spec.md §4.4: "mode selects between a midgame
// namespace and an endgame namespace").
type ScoreKind uint8

const (
	// Midgame scores come from the iterative-deepening negascout search.
	Midgame ScoreKind = 0
	// Endgame scores come from the exact/WLD/selective endgame solver.
	Endgame ScoreKind = 1
)

func (k ScoreKind) String() string {
	if k == Endgame {
		return "ENDGAME"
	}
	return "MIDGAME"
}
