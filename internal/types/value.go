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

import "strconv"

// Value is a search/evaluation score in centi-discs: one disc-difference
// unit times 128 (glossary: "centi-disc"). All internal arithmetic stays
// in this unit; conversion to a human disc-difference happens only at a
// boundary (config parsing, UI output).
type Value int16

// CentiDiscFactor is the scale between a raw disc difference and a Value.
const CentiDiscFactor Value = 128

// Sentinel and bound constants. ValueMax/ValueMin bound the maximum
// possible disc-difference (all 64 discs one color), i.e. the
// "midgame-win bounds" spec.md §4.7 refers to for aspiration re-search.
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueInf  Value = 32_000
	ValueNA   Value = -ValueInf - 1
	ValueMax  Value = 64 * CentiDiscFactor
	ValueMin  Value = -ValueMax
)

// DiscDiffToValue converts a raw disc-difference (e.g. 18 discs ahead)
// into the internal centi-disc Value.
func DiscDiffToValue(discDiff int) Value {
	return Value(discDiff) * CentiDiscFactor
}

// DiscDiff converts a centi-disc Value back to a raw disc-difference,
// rounding toward zero.
func (v Value) DiscDiff() int {
	return int(v) / int(CentiDiscFactor)
}

// IsValid reports whether v is within the representable disc-difference
// range (excludes ValueNA and out-of-range sentinels).
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsWinMagnitude reports whether v represents a maximal (all-discs) result,
// i.e. a wipeout win or loss.
func (v Value) IsWinMagnitude() bool {
	return v == ValueMax || v == ValueMin
}

func (v Value) String() string {
	if v == ValueNA {
		return "N/A"
	}
	return strconv.Itoa(int(v))
}
