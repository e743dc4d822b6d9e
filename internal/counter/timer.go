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

package counter

import "time"

// Timer tracks elapsed time against a recommended (soft) and a panic (hard)
// budget for a single move search, mirroring the teacher's startTime/
// timeLimit bookkeeping in internal/search/search.go.
//
// The two budgets are independent knobs: Recommended is the time the
// allocation formula computed for "a good move under normal conditions";
// Panic is the absolute ceiling beyond which the search must abort even an
// in-progress iteration. The ratio between the two is spec.md's panic
// factor, applied by the caller when constructing the Timer.
type Timer struct {
	start       time.Time
	recommended time.Duration
	panicLimit  time.Duration
}

// NewTimer starts a Timer with the given recommended and panic budgets.
func NewTimer(recommended, panicLimit time.Duration) *Timer {
	return &Timer{
		start:       time.Now(),
		recommended: recommended,
		panicLimit:  panicLimit,
	}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// AboveRecommended reports whether the recommended (soft) budget has been
// exceeded. The search driver uses this to decide whether to begin another
// iterative-deepening iteration.
func (t *Timer) AboveRecommended() bool {
	return t.Elapsed() >= t.recommended
}

// AbovePanic reports whether the panic (hard) budget has been exceeded. The
// search driver must unwind immediately once this is true, returning the
// best move found so far.
func (t *Timer) AbovePanic() bool {
	return t.Elapsed() >= t.panicLimit
}

// CheckThreshold reports whether the elapsed time has crossed the given
// fraction of the recommended budget, e.g. 0.5 to decide whether there is
// enough time left to start a deeper iteration.
func (t *Timer) CheckThreshold(fraction float64) bool {
	return t.Elapsed() >= time.Duration(float64(t.recommended)*fraction)
}

// CheckPanicAbort is an alias for AbovePanic, named to match spec.md §4.8's
// panic-abort terminology directly.
func (t *Timer) CheckPanicAbort() bool {
	return t.AbovePanic()
}

// Remaining returns the time left until the panic limit, or zero if already
// past it.
func (t *Timer) Remaining() time.Duration {
	left := t.panicLimit - t.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// Nps computes nodes-per-second for the given node count against the
// timer's elapsed time, mirroring the teacher's util.Nps helper.
func (t *Timer) Nps(nodes uint64) uint64 {
	elapsed := t.Elapsed()
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}
