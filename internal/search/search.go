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

// Package search implements the midgame iterative-deepening negascout
// search (C7) and its search driver surface (C8): iterative deepening with
// optional aspiration windows, hash-move-first move ordering backed by a
// shallow-search scoring pass, negascout with midgame MPC cutoffs, score
// perturbation, and protected one-ply at the shallowest depth.
//
// Grounded on the teacher's internal/search/search.go and alphabeta.go.
// Unlike chess, Othello has no quiescence search (a position is never
// "noisy" - there is nothing resembling a hanging capture to resolve before
// trusting a static eval) so qsearch, goodCapture/SEE, and check/threat
// extensions have no analogue here and are not carried over.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/evaluator"
	myLogging "github.com/mkopp/zorro/internal/logging"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/moveslice"
	"github.com/mkopp/zorro/internal/transpositiontable"
	. "github.com/mkopp/zorro/internal/types"
	"github.com/mkopp/zorro/internal/util"
)

var out = message.NewPrinter(language.German)

// Search drives a midgame search against a single *board.Board. Create
// with NewSearch; only one search may run per instance at a time, enforced
// by a weight-1 semaphore acquired in StartSearch and released when the
// search goroutine returns (same guard idiom as the teacher's Search).
//
// Unlike the teacher, which lazily constructs its own transposition table
// and opening book inside initialize(), Search takes its TtTable and
// Evaluator by constructor injection: internal/engine.Engine is the value
// type that owns these (Design Notes §9), so Search has no call to create
// or resize them itself.
type Search struct {
	log *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	gen  *movegen.Generator
	tt   *transpositiontable.TtTable
	eval evaluator.Evaluator

	// perturbation holds one random offset per square, drawn once at
	// construction (spec.md §4.7 "Score perturbation", §8 "Hash
	// determinism").
	perturbation    [ArraySize]Value
	perturbationAmp Value

	stopFlag  *util.Bool
	startTime time.Time

	searchLimits *Limits
	nodesVisited uint64
	pv           []*moveslice.MoveSlice
	rootMoves    *moveslice.MoveSlice
	statistics   Statistics

	lastSearchResult *Result
	hasResult        bool

	// onIterationEnd, if set, is called after every completed iteration
	// with the best result found so far. internal/hostapi wires this to
	// the host's search-update callback; nil is fine (and the default)
	// for searches with no observer.
	onIterationEnd func(*Result)
}

// NewSearch creates a new Search instance bound to gen/tt/eval.
// perturbationAmplitude is the process-wide amplitude A from spec.md
// §4.7; pass 0 to disable perturbation entirely.
func NewSearch(gen *movegen.Generator, tt *transpositiontable.TtTable, eval evaluator.Evaluator, perturbationAmplitude Value) *Search {
	s := &Search{
		log:             myLogging.GetLog(),
		initSemaphore:   semaphore.NewWeighted(int64(1)),
		isRunning:       semaphore.NewWeighted(int64(1)),
		gen:             gen,
		tt:              tt,
		eval:            eval,
		perturbationAmp: perturbationAmplitude,
		stopFlag:        util.NewBool(false),
	}
	s.perturbation = buildPerturbationVector(perturbationAmplitude)
	return s
}

// SetOnIterationEnd installs (or clears, with nil) the iteration-end
// observer described on the Search.onIterationEnd field.
func (s *Search) SetOnIterationEnd(f func(*Result)) {
	s.onIterationEnd = f
}

// StartSearch starts a search on b with the given limits. b is mutated
// during the search (moves are played and undone) but is guaranteed to be
// restored to its original state by the time WaitWhileSearching/StopSearch
// returns - the caller must not otherwise touch b while IsSearching is
// true. Search can be stopped with StopSearch(); status can be checked
// with IsSearching().
func (s *Search) StartSearch(b *board.Board, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go s.run(b, &sl)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible and waits for
// it to finish before returning.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastSearchResult returns a copy of the last completed search's result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited by the last (or
// currently running) search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the search statistics of the last (or
// currently running) search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// run is started by StartSearch in its own goroutine. It performs the
// actual search until a search limit is reached or StopSearch is called.
func (s *Search) run(b *board.Board, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.stopFlag.Store(false)
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.searchLimits = sl

	if s.tt != nil {
		s.tt.AgeEntries()
	}

	s.pv = []*moveslice.MoveSlice{moveslice.NewMoveSlice(MaxDepth + 1)}

	if sl.TimeControl && sl.MoveTime > 0 {
		s.startTimer(sl.MoveTime)
	}

	// release the init-phase lock so StartSearch can return to its caller
	s.initSemaphore.Release(1)

	result := s.runIterativeDeepening(b)
	result.SearchTime = time.Since(s.startTime)

	s.log.Infof("Search finished after %s: %s", result.SearchTime, result.String())
	s.log.Debugf("Search stats: %s", s.statistics.String())

	s.stopFlag.Store(true)
	s.lastSearchResult = result
	s.hasResult = true
}

// stopConditions reports whether the search must stop: either StopSearch
// was called, the timer fired, or the node limit was reached.
func (s *Search) stopConditions() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag.Store(true)
	}
	return s.stopFlag.Load()
}

// runIterativeDeepening recovers from a panic raised by an internal
// assertion (internal/assert.Assert with -tags debug - spec.md §7's
// InternalInvariantFailure) inside this goroutine. Since run executes on
// its own goroutine, a panic here would otherwise never reach a recover
// in the caller of StartSearch; this package has no dependency on
// internal/engine's EngineError type, so it degrades to a MoveNone result
// instead, which internal/engine.Engine recognizes as a failed search and
// turns into its own InternalInvariantFailure forwarded to the host.
func (s *Search) runIterativeDeepening(b *board.Board) *Result {
	result := &Result{BestMove: MoveNone}
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Errorf("search panic recovered: %v", r)
				result = &Result{BestMove: MoveNone}
			}
		}()
		result = s.iterativeDeepening(b)
	}()
	return result
}

// startTimer starts a goroutine that sets stopFlag once limit has elapsed.
func (s *Search) startTimer(limit time.Duration) {
	go func() {
		start := time.Now()
		for time.Since(start) < limit && !s.stopFlag.Load() {
			time.Sleep(2 * time.Millisecond)
		}
		s.stopFlag.Store(true)
	}()
}
