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

import "fmt"

// Kind names one of spec.md §7's hard-error taxonomy entries. Timeout and
// UserExit are deliberately absent: spec.md calls both "not an error",
// observed through the util.Bool stop flag that internal/search polls,
// never constructed as a Kind/EngineError.
type Kind int

const (
	// ConfigurationError: skill or time parameters unset or invalid
	// before a search; the search declines to start.
	ConfigurationError Kind = iota
	// InvalidMoveInSequence: a replayed move is not legal at its
	// position; the current game is aborted.
	InvalidMoveInSequence
	// InternalInvariantFailure: board-array/bitboard disagreement,
	// popcount mismatch, flip-stack underflow - an implementation bug,
	// not a user-facing condition.
	InternalInvariantFailure
)

func (k Kind) String() string {
	switch k {
	case ConfigurationError:
		return "ConfigurationError"
	case InvalidMoveInSequence:
		return "InvalidMoveInSequence"
	case InternalInvariantFailure:
		return "InternalInvariantFailure"
	default:
		return "UnknownError"
	}
}

// EngineError is the one error type this package returns, generalizing
// the teacher's plain fmt.Errorf usage into spec.md §7's explicit
// taxonomy: every hard error names which Kind it is, not just a message.
type EngineError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

func newConfigurationError(format string, a ...interface{}) *EngineError {
	return &EngineError{Kind: ConfigurationError, Message: fmt.Sprintf(format, a...)}
}

func newInvalidMoveInSequence(format string, a ...interface{}) *EngineError {
	return &EngineError{Kind: InvalidMoveInSequence, Message: fmt.Sprintf(format, a...)}
}

// newInternalInvariantFailure builds the EngineError an
// InternalInvariantFailure panic is converted into when recovered by
// Engine.ComputeMove's deferred recover (per spec.md §9's "Go's
// panic/recover is the direct analogue of setjmp/longjmp here"). It is
// also used when the endgame solver or the midgame search comes back with
// no move.
func newInternalInvariantFailure(recovered interface{}) *EngineError {
	return &EngineError{Kind: InternalInvariantFailure, Message: fmt.Sprintf("%v", recovered)}
}
