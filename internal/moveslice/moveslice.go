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

// Package moveslice provides helper functionality for slices of type
// types.Move, generalized from the teacher's chess move-list helper.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/mkopp/zorro/internal/types"
)

// MoveSlice represents a data structure (go slice) for types.Move.
type MoveSlice []types.Move

// NewMoveSlice creates a new move slice with the given capacity and 0
// elements. Equivalent to MoveSlice(make([]types.Move, 0, cap)).
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]types.Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends an element at the end of the slice.
func (ms *MoveSlice) PushBack(m types.Move) {
	*ms = append(*ms, m)
}

// PushFront prepends an element at the beginning of the slice using the
// underlying array; a new array is allocated only when the slice is
// already at capacity.
func (ms *MoveSlice) PushFront(m types.Move) {
	*ms = append(*ms, types.MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// Front returns the move at the front of the slice; panics if empty.
func (ms *MoveSlice) Front() types.Move {
	if len(*ms) == 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ms)[0]
}

// At returns the move at index i; panics if out of bounds.
func (ms *MoveSlice) At(i int) types.Move {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// Contains reports whether m appears in the slice.
func (ms *MoveSlice) Contains(m types.Move) bool {
	for _, x := range *ms {
		if x == m {
			return true
		}
	}
	return false
}

// Clear removes all moves from the slice but retains its capacity, for
// reuse at high frequency without triggering garbage collection.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone copies the MoveSlice into a newly allocated MoveSlice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]types.Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// String returns a string representation of the move list.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", ms.Len()))
	for i := 0; i < ms.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ms.At(i).String())
	}
	sb.WriteString(" }")
	return sb.String()
}
