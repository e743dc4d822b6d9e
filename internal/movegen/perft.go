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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkopp/zorro/internal/board"
)

var out = message.NewPrinter(language.German)

// Perft counts the Othello game tree reachable from the starting position,
// the way the teacher's chess Perft validates its move generator: rather
// than trusting GenerateLegalMoves in isolation, walk the real
// DoMove/UndoMove/Pass machinery and compare the resulting node counts
// against known-good totals (spec.md §8, "perft-like node counts").
type Perft struct {
	Nodes    uint64
	Passes   uint64
	stopFlag bool
}

// NewPerft creates an empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop interrupts a StartPerft call running in another goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerft runs the perft walk from the standard starting position to
// the given depth and prints a report in the teacher's format.
func (perft *Perft) StartPerft(gen *Generator, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.Nodes, perft.Passes = 0, 0

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	b := board.NewBoard()
	start := time.Now()
	result := perft.walk(depth, b, gen)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result
	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Passes    : %d\n", perft.Passes)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// walk recurses depth plies from b and counts the leaf positions reached
// after exactly depth plies (a forced pass counts as a ply, consistent with
// how the driver treats it as a move with no board effect). A line that
// ends in a finished game before depth plies contributes no node.
func (perft *Perft) walk(depth int, b *board.Board, gen *Generator) uint64 {
	if perft.stopFlag {
		return 0
	}
	mover := b.SideToMove()
	moves := gen.GenerateLegalMoves(b, mover)

	if moves.Len() == 0 {
		if !gen.HasLegalMove(b, mover.Opponent()) {
			// neither side can move: terminal position, no further plies.
			return 0
		}
		perft.Passes++
		b.Pass()
		var total uint64
		if depth > 1 {
			total = perft.walk(depth-1, b, gen)
		} else {
			total = 1
		}
		b.UndoMove()
		return total
	}

	var total uint64
	for i := 0; i < moves.Len(); i++ {
		sq := moves.At(i).Square()
		if err := b.DoMove(sq); err != nil {
			b.UndoMove()
			continue
		}
		if depth > 1 {
			total += perft.walk(depth-1, b, gen)
		} else {
			total++
		}
		b.UndoMove()
	}
	return total
}
