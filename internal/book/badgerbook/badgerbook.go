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

// Package badgerbook is a Badger-backed implementation of book.Book,
// grounded on hailam-chessplay/internal/storage's NewStorage/View/Update
// idiom: one *badger.DB, opened once, queried and updated through
// txn.Get/Set wrapped in db.View/db.Update. Every position is keyed by
// its Zobrist digest (board.Board.Key()) plus the side to move, since two
// positions with the same disc pattern but different movers are
// different book entries.
package badgerbook

import (
	"encoding/binary"
	"encoding/json"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/book"
	"github.com/mkopp/zorro/internal/types"
)

var _ book.Book = (*Book)(nil)

// entry is one known book move for a position: the move itself, a
// running value estimate in centi-discs from the book's own learning
// (not necessarily from a search), how many learned games passed through
// it, and a selection bitmask FillMoveAlternatives filters against.
type entry struct {
	Move  types.Move
	Value types.Value
	Flags uint8
	Games int
}

// Book is a Badger-backed book.Book.
type Book struct {
	db *badger.DB
}

// Open opens (creating if necessary) a Badger book database at path.
func Open(path string) (*Book, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Book{db: db}, nil
}

// Close closes the underlying database.
func (bk *Book) Close() error {
	return bk.db.Close()
}

func positionKey(k types.Key, side types.Color) []byte {
	buf := make([]byte, 9)
	binary.BigEndian.PutUint64(buf[:8], uint64(k))
	buf[8] = byte(side)
	return buf
}

func (bk *Book) entriesFor(key []byte) ([]entry, error) {
	var entries []entry
	err := bk.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entries)
		})
	})
	return entries, err
}

// GetBookMove implements book.Book. Entries are kept sorted by Value
// descending (see Learn), so the first entry that satisfies passAllowed
// is the book's current best recommendation.
func (bk *Book) GetBookMove(b *board.Board, side types.Color, passAllowed bool) (types.Move, types.Value, bool) {
	entries, err := bk.entriesFor(positionKey(b.Key(), side))
	if err != nil {
		return types.MoveNone, 0, false
	}
	for _, e := range entries {
		if e.Move.IsPass() && !passAllowed {
			continue
		}
		return e.Move, e.Value, true
	}
	return types.MoveNone, 0, false
}

// FillMoveAlternatives implements book.Book. flags == 0 returns every
// known alternative; otherwise only entries whose Flags intersect it.
func (bk *Book) FillMoveAlternatives(b *board.Board, side types.Color, flags uint8) []types.Move {
	entries, err := bk.entriesFor(positionKey(b.Key(), side))
	if err != nil {
		return nil
	}
	moves := make([]types.Move, 0, len(entries))
	for _, e := range entries {
		if flags != 0 && e.Flags&flags == 0 {
			continue
		}
		moves = append(moves, e.Move)
	}
	return moves
}

// Learn implements book.Book. It replays moves from the empty board,
// updating (or creating) one entry per position visited with a simple
// incremental-average value estimate from result, seen from the mover at
// that position. The whole replay is one Badger transaction, answering
// spec.md §6's "persistence atomicity is the book subsystem's
// responsibility" the same way hailam-chessplay's RecordGame/SaveStats
// wraps its own multi-step update in a single db.Update.
func (bk *Book) Learn(moves []types.Move, result types.Value) error {
	b := board.NewBoard()
	return bk.db.Update(func(txn *badger.Txn) error {
		for _, m := range moves {
			side := b.SideToMove()
			key := positionKey(b.Key(), side)

			var entries []entry
			item, err := txn.Get(key)
			switch {
			case err == nil:
				if unmarshalErr := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &entries)
				}); unmarshalErr != nil {
					return unmarshalErr
				}
			case err == badger.ErrKeyNotFound:
				// first time this position has been learned
			default:
				return err
			}

			perspective := result
			if side == types.White {
				perspective = -result
			}

			found := false
			for i := range entries {
				if entries[i].Move == m {
					entries[i].Games++
					entries[i].Value += (perspective - entries[i].Value) / types.Value(entries[i].Games)
					found = true
					break
				}
			}
			if !found {
				entries = append(entries, entry{Move: m, Value: perspective, Games: 1})
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })

			data, err := json.Marshal(entries)
			if err != nil {
				return err
			}
			if err := txn.Set(key, data); err != nil {
				return err
			}

			if m.IsPass() {
				b.Pass()
				continue
			}
			if err := b.DoMove(m.Square()); err != nil {
				return err
			}
		}
		return nil
	})
}
