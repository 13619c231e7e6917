/*
 * chesscore - a Go chess engine
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package tt implements the fixed-capacity, always-replace
// transposition table: a flat array of entries indexed by
// `key mod capacity`. Hit/miss/store counters are reported with
// thousands separators via golang.org/x/text/message.
package tt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkovac/chesscore/internal/position"
	. "github.com/dkovac/chesscore/internal/types"
)

// DefaultCapacity is the default number of table slots (it is not a
// prime: it is divisible by 5). With 32-byte entries a table of this
// size takes about 108 MiB. It is a default, not a requirement:
// NewWithCapacity lets tests or alternate configurations use a smaller
// table.
const DefaultCapacity = 3532045

// Bound classifies how an Entry's Eval relates to the search window
// that produced it.
type Bound uint8

const (
	// BoundNone marks an empty slot; never intentionally stored.
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition-table slot.
type Entry struct {
	Key      position.Key
	Eval     Value
	Depth    int
	Bound    Bound
	BestMove Move
}

// Table is the always-replace transposition table. The zero value is
// not usable; construct with New or NewWithCapacity.
type Table struct {
	entries []Entry

	hits   uint64
	misses uint64
	stores uint64
}

// New returns a table of DefaultCapacity entries.
func New() *Table {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity returns a table with room for exactly capacity
// entries.
func NewWithCapacity(capacity int) *Table {
	return &Table{entries: make([]Entry, capacity)}
}

func (t *Table) index(key position.Key) int {
	return int(uint64(key) % uint64(len(t.entries)))
}

// Store unconditionally overwrites the slot for key — always-replace,
// no depth-preferred aging.
func (t *Table) Store(key position.Key, eval Value, depth int, bound Bound, best Move) {
	t.stores++
	t.entries[t.index(key)] = Entry{Key: key, Eval: eval, Depth: depth, Bound: bound, BestMove: best}
}

// Probe returns the slot for key iff its stored key matches,
// distinguishing a genuine miss from an index collision with a
// different position.
func (t *Table) Probe(key position.Key) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.Bound == BoundNone || e.Key != key {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Capacity returns the number of slots in the table.
func (t *Table) Capacity() int { return len(t.entries) }

// Clear resets every slot, for a fresh search unrelated to prior ones.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.hits, t.misses, t.stores = 0, 0, 0
}

// StatsString renders hit/miss/store counters with thousands
// separators for log output.
func (t *Table) StatsString() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("tt: capacity=%d stores=%d hits=%d misses=%d", t.Capacity(), t.stores, t.hits, t.misses)
}
