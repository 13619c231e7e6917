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

// Package openingbook loads a CSV opening book — one game per row,
// each field a UCI move (e.g. "e2e4,e7e5,g1f3") — into a Zobrist-keyed
// map of successor moves, built by replaying each line's moves from
// the start position and linking consecutive Zobrist keys. Book moves
// never carry promotion information: a promotion move in a line does
// not match any legal move, so the line is truncated at that point.
package openingbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/dkovac/chesscore/internal/logging"
	"github.com/dkovac/chesscore/internal/movegen"
	"github.com/dkovac/chesscore/internal/position"
	. "github.com/dkovac/chesscore/internal/types"
)

var log = logging.GetLog()

var uciMovePattern = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])[nbrqNBRQ]?$`)

// successor is one edge of the trie: a move and the Zobrist key of the
// position it leads to.
type successor struct {
	origin, dest Square
	nextKey      position.Key
}

type entry struct {
	counter    int
	successors []successor
}

// Book is a loaded opening book, safe for concurrent GetMove calls
// (loading itself is not — load it once before handing it to search).
type Book struct {
	mu      sync.Mutex
	entries map[position.Key]*entry
	rng     *rand.Rand
}

// New returns an empty book rooted at the start position.
func New() *Book {
	b := &Book{
		entries: make(map[position.Key]*entry),
		rng:     rand.New(rand.NewSource(1)),
	}
	root := position.New()
	b.entries[root.ZobristKey()] = &entry{}
	return b
}

// LoadCSV reads path and merges every well-formed game line into the
// trie. A line with an illegal or unparsable move is logged and
// truncated at that point rather than rejecting the whole file.
func (b *Book) LoadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("openingbook: reading %s: %w", path, err)
		}
		b.loadLine(record)
		count++
	}
	log.Infof("opening book: loaded %d lines from %s (%d positions)", count, path, len(b.entries))
	return nil
}

func (b *Book) loadLine(fields []string) {
	pos := position.New()
	key := pos.ZobristKey()

	for _, raw := range fields {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		m := uciMovePattern.FindStringSubmatch(token)
		if m == nil {
			log.Warningf("opening book: unparsable move %s, truncating line", token)
			return
		}
		origin := SquareFromString(m[1])
		dest := SquareFromString(m[2])
		if origin == SqNone || dest == SqNone {
			return
		}
		move, ok := movegen.IsLegalMove(&pos, origin, dest, PtNone)
		if !ok {
			log.Warningf("opening book: illegal move %s, truncating line", token)
			return
		}
		pos.ApplyMove(move)
		nextKey := pos.ZobristKey()
		b.link(key, origin, dest, nextKey)
		key = nextKey
	}
}

func (b *Book) link(from position.Key, origin, dest Square, to position.Key) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.entries[to]; !ok {
		b.entries[to] = &entry{}
	}
	b.entries[to].counter++

	fromEntry := b.entries[from]
	for _, s := range fromEntry.successors {
		if s.origin == origin && s.dest == dest {
			return // already linked
		}
	}
	fromEntry.successors = append(fromEntry.successors, successor{origin: origin, dest: dest, nextKey: to})
}

// GetMove returns a uniformly random known continuation from key, or
// found=false if key is not in the book or is a terminal leaf.
func (b *Book) GetMove(key position.Key) (origin, dest Square, found bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok || len(e.successors) == 0 {
		return SqNone, SqNone, false
	}
	pick := e.successors[b.rng.Intn(len(e.successors))]
	return pick.origin, pick.dest, true
}

// NumberOfEntries returns how many distinct positions the book knows.
func (b *Book) NumberOfEntries() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
