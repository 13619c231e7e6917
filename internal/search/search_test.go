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

package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkovac/chesscore/internal/movegen"
	"github.com/dkovac/chesscore/internal/position"
	"github.com/dkovac/chesscore/internal/search"
	"github.com/dkovac/chesscore/internal/tt"
	. "github.com/dkovac/chesscore/internal/types"
)

func TestFindsMateInOne(t *testing.T) {
	// Back-rank mate-in-one: the Black king on g8 is trapped by its own
	// pawns on f7/g7/h7, and the White rook delivers mate with Ra8.
	p, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := search.New(tt.NewWithCapacity(1024))
	result := s.FindBestMove(p, []position.Key{p.ZobristKey()}, search.Limits{DepthLimit: 3})

	assert.False(t, result.Move.IsNone())
	assert.Equal(t, SqA1, result.Move.Origin())
	assert.Equal(t, SqA8, result.Move.Destination())
}

func TestCancellationStillReturnsALegalMove(t *testing.T) {
	p, err := position.FromFEN("r1bqkbnr/pppppppp/2n5/8/8/2N5/PPPPPPPP/R1BQKBNR w KQkq - 0 1")
	assert.NoError(t, err)

	s := search.New(tt.NewWithCapacity(4096))
	result := s.FindBestMove(p, []position.Key{p.ZobristKey()}, search.Limits{
		TimeLimit:  1 * time.Millisecond,
		DepthLimit: 50,
	})

	assert.False(t, result.Move.IsNone())
}

func TestSameSearchTwiceIsIdempotent(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)

	table := tt.NewWithCapacity(4096)
	s := search.New(table)

	first := s.FindBestMove(p, []position.Key{p.ZobristKey()}, search.Limits{DepthLimit: 4})
	table.Clear()
	second := s.FindBestMove(p, []position.Key{p.ZobristKey()}, search.Limits{DepthLimit: 4})

	assert.Equal(t, first.Move, second.Move)
	assert.Equal(t, first.DepthSearched, second.DepthSearched)
}

func TestRepeatedPositionInHistoryScoresAsDraw(t *testing.T) {
	// A position already in the supplied Zobrist history must be treated as
	// a draw by the search's repetition-avoidance heuristic, not re-explored
	// for value.
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	assert.NoError(t, err)

	// Every legal move except Rh7 leads to a position already in the
	// history, so those score as draws and Rh7, which keeps White a rook
	// up, has to be chosen.
	history := []position.Key{p.ZobristKey()}
	for _, m := range movegen.Generate(&p, movegen.Normal) {
		if m.Origin() == SqH1 && m.Destination() == SqH7 {
			continue
		}
		child := p
		child.ApplyMove(m)
		history = append(history, child.ZobristKey())
	}

	s := search.New(tt.NewWithCapacity(4096))
	result := s.FindBestMove(p, history, search.Limits{DepthLimit: 2})
	assert.False(t, result.Move.IsNone())
	assert.Equal(t, SqH1, result.Move.Origin())
	assert.Equal(t, SqH7, result.Move.Destination())
}
