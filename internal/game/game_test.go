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

package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/chesscore/internal/game"
	"github.com/dkovac/chesscore/internal/position"
	. "github.com/dkovac/chesscore/internal/types"
)

func TestMakeMoveAdvancesHistory(t *testing.T) {
	g := game.New(position.New())
	state, ok := g.MakeMove(SqE2, SqE4, PtNone)
	require.True(t, ok)
	assert.Equal(t, game.None, state)
	assert.Len(t, g.MoveHistory(), 1)
	assert.Len(t, g.ZobristHistory(), 2)
}

func TestIllegalMoveLeavesStateUntouched(t *testing.T) {
	g := game.New(position.New())
	before := g.ZobristHistory()

	state, ok := g.MakeMove(SqE2, SqE5, PtNone)
	assert.False(t, ok)
	assert.Equal(t, game.None, state)
	assert.Equal(t, before, g.ZobristHistory())
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	g := game.New(position.New())
	moves := [][2]Square{
		{SqF2, SqF3},
		{SqE7, SqE5},
		{SqG2, SqG4},
	}
	for _, mv := range moves {
		_, ok := g.MakeMove(mv[0], mv[1], PtNone)
		require.True(t, ok)
	}
	state, ok := g.MakeMove(SqD8, SqH4, PtNone)
	require.True(t, ok)
	assert.Equal(t, game.Checkmate, state)
}

func TestUndoRestoresPreviousPosition(t *testing.T) {
	g := game.New(position.New())
	start := g.Current()
	startKey := start.ZobristKey()

	_, ok := g.MakeMove(SqE2, SqE4, PtNone)
	require.True(t, ok)
	g.Undo()

	restored := g.Current()
	assert.Equal(t, startKey, restored.ZobristKey())
	assert.Empty(t, g.MoveHistory())
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	p, err := position.FromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	g := game.New(p)
	assert.Equal(t, game.Stalemate, g.CheckBoardState())
}
