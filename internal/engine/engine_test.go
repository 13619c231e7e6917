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

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/chesscore/internal/engine"
	"github.com/dkovac/chesscore/internal/game"
	"github.com/dkovac/chesscore/internal/position"
	. "github.com/dkovac/chesscore/internal/types"
)

func TestFindBestMoveReturnsALegalMoveFromStart(t *testing.T) {
	e := engine.New()
	move, depth, found := e.FindBestMove(0, 3)
	assert.True(t, found)
	assert.False(t, move.IsNone())
	assert.GreaterOrEqual(t, depth, 1)
}

func TestPlayIllegalMoveLeavesPositionUnchanged(t *testing.T) {
	e := engine.New()
	start := e.Position()
	before := start.ZobristKey()

	state, ok := e.Play(SqE2, SqE5, PtNone)
	assert.False(t, ok)
	assert.Equal(t, game.None, state)
	after := e.Position()
	assert.Equal(t, before, after.ZobristKey())
}

func TestPlayBestMoveAdvancesTheGame(t *testing.T) {
	p, err := position.FromFEN("7k/5K2/6Q1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	e := engine.NewFromPosition(p)

	move, _, ok := e.PlayBestMove()
	assert.True(t, ok)
	assert.False(t, move.IsNone())
}
