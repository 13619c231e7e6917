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

package openingbook_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/chesscore/internal/openingbook"
	"github.com/dkovac/chesscore/internal/position"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "book.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadCSVAndGetMoveFromRoot(t *testing.T) {
	path := writeCSV(t, "e2e4,e7e5,g1f3\nd2d4,d7d5\n")

	b := openingbook.New()
	require.NoError(t, b.LoadCSV(path))

	root := position.New()
	origin, dest, found := b.GetMove(root.ZobristKey())
	assert.True(t, found)
	assert.Contains(t, []string{"e2", "d2"}, origin.String())
	assert.Contains(t, []string{"e4", "d4"}, dest.String())
}

func TestGetMoveMissOnUnknownPosition(t *testing.T) {
	b := openingbook.New()
	_, _, found := b.GetMove(position.Key(123456789))
	assert.False(t, found)
}

func TestLoadCSVTruncatesLineOnIllegalMove(t *testing.T) {
	// e2e4 is legal from the root; a second e2e4 is illegal once a pawn
	// already stands on e4, so the line must stop there with no further
	// successor recorded for the post-e2e4 position.
	path := writeCSV(t, "e2e4,e2e4\n")

	b := openingbook.New()
	require.NoError(t, b.LoadCSV(path))

	root := position.New()
	origin, dest, found := b.GetMove(root.ZobristKey())
	require.True(t, found)
	assert.Equal(t, "e2", origin.String())
	assert.Equal(t, "e4", dest.String())

	afterE4, err := position.FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	_, _, foundNext := b.GetMove(afterE4.ZobristKey())
	assert.False(t, foundNext)
}
