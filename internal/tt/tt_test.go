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

package tt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkovac/chesscore/internal/position"
	"github.com/dkovac/chesscore/internal/tt"
	. "github.com/dkovac/chesscore/internal/types"
)

func TestStoreThenProbeHits(t *testing.T) {
	table := tt.NewWithCapacity(1024)
	key := position.Key(42)
	m := NewMove(SqE2, SqE4)
	table.Store(key, 150, 6, tt.BoundExact, m)

	entry, ok := table.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, Value(150), entry.Eval)
	assert.Equal(t, 6, entry.Depth)
	assert.Equal(t, tt.BoundExact, entry.Bound)
	assert.Equal(t, m, entry.BestMove)
}

func TestProbeMissOnEmptySlot(t *testing.T) {
	table := tt.NewWithCapacity(1024)
	_, ok := table.Probe(position.Key(7))
	assert.False(t, ok)
}

func TestProbeRejectsIndexCollisionWithDifferentKey(t *testing.T) {
	table := tt.NewWithCapacity(16)
	table.Store(position.Key(3), 10, 1, tt.BoundExact, MoveNone)
	// 19 mod 16 == 3, same slot, different key.
	_, ok := table.Probe(position.Key(19))
	assert.False(t, ok)
}

func TestStoreIsAlwaysReplace(t *testing.T) {
	table := tt.NewWithCapacity(1024)
	key := position.Key(5)
	table.Store(key, 10, 2, tt.BoundExact, MoveNone)
	table.Store(key, 20, 1, tt.BoundUpper, MoveNone)

	entry, ok := table.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, Value(20), entry.Eval)
	assert.Equal(t, 1, entry.Depth)
	assert.Equal(t, tt.BoundUpper, entry.Bound)
}

func TestClearResetsAllSlots(t *testing.T) {
	table := tt.NewWithCapacity(16)
	table.Store(position.Key(1), 10, 1, tt.BoundExact, MoveNone)
	table.Clear()
	_, ok := table.Probe(position.Key(1))
	assert.False(t, ok)
}
