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

package types

// Value is a centipawn (or mate-distance) evaluation score.
type Value int32

const (
	// ValueDraw is the score of a drawn/stalemate position.
	ValueDraw Value = 0
	// ValueMate is the base magnitude of a checkmate score; search
	// reports mate distance by subtracting plies from it.
	ValueMate Value = 30000
	// ValueInfinite is used to seed alpha/beta bounds.
	ValueInfinite Value = 32000
	// ValueCancelled is the sentinel returned by a cancelled search call.
	ValueCancelled Value = -ValueInfinite
)

// IsMateScore reports whether v represents a forced mate (for either side).
func IsMateScore(v Value) bool {
	return v > ValueMate-1000 || v < -ValueMate+1000
}
