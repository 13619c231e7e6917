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

import "fmt"

// Square is a board square index per spec: 0 = a8, 7 = h8, 56 = a1,
// 63 = h1 (row-major from the top-left, i.e. rank 8 down to rank 1).
type Square uint8

const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// Ranks 7 down to 2, in the same numbering.
const (
	SqA7, SqB7, SqC7, SqD7, SqE7, SqF7, SqG7, SqH7 Square = 8, 9, 10, 11, 12, 13, 14, 15
	SqA6, SqB6, SqC6, SqD6, SqE6, SqF6, SqG6, SqH6 Square = 16, 17, 18, 19, 20, 21, 22, 23
	SqA5, SqB5, SqC5, SqD5, SqE5, SqF5, SqG5, SqH5 Square = 24, 25, 26, 27, 28, 29, 30, 31
	SqA4, SqB4, SqC4, SqD4, SqE4, SqF4, SqG4, SqH4 Square = 32, 33, 34, 35, 36, 37, 38, 39
	SqA3, SqB3, SqC3, SqD3, SqE3, SqF3, SqG3, SqH3 Square = 40, 41, 42, 43, 44, 45, 46, 47
	SqA2, SqB2, SqC2, SqD2, SqE2, SqF2, SqG2, SqH2 Square = 48, 49, 50, 51, 52, 53, 54, 55
)

const (
	SqA1 Square = 56 + iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
)

// SqLength is the number of squares on the board.
const SqLength int = 64

// SqNone is the sentinel "no square" value.
const SqNone Square = 64

// SquareOf builds a square index from a file and a chess rank (1..8).
func SquareOf(f File, r Rank) Square {
	return Square(uint8(8-r)*8 + uint8(f))
}

// File returns the file (a..h) of the square.
func (s Square) File() File {
	return File(uint8(s) % 8)
}

// Rank returns the chess rank (1..8) of the square.
func (s Square) Rank() Rank {
	return Rank(8 - uint8(s)/8)
}

// IsValid reports whether s is an on-board square (not SqNone).
func (s Square) IsValid() bool {
	return s < Square(SqLength)
}

// To steps one square in the given direction, returning SqNone if that
// would wrap around a board edge.
func (s Square) To(d Direction) Square {
	if !s.IsValid() {
		return SqNone
	}
	f := s.File()
	switch d {
	case East:
		if f == FileH {
			return SqNone
		}
	case West:
		if f == FileA {
			return SqNone
		}
	case Northeast, Southeast:
		if f == FileH {
			return SqNone
		}
	case Northwest, Southwest:
		if f == FileA {
			return SqNone
		}
	}
	n := int(s) + int(d)
	if n < 0 || n >= SqLength {
		return SqNone
	}
	return Square(n)
}

// Distance returns the chessboard (Chebyshev) distance between two squares.
func Distance(a, b Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// ManhattanDistance returns the taxicab distance between two squares.
func ManhattanDistance(a, b Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	return df + dr
}

var squareNames = buildSquareNames()

func buildSquareNames() [65]string {
	var names [65]string
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			names[SquareOf(f, r)] = f.String() + r.String()
		}
	}
	names[SqNone] = "-"
	return names
}

func (s Square) String() string {
	if int(s) > 64 {
		panic(fmt.Sprintf("invalid square %d", s))
	}
	return squareNames[s]
}

// SquareFromString parses an algebraic square name like "e4". Returns
// SqNone for "-" or malformed input.
func SquareFromString(name string) Square {
	if len(name) != 2 {
		return SqNone
	}
	f := name[0]
	r := name[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'0'))
}
