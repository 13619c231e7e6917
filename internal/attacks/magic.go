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

package attacks

import (
	. "github.com/dkovac/chesscore/internal/types"
)

// magic holds the fancy-magic-bitboard lookup data for a single
// square and a single slider (bishop or rook). Grounded on the
// teacher's internal/types/magic.go (itself adapted from Stockfish):
// mask the relevant occupancy bits, multiply by a magic constant,
// shift down to the table index.
type magic struct {
	mask    Bitboard
	number  Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magic) index(occ Bitboard) uint {
	occ &= m.mask
	occ *= m.number
	return uint(occ >> m.shift)
}

func (m *magic) attacksFor(occ Bitboard) Bitboard {
	return m.attacks[m.index(occ)]
}

// slidingAttack walks each of the four rays from sq until it falls off
// the board or hits an occupied square (inclusive of the blocker, so
// captures of blockers are represented).
func slidingAttack(dirs [4]Direction, sq Square, occ Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := sliderStep(s, d)
			if next == SqNone {
				break
			}
			s = next
			attack.Push(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return attack
}

// sliderStep is Square.To guarded the same way as the rest of the
// package against file wraparound; slidingAttack never needs to step
// diagonally across an edge either.
func sliderStep(s Square, d Direction) Square {
	return s.To(d)
}

// edgesMask returns the board-edge squares not on sq's own rank/file —
// these never need to be in the relevant-occupancy mask because a ray
// is always blocked there regardless of what's on them.
func edgesMask(sq Square) Bitboard {
	rankEdges := (RankMask(Rank1) | RankMask(Rank8)) &^ RankMask(sq.Rank())
	fileEdges := (FileMask(FileA) | FileMask(FileH)) &^ FileMask(sq.File())
	return rankEdges | fileEdges
}

// prng is the xorshift64* generator used to search for magic numbers,
// taken from the public-domain algorithm Stockfish uses for the same
// purpose.
type prng struct{ s uint64 }

func newPrng(seed uint64) *prng { return &prng{s: seed} }

func (r *prng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand biases towards sparse bit patterns, which converge faster
// during magic search.
func (r *prng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics(table *[64]magic, dirs [4]Direction) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := Square(0); sq < 64; sq++ {
		m := &table[sq]
		m.mask = slidingAttack(dirs, sq, BbZero) &^ edgesMask(sq)
		m.shift = uint(64 - m.mask.PopCount())

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		m.attacks = make([]Bitboard, size)
		rng := newPrng(magicSeeds[sq.Rank()-1])

		for i := 0; i < size; {
			for {
				m.number = Bitboard(rng.sparseRand())
				if ((m.number * m.mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}
