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

// Package evaluator scores a Position from the side-to-move's
// perspective: material, piece-square tables blended across the
// middle-game/endgame spectrum by an endgame weight, a mop-up term
// that drives a material-superior side's king towards the enemy
// king in the endgame, and a pure-middle-game king-pawn-shield
// penalty.
package evaluator

import (
	. "github.com/dkovac/chesscore/internal/types"

	"github.com/dkovac/chesscore/internal/position"
)

// minorMajorMaterial is R+B+2N in centipawns, the denominator of the
// endgame-weight formula.
var minorMajorMaterial = Rook.ValueOf() + Bishop.ValueOf() + 2*Knight.ValueOf()

// Evaluate returns the position's score from the perspective of the
// side to move.
func Evaluate(p *position.Position) Value {
	white := whitePerspectiveScore(p)
	if p.SideToMove() == Black {
		return -white
	}
	return white
}

func whitePerspectiveScore(p *position.Position) Value {
	w := endgameWeight(p)

	material := materialScore(p)
	pst := pstScore(p, w)
	score := material + pst

	if mopUp := mopUpScore(p, w); mopUp != 0 {
		score += mopUp
	}
	score += shieldScore(p, w)

	return score
}

func materialScore(p *position.Position) Value {
	var score Value
	for pt := Pawn; pt <= Queen; pt++ {
		white := p.Bitboard(White, pt).PopCount()
		black := p.Bitboard(Black, pt).PopCount()
		score += Value((white - black) * pt.ValueOf())
	}
	return score
}

// endgameWeight returns w in [0,1]: 0 at opening material strength,
// approaching 1 as non-pawn, non-king material comes off the board.
func endgameWeight(p *position.Position) float64 {
	whiteMaterial := nonPawnMaterial(p, White)
	blackMaterial := nonPawnMaterial(p, Black)
	materialNoPawns := whiteMaterial
	if blackMaterial < materialNoPawns {
		materialNoPawns = blackMaterial
	}
	ratio := float64(materialNoPawns) / float64(minorMajorMaterial)
	if ratio > 1 {
		ratio = 1
	}
	return 1 - ratio
}

func nonPawnMaterial(p *position.Position, c Color) int {
	total := 0
	for pt := Knight; pt <= Queen; pt++ {
		total += p.Bitboard(c, pt).PopCount() * pt.ValueOf()
	}
	return total
}

func pstScore(p *position.Position, w float64) Value {
	var score Value
	for pt := Pawn; pt <= King; pt++ {
		mid, end := tablesFor(pt)
		p.Bitboard(White, pt).ForEach(func(sq Square) {
			mirror := Square(63 - int(sq))
			score += blend(mid[mirror], end[mirror], w)
		})
		p.Bitboard(Black, pt).ForEach(func(sq Square) {
			score -= blend(mid[sq], end[sq], w)
		})
	}
	return score
}

func blend(mid, end Value, w float64) Value {
	return Value(float64(mid)*(1-w) + float64(end)*w)
}

// mopUpScore is non-zero only when one side's material exceeds the
// other's by more than two pawns (200 cp).
func mopUpScore(p *position.Position, w float64) Value {
	whiteMaterial := nonPawnMaterial(p, White) + p.Bitboard(White, Pawn).PopCount()*Pawn.ValueOf()
	blackMaterial := nonPawnMaterial(p, Black) + p.Bitboard(Black, Pawn).PopCount()*Pawn.ValueOf()
	gap := whiteMaterial - blackMaterial

	var strong, weak Color
	switch {
	case gap > 200:
		strong, weak = White, Black
	case gap < -200:
		strong, weak = Black, White
	default:
		return 0
	}

	ownKing := p.KingSquare(strong)
	enemyKing := p.KingSquare(weak)
	value := w * (1.6*float64(14-Distance(ownKing, enemyKing)) + 4.7*float64(centerManhattanDistance(enemyKing)))

	if strong == White {
		return Value(value)
	}
	return -Value(value)
}

// centerManhattanDistance is 0 for the four central squares and grows
// to 6 at the board's corners.
func centerManhattanDistance(sq Square) int {
	f := int(sq.File())
	r := int(sq.Rank()) - 1
	fileDist := f - 4
	if f <= 3 {
		fileDist = 3 - f
	}
	rankDist := r - 4
	if r <= 3 {
		rankDist = 3 - r
	}
	return fileDist + rankDist
}

const shieldPenalty = 40

var whiteKingsideShield = [3]Square{SquareOf(FileF, Rank2), SquareOf(FileG, Rank2), SquareOf(FileH, Rank2)}
var whiteQueensideShield = [3]Square{SquareOf(FileB, Rank2), SquareOf(FileC, Rank2), SquareOf(FileD, Rank2)}
var blackKingsideShield = [3]Square{SquareOf(FileF, Rank7), SquareOf(FileG, Rank7), SquareOf(FileH, Rank7)}
var blackQueensideShield = [3]Square{SquareOf(FileB, Rank7), SquareOf(FileC, Rank7), SquareOf(FileD, Rank7)}

// shieldScore penalizes a castled king missing expected shield pawns,
// applied only in a pure middle-game position (w == 0).
func shieldScore(p *position.Position, w float64) Value {
	if w != 0 {
		return 0
	}
	return kingShieldFor(p, White) - kingShieldFor(p, Black)
}

func kingShieldFor(p *position.Position, c Color) Value {
	kingSq := p.KingSquare(c)
	var shield [3]Square
	var pawn Piece
	switch {
	case c == White && kingSq == SqG1:
		shield, pawn = whiteKingsideShield, WhitePawn
	case c == White && kingSq == SqC1:
		shield, pawn = whiteQueensideShield, WhitePawn
	case c == Black && kingSq == SqG8:
		shield, pawn = blackKingsideShield, BlackPawn
	case c == Black && kingSq == SqC8:
		shield, pawn = blackQueensideShield, BlackPawn
	default:
		return 0
	}
	var penalty Value
	for _, sq := range shield {
		if p.PieceAt(sq) != pawn {
			penalty -= shieldPenalty
		}
	}
	return penalty
}

func tablesFor(pt PieceType) (*[64]Value, *[64]Value) {
	switch pt {
	case Pawn:
		return &pawnMid, &pawnEnd
	case Knight:
		return &knightMid, &knightEnd
	case Bishop:
		return &bishopMid, &bishopEnd
	case Rook:
		return &rookMid, &rookEnd
	case Queen:
		return &queenMid, &queenEnd
	default:
		return &kingMid, &kingEnd
	}
}
