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

// Package position implements the bitboard-encoded chess position:
// twelve piece bitboards, incrementally maintained piece-position
// lists, castling/en-passant state, and an incrementally maintained
// Zobrist key. Position is a fully value-typed struct (fixed-size
// piece lists instead of slices) so it copies cheaply by value for
// search recursion.
package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/dkovac/chesscore/internal/types"
)

// maxPerKind bounds the dense piece-position list for one (color,
// piece type) pair. Eight pawns can each promote, so a single
// non-pawn, non-king type can in theory reach 10 instances (2 original
// knights, bishops or rooks + up to 8 promoted); for those types this
// is an exact bound, for the queen it leaves one spare slot.
const maxPerKind = 10

// pieceList is a dense, order-irrelevant array of squares occupied by
// one (color, piece type) pair, maintained in lockstep with the
// corresponding bitboard.
type pieceList struct {
	sq [maxPerKind]Square
	n  int
}

func (pl *pieceList) add(s Square) {
	pl.sq[pl.n] = s
	pl.n++
}

func (pl *pieceList) remove(s Square) {
	for i := 0; i < pl.n; i++ {
		if pl.sq[i] == s {
			pl.n--
			pl.sq[i] = pl.sq[pl.n]
			return
		}
	}
}

func (pl *pieceList) replace(old, new Square) {
	for i := 0; i < pl.n; i++ {
		if pl.sq[i] == old {
			pl.sq[i] = new
			return
		}
	}
}

// Squares returns the list contents as a plain slice (for tests/callers
// that want to range over it; the struct itself stays array-based).
func (pl pieceList) Squares() []Square {
	out := make([]Square, pl.n)
	copy(out, pl.sq[:pl.n])
	return out
}

// Position is the full bitboard-encoded game state. It is a plain
// value type: copy it with `tmp := p` to get an independent snapshot,
// which is exactly how the search recurses.
type Position struct {
	board [64]Piece

	bb  [2][PtLength]Bitboard
	occ [2]Bitboard

	lists [2][PtLength]pieceList

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveCount   int

	zobristKey Key
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New returns the standard starting position.
func New() Position {
	p, _ := FromFEN(StartFEN)
	return p
}

// FromFEN parses a FEN string. On any parse error it returns an error
// alongside a fallback to the standard starting position.
func FromFEN(fen string) (Position, error) {
	p, err := parseFEN(fen)
	if err != nil {
		start, _ := parseFEN(StartFEN)
		return start, err
	}
	return p, nil
}

var piecePlacementRe = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
var sideRe = regexp.MustCompile(`^[wb]$`)
var castlingRe = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
var epRe = regexp.MustCompile(`^([a-h][1-8]|-)$`)

func parseFEN(fen string) (Position, error) {
	var p Position
	p.enPassantSquare = SqNone

	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return p, fmt.Errorf("fen must not be empty")
	}

	if !piecePlacementRe.MatchString(fields[0]) {
		return p, fmt.Errorf("fen piece placement contains invalid characters")
	}
	if err := p.placePieces(fields[0]); err != nil {
		return p, err
	}
	if p.lists[White][King].n != 1 || p.lists[Black][King].n != 1 {
		return p, fmt.Errorf("fen must contain exactly one king per side")
	}

	p.sideToMove = White
	if len(fields) >= 2 {
		if !sideRe.MatchString(fields[1]) {
			return p, fmt.Errorf("fen active color invalid")
		}
		if fields[1] == "b" {
			p.sideToMove = Black
		}
	}

	if len(fields) >= 3 {
		if !castlingRe.MatchString(fields[2]) {
			return p, fmt.Errorf("fen castling field invalid")
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
	}

	if len(fields) >= 4 {
		if !epRe.MatchString(fields[3]) {
			return p, fmt.Errorf("fen en-passant field invalid")
		}
		if fields[3] != "-" {
			sq := SquareFromString(fields[3])
			if sq.Rank() != Rank3 && sq.Rank() != Rank6 {
				return p, fmt.Errorf("fen en-passant square must be on rank 3 or 6")
			}
			p.enPassantSquare = sq
		}
	}

	// fields[4] (half-move clock) and fields[5] (full-move number) are
	// accepted but not used by the core.

	p.zobristKey = recomputeZobrist(&p)
	return p, nil
}

func (p *Position) placePieces(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen piece placement must have 8 ranks")
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			pc := PieceFromChar(byte(c))
			if pc == PieceNone {
				return fmt.Errorf("invalid piece character %q", c)
			}
			if f > FileH {
				return fmt.Errorf("rank %d overflows 8 files", r)
			}
			p.setPiece(pc, SquareOf(f, r))
			f++
		}
		if f != File(FileLength) {
			return fmt.Errorf("rank %d does not fill 8 files", r)
		}
	}
	return nil
}

// setPiece places pc on sq without touching the Zobrist key — used
// only during FEN construction, where the key is computed from scratch
// afterwards.
func (p *Position) setPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.bb[c][pt].Push(sq)
	p.occ[c].Push(sq)
	p.lists[c][pt].add(sq)
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveCount returns the number of plies applied since the position
// was constructed (not the FEN 50-move clock, which the core ignores).
func (p *Position) HalfMoveCount() int { return p.halfMoveCount }

// ZobristKey returns the incrementally maintained Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// Bitboard returns the bitboard for one (color, piece type) pair.
func (p *Position) Bitboard(c Color, pt PieceType) Bitboard { return p.bb[c][pt] }

// Occupied returns all squares occupied by color c.
func (p *Position) Occupied(c Color) Bitboard { return p.occ[c] }

// OccupiedAll returns all occupied squares.
func (p *Position) OccupiedAll() Bitboard { return p.occ[White] | p.occ[Black] }

// PieceList returns the dense list of squares for one (color, piece
// type) pair, for iteration or for consistency-invariant tests.
func (p *Position) PieceList(c Color, pt PieceType) []Square {
	return p.lists[c][pt].Squares()
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.lists[c][King].sq[0]
}

// RecomputeZobristKey recomputes the key from scratch (used by tests
// to verify incremental maintenance never drifts).
func (p *Position) RecomputeZobristKey() Key {
	return recomputeZobrist(p)
}

// FEN serializes the position back to a FEN string.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			b.WriteByte('/')
		}
		if r == Rank1 {
			break
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	b.WriteString(p.enPassantSquare.String())
	b.WriteString(" 0 1")
	return b.String()
}

// removePiece clears pc from sq: board, bitboard, occupancy, piece
// list and Zobrist contribution all updated together.
func (p *Position) removePiece(pc Piece, sq Square) {
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.bb[c][pt].Pop(sq)
	p.occ[c].Pop(sq)
	p.lists[c][pt].remove(sq)
	p.zobristKey ^= zobristBase.pieces[pc][sq]
	p.board[sq] = PieceNone
}

// putPiece places pc on sq, mirroring removePiece.
func (p *Position) putPiece(pc Piece, sq Square) {
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.bb[c][pt].Push(sq)
	p.occ[c].Push(sq)
	p.lists[c][pt].add(sq)
	p.zobristKey ^= zobristBase.pieces[pc][sq]
	p.board[sq] = pc
}

// clearCastlingRight drops a single right, XORing its Zobrist constant
// out only if the right had actually been set.
func (p *Position) clearCastlingRight(right CastlingRights) {
	if p.castlingRights.Has(right) {
		p.zobristKey ^= castlingRightKey(right)
		p.castlingRights.Remove(right)
	}
}

func (p *Position) clearCastlingRights(rights CastlingRights) {
	for _, bit := range castlingBits {
		if rights.Has(bit) {
			p.clearCastlingRight(bit)
		}
	}
}

// updateCastlingRightsFromRookHomes derives castling rights purely
// from observing whether each rook is still on its home square, which
// folds rook moves, rook captures and king moves into a single rule.
func (p *Position) updateCastlingRightsFromRookHomes() {
	if p.castlingRights.Has(CastlingWhiteOOO) && p.board[SqA1] != WhiteRook {
		p.clearCastlingRight(CastlingWhiteOOO)
	}
	if p.castlingRights.Has(CastlingWhiteOO) && p.board[SqH1] != WhiteRook {
		p.clearCastlingRight(CastlingWhiteOO)
	}
	if p.castlingRights.Has(CastlingBlackOOO) && p.board[SqA8] != BlackRook {
		p.clearCastlingRight(CastlingBlackOOO)
	}
	if p.castlingRights.Has(CastlingBlackOO) && p.board[SqH8] != BlackRook {
		p.clearCastlingRight(CastlingBlackOO)
	}
}

// castlingRookSquares returns the rook's home and castled squares for
// a castling move whose king lands on kingDest.
func castlingRookSquares(kingDest Square) (rookFrom, rookTo Square) {
	switch kingDest {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	}
	return SqNone, SqNone
}

// ApplyMove mutates the position by playing m, which must already have
// been produced by the legal move generator (and so carries the
// correct SpecialFlag). It updates piece placement, piece-position
// lists, castling rights, en-passant state and the Zobrist key in a
// fixed order. ApplyMove is destructive and not self-undoable; undo is
// the caller's responsibility (a saved-snapshot stack, since Position
// is a plain value type and copies cheaply).
func (p *Position) ApplyMove(m Move) {
	origin := m.Origin()
	dest := m.Destination()
	us := p.sideToMove
	them := us.Flip()

	movingPiece := p.board[origin]
	movingType := movingPiece.TypeOf()

	// Step 2: en-passant hash update.
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.epFile[p.enPassantSquare.File()]
	}
	diff := int(origin) - int(dest)
	if diff < 0 {
		diff = -diff
	}
	if movingType == Pawn && diff == 16 {
		epSquare := Square((int(origin) + int(dest)) / 2)
		p.enPassantSquare = epSquare
		p.zobristKey ^= zobristBase.epFile[epSquare.File()]
	} else {
		p.enPassantSquare = SqNone
	}

	// Step 3: clear the destination bit from all twelve bitboards —
	// i.e. remove whatever was captured there, if anything.
	if captured := p.board[dest]; captured != PieceNone {
		p.removePiece(captured, dest)
	}

	// Step 4: move the piece.
	p.removePiece(movingPiece, origin)
	p.putPiece(movingPiece, dest)

	// Step 5: castling-rights updates, driven by observation.
	if movingType == King {
		if us == White {
			p.clearCastlingRights(CastlingWhite)
		} else {
			p.clearCastlingRights(CastlingBlack)
		}
	}
	p.updateCastlingRightsFromRookHomes()

	// Step 6: castling rook hop.
	if m.Flag() == FlagCastling {
		rookFrom, rookTo := castlingRookSquares(dest)
		rook := p.board[rookFrom]
		p.removePiece(rook, rookFrom)
		p.putPiece(rook, rookTo)
	}

	// Step 7: en-passant capture.
	if m.Flag() == FlagEnPassant {
		var capturedSq Square
		if us == White {
			capturedSq = dest.To(South)
		} else {
			capturedSq = dest.To(North)
		}
		p.removePiece(p.board[capturedSq], capturedSq)
	}

	// Step 8: promotion.
	if m.Flag() == FlagPromotion {
		p.removePiece(movingPiece, dest)
		p.putPiece(MakePiece(us, m.Promotion()), dest)
	}

	// Step 9: flip side to move, increment the ply counter.
	p.sideToMove = them
	p.zobristKey ^= zobristBase.sideToMove
	p.halfMoveCount++
}

func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.FEN())
	b.WriteByte('\n')
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			b.WriteString(p.board[SquareOf(f, r)].Char())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return b.String()
}
