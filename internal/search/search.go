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

// Package search implements iterative-deepening negamax with
// alpha-beta pruning, a transposition table, quiescence search and a
// cooperative, timer-driven cancellation flag.
//
// Repetition handling is a heuristic, weaker than the threefold rule:
// a child position whose Zobrist key appears anywhere in the supplied
// history is scored as a draw (0) without being searched.
package search

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/dkovac/chesscore/internal/evaluator"
	"github.com/dkovac/chesscore/internal/logging"
	"github.com/dkovac/chesscore/internal/movegen"
	"github.com/dkovac/chesscore/internal/position"
	"github.com/dkovac/chesscore/internal/tt"
	. "github.com/dkovac/chesscore/internal/types"
)

var log = logging.GetSearchLog()

// DefaultDepthLimit is the hard cap on iterative-deepening depth when
// Limits.DepthLimit is left at zero.
const DefaultDepthLimit = 100

// checkExtensionCap bounds accumulated check extensions along a single
// branch.
const checkExtensionCap = 10

// quiescenceDepthCap is the default capture-depth cap for quiescence.
const quiescenceDepthCap = 20

const ttBestMoveScore = 100000

// Limits bounds one findBestMove call.
type Limits struct {
	TimeLimit  time.Duration
	DepthLimit int
}

// BookOracle is consulted before search starts, keyed by the current
// position's Zobrist key. Promotions are never represented in book
// moves.
type BookOracle interface {
	GetMove(key position.Key) (origin, dest Square, found bool)
}

// Search is a reusable search engine instance bound to one
// transposition table. Only one FindBestMove call runs at a time; a
// second concurrent call blocks until the first completes.
type Search struct {
	table *tt.Table
	book  BookOracle

	isRunning     *semaphore.Weighted
	initSemaphore *semaphore.Weighted

	runSearch int32 // atomic bool: 1 while the search may continue

	nodesVisited uint64
}

// New returns a Search backed by table (never nil).
func New(table *tt.Table) *Search {
	return &Search{
		table:         table,
		isRunning:     semaphore.NewWeighted(1),
		initSemaphore: semaphore.NewWeighted(1),
	}
}

// SetBook installs (or clears, with nil) the opening-book oracle.
func (s *Search) SetBook(book BookOracle) {
	s.book = book
}

// Result is what FindBestMove returns beyond the bare move.
type Result struct {
	Move              Move
	DepthSearched     int
	FoundShortestMate bool
}

// FindBestMove probes the opening book first, then runs iterative
// deepening until depthLimit, a shortest-mate flag, or the cooperative
// timer cancels the search. zobristHistory is the sequence of Zobrist
// keys of positions that led to pos, including pos's own key, used for
// repetition avoidance.
func (s *Search) FindBestMove(pos position.Position, zobristHistory []position.Key, limits Limits) Result {
	ctx := context.Background()
	_ = s.isRunning.Acquire(ctx, 1)
	defer s.isRunning.Release(1)

	_ = s.initSemaphore.Acquire(ctx, 1)
	s.initSemaphore.Release(1)

	if s.book != nil {
		if origin, dest, found := s.book.GetMove(pos.ZobristKey()); found {
			if m, ok := movegen.IsLegalMove(&pos, origin, dest, PtNone); ok {
				log.Debug("opening book move: ", m.String())
				return Result{Move: m, DepthSearched: 0}
			}
		}
	}

	atomic.StoreInt32(&s.runSearch, 1)
	atomic.StoreUint64(&s.nodesVisited, 0)

	depthLimit := limits.DepthLimit
	if depthLimit <= 0 {
		depthLimit = DefaultDepthLimit
	}

	var timerWg sync.WaitGroup
	if limits.TimeLimit > 0 {
		timerWg.Add(1)
		go s.runTimer(limits.TimeLimit, &timerWg)
	}
	defer func() {
		atomic.StoreInt32(&s.runSearch, 0)
		timerWg.Wait()
	}()

	var result Result
	for d := 1; d <= depthLimit; d++ {
		if atomic.LoadInt32(&s.runSearch) == 0 {
			break
		}
		iter := s.iterateOneDepth(&pos, zobristHistory, d)
		if !iter.move.IsNone() {
			result.Move = iter.move
			result.DepthSearched = d
		}
		if iter.shortestMate {
			result.FoundShortestMate = true
			break
		}
	}
	log.Debugf("search finished: %s", s.table.StatsString())
	return result
}

func (s *Search) runTimer(limit time.Duration, wg *sync.WaitGroup) {
	defer wg.Done()
	deadline := time.Now().Add(limit)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if atomic.LoadInt32(&s.runSearch) == 0 {
			return
		}
		if time.Now().After(deadline) {
			atomic.StoreInt32(&s.runSearch, 0)
			return
		}
	}
}

type iterationResult struct {
	move         Move
	eval         Value
	shortestMate bool
}

// iterateOneDepth runs one iterative-deepening pass at depth d.
func (s *Search) iterateOneDepth(pos *position.Position, history []position.Key, d int) iterationResult {
	ttBest := MoveNone
	if entry, ok := s.table.Probe(pos.ZobristKey()); ok {
		ttBest = entry.BestMove
	}
	moves := orderedMoves(pos, movegen.Generate(pos, movegen.Normal), ttBest)

	alpha := -ValueInfinite
	beta := ValueInfinite
	bestEval := -ValueInfinite
	bestMove := MoveNone

	for _, m := range moves {
		if atomic.LoadInt32(&s.runSearch) == 0 {
			break
		}
		tmp := *pos
		tmp.ApplyMove(m)
		atomic.AddUint64(&s.nodesVisited, 1)

		var eval Value
		childKey := tmp.ZobristKey()
		if containsKey(history, childKey) {
			eval = ValueDraw
		} else {
			ext := 0
			if movegen.IsKingInCheck(&tmp, tmp.SideToMove()) {
				ext = 1
			}
			childHistory := append(append([]position.Key{}, history...), childKey)
			eval = -s.negamax(&tmp, d-1+ext, -beta, -alpha, d, ext, childHistory)
		}
		if eval == -ValueCancelled {
			break
		}
		if bestMove.IsNone() || eval > bestEval {
			bestEval = eval
			bestMove = m
		}
		if bestEval > alpha {
			alpha = bestEval
		}
	}

	shortestMate := !bestMove.IsNone() && bestEval >= ValueMate-Value(d)
	if !bestMove.IsNone() && atomic.LoadInt32(&s.runSearch) != 0 {
		s.table.Store(pos.ZobristKey(), bestEval, d, tt.BoundExact, bestMove)
	}
	return iterationResult{move: bestMove, eval: bestEval, shortestMate: shortestMate}
}

// negamax performs: a cancellation check, TT probe/cutoff, quiescence
// handoff at the horizon, legal move generation with end-of-game
// scoring, then the ordered recursive search with check extensions and
// TT classification.
func (s *Search) negamax(pos *position.Position, depth int, alpha, beta Value, iterDepth, numCheckExt int, history []position.Key) Value {
	if atomic.LoadInt32(&s.runSearch) == 0 {
		return ValueCancelled
	}

	alpha0 := alpha
	key := pos.ZobristKey()

	ttBest := MoveNone
	if entry, ok := s.table.Probe(key); ok {
		ttBest = entry.BestMove
		if entry.Depth >= depth {
			switch entry.Bound {
			case tt.BoundExact:
				return entry.Eval
			case tt.BoundLower:
				if entry.Eval > alpha {
					alpha = entry.Eval
				}
			case tt.BoundUpper:
				if entry.Eval < beta {
					beta = entry.Eval
				}
			}
			if alpha >= beta {
				return entry.Eval
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, quiescenceDepthCap)
	}

	us := pos.SideToMove()
	moves := orderedMoves(pos, movegen.Generate(pos, movegen.Normal), ttBest)
	if len(moves) == 0 {
		if movegen.IsKingInCheck(pos, us) {
			return -ValueMate + Value(iterDepth+numCheckExt) - Value(depth)
		}
		return ValueDraw
	}

	bestEval := -ValueInfinite
	bestMove := MoveNone
	for _, m := range moves {
		tmp := *pos
		tmp.ApplyMove(m)
		atomic.AddUint64(&s.nodesVisited, 1)

		childKey := tmp.ZobristKey()
		var eval Value
		if containsKey(history, childKey) {
			eval = ValueDraw
		} else {
			ext := 0
			if numCheckExt < checkExtensionCap && movegen.IsKingInCheck(&tmp, tmp.SideToMove()) {
				ext = 1
			}
			childHistory := append(append([]position.Key{}, history...), childKey)
			eval = -s.negamax(&tmp, depth-1+ext, -beta, -alpha, iterDepth, numCheckExt+ext, childHistory)
		}
		if eval == -ValueCancelled {
			return ValueCancelled
		}
		if eval > bestEval {
			bestEval = eval
			bestMove = m
		}
		if bestEval > alpha {
			alpha = bestEval
		}
		if alpha >= beta {
			break
		}
	}

	if !bestMove.IsNone() {
		bound := tt.BoundExact
		switch {
		case bestEval <= alpha0:
			bound = tt.BoundUpper
		case bestEval >= beta:
			bound = tt.BoundLower
		}
		s.table.Store(key, bestEval, depth, bound, bestMove)
	}
	return bestEval
}

// quiescence is a capture-only search with stand-pat and a
// capture-depth cap.
func (s *Search) quiescence(pos *position.Position, alpha, beta Value, cap int) Value {
	if atomic.LoadInt32(&s.runSearch) == 0 {
		return ValueCancelled
	}

	standPat := evaluator.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if cap <= 0 {
		return standPat
	}

	moves := orderedMoves(pos, movegen.Generate(pos, movegen.Capture), MoveNone)
	for _, m := range moves {
		tmp := *pos
		tmp.ApplyMove(m)
		atomic.AddUint64(&s.nodesVisited, 1)

		eval := -s.quiescence(&tmp, -beta, -alpha, cap-1)
		if eval == -ValueCancelled {
			return ValueCancelled
		}
		if eval >= beta {
			return beta
		}
		if eval > alpha {
			alpha = eval
		}
	}
	return alpha
}

type scoredMove struct {
	move  Move
	score int
}

// orderedMoves sorts descending by move-ordering score, stable on ties
// (sort.SliceStable preserves insertion order).
func orderedMoves(pos *position.Position, moves []Move, ttBest Move) []Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: moveScore(pos, m, ttBest)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	out := make([]Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move
	}
	return out
}

func moveScore(pos *position.Position, m, ttBest Move) int {
	if !ttBest.IsNone() && m == ttBest {
		return ttBestMoveScore
	}
	var captured Piece
	if m.Flag() == FlagEnPassant {
		captured = MakePiece(pos.SideToMove().Flip(), Pawn)
	} else {
		captured = pos.PieceAt(m.Destination())
	}
	score := 0
	if captured != PieceNone {
		moving := pos.PieceAt(m.Origin())
		score = captured.TypeOf().ValueOf() - moving.TypeOf().ValueOf()
	}
	if m.Flag() == FlagPromotion {
		score += m.Promotion().ValueOf()
	}
	return score
}

func containsKey(history []position.Key, key position.Key) bool {
	for _, k := range history {
		if k == key {
			return true
		}
	}
	return false
}
