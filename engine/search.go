package engine

import (
	"time"

	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
)

// =============================================================================
// SEARCH PARAMETERS
// =============================================================================

// MaxSearchDepth caps the iterative-deepening loop when the caller passes no
// explicit ceiling.
const MaxSearchDepth = 64

// minCompletedDepth is always searched to completion before the time budget
// may stop the loop, so the engine returns a real move even with a broken or
// exhausted budget.
const minCompletedDepth = 2

// quiescenceMaxPly bounds capture-chain resolution at the leaves.
const quiescenceMaxPly = 30

var aspirationWindowSize int32 = 35

// oscillationPenalty is subtracted at the root from any move that exactly
// reverses the mover's own previous move, to break shuffle loops the
// evaluator cannot see.
var oscillationPenalty int32 = 40

// scoreNearTerminal: once a completed depth scores beyond this, a forced
// mate or coral win has been found and deeper search cannot help.
var scoreNearTerminal = CoralWinScore - 512

// ProgressFunc observes the driver after each fully completed depth. It is
// invoked synchronously on the search goroutine.
type ProgressFunc func(depth int, score int32, move cm.Move, nodes uint64, elapsed time.Duration)

// SearchParams configures one call to FindBestMove.
type SearchParams struct {
	MaxDepth    int     // depth ceiling; <= 0 means MaxSearchDepth
	MaxTimeMs   float64 // wall-clock budget; invalid values fall back to the tier default
	Perspective cm.Color
	Difficulty  Difficulty
	LastOwnMove cm.Move // the mover's previous move, for the anti-oscillation penalty
	Seed        int64   // non-zero seeds the softmax draw deterministically

	Deterministic bool // disable softmax selection; always play the best move
	DisableTT     bool // test hook: search without the transposition table

	Progress ProgressFunc
}

// SearchResult is the outcome of one FindBestMove call. A NullMove means the
// position had no legal moves or the snapshot could not be reconstructed.
type SearchResult struct {
	Move      cm.Move
	Score     int32
	Nodes     uint64
	Depth     int
	ElapsedMs int64
}

type rootMove struct {
	move  cm.Move
	score int32
}

// searcher owns all mutable state of one search invocation: the working
// board, the transposition table and the node/time accounting. Nothing here
// is shared across calls or goroutines.
type searcher struct {
	board       *cm.Board
	tt          *TransTable
	tc          TimeControl
	nodes       uint64
	stopped     bool
	enforceTime bool
}

// timeUp polls the shared budget and latches the stop flag.
func (s *searcher) timeUp() bool {
	if s.stopped {
		return true
	}
	if s.enforceTime && s.tc.Expired() {
		s.stopped = true
	}
	return s.stopped
}

// FindBestMove runs an iterative-deepening alpha-beta search over the
// snapshot and returns the selected move. It never panics and never returns
// an illegal move; all failure modes degrade to a NullMove result.
func FindBestMove(snap *cm.Snapshot, p SearchParams) SearchResult {
	budget := sanitizeBudget(p.MaxTimeMs, p.Difficulty)

	board, err := cm.FromSnapshot(snap)
	if err != nil {
		return SearchResult{Move: cm.NullMove}
	}

	s := &searcher{board: board, tc: newTimeControl(budget)}
	if !p.DisableTT {
		s.tt = newTransTable(ttMaxEntries)
	}

	maxDepth := p.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxSearchDepth {
		maxDepth = MaxSearchDepth
	}
	minDepth := Min(minCompletedDepth, maxDepth)

	var bestMove cm.Move
	var bestScore int32
	var bestRoots []rootMove
	depthReached := 0
	haveScore := false

	for depth := 1; depth <= maxDepth; depth++ {
		if s.tc.Expired() && depthReached >= minDepth {
			break
		}
		// The first minDepth iterations run to completion no matter what,
		// so a zero/garbage budget still yields a move.
		s.enforceTime = depth > minDepth

		alpha, beta := -MaxScore, MaxScore
		if haveScore {
			alpha = bestScore - aspirationWindowSize
			beta = bestScore + aspirationWindowSize
		}

		score, move, roots, timedOut := s.rootSearch(depth, alpha, beta, p.LastOwnMove)
		if !timedOut && (score <= alpha || score >= beta) {
			// The true score fell outside the aspiration window:
			// redo this depth with the full window.
			score, move, roots, timedOut = s.rootSearch(depth, -MaxScore, MaxScore, p.LastOwnMove)
		}
		if timedOut {
			// Keep the last fully completed depth's result.
			break
		}
		if len(roots) == 0 {
			// No legal moves at the root.
			return SearchResult{
				Move:      cm.NullMove,
				Score:     0,
				Nodes:     s.nodes,
				Depth:     depthReached,
				ElapsedMs: s.tc.Elapsed().Milliseconds(),
			}
		}

		bestMove, bestScore, bestRoots = move, score, roots
		haveScore = true
		depthReached = depth

		if p.Progress != nil {
			p.Progress(depth, score, move, s.nodes, s.tc.Elapsed())
		}

		if abs32(score) >= scoreNearTerminal {
			break
		}
	}

	chosen := selectRootMove(snap, bestRoots, bestMove, p)

	score := bestScore
	if p.Perspective != board.SideToMove() {
		score = -score
	}

	return SearchResult{
		Move:      chosen,
		Score:     score,
		Nodes:     s.nodes,
		Depth:     depthReached,
		ElapsedMs: s.tc.Elapsed().Milliseconds(),
	}
}

// rootSearch runs one full-depth pass over every root move. Unlike interior
// nodes the root never cuts on beta and never narrows the window between
// moves: the selection policy consumes the whole score list, so each root
// move must carry its exact score, not a bound. A move whose score the
// aspiration window only bounded is resolved with a full-window re-search.
func (s *searcher) rootSearch(depth int, alpha, beta int32, lastOwn cm.Move) (int32, cm.Move, []rootMove, bool) {
	b := s.board
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		return 0, cm.NullMove, nil, false
	}

	hash := b.Hash()
	var ttMove cm.Move
	if s.tt != nil {
		if entry, ok := s.tt.probe(hash); ok {
			ttMove = entry.Move
		}
	}

	roots := make([]rootMove, 0, len(moves))
	bestScore := -MaxScore
	bestMove := cm.NullMove
	bestRaw := -MaxScore
	bestRawMove := cm.NullMove

	for _, sm := range orderMoves(moves, ttMove) {
		if s.timeUp() {
			return bestScore, bestMove, roots, true
		}

		move := sm.move
		st := b.Apply(move)
		score := -s.alphabeta(depth-1, 1, -beta, -alpha)
		if !s.stopped && (score <= alpha || score >= beta) {
			score = -s.alphabeta(depth-1, 1, -MaxScore, MaxScore)
		}
		b.Unapply(move, st)

		if s.stopped {
			return bestScore, bestMove, roots, true
		}

		if score > bestRaw {
			bestRaw = score
			bestRawMove = move
		}
		if reversesMove(move, lastOwn) {
			score -= oscillationPenalty
		}

		roots = append(roots, rootMove{move: move, score: score})
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	if s.tt != nil {
		// Cache the raw search result: the oscillation penalty is root
		// selection policy, not a property of the position.
		s.tt.store(hash, int8(depth), 0, bestRawMove, bestRaw, ExactFlag)
	}

	return bestScore, bestMove, roots, false
}

// reversesMove reports whether m exactly undoes last: same piece type, same
// color, origin and destination swapped.
func reversesMove(m, last cm.Move) bool {
	if last == cm.NullMove {
		return false
	}
	return m.From() == last.To() && m.To() == last.From() &&
		m.MovedPiece().Type() == last.MovedPiece().Type() &&
		m.MovedPiece().Color() == last.MovedPiece().Color()
}

// alphabeta is a fail-soft negamax search with transposition caching and a
// quiescence extension at the leaves. Scores are always from the point of
// view of the side to move.
func (s *searcher) alphabeta(depth, ply int, alpha, beta int32) int32 {
	s.nodes++
	if s.nodes&1023 == 0 {
		s.timeUp()
	}
	if s.stopped {
		return 0
	}

	b := s.board
	side := b.SideToMove()

	if winner, ok := b.CoralWinner(); ok {
		if winner == side {
			return CoralWinScore
		}
		return -CoralWinScore
	}
	if b.IsDrawByClock() {
		return StalemateScore
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta, quiescenceMaxPly)
	}

	alphaOrig := alpha
	hash := b.Hash()
	var ttMove cm.Move

	// Shallow lookups are not worth the overhead; a stored entry is only
	// trusted when it was searched at least as deep as we need now.
	if s.tt != nil && depth >= 2 {
		if entry, ok := s.tt.probe(hash); ok {
			ttMove = entry.Move
			if int(entry.Depth) >= depth {
				score := scoreFromTT(entry.Score, ply)
				switch entry.Flag {
				case ExactFlag:
					return score
				case BetaFlag:
					if score >= beta {
						return score
					}
					if score > alpha {
						alpha = score
					}
				case AlphaFlag:
					if score <= alpha {
						return score
					}
					if score < beta {
						beta = score
					}
				}
			}
		}
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.InCheck(side) {
			return -MaxScore + int32(ply) // checkmate; prefer the shortest mate
		}
		return StalemateScore
	}

	bestScore := -MaxScore
	bestMove := cm.NullMove

	for _, sm := range orderMoves(moves, ttMove) {
		move := sm.move
		st := b.Apply(move)
		score := -s.alphabeta(depth-1, ply+1, -beta, -alpha)
		b.Unapply(move, st)

		if s.stopped {
			return bestScore
		}

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	if s.tt != nil && !s.stopped {
		flag := ExactFlag
		if bestScore <= alphaOrig {
			flag = AlphaFlag
		} else if bestScore >= beta {
			flag = BetaFlag
		}
		s.tt.store(hash, int8(depth), ply, bestMove, bestScore, flag)
	}

	return bestScore
}

// quiescence resolves capture chains before trusting the static evaluation,
// so the horizon never lands in the middle of an exchange. Only captures are
// searched, ordered most-valuable-victim first, to a bounded extra depth.
func (s *searcher) quiescence(alpha, beta int32, plyLeft int) int32 {
	s.nodes++
	if s.nodes&1023 == 0 {
		s.timeUp()
	}
	if s.stopped {
		return 0
	}

	b := s.board

	standPat := Evaluation(b, b.SideToMove())
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if plyLeft <= 0 {
		return standPat
	}

	for _, sm := range orderCaptures(b.GenerateCaptures()) {
		if s.timeUp() {
			return alpha
		}

		move := sm.move
		st := b.Apply(move)
		score := -s.quiescence(-beta, -alpha, plyLeft-1)
		b.Unapply(move, st)

		if s.stopped {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
