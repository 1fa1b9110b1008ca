package engine

import (
	"golang.org/x/exp/slices"

	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
)

type scoredMove struct {
	move  cm.Move
	score int32
}

// Move ordering offsets: a cached best move from the transposition table is
// tried first, then captures by MVV-LVA. Quiet moves keep generator order.
const (
	ttMoveOffset  int32 = 1 << 20
	captureOffset int32 = 1 << 16
)

// mvvLva scores a capture as victim-value x 100 minus attacker-value:
// prefer grabbing the most valuable piece with the least valuable piece.
func mvvLva(m cm.Move) int32 {
	victim := m.CapturedPiece()
	attacker := m.MovedPiece()
	return PieceValue[victim.Type()][victim.Role()]*100 - PieceValue[attacker.Type()][attacker.Role()]
}

// orderMoves scores and sorts the move list for maximum pruning. The sort is
// stable so that quiet moves stay in generator order.
func orderMoves(moves []cm.Move, ttMove cm.Move) []scoredMove {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		var s int32
		switch {
		case m == ttMove && ttMove != cm.NullMove:
			s = ttMoveOffset
		case m.IsCapture():
			s = captureOffset + mvvLva(m)
		}
		scored[i] = scoredMove{move: m, score: s}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) bool {
		return a.score > b.score
	})
	return scored
}

// orderCaptures scores and sorts a capture-only list for quiescence.
func orderCaptures(moves []cm.Move) []scoredMove {
	return orderMoves(moves, cm.NullMove)
}
