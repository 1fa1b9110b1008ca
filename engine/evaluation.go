package engine

import (
	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore      int32 = 32500
	MateScore     int32 = 20000
	CoralWinScore int32 = 18000
	DrawScore     int32 = 0
)

// StalemateScore is the near-zero value of a stalemated or clock-drawn position.
var StalemateScore int32 = -10

// Base material values, indexed by piece type and role. Gatherers are worth
// less than hunters of the same type: they cannot fight, but they bank coral.
var PieceValue = [7][2]int32{
	cm.PieceTypeCrab:       {100, 80},
	cm.PieceTypeOctopus:    {240, 200},
	cm.PieceTypeTurtle:     {320, 260},
	cm.PieceTypePufferfish: {500, 400},
	cm.PieceTypeDolphin:    {700, 560},
	cm.PieceTypeWhale:      {0, 0},
}

// CriticalPieceValue is the threshold above which a hanging piece is scored
// catastrophically rather than merely badly.
var CriticalPieceValue int32 = 450

// Positional tuning knobs
var (
	centerBonus         int32 = 10
	opponentHalfBonus   int32 = 8
	gathererAdvance     int32 = 20
	whaleProximityBonus int32 = 12
	coralPlacedBonus    int32 = 15
	defendedQuietBonus  int32 = 6
)

// isCentral marks the 4x4 board center (files c-f, ranks 3-6).
func isCentral(sq cm.Square) bool {
	f, r := sq.File(), sq.Rank()
	return f >= 2 && f <= 5 && r >= 2 && r <= 5
}

func inOpponentHalf(sq cm.Square, c cm.Color) bool {
	if c == cm.White {
		return sq.Rank() >= 4
	}
	return sq.Rank() <= 3
}

// chebyshev is the board distance between two squares.
func chebyshev(a, b cm.Square) int {
	df := a.File() - b.File()
	dr := a.Rank() - b.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return Max(df, dr)
}

// nearEnemyWhale reports whether sq is within two squares of either square of
// the enemy whale.
func nearEnemyWhale(b *cm.Board, sq cm.Square, owner cm.Color) bool {
	head := b.WhaleHead(owner.Other())
	if head == cm.NoSquare {
		return false
	}
	return chebyshev(sq, head) <= 2 || chebyshev(sq, head+1) <= 2
}

// Evaluation statically scores the position for the given perspective;
// positive favors persp. Terminal states short-circuit: checkmate, stalemate
// and coral victory dominate everything else.
func Evaluation(b *cm.Board, persp cm.Color) int32 {
	if winner, ok := b.CoralWinner(); ok {
		if winner == persp {
			return CoralWinScore
		}
		return -CoralWinScore
	}
	if b.IsDrawByClock() {
		return StalemateScore
	}
	if !b.HasLegalMoves() {
		if b.InCheck(b.SideToMove()) {
			if b.SideToMove() == persp {
				return -MateScore
			}
			return MateScore
		}
		// Stalemate scores near zero no matter how the material stands.
		return StalemateScore
	}

	var score int32

	for sq := cm.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == cm.NoPiece {
			continue
		}
		owner := p.Color()
		// The whale occupies two squares; count it once, at its head.
		if p.Type() == cm.PieceTypeWhale && sq != b.WhaleHead(owner) {
			continue
		}

		value := PieceValue[p.Type()][p.Role()]
		contrib := value

		if isCentral(sq) {
			contrib += centerBonus
		}
		if inOpponentHalf(sq, owner) {
			contrib += opponentHalfBonus
			if p.Role() == cm.Gatherer {
				contrib += gathererAdvance
			}
		}
		if p.Type() != cm.PieceTypeWhale && nearEnemyWhale(b, sq, owner) {
			contrib += whaleProximityBonus
		}

		// Piece safety: hanging pieces are penalized in proportion to their
		// value, much harder above the critical threshold. A defended piece
		// under attack still carries trade pressure; a defended piece that
		// is not attacked earns a small prophylactic bonus.
		if p.Type() != cm.PieceTypeWhale {
			attacked := b.IsSquareAttacked(sq, owner.Other())
			defended := b.IsSquareAttacked(sq, owner)
			switch {
			case attacked && !defended:
				if value > CriticalPieceValue {
					contrib -= (value * 3) / 4
				} else {
					contrib -= value / 4
				}
			case attacked && defended:
				contrib -= value / 8
			case defended:
				contrib += defendedQuietBonus
			}
		}

		if owner == persp {
			score += contrib
		} else {
			score -= contrib
		}
	}

	score += coralPlacedBonus * int32(b.CoralPlaced(persp)-b.CoralPlaced(persp.Other()))

	return score
}
