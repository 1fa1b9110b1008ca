package coralmg

// MoveState is the undo record for one applied move. Together with the move
// itself (which carries the captured piece, promotion and coral flags) it is
// enough to restore the position exactly.
type MoveState struct {
	prevHash     uint64
	prevHalfmove int
	prevFullmove int
}

// Apply plays m on the board, mutating it in place, and returns the undo
// record. The move must be pseudo-legal for the side to move; legality
// filtering is the caller's concern (see GenerateLegalMoves).
func (b *Board) Apply(m Move) MoveState {
	st := MoveState{
		prevHash:     b.hash,
		prevHalfmove: b.halfmoveClock,
		prevFullmove: b.fullmoveNumber,
	}

	mover := b.sideToMove
	piece := m.MovedPiece()
	from, to := m.From(), m.To()
	resetClock := false

	if piece.Type() == PieceTypeWhale {
		head, tail := from, from+1
		newHead, newTail := to, to+1
		b.hash ^= zobristPiece[piece][head] ^ zobristPiece[piece][tail]
		b.squares[head], b.squares[tail] = NoPiece, NoPiece
		b.squares[newHead], b.squares[newTail] = piece, piece
		b.hash ^= zobristPiece[piece][newHead] ^ zobristPiece[piece][newTail]
		b.whaleHead[mover] = newHead
	} else {
		if captured := m.CapturedPiece(); captured != NoPiece {
			b.hash ^= zobristPiece[captured][to]
			resetClock = true
		}
		if m.RemovesCoral() {
			opp := mover.Other()
			b.coral[to] = coralNone
			b.coralPlaced[opp]--
			b.hash ^= zobristCoral[opp][to]
		}

		b.hash ^= zobristPiece[piece][from]
		b.squares[from] = NoPiece

		landed := piece
		if pt := m.PromotionType(); pt != PieceTypeNone {
			landed = MakePiece(mover, pt, Hunter)
			resetClock = true
		}
		b.squares[to] = landed
		b.hash ^= zobristPiece[landed][to]

		if m.PlacesCoral() {
			b.coral[from] = coralMark(mover)
			b.coralPlaced[mover]++
			b.coralSupply[mover]--
			b.hash ^= zobristCoral[mover][from]
			resetClock = true
		}
	}

	if resetClock {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if mover == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = mover.Other()
	b.hash ^= zobristSide

	return st
}

// Unapply restores the position as it was before Apply(m). Every board edit
// made by Apply is reversed; the hash is restored from the undo record.
func (b *Board) Unapply(m Move, st MoveState) {
	mover := b.sideToMove.Other()
	piece := m.MovedPiece()
	from, to := m.From(), m.To()

	if piece.Type() == PieceTypeWhale {
		b.squares[to], b.squares[to+1] = NoPiece, NoPiece
		b.squares[from], b.squares[from+1] = piece, piece
		b.whaleHead[mover] = from
	} else {
		b.squares[to] = m.CapturedPiece()
		b.squares[from] = piece
		if m.PlacesCoral() {
			b.coral[from] = coralNone
			b.coralPlaced[mover]--
			b.coralSupply[mover]++
		}
		if m.RemovesCoral() {
			opp := mover.Other()
			b.coral[to] = coralMark(opp)
			b.coralPlaced[opp]++
		}
	}

	b.sideToMove = mover
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.hash = st.prevHash
}

// Outcome classifies a finished (or ongoing) game.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCheckmate
	OutcomeStalemate
	OutcomeCoralWin
	OutcomeDraw
)

// Status reports the terminal state of the position, if any, and the winner
// for the decisive outcomes.
func (b *Board) Status() (Outcome, Color) {
	if winner, ok := b.CoralWinner(); ok {
		return OutcomeCoralWin, winner
	}
	if b.IsDrawByClock() {
		return OutcomeDraw, White
	}
	if !b.HasLegalMoves() {
		if b.InCheck(b.sideToMove) {
			return OutcomeCheckmate, b.sideToMove.Other()
		}
		return OutcomeStalemate, White
	}
	return OutcomeNone, White
}
