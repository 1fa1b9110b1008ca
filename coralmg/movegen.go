package coralmg

// Direction tables used by the step-moving pieces.
var allDirections = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var orthoDirections = [4][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

var diagDirections = [4][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// forwardRankStep is +1 for White (toward rank 8), -1 for Black.
func forwardRankStep(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// hunterAt reports whether sq holds a hunter of the given color and type.
func (b *Board) hunterAt(sq Square, c Color, pt PieceType) bool {
	p := b.squares[sq]
	return p != NoPiece && p.Color() == c && p.Type() == pt && p.Role() == Hunter
}

// IsSquareAttacked reports whether sq is attacked by any hunter of the given
// color. Gatherers and whales attack nothing. This is the authority for
// check detection and for the evaluator's piece-safety terms.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	fwd := forwardRankStep(by)

	// Crab: attacks one step forward and one step sideways, so a crab
	// attacking sq sits one rank behind it or directly beside it.
	if s, ok := stepSquare(sq, 0, -fwd); ok && b.hunterAt(s, by, PieceTypeCrab) {
		return true
	}
	for _, df := range [2]int{1, -1} {
		if s, ok := stepSquare(sq, df, 0); ok && b.hunterAt(s, by, PieceTypeCrab) {
			return true
		}
	}

	// Octopus: attacks sideways and the three squares behind it, so an
	// octopus attacking sq sits beside it or one rank ahead of it.
	for _, df := range [3]int{-1, 0, 1} {
		if s, ok := stepSquare(sq, df, fwd); ok && b.hunterAt(s, by, PieceTypeOctopus) {
			return true
		}
	}
	for _, df := range [2]int{1, -1} {
		if s, ok := stepSquare(sq, df, 0); ok && b.hunterAt(s, by, PieceTypeOctopus) {
			return true
		}
	}

	// Turtle: attacks every adjacent square.
	for _, d := range allDirections {
		if s, ok := stepSquare(sq, d[0], d[1]); ok && b.hunterAt(s, by, PieceTypeTurtle) {
			return true
		}
	}

	// Dolphin: two-square orthogonal leap (over anything) or one diagonal step.
	for _, d := range orthoDirections {
		if s, ok := stepSquare(sq, 2*d[0], 2*d[1]); ok && b.hunterAt(s, by, PieceTypeDolphin) {
			return true
		}
	}
	for _, d := range diagDirections {
		if s, ok := stepSquare(sq, d[0], d[1]); ok && b.hunterAt(s, by, PieceTypeDolphin) {
			return true
		}
	}

	// Pufferfish: orthogonal slider; the first piece along each ray decides.
	for _, d := range orthoDirections {
		s, ok := stepSquare(sq, d[0], d[1])
		for ok {
			if p := b.squares[s]; p != NoPiece {
				if p.Color() == by && p.Type() == PieceTypePufferfish && p.Role() == Hunter {
					return true
				}
				break
			}
			s, ok = stepSquare(s, d[0], d[1])
		}
	}

	return false
}

// InCheck reports whether the given side's whale has either square attacked.
func (b *Board) InCheck(c Color) bool {
	head := b.whaleHead[c]
	if head == NoSquare {
		return false
	}
	other := c.Other()
	return b.IsSquareAttacked(head, other) || b.IsSquareAttacked(head+1, other)
}

// destinationKind classifies a pseudo-move target for the side to move.
const (
	destBlocked = iota
	destEmpty
	destCapture
)

func (b *Board) classifyDest(sq Square, mover Piece) int {
	target := b.squares[sq]
	if target == NoPiece {
		// Gatherers may not enter squares holding enemy coral.
		if mover.Role() == Gatherer && b.coral[sq] == coralMark(mover.Color().Other()) {
			return destBlocked
		}
		return destEmpty
	}
	if target.Color() == mover.Color() || target.Type() == PieceTypeWhale {
		return destBlocked
	}
	if mover.Role() == Gatherer {
		return destBlocked
	}
	return destCapture
}

// coralFlags computes the coral side effects of moving piece from->to.
func (b *Board) coralFlags(piece Piece, from, to Square) uint8 {
	var flags uint8
	c := piece.Color()
	if piece.Role() == Gatherer && b.coralSupply[c] > 0 && b.coral[from] == coralNone {
		flags |= FlagCoralPlace
	}
	if piece.Role() == Hunter && b.coral[to] == coralMark(c.Other()) {
		flags |= FlagCoralRemove
	}
	return flags
}

func (b *Board) appendMove(dst []Move, piece Piece, from, to Square, capture bool) []Move {
	var captured Piece
	if capture {
		captured = b.squares[to]
	}
	promo := PieceTypeNone
	if piece.Type() == PieceTypeCrab && to.Rank() == lastRank(piece.Color()) {
		promo = PieceTypeDolphin
	}
	return append(dst, NewMove(from, to, piece, captured, promo, b.coralFlags(piece, from, to)))
}

// stepMoves appends pseudo moves for a piece that steps one square along the
// given directions. For the octopus, captures are restricted to its attack
// directions while quiet steps may go anywhere adjacent.
func (b *Board) stepMoves(dst []Move, piece Piece, from Square, dirs [][2]int, captureDirs [][2]int) []Move {
	for _, d := range dirs {
		to, ok := stepSquare(from, d[0], d[1])
		if !ok {
			continue
		}
		switch b.classifyDest(to, piece) {
		case destEmpty:
			dst = b.appendMove(dst, piece, from, to, false)
		case destCapture:
			allowed := captureDirs == nil
			for _, cd := range captureDirs {
				if cd == d {
					allowed = true
					break
				}
			}
			if allowed {
				dst = b.appendMove(dst, piece, from, to, true)
			}
		}
	}
	return dst
}

func (b *Board) generatePseudoFor(dst []Move, from Square) []Move {
	piece := b.squares[from]
	c := piece.Color()
	fwd := forwardRankStep(c)

	switch piece.Type() {
	case PieceTypeCrab:
		dirs := [][2]int{{0, fwd}, {1, 0}, {-1, 0}}
		dst = b.stepMoves(dst, piece, from, dirs, nil)

	case PieceTypeOctopus:
		captureDirs := [][2]int{{1, 0}, {-1, 0}, {0, -fwd}, {1, -fwd}, {-1, -fwd}}
		dst = b.stepMoves(dst, piece, from, allDirections[:], captureDirs)

	case PieceTypeTurtle:
		dst = b.stepMoves(dst, piece, from, allDirections[:], nil)

	case PieceTypePufferfish:
		for _, d := range orthoDirections {
			to, ok := stepSquare(from, d[0], d[1])
			for ok {
				kind := b.classifyDest(to, piece)
				if kind == destEmpty {
					dst = b.appendMove(dst, piece, from, to, false)
				} else {
					if kind == destCapture {
						dst = b.appendMove(dst, piece, from, to, true)
					}
					break
				}
				to, ok = stepSquare(to, d[0], d[1])
			}
		}

	case PieceTypeDolphin:
		for _, d := range orthoDirections {
			if to, ok := stepSquare(from, 2*d[0], 2*d[1]); ok {
				switch b.classifyDest(to, piece) {
				case destEmpty:
					dst = b.appendMove(dst, piece, from, to, false)
				case destCapture:
					dst = b.appendMove(dst, piece, from, to, true)
				}
			}
		}
		dst = b.stepMoves(dst, piece, from, diagDirections[:], nil)

	case PieceTypeWhale:
		// Only generate from the head square; the tail carries the same piece.
		if from != b.whaleHead[c] {
			return dst
		}
		head, tail := from, from+1
		for _, d := range allDirections {
			newHead, ok := stepSquare(head, d[0], d[1])
			if !ok || newHead.File() > 6 {
				continue
			}
			newTail := newHead + 1
			clear := true
			for _, sq := range [2]Square{newHead, newTail} {
				if sq != head && sq != tail && b.squares[sq] != NoPiece {
					clear = false
					break
				}
			}
			if clear {
				dst = append(dst, NewMove(head, newHead, piece, NoPiece, PieceTypeNone, 0))
			}
		}
	}
	return dst
}

// GeneratePseudoMoves generates all pseudo-legal moves for the side to move;
// moving into check is not filtered here.
func (b *Board) GeneratePseudoMoves() []Move {
	dst := make([]Move, 0, 64)
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p != NoPiece && p.Color() == b.sideToMove {
			dst = b.generatePseudoFor(dst, sq)
		}
	}
	return dst
}

// GenerateLegalMoves generates every legal move for the side to move.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.GeneratePseudoMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if b.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// GenerateCaptures generates the legal capture moves only, for quiescence.
func (b *Board) GenerateCaptures() []Move {
	pseudo := b.GeneratePseudoMoves()
	captures := pseudo[:0]
	for _, m := range pseudo {
		if m.IsCapture() && b.isLegal(m) {
			captures = append(captures, m)
		}
	}
	return captures
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece || p.Color() != b.sideToMove {
			continue
		}
		for _, m := range b.generatePseudoFor(nil, sq) {
			if b.isLegal(m) {
				return true
			}
		}
	}
	return false
}

// isLegal checks a pseudo move by playing it and testing whether the mover's
// own whale ends up attacked.
func (b *Board) isLegal(m Move) bool {
	mover := b.sideToMove
	st := b.Apply(m)
	ok := !b.InCheck(mover)
	b.Unapply(m, st)
	return ok
}
