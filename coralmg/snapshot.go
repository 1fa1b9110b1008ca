package coralmg

import "fmt"

// Snapshot is the immutable position representation handed across the
// engine boundary. The search core reconstructs a mutable Board from it,
// works on that copy, and never writes the snapshot back.
type Snapshot struct {
	Pieces     [64]Piece
	SideToMove Color
	WhaleHead  [2]Square

	Coral       [64]uint8
	CoralPlaced [2]int
	CoralSupply [2]int

	HalfmoveClock  int
	FullmoveNumber int

	// Terminal-state flags, precomputed so consumers need not re-derive them.
	InCheck     bool
	Checkmate   bool
	Stalemate   bool
	Draw        bool
	CoralWinner Color
	HasWinner   bool
}

// Snapshot exports the current position, including terminal-state flags.
func (b *Board) Snapshot() *Snapshot {
	s := &Snapshot{
		Pieces:         b.squares,
		SideToMove:     b.sideToMove,
		WhaleHead:      b.whaleHead,
		Coral:          b.coral,
		CoralPlaced:    b.coralPlaced,
		CoralSupply:    b.coralSupply,
		HalfmoveClock:  b.halfmoveClock,
		FullmoveNumber: b.fullmoveNumber,
	}
	s.InCheck = b.InCheck(b.sideToMove)
	switch outcome, winner := b.Status(); outcome {
	case OutcomeCheckmate:
		s.Checkmate = true
		s.CoralWinner = winner
		s.HasWinner = true
	case OutcomeStalemate:
		s.Stalemate = true
	case OutcomeCoralWin:
		s.CoralWinner = winner
		s.HasWinner = true
	case OutcomeDraw:
		s.Draw = true
	}
	return s
}

// FromSnapshot reconstructs a mutable working board from a snapshot,
// validating the parts the search relies on. A nil or inconsistent snapshot
// yields an error; callers degrade to a null-move result rather than panic.
func FromSnapshot(s *Snapshot) (*Board, error) {
	if s == nil {
		return nil, fmt.Errorf("coralmg: nil snapshot")
	}

	b := &Board{
		squares:        s.Pieces,
		sideToMove:     s.SideToMove,
		whaleHead:      s.WhaleHead,
		coral:          s.Coral,
		coralPlaced:    s.CoralPlaced,
		coralSupply:    s.CoralSupply,
		halfmoveClock:  s.HalfmoveClock,
		fullmoveNumber: s.FullmoveNumber,
	}

	if s.SideToMove != White && s.SideToMove != Black {
		return nil, fmt.Errorf("coralmg: bad side to move %d", s.SideToMove)
	}
	for _, c := range []Color{White, Black} {
		head := s.WhaleHead[c]
		if head == NoSquare || head < 0 || head > 62 || head.File() > 6 {
			return nil, fmt.Errorf("coralmg: bad %s whale head %v", c, head)
		}
		want := MakePiece(c, PieceTypeWhale, Hunter)
		if b.squares[head] != want || b.squares[head+1] != want {
			return nil, fmt.Errorf("coralmg: %s whale squares inconsistent with placement", c)
		}
		if s.CoralPlaced[c] < 0 || s.CoralSupply[c] < 0 || s.CoralPlaced[c]+s.CoralSupply[c] > CoralSupply {
			return nil, fmt.Errorf("coralmg: %s coral accounting out of range", c)
		}
	}
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		if p.Type() == PieceTypeNone || p.Type() > PieceTypeWhale {
			return nil, fmt.Errorf("coralmg: bad piece %d on %s", p, sq)
		}
		if p.Type() == PieceTypeWhale && sq != s.WhaleHead[p.Color()] && sq != s.WhaleHead[p.Color()]+1 {
			return nil, fmt.Errorf("coralmg: stray whale square %s", sq)
		}
	}

	b.hash = b.ComputeZobrist()
	return b, nil
}
