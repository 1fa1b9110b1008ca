package coralmg

// Move encodes one candidate move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 5 bits (full piece encoding: type, color, role)
	moveCaptureShift = 17 // 5 bits
	movePromoteShift = 22 // 3 bits (colorless piece type)
	moveFlagShift    = 25 // 2 bits
)

// Move flags: coral side effects. The affected squares are implied -
// coral is placed on the origin square and removed from the destination.
const (
	FlagCoralPlace  uint8 = 1
	FlagCoralRemove uint8 = 2
)

// NullMove is the zero value, used wherever "no move" is meant.
const NullMove Move = 0

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece, captured Piece, promotion PieceType, flags uint8) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0x1F) << movePieceShift) |
		(uint32(captured&0x1F) << moveCaptureShift) |
		(uint32(promotion&0x7) << movePromoteShift) |
		(uint32(flags&0x3) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move (the whale's head for whale moves).
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the full piece encoding that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0x1F) }

// CapturedPiece returns the piece that was captured (or NoPiece if none).
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0x1F) }

// PromotionType returns the colorless type the mover promotes to
// (or PieceTypeNone if not a promotion).
func (m Move) PromotionType() PieceType {
	return PieceType((uint32(m) >> movePromoteShift) & 0x7)
}

// Flags returns the coral side-effect flags.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x3) }

// IsCapture reports whether the move captures an opposing piece.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// PlacesCoral reports whether the move drops coral on its origin square.
func (m Move) PlacesCoral() bool { return m.Flags()&FlagCoralPlace != 0 }

// RemovesCoral reports whether the move clears enemy coral from its destination.
func (m Move) RemovesCoral() bool { return m.Flags()&FlagCoralRemove != 0 }

// SecondFrom returns the second origin square for two-square pieces
// (the whale's tail), or NoSquare for ordinary pieces.
func (m Move) SecondFrom() Square {
	if m.MovedPiece().Type() != PieceTypeWhale {
		return NoSquare
	}
	return m.From() + 1
}

// SecondTo returns the second destination square for two-square pieces,
// or NoSquare for ordinary pieces.
func (m Move) SecondTo() Square {
	if m.MovedPiece().Type() != PieceTypeWhale {
		return NoSquare
	}
	return m.To() + 1
}

// String produces a simple string representation of the move (e.g. "e2e4",
// promotions append the promoted piece's letter: "a7a8d").
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if pt := m.PromotionType(); pt != PieceTypeNone {
		str += string(typeLetter(pt))
	}
	return str
}
