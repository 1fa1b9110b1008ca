package coralmg

// Piece constants and types for pieces, roles and colors
type Piece uint8

// Piece encoding: bits 0-2 piece type, bit 3 color, bit 4 role
// so that
// - piece & 7 gives the type in [1..6]
// - piece & 8 != 0 indicates Black
// - piece & 16 != 0 indicates Gatherer
const (
	NoPiece Piece = 0

	pieceColorBit Piece = 8
	pieceRoleBit  Piece = 16
)

// PieceType is a colorless, roleless representation of a piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone       PieceType = 0
	PieceTypeCrab       PieceType = 1
	PieceTypeOctopus    PieceType = 2
	PieceTypeTurtle     PieceType = 3
	PieceTypePufferfish PieceType = 4
	PieceTypeDolphin    PieceType = 5
	PieceTypeWhale      PieceType = 6
)

// Role distinguishes hunters (they capture and defend) from gatherers
// (they place coral and attack nothing).
type Role uint8

const (
	Hunter   Role = 0
	Gatherer Role = 1
)

// Type returns the colorless type of the piece (ignores side and role).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&pieceColorBit != 0 {
		return Black
	}
	return White
}

// Role returns the role of the piece. The whale is always a Hunter.
func (p Piece) Role() Role {
	if p&pieceRoleBit != 0 {
		return Gatherer
	}
	return Hunter
}

// MakePiece combines a side, a colorless type and a role into a concrete Piece.
func MakePiece(color Color, pt PieceType, role Role) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= pieceColorBit
	}
	if role == Gatherer && pt != PieceTypeWhale {
		p |= pieceRoleBit
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// File returns the square's file in [0..7] (a = 0).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the square's rank in [0..7] (rank 1 = 0).
func (s Square) Rank() int { return int(s) >> 3 }

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts an algebraic square name ("e4") into a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return NoSquare, false
	}
	return Square(int(name[0]-'a') + 8*int(name[1]-'1')), true
}

// Coral placement rules: each side starts with a fixed supply and wins
// outright once CoralWinCount pieces of coral are on the board.
const (
	CoralSupply   = 10
	CoralWinCount = 8
)

const halfmoveDrawLimit = 100

// coralNone / coral owner markers for the per-square coral array.
const (
	coralNone  uint8 = 0
	coralWhite uint8 = 1
	coralBlack uint8 = 2
)

func coralMark(c Color) uint8 {
	if c == White {
		return coralWhite
	}
	return coralBlack
}

// Board is the mutable working position. One Board is owned by exactly one
// search invocation; it is mutated in place via Apply/Unapply pairs.
type Board struct {
	squares    [64]Piece
	sideToMove Color

	// Head square of each side's whale; the tail is always head+1 (one file
	// east). NoSquare if the whale is absent (invalid positions only).
	whaleHead [2]Square

	coral       [64]uint8
	coralPlaced [2]int
	coralSupply [2]int

	halfmoveClock  int
	fullmoveNumber int

	hash uint64
}

// PieceAt returns the piece occupying sq (the whale occupies two squares).
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color { return b.sideToMove }

// WhaleHead returns the head square of the given side's whale.
func (b *Board) WhaleHead(c Color) Square { return b.whaleHead[c] }

// WhaleTail returns the tail square of the given side's whale.
func (b *Board) WhaleTail(c Color) Square {
	if b.whaleHead[c] == NoSquare {
		return NoSquare
	}
	return b.whaleHead[c] + 1
}

// CoralAt reports whether sq carries coral and which side placed it.
func (b *Board) CoralAt(sq Square) (Color, bool) {
	switch b.coral[sq] {
	case coralWhite:
		return White, true
	case coralBlack:
		return Black, true
	}
	return White, false
}

// CoralPlaced returns how many coral the given side has on the board.
func (b *Board) CoralPlaced(c Color) int { return b.coralPlaced[c] }

// CoralRemaining returns the given side's unplaced coral supply.
func (b *Board) CoralRemaining(c Color) int { return b.coralSupply[c] }

// HalfmoveClock returns the number of halfmoves since the last capture,
// promotion or coral placement.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current move number, starting at 1.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the incrementally maintained zobrist key of the position.
func (b *Board) Hash() uint64 { return b.hash }

// CoralWinner reports whether either side has already won on coral.
func (b *Board) CoralWinner() (Color, bool) {
	if b.coralPlaced[White] >= CoralWinCount {
		return White, true
	}
	if b.coralPlaced[Black] >= CoralWinCount {
		return Black, true
	}
	return White, false
}

// IsDrawByClock reports whether the halfmove clock has run out.
func (b *Board) IsDrawByClock() bool { return b.halfmoveClock >= halfmoveDrawLimit }

// lastRank is the promotion rank index for each side.
func lastRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// stepSquare returns the square reached from sq by (df, dr) files/ranks,
// reporting whether it stays on the board.
func stepSquare(sq Square, df, dr int) (Square, bool) {
	f := sq.File() + df
	r := sq.Rank() + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return Square(r*8 + f), true
}
