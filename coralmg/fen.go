package coralmg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard Coral Clash starting position. The whale's
// letter marks its head square; the tail square immediately east of it is
// written as part of an empty run. A trailing '~' marks a gatherer.
const FENStartPos = "ftth1ttf/co~cddco~c/8/8/8/8/CO~CDDCO~C/FTTH1TTF w - - 0 1"

func typeLetter(pt PieceType) byte {
	switch pt {
	case PieceTypeCrab:
		return 'c'
	case PieceTypeOctopus:
		return 'o'
	case PieceTypeTurtle:
		return 't'
	case PieceTypePufferfish:
		return 'f'
	case PieceTypeDolphin:
		return 'd'
	case PieceTypeWhale:
		return 'h'
	}
	return '?'
}

func typeFromLetter(ch byte) PieceType {
	switch ch {
	case 'c':
		return PieceTypeCrab
	case 'o':
		return PieceTypeOctopus
	case 't':
		return PieceTypeTurtle
	case 'f':
		return PieceTypePufferfish
	case 'd':
		return PieceTypeDolphin
	case 'h':
		return PieceTypeWhale
	}
	return PieceTypeNone
}

// ParseFEN builds a board from the six-field Coral Clash FEN:
// placement, side to move, white coral squares, black coral squares,
// halfmove clock, fullmove number.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 6 {
		return nil, fmt.Errorf("coralmg: fen needs 6 fields, got %d", len(fields))
	}

	b := &Board{}
	b.whaleHead[White] = NoSquare
	b.whaleHead[Black] = NoSquare
	b.coralSupply[White] = CoralSupply
	b.coralSupply[Black] = CoralSupply

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("coralmg: placement needs 8 ranks, got %d", len(ranks))
	}

	for r := 0; r < 8; r++ {
		rank := 7 - r
		file := 0
		lastPlaced := NoSquare
		for i := 0; i < len(ranks[r]); i++ {
			ch := ranks[r][i]
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
				lastPlaced = NoSquare
			case ch == '~':
				if lastPlaced == NoSquare {
					return nil, fmt.Errorf("coralmg: dangling role mark in rank %q", ranks[r])
				}
				p := b.squares[lastPlaced]
				if p.Type() == PieceTypeWhale {
					return nil, fmt.Errorf("coralmg: whale cannot be a gatherer")
				}
				b.squares[lastPlaced] = MakePiece(p.Color(), p.Type(), Gatherer)
			default:
				lower := ch | 0x20
				pt := typeFromLetter(lower)
				if pt == PieceTypeNone {
					return nil, fmt.Errorf("coralmg: unknown piece letter %q", ch)
				}
				if file > 7 {
					return nil, fmt.Errorf("coralmg: rank %q overflows the board", ranks[r])
				}
				color := White
				if ch == lower {
					color = Black
				}
				sq := Square(rank*8 + file)
				if b.squares[sq] != NoPiece {
					return nil, fmt.Errorf("coralmg: square %s written twice", sq)
				}
				piece := MakePiece(color, pt, Hunter)
				if pt == PieceTypeWhale {
					if file > 6 {
						return nil, fmt.Errorf("coralmg: whale head on file h has no room for its tail")
					}
					if b.whaleHead[color] != NoSquare {
						return nil, fmt.Errorf("coralmg: duplicate %s whale", color)
					}
					if b.squares[sq+1] != NoPiece {
						return nil, fmt.Errorf("coralmg: whale tail square %s occupied", sq+1)
					}
					b.squares[sq] = piece
					b.squares[sq+1] = piece
					b.whaleHead[color] = sq
				} else {
					b.squares[sq] = piece
				}
				lastPlaced = sq
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("coralmg: rank %q covers %d files", ranks[r], file)
		}
	}

	if b.whaleHead[White] == NoSquare || b.whaleHead[Black] == NoSquare {
		return nil, fmt.Errorf("coralmg: both whales must be on the board")
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("coralmg: bad side to move %q", fields[1])
	}

	for i, c := range []Color{White, Black} {
		if fields[2+i] == "-" {
			continue
		}
		for _, name := range strings.Split(fields[2+i], ",") {
			sq, ok := ParseSquare(name)
			if !ok {
				return nil, fmt.Errorf("coralmg: bad coral square %q", name)
			}
			if b.coral[sq] != coralNone {
				return nil, fmt.Errorf("coralmg: coral listed twice on %s", sq)
			}
			b.coral[sq] = coralMark(c)
			b.coralPlaced[c]++
			b.coralSupply[c]--
		}
		if b.coralSupply[c] < 0 {
			return nil, fmt.Errorf("coralmg: %s coral exceeds supply", c)
		}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("coralmg: bad halfmove clock %q", fields[4])
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("coralmg: bad fullmove number %q", fields[5])
	}
	b.halfmoveClock = halfmove
	b.fullmoveNumber = fullmove

	b.hash = b.ComputeZobrist()
	return b, nil
}

// ToFEN renders the position back into the six-field FEN form.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := b.squares[sq]
			isWhaleTail := p.Type() == PieceTypeWhale && sq == b.whaleHead[p.Color()]+1
			if p == NoPiece || isWhaleTail {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			letter := typeLetter(p.Type())
			if p.Color() == White {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
			if p.Role() == Gatherer {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}

	for _, c := range []Color{White, Black} {
		names := make([]string, 0, b.coralPlaced[c])
		for sq := Square(0); sq < 64; sq++ {
			if b.coral[sq] == coralMark(c) {
				names = append(names, sq.String())
			}
		}
		if len(names) == 0 {
			sb.WriteString(" -")
		} else {
			sb.WriteString(" " + strings.Join(names, ","))
		}
	}

	sb.WriteString(fmt.Sprintf(" %d %d", b.halfmoveClock, b.fullmoveNumber))
	return sb.String()
}
