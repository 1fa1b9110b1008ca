package coralmg

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestParseFENStartPos(t *testing.T) {
	b := mustParse(t, FENStartPos)

	if b.SideToMove() != White {
		t.Fatalf("side to move = %v, want white", b.SideToMove())
	}
	if b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 {
		t.Fatalf("clocks = %d %d, want 0 1", b.HalfmoveClock(), b.FullmoveNumber())
	}

	checks := []struct {
		sq    string
		color Color
		pt    PieceType
		role  Role
	}{
		{"a1", White, PieceTypePufferfish, Hunter},
		{"b1", White, PieceTypeTurtle, Hunter},
		{"d1", White, PieceTypeWhale, Hunter},
		{"e1", White, PieceTypeWhale, Hunter},
		{"b2", White, PieceTypeOctopus, Gatherer},
		{"d2", White, PieceTypeDolphin, Hunter},
		{"a7", Black, PieceTypeCrab, Hunter},
		{"b7", Black, PieceTypeOctopus, Gatherer},
		{"d8", Black, PieceTypeWhale, Hunter},
		{"e8", Black, PieceTypeWhale, Hunter},
		{"h8", Black, PieceTypePufferfish, Hunter},
	}
	for _, c := range checks {
		sq, _ := ParseSquare(c.sq)
		p := b.PieceAt(sq)
		if p.Color() != c.color || p.Type() != c.pt || p.Role() != c.role {
			t.Errorf("%s: got color=%v type=%d role=%d, want color=%v type=%d role=%d",
				c.sq, p.Color(), p.Type(), p.Role(), c.color, c.pt, c.role)
		}
	}

	if head := b.WhaleHead(White); head.String() != "d1" {
		t.Errorf("white whale head = %s, want d1", head)
	}
	if head := b.WhaleHead(Black); head.String() != "d8" {
		t.Errorf("black whale head = %s, want d8", head)
	}
	if b.CoralRemaining(White) != CoralSupply || b.CoralRemaining(Black) != CoralSupply {
		t.Errorf("coral supply = %d %d, want %d each",
			b.CoralRemaining(White), b.CoralRemaining(Black), CoralSupply)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		"ftth1ttf/coc2coc/3oo3/4c3/4D3/3OO3/COCD1COC/FTTH1TTF b - - 0 1",
		"3h4/8/8/4c3/4D3/8/8/3H4 w - - 0 1",
		"3h4/8/8/8/2T~5/8/8/3H4 b c4,d5 e6 3 12",
		"h1C~5/C~C~C~5/8/8/8/8/8/H7 b - - 0 1",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip changed fen:\n in:  %s\n out: %s", fen, got)
		}
	}
}

func TestFENRoundTripPreservesHash(t *testing.T) {
	b := mustParse(t, FENStartPos)
	b2 := mustParse(t, b.ToFEN())
	if b.Hash() != b2.Hash() {
		t.Fatalf("hash changed across round trip: %x vs %x", b.Hash(), b2.Hash())
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w - -"},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflow", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"unknown letter", "x7/8/8/8/8/8/8/H6h w - - 0 1"},
		{"missing whale", "8/8/8/8/8/8/8/H7 w - - 0 1"},
		{"whale on file h", "7h/8/8/8/8/8/8/H7 w - - 0 1"},
		{"whale gatherer", "h~6/8/8/8/8/8/8/H7 w - - 0 1"},
		{"dangling role mark", "~h6/8/8/8/8/8/8/H7 w - - 0 1"},
		{"bad side", "h7/8/8/8/8/8/8/H7 x - - 0 1"},
		{"bad coral square", "h7/8/8/8/8/8/8/H7 w z9 - 0 1"},
		{"coral over supply", "h7/8/8/8/8/8/8/H7 w a3,b3,c3,d3,e3,f3,g3,h3,a4,b4,c4 - 0 1"},
		{"duplicate coral", "h7/8/8/8/8/8/8/H7 w a3,a3 - 0 1"},
		{"bad halfmove", "h7/8/8/8/8/8/8/H7 w - - x 1"},
		{"bad fullmove", "h7/8/8/8/8/8/8/H7 w - - 0 0"},
	}
	for _, tc := range bad {
		if _, err := ParseFEN(tc.fen); err == nil {
			t.Errorf("%s: ParseFEN(%q) succeeded, want error", tc.name, tc.fen)
		}
	}
}

func TestToFENCoralLists(t *testing.T) {
	b := mustParse(t, "3h4/8/8/8/8/8/8/3H4 w b3,c4 f5 0 1")
	fen := b.ToFEN()
	if !strings.Contains(fen, " b3,c4 ") || !strings.Contains(fen, " f5 ") {
		t.Fatalf("coral lists missing from %q", fen)
	}
	if got := b.CoralPlaced(White); got != 2 {
		t.Errorf("white coral placed = %d, want 2", got)
	}
	if got := b.CoralRemaining(Black); got != CoralSupply-1 {
		t.Errorf("black coral remaining = %d, want %d", got, CoralSupply-1)
	}
}
