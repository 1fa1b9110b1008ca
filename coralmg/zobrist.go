package coralmg

import "math/rand"

// Zobrist hashing tables for pieces (full encoding: type, color, role),
// coral ownership per square, and side to move. Keys are drawn once at
// process start and never persisted; hashes are only valid within one run.
var zobristPiece [32][64]uint64
var zobristCoral [2][64]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed for reproducibility in tests
	rnd := rand.New(rand.NewSource(0x5EAF00D))

	for p := 0; p < 32; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for owner := 0; owner < 2; owner++ {
		for sq := 0; sq < 64; sq++ {
			zobristCoral[owner][sq] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the zobrist key for the current board state from
// scratch. Apply/Unapply maintain the same key incrementally; this is the
// reference used after position setup and in tests.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64

	for sq := 0; sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
		switch b.coral[sq] {
		case coralWhite:
			key ^= zobristCoral[White][sq]
		case coralBlack:
			key ^= zobristCoral[Black][sq]
		}
	}

	if b.sideToMove == Black {
		key ^= zobristSide
	}

	return key
}
