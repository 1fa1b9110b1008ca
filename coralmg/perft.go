package coralmg

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Used to validate the move generator against hand-counted positions.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		st := b.Apply(m)
		nodes += Perft(b, depth-1)
		b.Unapply(m, st)
	}
	return nodes
}

// PerftDivide returns the per-root-move leaf counts at the given depth.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range b.GenerateLegalMoves() {
		st := b.Apply(m)
		div[m] = Perft(b, depth-1)
		b.Unapply(m, st)
	}
	return div
}
