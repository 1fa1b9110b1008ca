package engine

import (
	"math"
	"testing"
	"time"

	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
)

const freeCaptureFEN = "ftth1ttf/coc2coc/3oo3/4c3/4D3/3OO3/COCD1COC/FTTH1TTF b - - 0 1"

func TestFindsFreeCapture(t *testing.T) {
	// Black's crab on e5 takes the undefended white dolphin on e4.
	snap := snapshotFromFEN(t, freeCaptureFEN)
	res := FindBestMove(snap, SearchParams{
		MaxDepth:      4,
		MaxTimeMs:     30000,
		Perspective:   cm.Black,
		Deterministic: true,
	})
	if got := res.Move.String(); got != "e5e4" {
		t.Fatalf("best move = %s (score %d, depth %d), want e5e4", got, res.Score, res.Depth)
	}
	if res.Score < PieceValue[cm.PieceTypeDolphin][cm.Hunter]/2 {
		t.Errorf("free dolphin scored only %d", res.Score)
	}
	if res.Nodes == 0 || res.Depth < 2 {
		t.Errorf("nodes = %d, depth = %d", res.Nodes, res.Depth)
	}
}

func TestRetreatsHangingPiece(t *testing.T) {
	// The white dolphin on e4 hangs to the black crab on e5. It must move,
	// and not to d5 or f5, which the crab also attacks.
	snap := snapshotFromFEN(t, "3h4/8/8/4c3/4D3/8/8/3H4 w - - 0 1")
	res := FindBestMove(snap, SearchParams{
		MaxDepth:      3,
		MaxTimeMs:     30000,
		Perspective:   cm.White,
		Deterministic: true,
	})
	if res.Move.From().String() != "e4" {
		t.Fatalf("best move = %s, want the dolphin to move", res.Move)
	}
	if to := res.Move.To().String(); to == "d5" || to == "f5" {
		t.Fatalf("dolphin retreated into the crab's attack: %s", res.Move)
	}
}

func TestOscillationPenaltyAppliedAtRoot(t *testing.T) {
	board := boardFromFEN(t, "3h4/8/8/8/8/4T3/8/3H4 w - - 0 1")
	e3, _ := cm.ParseSquare("e3")
	e4, _ := cm.ParseSquare("e4")
	turtle := cm.MakePiece(cm.White, cm.PieceTypeTurtle, cm.Hunter)
	lastOwn := cm.NewMove(e4, e3, turtle, cm.NoPiece, cm.PieceTypeNone, 0)

	reversalScore := func(last cm.Move) int32 {
		s := &searcher{board: board, tc: newTimeControl(time.Minute)}
		_, _, roots, timedOut := s.rootSearch(2, -MaxScore, MaxScore, last)
		if timedOut {
			t.Fatal("root search timed out")
		}
		for _, rm := range roots {
			if rm.move.From() == e3 && rm.move.To() == e4 {
				return rm.score
			}
		}
		t.Fatal("reversal move e3e4 not in root list")
		return 0
	}

	plain := reversalScore(cm.NullMove)
	penalized := reversalScore(lastOwn)
	if penalized != plain-oscillationPenalty {
		t.Fatalf("penalized score = %d, want %d - %d", penalized, plain, oscillationPenalty)
	}
}

func TestRootScoresAreExact(t *testing.T) {
	// The selection policy consumes every root move's score, so each one
	// must equal an independent full-window search of the child position,
	// never a bound left over from window narrowing.
	board := boardFromFEN(t, freeCaptureFEN)
	s := &searcher{board: board, tc: newTimeControl(time.Minute)}
	bestScore, _, roots, timedOut := s.rootSearch(2, -MaxScore, MaxScore, cm.NullMove)
	if timedOut || len(roots) == 0 {
		t.Fatal("root search did not complete")
	}

	for _, rm := range roots {
		st := board.Apply(rm.move)
		check := &searcher{board: board, tc: newTimeControl(time.Minute)}
		want := -check.alphabeta(1, 1, -MaxScore, MaxScore)
		board.Unapply(rm.move, st)
		if rm.score != want {
			t.Errorf("root move %s scored %d, independent search says %d", rm.move, rm.score, want)
		}
	}

	// A narrowed aspiration window must not change the recorded scores.
	s2 := &searcher{board: board, tc: newTimeControl(time.Minute)}
	_, _, narrow, timedOut := s2.rootSearch(2,
		bestScore-aspirationWindowSize, bestScore+aspirationWindowSize, cm.NullMove)
	if timedOut || len(narrow) != len(roots) {
		t.Fatalf("narrow-window root search returned %d moves, want %d", len(narrow), len(roots))
	}
	for i := range roots {
		if narrow[i] != roots[i] {
			t.Errorf("move %s: narrow-window score %d, full-window score %d",
				roots[i].move, narrow[i].score, roots[i].score)
		}
	}
}

func TestRootStoreIgnoresOscillationPenalty(t *testing.T) {
	// The white turtle's best move retakes the coral square e7 it just left;
	// the shuffle penalty must lower its root score but never the cached one.
	const fen = "3h4/8/4T3/8/8/8/8/3H4 w - e7 0 1"
	e6, _ := cm.ParseSquare("e6")
	e7, _ := cm.ParseSquare("e7")
	turtle := cm.MakePiece(cm.White, cm.PieceTypeTurtle, cm.Hunter)
	lastOwn := cm.NewMove(e7, e6, turtle, cm.NoPiece, cm.PieceTypeNone, 0)

	storedScore := func(last cm.Move) int32 {
		board := boardFromFEN(t, fen)
		s := &searcher{board: board, tt: newTransTable(0), tc: newTimeControl(time.Minute)}
		hash := board.Hash()
		_, _, roots, timedOut := s.rootSearch(2, -MaxScore, MaxScore, last)
		if timedOut || len(roots) == 0 {
			t.Fatal("root search did not complete")
		}
		entry, ok := s.tt.probe(hash)
		if !ok {
			t.Fatal("root position not cached")
		}
		return entry.Score
	}

	plain := storedScore(cm.NullMove)
	penalized := storedScore(lastOwn)
	if penalized != plain {
		t.Fatalf("penalty leaked into the cached root score: %d, want %d", penalized, plain)
	}
}

func TestTranspositionTableDoesNotChangeBestMove(t *testing.T) {
	snap := snapshotFromFEN(t, freeCaptureFEN)
	base := SearchParams{
		MaxDepth:      3,
		MaxTimeMs:     30000,
		Perspective:   cm.Black,
		Deterministic: true,
	}

	withTT := FindBestMove(snap, base)
	noTT := base
	noTT.DisableTT = true
	withoutTT := FindBestMove(snap, noTT)

	if withTT.Move != withoutTT.Move {
		t.Fatalf("best move differs: %s with table, %s without", withTT.Move, withoutTT.Move)
	}
}

func TestInvalidBudgetsStillReturnMove(t *testing.T) {
	snap := snapshotFromFEN(t, cm.FENStartPos)
	for _, ms := range []float64{math.NaN(), 0, -5, math.Inf(1)} {
		res := FindBestMove(snap, SearchParams{
			MaxDepth:      2,
			MaxTimeMs:     ms,
			Difficulty:    Easy,
			Deterministic: true,
		})
		if res.Move == cm.NullMove {
			t.Errorf("budget %v returned a null move", ms)
		}
	}
}

func TestNodesGrowWithDepth(t *testing.T) {
	snap := snapshotFromFEN(t, cm.FENStartPos)
	var prev uint64
	for depth := 1; depth <= 3; depth++ {
		res := FindBestMove(snap, SearchParams{
			MaxDepth:      depth,
			MaxTimeMs:     30000,
			Deterministic: true,
			DisableTT:     true,
		})
		if res.Nodes < prev {
			t.Fatalf("depth %d searched %d nodes, shallower search took %d", depth, res.Nodes, prev)
		}
		prev = res.Nodes
	}
}

func TestNoLegalMovesReturnsNull(t *testing.T) {
	// Stalemate: black's lone whale is boxed in by gatherers.
	snap := snapshotFromFEN(t, "h1C~5/C~C~C~5/8/8/8/8/8/H7 b - - 0 1")
	res := FindBestMove(snap, SearchParams{MaxDepth: 3, MaxTimeMs: 1000, Perspective: cm.Black})
	if res.Move != cm.NullMove || res.Score != 0 {
		t.Fatalf("result = %s score %d, want null move, zero score", res.Move, res.Score)
	}

	// Checkmate: no legal moves either.
	snap = snapshotFromFEN(t, "h7/8/8/8/8/8/8/FF4H1 b - - 0 1")
	res = FindBestMove(snap, SearchParams{MaxDepth: 3, MaxTimeMs: 1000, Perspective: cm.Black})
	if res.Move != cm.NullMove {
		t.Fatalf("mated side moved: %s", res.Move)
	}
}

func TestNilSnapshotDegradesToNull(t *testing.T) {
	res := FindBestMove(nil, SearchParams{MaxDepth: 2, MaxTimeMs: 100})
	if res.Move != cm.NullMove {
		t.Fatalf("nil snapshot returned %s", res.Move)
	}
}

func TestCorruptSnapshotDegradesToNull(t *testing.T) {
	snap := snapshotFromFEN(t, cm.FENStartPos)
	snap.Pieces[snap.WhaleHead[cm.White]] = cm.NoPiece
	res := FindBestMove(snap, SearchParams{MaxDepth: 2, MaxTimeMs: 100})
	if res.Move != cm.NullMove {
		t.Fatalf("corrupt snapshot returned %s", res.Move)
	}
}

func TestProgressReportsEveryDepth(t *testing.T) {
	snap := snapshotFromFEN(t, cm.FENStartPos)
	var depths []int
	FindBestMove(snap, SearchParams{
		MaxDepth:      3,
		MaxTimeMs:     30000,
		Deterministic: true,
		Progress: func(depth int, score int32, move cm.Move, nodes uint64, elapsed time.Duration) {
			depths = append(depths, depth)
			if move == cm.NullMove {
				t.Errorf("depth %d reported a null move", depth)
			}
		},
	})
	if len(depths) != 3 {
		t.Fatalf("progress depths = %v, want 1 2 3", depths)
	}
	for i, d := range depths {
		if d != i+1 {
			t.Fatalf("progress depths = %v, want 1 2 3", depths)
		}
	}
}

func TestMatedPositionScores(t *testing.T) {
	// Black is mated by the pufferfish pair; searching from black's side
	// must return the mate score at the root's ply.
	snap := snapshotFromFEN(t, "h7/8/8/8/8/8/8/FF4H1 b - - 0 1")
	board, err := cm.FromSnapshot(snap)
	if err != nil {
		t.Fatal(err)
	}
	s := &searcher{board: board, tc: newTimeControl(time.Minute)}
	score := s.alphabeta(2, 0, -MaxScore, MaxScore)
	if score != -MaxScore {
		t.Fatalf("mated side score = %d, want %d", score, -MaxScore)
	}
}

func TestQuiescenceStandPatBounds(t *testing.T) {
	board := boardFromFEN(t, "3h4/8/8/4c3/4D3/8/8/3H4 w - - 0 1")
	s := &searcher{board: board, tc: newTimeControl(time.Minute)}

	// With no captures for white, quiescence returns the clamped stand-pat.
	standPat := Evaluation(board, cm.White)
	if got := s.quiescence(-MaxScore, MaxScore, quiescenceMaxPly); got != standPat {
		t.Fatalf("quiescence = %d, want stand-pat %d", got, standPat)
	}
	// Fail-hard: a stand-pat at or above beta returns beta itself.
	if got := s.quiescence(standPat-100, standPat-50, quiescenceMaxPly); got != standPat-50 {
		t.Fatalf("quiescence above beta = %d, want beta %d", got, standPat-50)
	}
	// Exhausted ply budget returns the stand-pat without searching captures.
	if got := s.quiescence(-MaxScore, MaxScore, 0); got != standPat {
		t.Fatalf("quiescence at ply limit = %d, want %d", got, standPat)
	}
}

func TestOpeningSearchReachesDepth(t *testing.T) {
	if testing.Short() {
		t.Skip("timed opening search")
	}
	snap := snapshotFromFEN(t, cm.FENStartPos)
	res := FindBestMove(snap, SearchParams{
		MaxDepth:      20,
		MaxTimeMs:     30000,
		Difficulty:    Hard,
		Deterministic: true,
	})
	if res.Move == cm.NullMove {
		t.Fatal("opening search returned a null move")
	}
	if res.Depth < 4 {
		t.Fatalf("opening search reached only depth %d", res.Depth)
	}
}
