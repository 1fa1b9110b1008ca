package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
	"github.com/Jbuxofplenty/coral-clash-sub003/engine"
)

func main() {
	fenFlag := flag.String("fen", cm.FENStartPos, "position to search (FEN)")
	depthFlag := flag.Int("depth", 0, "depth ceiling in plies (0 = unlimited)")
	movetimeFlag := flag.Float64("movetime", 0, "time budget in ms (0 = tier default)")
	difficultyFlag := flag.String("difficulty", "hard", "difficulty tier: easy, medium, hard")
	seedFlag := flag.Int64("seed", 0, "selection seed (0 = time-based)")
	deterministicFlag := flag.Bool("deterministic", false, "always play the best move")
	flag.Parse()

	board, err := cm.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}
	snap := board.Snapshot()

	res := engine.FindBestMove(snap, engine.SearchParams{
		MaxDepth:      *depthFlag,
		MaxTimeMs:     *movetimeFlag,
		Perspective:   snap.SideToMove,
		Difficulty:    engine.ParseDifficulty(*difficultyFlag),
		Seed:          *seedFlag,
		Deterministic: *deterministicFlag,
		Progress: func(depth int, score int32, move cm.Move, nodes uint64, elapsed time.Duration) {
			fmt.Printf("info depth %d score %d nodes %d time %d pv %s\n",
				depth, score, nodes, elapsed.Milliseconds(), move)
		},
	})

	fmt.Printf("bestmove %s\n", res.Move)
}
