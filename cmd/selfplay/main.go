package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
	"github.com/Jbuxofplenty/coral-clash-sub003/engine"
)

func main() {
	gamesFlag := flag.Int("games", 1, "number of games to play")
	depthFlag := flag.Int("depth", 6, "depth ceiling in plies")
	movetimeFlag := flag.Float64("movetime", 500, "time budget per move in ms")
	difficultyFlag := flag.String("difficulty", "medium", "difficulty tier for both sides")
	maxPliesFlag := flag.Int("maxplies", 300, "abort a game after this many plies")
	seedFlag := flag.Int64("seed", 0, "selection seed (0 = time-based)")
	verboseFlag := flag.Bool("verbose", false, "log every move")
	flag.Parse()

	difficulty := engine.ParseDifficulty(*difficultyFlag)

	for g := 0; g < *gamesFlag; g++ {
		gameID := uuid.NewString()
		log.Printf("game %s: %s vs %s, movetime %.0fms", gameID, difficulty, difficulty, *movetimeFlag)

		board, err := cm.ParseFEN(cm.FENStartPos)
		if err != nil {
			log.Fatalf("start position: %v", err)
		}

		// The engine's previous move per side, for the anti-shuffle penalty.
		lastMove := [2]cm.Move{cm.NullMove, cm.NullMove}
		start := time.Now()
		plies := 0

		for ; plies < *maxPliesFlag; plies++ {
			if outcome, _ := board.Status(); outcome != cm.OutcomeNone {
				break
			}

			mover := board.SideToMove()
			res := engine.FindBestMove(board.Snapshot(), engine.SearchParams{
				MaxDepth:    *depthFlag,
				MaxTimeMs:   *movetimeFlag,
				Perspective: mover,
				Difficulty:  difficulty,
				LastOwnMove: lastMove[mover],
				Seed:        *seedFlag,
			})
			if res.Move == cm.NullMove {
				break
			}

			if *verboseFlag {
				log.Printf("game %s ply %d: %s plays %s (score %d, depth %d, %d nodes)",
					gameID, plies+1, mover, res.Move, res.Score, res.Depth, res.Nodes)
			}

			board.Apply(res.Move)
			lastMove[mover] = res.Move
		}

		outcome, winner := board.Status()
		var result string
		switch outcome {
		case cm.OutcomeCheckmate:
			result = fmt.Sprintf("checkmate, %s wins", winner)
		case cm.OutcomeCoralWin:
			result = fmt.Sprintf("coral win for %s (%d placed)", winner, board.CoralPlaced(winner))
		case cm.OutcomeStalemate:
			result = "stalemate"
		case cm.OutcomeDraw:
			result = "draw by halfmove clock"
		default:
			result = "unfinished"
		}
		log.Printf("game %s: %s after %d plies in %v", gameID, result, plies, time.Since(start).Round(time.Millisecond))
		log.Printf("game %s: final position %s", gameID, board.ToFEN())
	}
}
