package engine

import (
	"math"
	"math/rand"
	"time"

	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
)

// Difficulty selects how strong and how varied the engine plays. Tiers trade
// time budget against selection temperature: Easy thinks briefly and samples
// loosely, Hard thinks long and plays almost strictly best.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a tier name to its Difficulty; unknown names get Medium.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// defaultBudgetMs is the per-move wall-clock budget used when the caller
// passes none (or an invalid one).
func (d Difficulty) defaultBudgetMs() float64 {
	switch d {
	case Easy:
		return 800
	case Hard:
		return 4000
	default:
		return 2000
	}
}

// temperature scales the softmax draw over root moves. Higher temperatures
// flatten the distribution toward uniform; lower ones sharpen it toward the
// argmax.
func (d Difficulty) temperature() float64 {
	switch d {
	case Easy:
		return 120
	case Hard:
		return 25
	default:
		return 60
	}
}

// softmaxWindow excludes root moves scoring this far below the best from the
// draw entirely, so even Easy never plays an outright blunder.
var softmaxWindow int32 = 120

// selectRootMove picks the move to play from the final depth's root scores.
// Deterministic mode returns the best move; otherwise a temperature-scaled
// softmax draw over the near-best moves adds variety. Whatever comes out is
// re-validated against the position before being returned.
func selectRootMove(snap *cm.Snapshot, roots []rootMove, best cm.Move, p SearchParams) cm.Move {
	if len(roots) == 0 {
		return cm.NullMove
	}

	chosen := best
	if !p.Deterministic {
		chosen = softmaxSample(roots, p.Difficulty.temperature(), newSelectionRand(p.Seed))
	}

	return validateChoice(snap, chosen)
}

func newSelectionRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// softmaxSample draws one move with probability proportional to
// exp((score - max) / temperature), restricted to moves within
// softmaxWindow of the best score. Shifting by the max keeps every
// exponent at or below zero, so the weights never overflow.
func softmaxSample(roots []rootMove, temperature float64, rng *rand.Rand) cm.Move {
	maxScore := roots[0].score
	for _, rm := range roots[1:] {
		if rm.score > maxScore {
			maxScore = rm.score
		}
	}
	if temperature <= 0 {
		temperature = 1
	}

	weights := make([]float64, 0, len(roots))
	candidates := make([]cm.Move, 0, len(roots))
	total := 0.0
	for _, rm := range roots {
		if maxScore-rm.score > softmaxWindow {
			continue
		}
		w := math.Exp(float64(rm.score-maxScore) / temperature)
		weights = append(weights, w)
		candidates = append(candidates, rm.move)
		total += w
	}
	if len(candidates) == 0 || total <= 0 {
		return roots[0].move
	}

	draw := rng.Float64() * total
	for i, w := range weights {
		draw -= w
		if draw <= 0 {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}

// validateChoice confirms the chosen move is legal in the snapshot's
// position. A stale transposition entry or a corrupted score list can in
// principle surface a move that no longer applies; rather than crash the
// game we fall back to any legal move with the same endpoints, then to the
// first legal move.
func validateChoice(snap *cm.Snapshot, chosen cm.Move) cm.Move {
	board, err := cm.FromSnapshot(snap)
	if err != nil {
		return cm.NullMove
	}
	legal := board.GenerateLegalMoves()
	if len(legal) == 0 {
		return cm.NullMove
	}
	for _, m := range legal {
		if m == chosen {
			return chosen
		}
	}
	for _, m := range legal {
		if m.From() == chosen.From() && m.To() == chosen.To() {
			return m
		}
	}
	return legal[0]
}
