package engine

import (
	"math"
	"time"
)

// TimeControl is the shared wall-clock budget of one search invocation:
// a start timestamp plus a maximum duration. It is armed once by the
// iterative-deepening driver and only ever read afterwards.
type TimeControl struct {
	start  time.Time
	budget time.Duration
}

func newTimeControl(budget time.Duration) TimeControl {
	return TimeControl{start: time.Now(), budget: budget}
}

// Expired reports whether the budget has run out.
func (tc *TimeControl) Expired() bool {
	return time.Since(tc.start) >= tc.budget
}

// Elapsed returns the wall-clock time spent so far.
func (tc *TimeControl) Elapsed() time.Duration {
	return time.Since(tc.start)
}

// sanitizeBudget turns an untrusted per-move budget (milliseconds) into a
// usable duration. NaN, non-positive and infinite budgets silently fall back
// to the difficulty tier's default: this sits on a hot path where rejecting
// the call would forfeit the mover's whole turn.
func sanitizeBudget(maxTimeMs float64, d Difficulty) time.Duration {
	if math.IsNaN(maxTimeMs) || math.IsInf(maxTimeMs, 0) || maxTimeMs <= 0 {
		maxTimeMs = d.defaultBudgetMs()
	}
	return time.Duration(maxTimeMs * float64(time.Millisecond))
}
