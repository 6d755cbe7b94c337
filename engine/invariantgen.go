package engine

import (
	"fmt"
	"time"

	"github.com/jkind-go/director/message"
)

// InvariantGeneration is a minimal stand-in for graph-based invariant
// generation: it periodically broadcasts a batch of generated candidate
// invariants for other engines to strengthen their proofs with.
type InvariantGeneration struct {
	base

	interval time.Duration
	rounds   int
	maxRound int
}

// NewInvariantGeneration creates an invariant-generation engine that emits
// one Invariant message per interval, for up to maxRounds rounds (0 means
// unbounded, stopped only by Stop).
func NewInvariantGeneration(publish Publisher, interval time.Duration, maxRounds int) *InvariantGeneration {
	return &InvariantGeneration{
		base:     newBase(message.InvariantGeneration, publish),
		interval: interval,
		maxRound: maxRounds,
	}
}

func (e *InvariantGeneration) Run() {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case <-e.inbox:
			// Invariants learned by other engines are not folded back into
			// generation in this stand-in; the real engine would use them to
			// prune its search.
		case <-ticker.C:
			e.rounds++
			e.publish(message.Invariant{
				Invariants: []string{fmt.Sprintf("invgen-round-%d", e.rounds)},
			})
			if e.maxRound > 0 && e.rounds >= e.maxRound {
				return
			}
		}
	}
}
