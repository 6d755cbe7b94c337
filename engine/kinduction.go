package engine

import (
	"time"

	"github.com/jkind-go/director/message"
)

// KInduction is a minimal stand-in for k-induction: combines a base case and
// an inductive step (elided) into a single delayed proof attempt.
type KInduction struct {
	proofEngine
}

// NewKInduction creates a k-induction engine attempting properties after
// delay, proving those canProve accepts and reporting the rest unknown.
// validItinerary is attached to every Valid message it publishes, per
// Director.java's getValidMessageItinerary().
func NewKInduction(publish Publisher, properties []string, delay time.Duration, canProve CanProve, validItinerary message.Itinerary) *KInduction {
	return &KInduction{proofEngine: newProofEngine(message.KInduction, publish, properties, delay, canProve, validItinerary)}
}

func (e *KInduction) Run() { e.run() }
