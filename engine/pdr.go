package engine

import (
	"time"

	"github.com/jkind-go/director/message"
)

// PDR is a minimal stand-in for property-directed reachability: a single
// delayed proof attempt in place of incremental frame strengthening.
type PDR struct {
	proofEngine
}

// NewPDR creates a PDR engine attempting properties after delay.
// validItinerary is attached to every Valid message it publishes, per
// Director.java's getValidMessageItinerary().
func NewPDR(publish Publisher, properties []string, delay time.Duration, canProve CanProve, validItinerary message.Itinerary) *PDR {
	return &PDR{proofEngine: newProofEngine(message.PDR, publish, properties, delay, canProve, validItinerary)}
}

func (e *PDR) Run() { e.run() }
