package engine

import "github.com/jkind-go/director/message"

// AdviceEngine ingests previously persisted advice and, for any configured
// property the advice already has invariants for, immediately reports it
// valid. The Valid it publishes does not carry the stored invariants. It
// reports once, then stays idle until Stop is called.
type AdviceEngine struct {
	base

	properties     []string
	hasAdvice      func(property string) bool
	validItinerary message.Itinerary
}

// NewAdviceEngine creates an advice engine. hasAdvice reports whether the
// loaded advice already has invariants applicable to property.
// validItinerary is attached to the Valid message it publishes, per
// Director.java's getValidMessageItinerary().
func NewAdviceEngine(publish Publisher, properties []string, hasAdvice func(property string) bool, validItinerary message.Itinerary) *AdviceEngine {
	return &AdviceEngine{
		base:           newBase(message.Advice, publish),
		properties:     properties,
		hasAdvice:      hasAdvice,
		validItinerary: validItinerary,
	}
}

func (e *AdviceEngine) Run() {
	var settled []string
	for _, p := range e.properties {
		if e.hasAdvice(p) {
			settled = append(settled, p)
		}
	}
	if len(settled) > 0 {
		e.publish(message.Valid{
			Source:     message.Advice,
			Properties: settled,
			K:          0,
			Itinerary:  e.validItinerary,
		})
	}

	<-e.stop
}
