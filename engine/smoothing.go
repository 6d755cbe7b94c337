package engine

import "github.com/jkind-go/director/message"

// Smoothing is an itinerary stage for Invalid messages: it exists to
// shorten a raw counterexample to a more minimal one before the Director
// reports it. The real smoothing algorithm is out of scope; this stand-in
// trims the reported length by a fixed amount (never below 1).
type Smoothing struct {
	base

	shortenBy int
}

// NewSmoothing creates a smoothing engine that shortens routed
// counterexamples by shortenBy steps.
func NewSmoothing(publish Publisher, shortenBy int) *Smoothing {
	return &Smoothing{
		base:      newBase(message.Smoothing, publish),
		shortenBy: shortenBy,
	}
}

func (e *Smoothing) Run() {
	for {
		select {
		case <-e.stop:
			return
		case m := <-e.inbox:
			e.onMessage(m)
		}
	}
}

func (e *Smoothing) onMessage(m message.Message) {
	im, ok := m.(message.Invalid)
	if !ok {
		return
	}
	dest, ok := im.Itinerary.NextDestination()
	if !ok || dest != message.Smoothing {
		return
	}

	length := im.Length - e.shortenBy
	if length < 1 {
		length = 1
	}

	e.publish(message.Invalid{
		Source:     im.Source,
		Properties: im.Properties,
		Length:     length,
		Model:      im.Model,
		Itinerary:  im.Itinerary.Advance(),
	})
}
