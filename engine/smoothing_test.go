package engine

import (
	"testing"
	"time"

	"github.com/jkind-go/director/message"
)

func TestSmoothingShortensRoutedCounterexample(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewSmoothing(func(m message.Message) { out <- m }, 2)

	go e.Run()
	defer e.Stop()

	e.HandleMessage(message.Invalid{
		Source:     message.BMC,
		Properties: []string{"p1"},
		Length:     5,
		Itinerary:  message.NewItinerary(message.Smoothing),
	})

	m := drain(t, out, time.Second)
	im, ok := m.(message.Invalid)
	if !ok {
		t.Fatalf("got %T, want message.Invalid", m)
	}
	if im.Length != 3 {
		t.Errorf("Length = %d, want 3", im.Length)
	}
	if !im.Itinerary.Terminal() {
		t.Errorf("expected itinerary to be terminal after advance")
	}
}

func TestSmoothingNeverShortensBelowOne(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewSmoothing(func(m message.Message) { out <- m }, 10)

	go e.Run()
	defer e.Stop()

	e.HandleMessage(message.Invalid{
		Properties: []string{"p1"},
		Length:     2,
		Itinerary:  message.NewItinerary(message.Smoothing),
	})

	m := drain(t, out, time.Second)
	im := m.(message.Invalid)
	if im.Length != 1 {
		t.Errorf("Length = %d, want 1", im.Length)
	}
}

func TestSmoothingIgnoresMessagesNotAddressedToIt(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewSmoothing(func(m message.Message) { out <- m }, 1)

	go e.Run()
	defer e.Stop()

	e.HandleMessage(message.Invalid{Properties: []string{"p1"}, Length: 5})
	e.HandleMessage(message.Invalid{
		Properties: []string{"p2"},
		Length:     5,
		Itinerary:  message.NewItinerary(message.Smoothing),
	})

	m := drain(t, out, time.Second)
	im := m.(message.Invalid)
	if len(im.Properties) != 1 || im.Properties[0] != "p2" {
		t.Errorf("Properties = %v, want [p2] (the first message should have been dropped)", im.Properties)
	}
}
