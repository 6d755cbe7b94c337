package engine

import (
	"testing"
	"time"

	"github.com/jkind-go/director/message"
)

func drain(t *testing.T, ch chan message.Message, timeout time.Duration) message.Message {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for a message")
		return nil
	}
}

func TestBMCReportsUnknownAtDepthCeiling(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewBMC(func(m message.Message) { out <- m }, []string{"p1"}, 2, time.Millisecond, nil, message.NewItinerary())

	go e.Run()
	defer e.Stop()

	seenBaseStep := 0
	for {
		m := drain(t, out, time.Second)
		switch msg := m.(type) {
		case message.BaseStep:
			seenBaseStep++
		case message.Unknown:
			if msg.Source != message.BMC {
				t.Errorf("Unknown.Source = %v, want BMC", msg.Source)
			}
			if len(msg.Properties) != 1 || msg.Properties[0] != "p1" {
				t.Errorf("Unknown.Properties = %v, want [p1]", msg.Properties)
			}
			if seenBaseStep < 2 {
				t.Errorf("expected at least 2 BaseStep messages before giving up, saw %d", seenBaseStep)
			}
			return
		}
	}
}

func TestBMCRefutesWhenCanRefuteAccepts(t *testing.T) {
	out := make(chan message.Message, 16)
	canRefute := func(p string) (int, message.Model, bool) {
		if p == "p1" {
			return 2, message.Model{"x": {"0", "1"}}, true
		}
		return 0, nil, false
	}
	e := NewBMC(func(m message.Message) { out <- m }, []string{"p1"}, 5, time.Millisecond, canRefute, message.NewItinerary(message.Smoothing))

	go e.Run()
	defer e.Stop()

	for {
		m := drain(t, out, time.Second)
		im, ok := m.(message.Invalid)
		if !ok {
			continue
		}
		if im.Source != message.BMC {
			t.Errorf("Invalid.Source = %v, want BMC", im.Source)
		}
		if len(im.Properties) != 1 || im.Properties[0] != "p1" {
			t.Errorf("Invalid.Properties = %v, want [p1]", im.Properties)
		}
		if im.Length != 2 {
			t.Errorf("Invalid.Length = %d, want 2", im.Length)
		}
		dest, ok := im.Itinerary.NextDestination()
		if !ok || dest != message.Smoothing {
			t.Errorf("Invalid.Itinerary next destination = %v, %v, want Smoothing", dest, ok)
		}
		return
	}
}

func TestBMCStopsTrackingSettledProperty(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewBMC(func(m message.Message) { out <- m }, []string{"p1", "p2"}, 3, time.Millisecond, nil, message.NewItinerary())

	go e.Run()
	defer e.Stop()

	e.HandleMessage(message.Unknown{Source: message.Director, Properties: []string{"p1"}})

	m := drain(t, out, time.Second)
	for {
		if um, ok := m.(message.Unknown); ok {
			for _, p := range um.Properties {
				if p == "p1" {
					t.Errorf("p1 should have been released before BMC gave up on it")
				}
			}
			return
		}
		m = drain(t, out, time.Second)
	}
}
