package engine

import (
	"testing"
	"time"

	"github.com/jkind-go/director/message"
)

func TestInvariantGenerationStopsAtMaxRounds(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewInvariantGeneration(func(m message.Message) { out <- m }, time.Millisecond, 2)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	defer e.Stop()

	for i := 0; i < 2; i++ {
		m := drain(t, out, time.Second)
		if _, ok := m.(message.Invariant); !ok {
			t.Fatalf("got %T, want message.Invariant", m)
		}
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Errorf("expected Run to return after maxRounds was reached")
	}
}

func TestInvariantGenerationUnboundedRunsUntilStopped(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewInvariantGeneration(func(m message.Message) { out <- m }, time.Millisecond, 0)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	drain(t, out, time.Second)
	drain(t, out, time.Second)

	e.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Errorf("expected Run to return after Stop")
	}
}
