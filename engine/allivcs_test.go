package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/jkind-go/director/message"
)

func TestAllIvcsAppendsCarriedCoreAsSingleMember(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewAllIvcs(func(m message.Message) { out <- m })

	go e.Run()
	defer e.Stop()

	e.HandleMessage(message.Valid{
		Properties: []string{"p1"},
		IVC:        []string{"x >= 0"},
		Itinerary:  message.NewItinerary(message.IvcReductionAll),
	})

	m := drain(t, out, time.Second)
	vm, ok := m.(message.Valid)
	if !ok {
		t.Fatalf("got %T, want message.Valid", m)
	}
	if len(vm.AllIVCs) != 1 {
		t.Fatalf("AllIVCs = %v, want exactly one entry", vm.AllIVCs)
	}
	want := []string{"x >= 0"}
	if !reflect.DeepEqual(vm.AllIVCs[0].IVCs, want) {
		t.Errorf("AllIVCs[0].IVCs = %v, want %v", vm.AllIVCs[0].IVCs, want)
	}
	if len(vm.AllIVCs[0].All) != 1 || !reflect.DeepEqual(vm.AllIVCs[0].All[0], want) {
		t.Errorf("AllIVCs[0].All = %v, want [[x >= 0]]", vm.AllIVCs[0].All)
	}
	if !vm.Itinerary.Terminal() {
		t.Errorf("expected itinerary to be terminal after advance")
	}
}

func TestAllIvcsIgnoresMessagesNotAddressedToIt(t *testing.T) {
	out := make(chan message.Message, 16)
	e := NewAllIvcs(func(m message.Message) { out <- m })

	go e.Run()
	defer e.Stop()

	e.HandleMessage(message.Valid{Properties: []string{"p1"}})
	e.HandleMessage(message.Valid{
		Properties: []string{"p2"},
		Itinerary:  message.NewItinerary(message.IvcReductionAll),
	})

	m := drain(t, out, time.Second)
	vm := m.(message.Valid)
	if len(vm.Properties) != 1 || vm.Properties[0] != "p2" {
		t.Errorf("Properties = %v, want [p2] (the first message should have been dropped)", vm.Properties)
	}
}
