package message

import "testing"

func TestItineraryNextDestination(t *testing.T) {
	it := NewItinerary(IvcReduction, IvcReductionAll)

	dest, ok := it.NextDestination()
	if !ok || dest != IvcReduction {
		t.Fatalf("NextDestination() = %v, %v; want IvcReduction, true", dest, ok)
	}

	// NextDestination must not consume.
	dest, ok = it.NextDestination()
	if !ok || dest != IvcReduction {
		t.Fatalf("second NextDestination() = %v, %v; want IvcReduction, true", dest, ok)
	}
}

func TestItineraryAdvance(t *testing.T) {
	it := NewItinerary(IvcReduction, IvcReductionAll)

	it = it.Advance()
	dest, ok := it.NextDestination()
	if !ok || dest != IvcReductionAll {
		t.Fatalf("after one Advance, NextDestination() = %v, %v; want IvcReductionAll, true", dest, ok)
	}

	it = it.Advance()
	if !it.Terminal() {
		t.Fatalf("expected itinerary to be terminal after exhausting destinations")
	}
	if _, ok := it.NextDestination(); ok {
		t.Fatalf("expected no next destination on a terminal itinerary")
	}
}

func TestEmptyItineraryIsTerminal(t *testing.T) {
	if !NewItinerary().Terminal() {
		t.Fatalf("empty itinerary should be terminal")
	}
	var zero Itinerary
	if !zero.Terminal() {
		t.Fatalf("zero-value itinerary should be terminal")
	}
}

func TestItineraryAdvanceDoesNotMutateOriginal(t *testing.T) {
	original := NewItinerary(BMC, KInduction)
	advanced := original.Advance()

	dest, ok := original.NextDestination()
	if !ok || dest != BMC {
		t.Fatalf("advancing a copy mutated the original itinerary")
	}
	dest, ok = advanced.NextDestination()
	if !ok || dest != KInduction {
		t.Fatalf("NextDestination() on advanced = %v, %v; want KInduction, true", dest, ok)
	}
}
