package advice

import (
	"path/filepath"
	"testing"
)

func TestWriterThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advice.yaml")

	w := NewWriter(path)
	w.AddVarDecls([]string{"x", "y"})
	w.AddInvariants([]string{"x >= 0"})
	w.AddInvariants([]string{"y <= 10"})

	if err := w.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(got.VarDecls) != 2 || got.VarDecls[0] != "x" || got.VarDecls[1] != "y" {
		t.Errorf("VarDecls = %v, want [x y]", got.VarDecls)
	}
	if len(got.Invariants) != 2 {
		t.Errorf("Invariants = %v, want 2 entries", got.Invariants)
	}
	if !got.HasInvariantsFor("x") {
		t.Errorf("expected round-tripped advice to match x")
	}
}

func TestAddInvariantsIgnoresEmptySlice(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "advice.yaml"))
	w.AddInvariants(nil)
	if err := w.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}
}
