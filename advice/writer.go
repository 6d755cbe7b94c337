package advice

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Writer accumulates variable declarations and invariants over the course of
// a run and flushes them to a YAML file exactly once via Write.
type Writer struct {
	path string

	mu       sync.Mutex
	varDecls []string
	invars   []string
}

// NewWriter opens a Writer targeting path. Nothing is written to disk until
// Write is called.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// AddVarDecls seeds the advice with the node's variable declarations. Called
// once, at construction time, by the Director.
func (w *Writer) AddVarDecls(decls []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.varDecls = append(w.varDecls, decls...)
}

// AddInvariants appends invariants learned during the run.
func (w *Writer) AddInvariants(invariants []string) {
	if len(invariants) == 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.invars = append(w.invars, invariants...)
}

// Write flushes the accumulated advice to disk. Must be called exactly once,
// at the end of the run.
func (w *Writer) Write() error {
	w.mu.Lock()
	a := Advice{
		VarDecls:   append([]string(nil), w.varDecls...),
		Invariants: append([]string(nil), w.invars...),
	}
	w.mu.Unlock()

	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("advice: marshal: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("advice: write %s: %w", w.path, err)
	}
	return nil
}
