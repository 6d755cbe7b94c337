// Package memory provides the default Writer: everything is rendered into an
// in-memory buffer and returned via String, the same shape as the
// StringWriter output of the original jkind-service.
package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jkind-go/director/counterexample"
	"github.com/jkind-go/director/message"
)

// Writer renders every event as a line of text into an internal builder.
type Writer struct {
	buf strings.Builder
}

// New creates a Writer.
func New() *Writer {
	return &Writer{}
}

func (w *Writer) Begin() {
	w.buf.WriteString("=== analysis started ===\n")
}

func (w *Writer) WriteValid(properties []string, source message.EngineName, k int, proofTime time.Duration, runtime time.Duration, invariants []string, ivc []string, allIvcs []message.AllIVC, mivcTimedOut bool) {
	fmt.Fprintf(&w.buf, "[%.3fs] VALID %v (source=%s, k=%d, proofTime=%s)\n", runtime.Seconds(), properties, source, k, proofTime)
	if len(invariants) > 0 {
		fmt.Fprintf(&w.buf, "    invariants: %v\n", invariants)
	}
	if len(ivc) > 0 {
		fmt.Fprintf(&w.buf, "    ivc: %v\n", ivc)
	}
	if mivcTimedOut {
		w.buf.WriteString("    mivc: timed out\n")
	}
}

func (w *Writer) WriteInvalid(property string, source message.EngineName, cex counterexample.Counterexample, runtime time.Duration) {
	fmt.Fprintf(&w.buf, "[%.3fs] INVALID %s (source=%s, length=%d)\n", runtime.Seconds(), property, source, cex.Length)
}

func (w *Writer) WriteUnknown(properties []string, baseStep int, inductiveCex map[string]counterexample.Counterexample, runtime time.Duration) {
	fmt.Fprintf(&w.buf, "[%.3fs] UNKNOWN %v (baseStep=%d)\n", runtime.Seconds(), properties, baseStep)
}

func (w *Writer) WriteBaseStep(properties []string, baseStep int) {
	fmt.Fprintf(&w.buf, "base step %d reached for %v\n", baseStep, properties)
}

func (w *Writer) End() {
	w.buf.WriteString("=== analysis complete ===\n")
}

func (w *Writer) String() string {
	return w.buf.String()
}
