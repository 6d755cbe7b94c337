// Package excel renders the Director's events as a legacy tab-separated
// ".xls" workbook. Real spreadsheet generation is not present anywhere in
// the retrieved corpus; the tabwriter-based tabular layout here follows the
// same idiom the teacher project uses for its predicate-violation report
// (checking/predicateChecker.go), which is the closest grounded precedent
// for columnar text output in the pack.
package excel

import (
	"bytes"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jkind-go/director/counterexample"
	"github.com/jkind-go/director/message"
)

// Writer writes rows to an in-memory tab-aligned table, flushed to path on
// End.
type Writer struct {
	path string
	buf  bytes.Buffer
	tw   *tabwriter.Writer
}

// New opens a Writer that will render its table to path when End is called.
// path should already carry the ".xls" suffix (the Director appends it per
// the filename option).
func New(path string) (*Writer, error) {
	w := &Writer{path: path}
	w.tw = tabwriter.NewWriter(&w.buf, 4, 4, 1, ' ', 0)
	return w, nil
}

func (w *Writer) Begin() {
	fmt.Fprintln(w.tw, "Status\tProperties\tSource\tK/Length\tBaseStep\tRuntime(s)\tDetail")
}

func (w *Writer) WriteValid(properties []string, source message.EngineName, k int, proofTime time.Duration, runtime time.Duration, invariants []string, ivc []string, allIvcs []message.AllIVC, mivcTimedOut bool) {
	fmt.Fprintf(w.tw, "Valid\t%v\t%s\t%d\t\t%.3f\tinvariants=%v ivc=%v\n", properties, source, k, runtime.Seconds(), invariants, ivc)
}

func (w *Writer) WriteInvalid(property string, source message.EngineName, cex counterexample.Counterexample, runtime time.Duration) {
	fmt.Fprintf(w.tw, "Invalid\t%s\t%s\t%d\t\t%.3f\t\n", property, source, cex.Length, runtime.Seconds())
}

func (w *Writer) WriteUnknown(properties []string, baseStep int, inductiveCex map[string]counterexample.Counterexample, runtime time.Duration) {
	fmt.Fprintf(w.tw, "Unknown\t%v\t\t\t%d\t%.3f\t\n", properties, baseStep, runtime.Seconds())
}

func (w *Writer) WriteBaseStep(properties []string, baseStep int) {
	fmt.Fprintf(w.tw, "BaseStep\t%v\t\t\t%d\t\t\n", properties, baseStep)
}

func (w *Writer) End() {
	w.tw.Flush()
	_ = os.WriteFile(w.path, w.buf.Bytes(), 0o644)
}

func (w *Writer) String() string {
	return w.buf.String()
}
