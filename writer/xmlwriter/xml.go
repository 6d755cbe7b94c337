// Package xmlwriter renders the Director's events as an XML document, the
// external-interface writer described in spec §6. No XML library appears
// anywhere in the retrieved corpus, so this uses the standard library's
// encoding/xml directly.
package xmlwriter

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jkind-go/director/counterexample"
	"github.com/jkind-go/director/message"
)

type resultsXML struct {
	XMLName xml.Name  `xml:"Results"`
	Entries []entryXML `xml:",any"`
}

type entryXML struct {
	XMLName    xml.Name
	Properties string `xml:"properties,attr"`
	Source     string `xml:"source,attr,omitempty"`
	K          int    `xml:"k,attr,omitempty"`
	BaseStep   int    `xml:"baseStep,attr,omitempty"`
	Runtime    string `xml:"runtime,attr"`
}

// Writer accumulates entries and renders them as XML on End, optionally
// streaming each entry to stdout as it is written.
type Writer struct {
	path     string
	toStdout bool

	doc resultsXML
}

// New opens a Writer that renders to path (suffixed ".xml" by the caller).
// If toStdout is set, each entry is printed to stdout as it arrives instead,
// and End does not write the file.
func New(path string, toStdout bool) (*Writer, error) {
	return &Writer{path: path, toStdout: toStdout}, nil
}

func (w *Writer) Begin() {
	w.doc = resultsXML{}
}

func (w *Writer) append(e entryXML) {
	w.doc.Entries = append(w.doc.Entries, e)
	if w.toStdout {
		if out, err := xml.MarshalIndent(e, "", "  "); err == nil {
			fmt.Println(string(out))
		}
	}
}

func (w *Writer) WriteValid(properties []string, source message.EngineName, k int, proofTime time.Duration, runtime time.Duration, invariants []string, ivc []string, allIvcs []message.AllIVC, mivcTimedOut bool) {
	w.append(entryXML{
		XMLName:    xml.Name{Local: "Valid"},
		Properties: strings.Join(properties, ","),
		Source:     string(source),
		K:          k,
		Runtime:    runtime.String(),
	})
}

func (w *Writer) WriteInvalid(property string, source message.EngineName, cex counterexample.Counterexample, runtime time.Duration) {
	w.append(entryXML{
		XMLName:    xml.Name{Local: "Invalid"},
		Properties: property,
		Source:     string(source),
		K:          cex.Length,
		Runtime:    runtime.String(),
	})
}

func (w *Writer) WriteUnknown(properties []string, baseStep int, inductiveCex map[string]counterexample.Counterexample, runtime time.Duration) {
	w.append(entryXML{
		XMLName:    xml.Name{Local: "Unknown"},
		Properties: strings.Join(properties, ","),
		BaseStep:   baseStep,
		Runtime:    runtime.String(),
	})
}

func (w *Writer) WriteBaseStep(properties []string, baseStep int) {
	w.append(entryXML{
		XMLName:    xml.Name{Local: "BaseStep"},
		Properties: strings.Join(properties, ","),
		BaseStep:   baseStep,
	})
}

func (w *Writer) End() {
	if w.toStdout {
		return
	}
	out, err := xml.MarshalIndent(w.doc, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(w.path, out, 0o644)
}

func (w *Writer) String() string {
	out, err := xml.MarshalIndent(w.doc, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}
