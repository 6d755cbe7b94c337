package director

import (
	"github.com/jkind-go/director/config"
	"github.com/jkind-go/director/writer"
	"github.com/jkind-go/director/writer/console"
	"github.com/jkind-go/director/writer/excel"
	"github.com/jkind-go/director/writer/memory"
	"github.com/jkind-go/director/writer/xmlwriter"
)

// newWriter implements the writer-selection precedence from §4.3/§6:
// spreadsheet and XML are explicit file requests and win outright; failing
// those, miniJkind always gets the console writer in its non-interactive
// line-output mode; failing that, an interactive run gets the live console
// view and a non-interactive one falls back to the in-memory writer.
func newWriter(s config.Settings, interactive bool) (writer.Writer, error) {
	switch {
	case s.Excel:
		return excel.New(s.Filename + ".xls")
	case s.XML:
		return xmlwriter.New(s.Filename+".xml", s.XMLToStdout)
	case s.MiniJKind:
		return console.New(false), nil
	case interactive:
		return console.New(true), nil
	default:
		return memory.New(), nil
	}
}
