package presentation

import (
	"fmt"
	"io"
	"strings"

	"assettracking/internal/report"
)

const (
	FormatConsole = "console"
	FormatCSV     = "csv"
	FormatXLSX    = "xlsx"
)

func NewSink(format string, out io.Writer, colored bool) (report.Sink, error) {
	switch strings.ToLower(format) {
	case FormatConsole:
		return NewConsoleSink(out, colored), nil
	case FormatCSV:
		return NewCSVSink(out), nil
	case FormatXLSX:
		return NewXLSXSink(out), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q, use one of: %s, %s, %s", format, FormatConsole, FormatCSV, FormatXLSX)
	}
}
