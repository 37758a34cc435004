package core

import "io"

// Sheet is one exported table: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

type Exporter interface {
	ContentType() string
	Extension() string
	Export(w io.Writer, sheets ...Sheet) error
}
