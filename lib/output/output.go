package output

import (
	"fmt"
	"strings"
)

type ToSql interface {
	ToSql(Quoter) string
}

type Quoter interface {
	QuoteSchema(schema string) string
	QuoteTable(table string) string
	QuoteColumn(column string) string
	LiteralString(str string) string
}

// Script accumulates a SQL document in memory. Nothing touches disk until the
// whole script has been assembled, so a failed run never leaves a partial file.
type Script struct {
	quoter Quoter
	buf    strings.Builder
}

func NewScript(quoter Quoter) *Script {
	return &Script{quoter: quoter}
}

// Write appends a formatted line to the script.
func (s *Script) Write(format string, args ...interface{}) {
	fmt.Fprintf(&s.buf, format, args...)
	s.buf.WriteString("\n")
}

// WriteSql renders each statement with the script's quoter on its own line.
func (s *Script) WriteSql(stmts ...ToSql) {
	for _, stmt := range stmts {
		s.buf.WriteString(stmt.ToSql(s.quoter))
		s.buf.WriteString("\n")
	}
}

// BlankLine separates statement groups.
func (s *Script) BlankLine() {
	s.buf.WriteString("\n")
}

func (s *Script) String() string {
	return s.buf.String()
}
