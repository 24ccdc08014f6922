package mysql

import (
	"strings"
)

// Quoter renders MySQL-family identifiers and string literals.
type Quoter struct {
}

func (q Quoter) QuoteSchema(name string) string {
	return quoteIdentifier(name)
}

func (q Quoter) QuoteTable(name string) string {
	return quoteIdentifier(name)
}

func (q Quoter) QuoteColumn(name string) string {
	return quoteIdentifier(name)
}

func (q Quoter) LiteralString(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
