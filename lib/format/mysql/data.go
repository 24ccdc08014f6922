package mysql

import (
	"fmt"
	"strings"

	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/output"
)

type InsertInto struct {
	Table   string
	Columns []string
	Values  []string
}

func (stmt *InsertInto) ToSql(q output.Quoter) string {
	quoted := make([]string, len(stmt.Columns))
	for i, name := range stmt.Columns {
		quoted[i] = q.QuoteColumn(name)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		q.QuoteTable(stmt.Table),
		strings.Join(quoted, ", "),
		strings.Join(stmt.Values, ", "),
	)
}

// SampleValue synthesizes a placeholder literal for a column, driven purely
// by the SQL type category. It is not constraint-aware: uniqueness, foreign
// rows, and the like are the user's problem.
func SampleValue(q output.Quoter, col *ir.Column) string {
	switch col.Type.Category() {
	case ir.CategoryInteger:
		return "1"
	case ir.CategoryText:
		return q.LiteralString("sample_" + col.Name)
	case ir.CategoryBoolean:
		return "TRUE"
	case ir.CategoryFloat:
		return "1.0"
	}
	return "NULL"
}
