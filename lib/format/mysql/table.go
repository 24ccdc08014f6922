package mysql

import (
	"fmt"
	"strings"

	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/output"
	"github.com/schemaforge/schemaforge/lib/util"
)

const tableOptions = "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci"

type DatabaseCreate struct {
	Database string
}

func (stmt *DatabaseCreate) ToSql(q output.Quoter) string {
	return fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s;", q.QuoteSchema(stmt.Database))
}

type DatabaseUse struct {
	Database string
}

func (stmt *DatabaseUse) ToSql(q output.Quoter) string {
	return fmt.Sprintf("USE %s;", q.QuoteSchema(stmt.Database))
}

type TableCreate struct {
	Table       string
	Columns     []ColumnDef
	PrimaryKey  []string
	ForeignKeys []ForeignKeyDef
}

type ColumnDef struct {
	Name          string
	Type          ir.DataType
	Default       string
	AutoIncrement bool
	Comment       string
}

// ForeignKeyDef references ForeignTable(ForeignColumn); the referenced column
// is assumed to share the referencing column's name.
type ForeignKeyDef struct {
	Column        string
	ForeignTable  string
	ForeignColumn string
}

func (stmt *TableCreate) ToSql(q output.Quoter) string {
	lines := make([]string, 0, len(stmt.Columns)+len(stmt.ForeignKeys)+1)
	for _, col := range stmt.Columns {
		lines = append(lines, "\t"+col.Definition(q))
	}
	if len(stmt.PrimaryKey) > 0 {
		quoted := make([]string, len(stmt.PrimaryKey))
		for i, name := range stmt.PrimaryKey {
			quoted[i] = q.QuoteColumn(name)
		}
		lines = append(lines, fmt.Sprintf("\tPRIMARY KEY (%s)", strings.Join(quoted, ", ")))
	}
	for _, fk := range stmt.ForeignKeys {
		lines = append(lines, fmt.Sprintf(
			"\tFOREIGN KEY (%s) REFERENCES %s(%s)",
			q.QuoteColumn(fk.Column),
			q.QuoteTable(fk.ForeignTable),
			q.QuoteColumn(fk.ForeignColumn),
		))
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n%s\n) %s;",
		q.QuoteTable(stmt.Table),
		strings.Join(lines, ",\n"),
		tableOptions,
	)
}

func (col *ColumnDef) Definition(q output.Quoter) string {
	return util.CondJoin(" ",
		q.QuoteColumn(col.Name),
		typeSql(col.Type),
		util.MaybeStr(!col.Type.Nullable, "NOT NULL"),
		util.MaybeStr(col.Default != "", "DEFAULT "+col.Default),
		util.MaybeStr(col.AutoIncrement, "AUTO_INCREMENT"),
		util.MaybeStr(col.Comment != "", "COMMENT "+q.LiteralString(col.Comment)),
	)
}

func typeSql(dt ir.DataType) string {
	if dt.Size > 0 {
		return fmt.Sprintf("%s(%d)", dt.Name, dt.Size)
	}
	return dt.Name
}
