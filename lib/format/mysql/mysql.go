package mysql

import (
	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/output"
)

// Generator renders the schema model as a MySQL-family DDL script. Rendering
// is deterministic: input table order is output order, and repeated calls on
// the same input produce byte-identical text.
type Generator struct {
	quoter output.Quoter
}

func NewGenerator() *Generator {
	return &Generator{quoter: Quoter{}}
}

// BuildSchema renders CREATE statements for every table. If databaseName is
// non-empty a CREATE DATABASE/USE header precedes the table DDL.
func (g *Generator) BuildSchema(tables []*ir.Table, databaseName string) string {
	script := output.NewScript(g.quoter)
	if databaseName != "" {
		script.WriteSql(
			&DatabaseCreate{Database: databaseName},
			&DatabaseUse{Database: databaseName},
		)
		script.BlankLine()
	}
	emitted := 0
	for _, table := range tables {
		if len(table.Columns) == 0 {
			continue
		}
		if emitted > 0 {
			script.BlankLine()
		}
		script.Write("-- Table: %s", table.Name)
		if table.Description != "" {
			script.Write("-- %s", table.Description)
		}
		script.WriteSql(g.tableCreate(table))
		emitted++
	}
	return script.String()
}

// BuildSampleData renders one INSERT per table, listing every column in
// declaration order with a type-driven placeholder value.
func (g *Generator) BuildSampleData(tables []*ir.Table) string {
	script := output.NewScript(g.quoter)
	for _, table := range tables {
		if len(table.Columns) == 0 {
			continue
		}
		columns := make([]string, len(table.Columns))
		values := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			columns[i] = col.Name
			values[i] = SampleValue(g.quoter, col)
		}
		script.WriteSql(&InsertInto{
			Table:   table.Name,
			Columns: columns,
			Values:  values,
		})
	}
	return script.String()
}

func (g *Generator) tableCreate(table *ir.Table) *TableCreate {
	stmt := &TableCreate{
		Table:      table.Name,
		PrimaryKey: table.PrimaryKeyColumns(),
	}
	for _, col := range table.Columns {
		stmt.Columns = append(stmt.Columns, ColumnDef{
			Name:          col.Name,
			Type:          col.Type,
			Default:       col.Default,
			AutoIncrement: col.PrimaryKey,
			Comment:       col.Description,
		})
		if col.HasForeignKey() {
			stmt.ForeignKeys = append(stmt.ForeignKeys, ForeignKeyDef{
				Column:        col.Name,
				ForeignTable:  col.ForeignTable,
				ForeignColumn: col.Name,
			})
		}
	}
	return stmt
}
