package mysql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schemaforge/schemaforge/lib/ir"
)

func TestSampleValue_TypeCategoryDriven(t *testing.T) {
	q := Quoter{}
	cases := []struct {
		typeName string
		field    string
		expected string
	}{
		{"INT", "id", "1"},
		{"BIGINT", "count", "1"},
		{"TINYINT", "flag", "1"},
		{"VARCHAR", "email", "'sample_email'"},
		{"TEXT", "body", "'sample_body'"},
		{"CHAR", "code", "'sample_code'"},
		{"BOOLEAN", "active", "TRUE"},
		{"FLOAT", "ratio", "1.0"},
		{"DOUBLE", "price", "1.0"},
		{"DECIMAL", "amount", "1.0"},
		{"DATETIME", "created", "NULL"},
		{"TIMESTAMP", "updated", "NULL"},
	}
	for _, c := range cases {
		col := &ir.Column{Name: c.field, Type: ir.DataType{Name: c.typeName}}
		assert.Equal(t, c.expected, SampleValue(q, col), "type %s", c.typeName)
	}
}

func TestBuildSampleData_OneInsertPerTable(t *testing.T) {
	tables := []*ir.Table{
		{
			Name: "user",
			Columns: []*ir.Column{
				{Name: "id", Type: ir.DataType{Name: "INT"}},
				{Name: "email", Type: ir.DataType{Name: "VARCHAR", Size: 255}},
				{Name: "active", Type: ir.DataType{Name: "BOOLEAN"}},
			},
		},
		{
			Name: "empty",
		},
		{
			Name: "product",
			Columns: []*ir.Column{
				{Name: "price", Type: ir.DataType{Name: "DOUBLE"}},
			},
		},
	}
	sql := NewGenerator().BuildSampleData(tables)

	assert.Equal(t,
		"INSERT INTO `user` (`id`, `email`, `active`) VALUES (1, 'sample_email', TRUE);\n"+
			"INSERT INTO `product` (`price`) VALUES (1.0);\n",
		sql)
	assert.Equal(t, 2, strings.Count(sql, "INSERT INTO"))
}
