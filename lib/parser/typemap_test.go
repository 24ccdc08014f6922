package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schemaforge/schemaforge/lib/ir"
)

func TestResolveType_CatalogEntriesAreExact(t *testing.T) {
	for dialect, catalog := range dialectCatalogs {
		for token, expected := range catalog {
			actual := ResolveType(dialect, token)
			assert.Equal(t, expected, actual, "dialect %s token %s", dialect, token)
		}
	}
}

func TestResolveType_UnmappedTokenFallsBackToText(t *testing.T) {
	fallback := ir.DataType{Name: "TEXT", Nullable: true}
	for _, dialect := range []ir.SourceDialect{ir.DialectC, ir.DialectCpp, ir.DialectJava} {
		assert.Equal(t, fallback, ResolveType(dialect, "SomeUnknownType"))
		assert.Equal(t, fallback, ResolveType(dialect, "struct"))
	}
}

func TestResolveType_LookupIsCaseSensitive(t *testing.T) {
	// "Int" is not a C token, only "int" is
	assert.Equal(t, ir.DataType{Name: "TEXT", Nullable: true}, ResolveType(ir.DialectC, "Int"))
	assert.Equal(t, ir.DataType{Name: "INT"}, ResolveType(ir.DialectC, "int"))

	// Java distinguishes the primitive from the boxed type
	assert.Equal(t, ir.DataType{Name: "INT"}, ResolveType(ir.DialectJava, "int"))
	assert.Equal(t, ir.DataType{Name: "INT", Nullable: true}, ResolveType(ir.DialectJava, "Integer"))
}

func TestResolveType_SizeQualifiers(t *testing.T) {
	assert.Equal(t, ir.DataType{Name: "VARCHAR", Size: 255, Nullable: true}, ResolveType(ir.DialectCpp, "std::string"))
	assert.Equal(t, ir.DataType{Name: "VARCHAR", Size: 255, Nullable: true}, ResolveType(ir.DialectJava, "String"))
	assert.Equal(t, ir.DataType{Name: "DECIMAL", Size: 10, Nullable: true}, ResolveType(ir.DialectJava, "BigDecimal"))
}
