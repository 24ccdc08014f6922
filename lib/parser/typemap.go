package parser

import (
	"github.com/schemaforge/schemaforge/lib/ir"
)

// The three dialect catalogs are deliberately flat, disjoint data tables so
// that unmapped-type behavior is auditable per language. Lookup is exact and
// case-sensitive; the caller is responsible for any decoration stripping.
//
// Value primitives map to NOT NULL column types; pointer, boxed, and object
// types map to nullable ones.

var cTypes = map[string]ir.DataType{
	"int":      {Name: "INT"},
	"short":    {Name: "SMALLINT"},
	"long":     {Name: "BIGINT"},
	"float":    {Name: "FLOAT"},
	"double":   {Name: "DOUBLE"},
	"bool":     {Name: "BOOLEAN"},
	"_Bool":    {Name: "BOOLEAN"},
	"unsigned": {Name: "INT"},
	"char":     {Name: "TEXT", Nullable: true},
	"char*":    {Name: "VARCHAR", Size: 255, Nullable: true},
	"int8_t":   {Name: "TINYINT"},
	"int16_t":  {Name: "SMALLINT"},
	"int32_t":  {Name: "INT"},
	"int64_t":  {Name: "BIGINT"},
	"uint8_t":  {Name: "TINYINT"},
	"uint16_t": {Name: "SMALLINT"},
	"uint32_t": {Name: "INT"},
	"uint64_t": {Name: "BIGINT"},
	"size_t":   {Name: "BIGINT"},
	"time_t":   {Name: "BIGINT"},
}

var cppTypes = map[string]ir.DataType{
	"int":          {Name: "INT"},
	"short":        {Name: "SMALLINT"},
	"long":         {Name: "BIGINT"},
	"float":        {Name: "FLOAT"},
	"double":       {Name: "DOUBLE"},
	"bool":         {Name: "BOOLEAN"},
	"char":         {Name: "CHAR", Size: 1},
	"char*":        {Name: "VARCHAR", Size: 255, Nullable: true},
	"unsigned":     {Name: "INT"},
	"std::string":  {Name: "VARCHAR", Size: 255, Nullable: true},
	"string":       {Name: "VARCHAR", Size: 255, Nullable: true},
	"int8_t":       {Name: "TINYINT"},
	"int16_t":      {Name: "SMALLINT"},
	"int32_t":      {Name: "INT"},
	"int64_t":      {Name: "BIGINT"},
	"uint8_t":      {Name: "TINYINT"},
	"uint16_t":     {Name: "SMALLINT"},
	"uint32_t":     {Name: "INT"},
	"uint64_t":     {Name: "BIGINT"},
	"size_t":       {Name: "BIGINT"},
	"std::int64_t": {Name: "BIGINT"},
}

var javaTypes = map[string]ir.DataType{
	"int":           {Name: "INT"},
	"Integer":       {Name: "INT", Nullable: true},
	"long":          {Name: "BIGINT"},
	"Long":          {Name: "BIGINT", Nullable: true},
	"short":         {Name: "SMALLINT"},
	"Short":         {Name: "SMALLINT", Nullable: true},
	"byte":          {Name: "TINYINT"},
	"Byte":          {Name: "TINYINT", Nullable: true},
	"float":         {Name: "FLOAT"},
	"Float":         {Name: "FLOAT", Nullable: true},
	"double":        {Name: "DOUBLE"},
	"Double":        {Name: "DOUBLE", Nullable: true},
	"boolean":       {Name: "BOOLEAN"},
	"Boolean":       {Name: "BOOLEAN", Nullable: true},
	"char":          {Name: "CHAR", Size: 1},
	"Character":     {Name: "CHAR", Size: 1, Nullable: true},
	"String":        {Name: "VARCHAR", Size: 255, Nullable: true},
	"BigDecimal":    {Name: "DECIMAL", Size: 10, Nullable: true},
	"Date":          {Name: "DATETIME", Nullable: true},
	"LocalDate":     {Name: "DATE", Nullable: true},
	"LocalDateTime": {Name: "DATETIME", Nullable: true},
	"Timestamp":     {Name: "TIMESTAMP", Nullable: true},
	"UUID":          {Name: "CHAR", Size: 36, Nullable: true},
}

var dialectCatalogs = map[ir.SourceDialect]map[string]ir.DataType{
	ir.DialectC:    cTypes,
	ir.DialectCpp:  cppTypes,
	ir.DialectJava: javaTypes,
}

// ResolveType maps a raw source type token to a SQL data type. An unmapped
// token resolves to TEXT; this is a fallback, never an error.
func ResolveType(dialect ir.SourceDialect, token string) ir.DataType {
	if catalog, ok := dialectCatalogs[dialect]; ok {
		if dt, ok := catalog[token]; ok {
			return dt
		}
	}
	return ir.DataType{Name: "TEXT", Nullable: true}
}
