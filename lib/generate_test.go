package lib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/schemaforge/lib/ir"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerate_TwoFilesInFileThenDeclarationOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeSource(t, dir, "user.h", "typedef struct { int id; char* email; } User;\n")
	second := writeSource(t, dir, "product.h", "typedef struct { int id; double price; } Product;\n")

	forge := NewForge()
	result := forge.Generate(GenerateOptions{Dialect: ir.DialectC}, []string{first, second})

	assert.Equal(t, 2, result.TableCount)
	assert.Empty(t, result.FileErrors)
	assert.NoError(t, result.Err)
	assert.Less(t,
		strings.Index(result.Sql, "`user`"),
		strings.Index(result.Sql, "`product`"))
	assert.NotContains(t, result.Sql, "CREATE DATABASE")
}

func TestGenerate_DatabaseHeader(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "user.h", "typedef struct { int id; } User;\n")

	forge := NewForge()
	result := forge.Generate(GenerateOptions{
		Dialect:      ir.DialectC,
		DatabaseName: "shop",
	}, []string{file})

	assert.True(t, strings.HasPrefix(result.Sql, "CREATE DATABASE IF NOT EXISTS `shop`;\nUSE `shop`;\n"))
}

func TestGenerate_SampleDataAppendedAfterAllTables(t *testing.T) {
	dir := t.TempDir()
	first := writeSource(t, dir, "a.h", "typedef struct { int id; } Alpha;\n")
	second := writeSource(t, dir, "b.h", "typedef struct { int id; } Beta;\n")

	forge := NewForge()
	result := forge.Generate(GenerateOptions{
		Dialect:           ir.DialectC,
		IncludeSampleData: true,
	}, []string{first, second})

	sep := strings.Index(result.Sql, "-- Sample INSERT statements")
	require.GreaterOrEqual(t, sep, 0)

	ddl, inserts := result.Sql[:sep], result.Sql[sep:]
	assert.Equal(t, 2, strings.Count(ddl, "CREATE TABLE"))
	assert.Zero(t, strings.Count(ddl, "INSERT INTO"))
	assert.Equal(t, 2, strings.Count(inserts, "INSERT INTO"))
}

func TestGenerate_UnreadableFileDoesNotAbortRun(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "ok.h", "typedef struct { int id; } Ok;\n")
	missing := filepath.Join(dir, "missing.h")

	forge := NewForge()
	result := forge.Generate(GenerateOptions{Dialect: ir.DialectC}, []string{missing, good})

	assert.Equal(t, 1, result.TableCount)
	assert.Contains(t, result.Sql, "`ok`")
	require.Len(t, result.FileErrors, 1)
	assert.Contains(t, result.FileErrors[missing].Error(), missing)
	assert.Error(t, result.Err)
}

func TestGenerate_NoStructuresFound(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "empty.h", "#define NOTHING_HERE 1\n")

	forge := NewForge()
	result := forge.Generate(GenerateOptions{Dialect: ir.DialectC}, []string{file})

	assert.Zero(t, result.TableCount)
	assert.Empty(t, result.Sql)
	assert.NoError(t, result.Err)
}
