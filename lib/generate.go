package lib

import (
	"github.com/hashicorp/go-multierror"

	"github.com/schemaforge/schemaforge/lib/format/mysql"
	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/parser"
)

// GenerateOptions selects what to generate. DbType does not change the
// rendered DDL; the MySQL family shares one dialect.
type GenerateOptions struct {
	DbType            ir.DbType
	DatabaseName      string
	Dialect           ir.SourceDialect
	OutputFile        string
	IncludeSampleData bool
}

type GenerateResult struct {
	Sql        string
	TableCount int
	// FileErrors maps each unreadable file to its error. A file error never
	// aborts the run; the remaining files still contribute tables.
	FileErrors map[string]error
	// Err aggregates all file errors, nil when every file was read.
	Err error
}

const sampleDataSeparator = "-- Sample INSERT statements"

// Generate drives the parser across all files in order, accumulates tables in
// file-then-declaration order, and renders the schema. The SQL text is fully
// assembled in memory; writing it anywhere is the caller's concern.
func (forge *Forge) Generate(opts GenerateOptions, files []string) *GenerateResult {
	structParser := parser.NewParser()
	result := &GenerateResult{
		FileErrors: map[string]error{},
	}

	var tables []*ir.Table
	var errs *multierror.Error
	for _, file := range files {
		fileTables, err := structParser.ParseFile(file, opts.Dialect)
		if err != nil {
			forge.Warning("Skipping %s: %v", file, err)
			result.FileErrors[file] = err
			errs = multierror.Append(errs, err)
			continue
		}
		forge.Info("Parsed %s: %d structure(s)", file, len(fileTables))
		tables = append(tables, fileTables...)
	}
	result.Err = errs.ErrorOrNil()
	result.TableCount = len(tables)
	if len(tables) == 0 {
		return result
	}

	generator := mysql.NewGenerator()
	sql := generator.BuildSchema(tables, opts.DatabaseName)
	if opts.IncludeSampleData {
		sql += "\n" + sampleDataSeparator + "\n\n" + generator.BuildSampleData(tables)
	}
	result.Sql = sql
	return result
}
