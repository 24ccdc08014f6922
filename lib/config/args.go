package config

// Args is the full CLI surface. The mode of operation is derived from which
// argument groups are set, mirroring how the interactive menu of the original
// tool mapped choices to actions.
type Args struct {
	// Global switches and flags
	Lang       string `arg:"--lang" help:"source dialect to scan: c, cpp, or java"`
	SrcDir     string `arg:"--src" help:"root directory to scan for source files. Defaults to the current directory"`
	ConfigFile string `arg:"--config" help:"path to the settings file. Defaults to schemaforge.json"`
	Verbose    []bool `arg:"-v" help:"see more detail (verbose)."`
	Quiet      []bool `arg:"-q" help:"see less detail (quiet)."`
	Debug      bool   `arg:"--debug" help:"display extended information about errors. Automatically implies -vv."`

	// Generating SQL DDL/DML
	OutputFile   string `arg:"--out" help:"write the generated SQL schema to this file"`
	DatabaseName string `arg:"--db" help:"emit CREATE DATABASE / USE statements for this database name"`
	DbType       string `arg:"--dbtype" help:"target database flavor: mysql or mariadb"`
	SampleData   bool   `arg:"--sample-data" help:"append synthetic INSERT statements after the DDL"`

	// Applying generated DDL to a live server
	Apply      bool   `arg:"--apply" help:"execute the generated schema against a running server"`
	DbHost     string `arg:"--dbhost" help:"database server host for --apply"`
	DbPort     uint   `arg:"--dbport" help:"database server port for --apply"`
	DbUser     string `arg:"--dbuser" help:"database user for --apply"`
	DbPassword string `arg:"--dbpassword" help:"database password for --apply"`

	// Source discovery
	List bool `arg:"--list" help:"show discovered source files and exit"`

	// Build system generation
	Makefile string `arg:"--makefile" help:"generate a GNU Makefile for this target name"`
	Cmake    string `arg:"--cmake" help:"generate CMakeLists.txt for this target name"`
	Arch     string `arg:"--arch" help:"target architecture: 32, 64, or native"`

	// Project scaffolding and settings
	NewProject string `arg:"--new-project" help:"create a new project directory with sample sources"`
	InitConfig bool   `arg:"--init-config" help:"write the current settings to the settings file"`
}
