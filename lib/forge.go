package lib

import (
	"os"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	"github.com/schemaforge/schemaforge/lib/buildfile"
	"github.com/schemaforge/schemaforge/lib/config"
	"github.com/schemaforge/schemaforge/lib/discover"
	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/live"
	"github.com/schemaforge/schemaforge/lib/util"
)

var GlobalForge *Forge

// Forge is the application object: it owns the logger and the persisted
// settings, parses arguments into a mode, and drives the selected operation.
type Forge struct {
	logger   zerolog.Logger
	settings config.Settings
}

func NewForge() *Forge {
	return &Forge{
		logger:   zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		settings: config.DefaultSettings(),
	}
}

func (forge *Forge) ArgParse() {
	args := &config.Args{}
	arg.MustParse(args)

	forge.setVerbosity(args)

	settings, err := config.LoadSettings(args.ConfigFile)
	if err != nil {
		forge.Warning("Invalid settings file, using defaults: %v", err)
	} else {
		forge.settings = settings
	}

	// determine operation and check arguments for each
	mode := ModeUnknown
	switch {
	case args.NewProject != "":
		mode = ModeNewProject
	case args.InitConfig:
		mode = ModeInitConfig
	case args.List:
		mode = ModeList
	case args.Makefile != "":
		mode = ModeMakefile
	case args.Cmake != "":
		mode = ModeCmake
	case args.OutputFile != "":
		mode = ModeGenerate
	}

	dialect := ir.NewSourceDialect(args.Lang)
	if mode != ModeInitConfig && dialect == ir.DialectUnknown {
		forge.Fatal("Parameter error: --lang must be one of c, cpp, java")
	}

	if args.Makefile != "" && args.Cmake != "" {
		forge.Fatal("Parameter error: makefile and cmake options are not to be mixed")
	}
	if args.Apply {
		if mode != ModeGenerate {
			forge.Fatal("Parameter error: apply requires an output file (--out)")
		}
		if args.DbHost == "" {
			forge.Fatal("Parameter error: apply requires --dbhost")
		}
		if args.DatabaseName == "" {
			forge.Fatal("Parameter error: apply requires --db so the schema selects a database")
		}
	}
	if args.DbPort == 0 {
		args.DbPort = 3306
	}
	if args.DbType == "" {
		args.DbType = string(ir.DbTypeMysql)
	}
	if _, ok := ir.NewDbType(args.DbType); !ok {
		forge.Fatal("Parameter error: --dbtype must be mysql or mariadb")
	}
	if args.Arch == "" {
		args.Arch = forge.settings.DefaultArchitecture
	}
	if args.SrcDir == "" {
		args.SrcDir = "."
	}

	forge.Notice("schemaforge Version %s", Version)

	switch mode {
	case ModeGenerate:
		forge.doGenerate(args, dialect)
	case ModeList:
		forge.doList(args, dialect)
	case ModeMakefile:
		forge.doMakefile(args, dialect)
	case ModeCmake:
		forge.doCmake(args, dialect)
	case ModeNewProject:
		forge.doNewProject(args, dialect)
	case ModeInitConfig:
		forge.doInitConfig(args)
	default:
		forge.Fatal("No operation specified")
	}
}

func (forge *Forge) Fatal(s string, args ...interface{}) {
	forge.logger.Fatal().Msgf(s, args...)
}

func (forge *Forge) Warning(s string, args ...interface{}) {
	forge.logger.Warn().Msgf(s, args...)
}

func (forge *Forge) Notice(s string, args ...interface{}) {
	// TODO(nth) differentiate between notice and info
	forge.Info(s, args...)
}

func (forge *Forge) Info(s string, args ...interface{}) {
	forge.logger.Info().Msgf(s, args...)
}

func (forge *Forge) setVerbosity(args *config.Args) {
	// remember, lower level is higher verbosity
	level := zerolog.InfoLevel

	if args.Debug {
		level = zerolog.TraceLevel
	}

	for _, v := range args.Verbose {
		if v {
			level -= 1
		} else {
			level += 1
		}
	}
	for _, q := range args.Quiet {
		if q {
			level += 1
		} else {
			level -= 1
		}
	}

	// clamp it to valid values
	if level > zerolog.PanicLevel {
		level = zerolog.PanicLevel
	}
	if level < zerolog.TraceLevel {
		level = zerolog.TraceLevel
	}

	forge.logger = forge.logger.Level(level)
}

func (forge *Forge) discoverSources(args *config.Args, dialect ir.SourceDialect) []string {
	files, err := discover.SourceFiles(args.SrcDir, dialect)
	if err != nil {
		forge.Fatal("Source discovery failed: %v", err)
	}
	return files
}

func (forge *Forge) doGenerate(args *config.Args, dialect ir.SourceDialect) {
	files := forge.discoverSources(args, dialect)
	if len(files) == 0 {
		forge.Fatal("No %s source files found under %s", dialect.DisplayName(), args.SrcDir)
	}

	opts := GenerateOptions{
		DbType:            ir.DbType(args.DbType),
		DatabaseName:      args.DatabaseName,
		Dialect:           dialect,
		OutputFile:        args.OutputFile,
		IncludeSampleData: args.SampleData,
	}
	result := forge.Generate(opts, files)
	if result.TableCount == 0 {
		forge.Warning("No structures found in %d file(s); no output written", len(files))
		return
	}

	if err := util.WriteFile(result.Sql, opts.OutputFile); err != nil {
		forge.Fatal("Failed to write %s: %v", opts.OutputFile, err)
	}
	forge.Notice("Wrote %d table definition(s) to %s", result.TableCount, opts.OutputFile)
	if len(result.FileErrors) > 0 {
		forge.Warning("%d file(s) could not be read; see warnings above", len(result.FileErrors))
	}

	if args.Apply {
		forge.doApply(args, result.Sql)
	}
}

func (forge *Forge) doApply(args *config.Args, script string) {
	conn, err := live.Connect(live.ConnParams{
		Host:     args.DbHost,
		Port:     args.DbPort,
		User:     args.DbUser,
		Password: args.DbPassword,
	})
	if err != nil {
		forge.Fatal("Connection failed: %v", err)
	}
	defer conn.Close()

	count, err := live.Apply(conn, script)
	if err != nil {
		forge.Fatal("Apply failed after %d statement(s): %v", count, err)
	}
	forge.Notice("Applied %d statement(s) to %s:%d", count, args.DbHost, args.DbPort)
}

func (forge *Forge) doList(args *config.Args, dialect ir.SourceDialect) {
	files := forge.discoverSources(args, dialect)
	forge.Notice("%s files found (%d):", dialect.DisplayName(), len(files))
	for _, file := range files {
		forge.Notice("  - %s", file)
	}
}

func (forge *Forge) doMakefile(args *config.Args, dialect ir.SourceDialect) {
	content, err := buildfile.Makefile(buildfile.Options{
		Target:  args.Makefile,
		Dialect: dialect,
		Arch:    args.Arch,
		Flags:   forge.settings.CompilerFlags[dialect.DisplayName()],
	})
	if err != nil {
		forge.Fatal("Makefile generation failed: %v", err)
	}
	if err := util.WriteFile(content, "Makefile"); err != nil {
		forge.Fatal("Failed to write Makefile: %v", err)
	}
	forge.Notice("Makefile generated for target %s (%s, arch %s)", args.Makefile, dialect.DisplayName(), args.Arch)
}

func (forge *Forge) doCmake(args *config.Args, dialect ir.SourceDialect) {
	files := forge.discoverSources(args, dialect)
	if len(files) == 0 {
		forge.Fatal("No %s source files found under %s", dialect.DisplayName(), args.SrcDir)
	}
	content, err := buildfile.CMakeLists(buildfile.Options{
		Target:  args.Cmake,
		Dialect: dialect,
		Arch:    args.Arch,
		Flags:   forge.settings.CompilerFlags[dialect.DisplayName()],
	}, files)
	if err != nil {
		forge.Fatal("CMakeLists.txt generation failed: %v", err)
	}
	if err := util.WriteFile(content, "CMakeLists.txt"); err != nil {
		forge.Fatal("Failed to write CMakeLists.txt: %v", err)
	}
	forge.Notice("CMakeLists.txt generated for target %s (%s, arch %s)", args.Cmake, dialect.DisplayName(), args.Arch)
}

func (forge *Forge) doNewProject(args *config.Args, dialect ir.SourceDialect) {
	dir := util.CoalesceStr(args.NewProject, forge.settings.DefaultProjectDir)
	err := buildfile.ScaffoldProject(dir, dialect, forge.settings.AutoCreateDirectories)
	if err != nil {
		forge.Fatal("Project creation failed: %v", err)
	}
	forge.Notice("New %s project '%s' created", dialect.DisplayName(), dir)
}

func (forge *Forge) doInitConfig(args *config.Args) {
	path := util.CoalesceStr(args.ConfigFile, config.DefaultSettingsFile)
	if err := config.SaveSettings(path, forge.settings); err != nil {
		forge.Fatal("Failed to save settings: %v", err)
	}
	forge.Notice("Settings saved to %s", path)
}
