package buildfile

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/util"
)

// Options select what kind of build file to render.
type Options struct {
	Target  string
	Dialect ir.SourceDialect
	Arch    string // "32", "64", or "native"
	Flags   string // compiler flags, from persisted settings
}

func archFlag(arch string) string {
	switch arch {
	case "32":
		return " -m32"
	case "64":
		return " -m64"
	}
	return ""
}

var ccMakefileTmpl = template.Must(template.New("makefile-cc").Parse(`# Compiler settings
CC = {{.Compiler}}
CFLAGS = {{.Flags}} -I.{{.ArchFlag}}

# Get all source files
SRC = $(wildcard *.{{.SrcExt}})
OBJ = $(patsubst %.{{.SrcExt}},obj/%.o,$(SRC))

# Main target
TARGET = {{.Target}}

# Default rule
all: obj $(TARGET)

# Create obj directory
obj:
	mkdir -p obj

# Link rule
$(TARGET): $(OBJ)
	$(CC) $(OBJ) -o $(TARGET)

# Compile rule
obj/%.o: %.{{.SrcExt}}
	$(CC) $(CFLAGS) -c $< -o $@

# Clean rule
clean:
	rm -rf obj $(TARGET)

.PHONY: all clean obj
`))

var javaMakefileTmpl = template.Must(template.New("makefile-java").Parse(`# Compiler settings
JAVAC = javac
JAVA = java
JFLAGS = {{.Flags}} -d build

# Source files
SOURCES = $(shell find . -name "*.java")
CLASSES = $(SOURCES:%.java=build/%.class)

# Main class
MAIN_CLASS = {{.Target}}

# Default rule
all: build $(CLASSES)

# Create build directory
build:
	mkdir -p build

# Compile rule
build/%.class: %.java
	$(JAVAC) $(JFLAGS) $<

# Run rule
run: all
	$(JAVA) -cp build $(MAIN_CLASS)

# Clean rule
clean:
	rm -rf build

.PHONY: all clean run build
`))

var ccCmakeTmpl = template.Must(template.New("cmake-cc").Parse(`cmake_minimum_required(VERSION 3.10)

# Set project name and language
project({{.Target}} {{.ProjectLang}})

# Set language standard
set(CMAKE_{{.LangStd}})
set(CMAKE_{{.LangStd}}_REQUIRED ON)

# Set compiler flags
add_compile_options({{.CmakeFlags}}){{.ArchBlock}}

# Set output directories
set(CMAKE_RUNTIME_OUTPUT_DIRECTORY ${CMAKE_BINARY_DIR}/bin)
set(CMAKE_LIBRARY_OUTPUT_DIRECTORY ${CMAKE_BINARY_DIR}/lib)
set(CMAKE_ARCHIVE_OUTPUT_DIRECTORY ${CMAKE_BINARY_DIR}/lib)

# Create list of source files
set(SOURCES
    {{.Sources}}
)

# Create executable target
add_executable(${PROJECT_NAME} ${SOURCES})

# Add include directories
target_include_directories(${PROJECT_NAME} PRIVATE
    ${CMAKE_CURRENT_SOURCE_DIR}
)

# Install rules
install(TARGETS ${PROJECT_NAME}
    RUNTIME DESTINATION bin
)
`))

var javaCmakeTmpl = template.Must(template.New("cmake-java").Parse(`cmake_minimum_required(VERSION 3.10)

# Set project name
project({{.Target}} Java)

# Find Java
find_package(Java REQUIRED)
include(UseJava)

# Set Java source files
file(GLOB_RECURSE JAVA_SOURCES "*.java")

# Create jar file
add_jar(${PROJECT_NAME}
    SOURCES ${JAVA_SOURCES}
    ENTRY_POINT {{.Target}}
)

# Install rules
install_jar(${PROJECT_NAME} DESTINATION bin)
`))

// Makefile renders a GNU Makefile for the language and architecture.
func Makefile(opts Options) (string, error) {
	if opts.Dialect == ir.DialectJava {
		return render(javaMakefileTmpl, map[string]string{
			"Target": opts.Target,
			"Flags":  opts.Flags,
		})
	}
	return render(ccMakefileTmpl, map[string]string{
		"Compiler": util.ChooseStr(opts.Dialect == ir.DialectC, "gcc", "g++"),
		"SrcExt":   util.ChooseStr(opts.Dialect == ir.DialectC, "c", "cpp"),
		"Target":   opts.Target,
		"Flags":    util.CoalesceStr(opts.Flags, "-Wall -Wextra"),
		"ArchFlag": archFlag(opts.Arch),
	})
}

// CMakeLists renders a CMakeLists.txt for the language and architecture.
// srcFiles is only consulted for C/C++, where the file list is explicit.
func CMakeLists(opts Options, srcFiles []string) (string, error) {
	if opts.Dialect == ir.DialectJava {
		return render(javaCmakeTmpl, map[string]string{
			"Target": opts.Target,
		})
	}

	archBlock := ""
	if flag := strings.TrimSpace(archFlag(opts.Arch)); flag != "" {
		archBlock = "\n\n# Set architecture targeting\n" +
			"set(CMAKE_C_FLAGS \"${CMAKE_C_FLAGS} " + flag + "\")\n" +
			"set(CMAKE_CXX_FLAGS \"${CMAKE_CXX_FLAGS} " + flag + "\")"
	}

	flags := strings.Fields(util.CoalesceStr(opts.Flags, "-Wall -Wextra"))
	quoted := make([]string, 0, len(flags))
	for _, flag := range flags {
		quoted = append(quoted, `"`+flag+`"`)
	}

	return render(ccCmakeTmpl, map[string]string{
		"Target":      opts.Target,
		"ProjectLang": util.ChooseStr(opts.Dialect == ir.DialectC, "C", "CXX"),
		"LangStd":     util.ChooseStr(opts.Dialect == ir.DialectC, "C_STANDARD 11", "CXX_STANDARD 17"),
		"CmakeFlags":  strings.Join(quoted, " "),
		"ArchBlock":   archBlock,
		"Sources":     strings.Join(srcFiles, " "),
	})
}

func render(tmpl *template.Template, data map[string]string) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "rendering %s", tmpl.Name())
	}
	return buf.String(), nil
}
