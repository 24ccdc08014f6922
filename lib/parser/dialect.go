package parser

import (
	"regexp"
	"strings"

	"github.com/schemaforge/schemaforge/lib/ir"
)

// lineFilter reports whether a body line should be rejected as a field
// candidate.
type lineFilter func(line string) bool

// dialectRules captures a dialect's field heuristics as data so that a new
// dialect is a new table entry, not new control flow.
type dialectRules struct {
	// blockStart locates the construct keyword. For C++/Java it captures the
	// type name; for C the name trails the closing brace instead.
	blockStart *regexp.Regexp
	// nameAfterBlock extracts the type name following the block, C style
	// ("typedef struct { ... } Name;"). Nil when blockStart captures the name.
	nameAfterBlock *regexp.Regexp
	// reject holds the ordered candidate-line rejection predicates.
	reject []lineFilter
	// stripTokens are modifier tokens removed before tokenizing.
	stripTokens []string
	// rejectTokens skip the whole line if still present after stripping.
	rejectTokens []string
}

func noStatementTerminator(line string) bool {
	return !strings.Contains(line, ";")
}

func hasParameterList(line string) bool {
	return strings.Contains(line, "(")
}

// statement keywords can open a statement that sits at field depth, e.g. a
// one-line method body whose braces balance within the line; such lines are
// never field declarations
var statementKeywords = map[string]bool{
	"return":   true,
	"if":       true,
	"else":     true,
	"for":      true,
	"while":    true,
	"switch":   true,
	"case":     true,
	"break":    true,
	"continue": true,
	"throw":    true,
	"new":      true,
	"delete":   true,
	"this":     true,
	"super":    true,
}

func startsWithStatementKeyword(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && statementKeywords[fields[0]]
}

var dialectTable = map[ir.SourceDialect]*dialectRules{
	ir.DialectC: {
		blockStart:     regexp.MustCompile(`typedef\s+struct\b`),
		nameAfterBlock: regexp.MustCompile(`^\s*(\w+)\s*;`),
		reject:         []lineFilter{noStatementTerminator},
	},
	ir.DialectCpp: {
		blockStart:   regexp.MustCompile(`\bclass\s+(\w+)`),
		reject:       []lineFilter{noStatementTerminator, hasParameterList, startsWithStatementKeyword},
		stripTokens:  []string{"public:", "private:", "protected:", "public", "private", "protected"},
		rejectTokens: []string{"static", "const"},
	},
	ir.DialectJava: {
		blockStart:  regexp.MustCompile(`\bpublic\s+class\s+(\w+)`),
		reject:      []lineFilter{noStatementTerminator, hasParameterList, startsWithStatementKeyword},
		stripTokens: []string{"public", "private", "protected", "static", "final", "const"},
	},
}
