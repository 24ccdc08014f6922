package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/schemaforge/schemaforge/lib/ir"
	"github.com/schemaforge/schemaforge/lib/util"
)

type Parser struct {
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads a source file and extracts all type declarations matching
// the dialect. A file that cannot be read is an error for that file only;
// a file with no matching declarations yields an empty slice and no error.
func (p *Parser) ParseFile(path string, dialect ir.SourceDialect) ([]*ir.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return p.ParseSource(string(content), dialect), nil
}

// ParseSource extracts every type-declaration block from the source text.
// Tables appear in declaration order; a declaration with no parseable fields
// is dropped.
func (p *Parser) ParseSource(source string, dialect ir.SourceDialect) []*ir.Table {
	rules := dialectTable[dialect]
	if rules == nil {
		return nil
	}

	var tables []*ir.Table
	offset := 0
	for offset < len(source) {
		loc := rules.blockStart.FindStringSubmatchIndex(source[offset:])
		if loc == nil {
			break
		}
		name := ""
		if len(loc) >= 4 && loc[2] >= 0 {
			name = source[offset+loc[2] : offset+loc[3]]
		}
		body, blockEnd, ok := scanBlock(source, offset+loc[1])
		if !ok {
			// no balanced body after the keyword; skip past the match
			offset += loc[1]
			continue
		}
		if rules.nameAfterBlock != nil {
			m := rules.nameAfterBlock.FindStringSubmatch(source[blockEnd:])
			if m == nil {
				offset = blockEnd
				continue
			}
			name = m[1]
		}
		if name != "" {
			if table := buildTable(name, body, dialect, rules); table != nil {
				tables = append(tables, table)
			}
		}
		offset = blockEnd
	}
	return tables
}

// scanBlock locates the braces-delimited body starting at or after from.
// It tracks brace depth so nested blocks (inner structs, method bodies) stay
// inside the body instead of truncating it, and only closes at depth zero.
// A semicolon before the opening brace means the declaration has no body.
func scanBlock(source string, from int) (body string, end int, ok bool) {
	open := -1
	for i := from; i < len(source); i++ {
		if source[i] == ';' {
			return "", 0, false
		}
		if source[i] == '{' {
			open = i
			break
		}
	}
	if open < 0 {
		return "", 0, false
	}
	depth := 0
	for i := open; i < len(source); i++ {
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return source[open+1 : i], i + 1, true
			}
		}
	}
	// unbalanced to end of input
	return "", 0, false
}

func buildTable(name, body string, dialect ir.SourceDialect, rules *dialectRules) *ir.Table {
	table := &ir.Table{
		Name:        strings.ToLower(name),
		Description: fmt.Sprintf("Generated from %s %s", dialect.Construct(), name),
	}
	// only lines at depth zero are field candidates: nested brace regions are
	// method or initializer bodies, so their local declarations never become
	// columns
	depth := 0
	for _, line := range strings.Split(body, "\n") {
		atFieldDepth := depth == 0
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			depth = 0
		}
		if !atFieldDepth {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
			continue
		}
		for _, decl := range splitDeclarations(line) {
			if col := parseFieldLine(decl, dialect, rules); col != nil {
				table.Columns = append(table.Columns, col)
			}
		}
	}
	if len(table.Columns) == 0 {
		return nil
	}
	return table
}

// splitDeclarations breaks a body line carrying several ';'-terminated
// declarations into one candidate per declarator. Lines with at most one
// terminator pass through untouched.
func splitDeclarations(line string) []string {
	if strings.Count(line, ";") <= 1 {
		return []string{line}
	}
	parts := strings.Split(line, ";")
	decls := make([]string, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i < len(parts)-1 {
			part += ";"
		}
		decls = append(decls, part)
	}
	return decls
}

// parseFieldLine turns one candidate body line into a column, or nil if the
// line is not a field declaration. Skipping is silent: an unparseable line is
// not an error.
func parseFieldLine(line string, dialect ir.SourceDialect, rules *dialectRules) *ir.Column {
	for _, reject := range rules.reject {
		if reject(line) {
			return nil
		}
	}

	// drop any initializer tail before tokenizing
	if idx := strings.IndexByte(line, '='); idx >= 0 {
		line = line[:idx]
	}

	tokens := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
	tokens = dropTokens(tokens, rules.stripTokens)
	for _, tok := range rules.rejectTokens {
		if containsToken(tokens, tok) {
			return nil
		}
	}
	if len(tokens) < 2 {
		return nil
	}

	name := cleanFieldName(tokens[len(tokens)-1])
	if !identifierPattern.MatchString(name) {
		return nil
	}
	return &ir.Column{
		Name: name,
		Type: ResolveType(dialect, tokens[0]),
	}
}

func dropTokens(tokens []string, drop []string) []string {
	if len(drop) == 0 {
		return tokens
	}
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stringsContains(drop, tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

func containsToken(tokens []string, target string) bool {
	return stringsContains(tokens, target)
}

func stringsContains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// cleanFieldName strips the punctuation a declarator can carry: trailing
// semicolons, array brackets, and pointer/reference decoration.
func cleanFieldName(token string) string {
	name := strings.TrimSuffix(token, ";")
	name = util.TrimBracketSuffix(name)
	name = strings.TrimLeft(name, "*&")
	return name
}
