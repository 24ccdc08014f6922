package ir

// SourceDialect identifies which type-declaration syntax a source file uses.
type SourceDialect string

const (
	DialectUnknown SourceDialect = ""
	DialectC       SourceDialect = "c"
	DialectCpp     SourceDialect = "cpp"
	DialectJava    SourceDialect = "java"
)

// Construct names the declaration construct the dialect parses, for use in
// generated table comments, e.g. "Generated from C struct Person".
func (dialect SourceDialect) Construct() string {
	switch dialect {
	case DialectC:
		return "C struct"
	case DialectCpp:
		return "C++ class"
	case DialectJava:
		return "Java class"
	}
	return "declaration"
}

// DisplayName is the human-facing language name, and doubles as the key for
// per-language compiler flags in persisted settings.
func (dialect SourceDialect) DisplayName() string {
	switch dialect {
	case DialectC:
		return "C"
	case DialectCpp:
		return "C++"
	case DialectJava:
		return "Java"
	}
	return string(dialect)
}

func NewSourceDialect(s string) SourceDialect {
	switch s {
	case "c", "C":
		return DialectC
	case "cpp", "c++", "C++", "cxx":
		return DialectCpp
	case "java", "Java":
		return DialectJava
	}
	return DialectUnknown
}

// DbType is the target database flavor. Both members of the MySQL family
// render identical DDL; the value matters only for connection defaults.
type DbType string

const (
	DbTypeMysql   DbType = "mysql"
	DbTypeMariadb DbType = "mariadb"
)

// NewDbType validates a database flavor string; ok is false for anything
// outside the MySQL family.
func NewDbType(s string) (DbType, bool) {
	switch DbType(s) {
	case DbTypeMysql, DbTypeMariadb:
		return DbType(s), true
	}
	return "", false
}
