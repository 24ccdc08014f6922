package ir

// DataType is a SQL column type. Size is a length/precision qualifier and is
// only meaningful for types that accept a parenthesized qualifier; zero means
// no qualifier is rendered.
type DataType struct {
	Name     string
	Size     int
	Nullable bool
}

// TypeCategory buckets SQL types for synthesized sample values.
type TypeCategory int

const (
	CategoryOther TypeCategory = iota
	CategoryInteger
	CategoryText
	CategoryBoolean
	CategoryFloat
)

func (dt DataType) Category() TypeCategory {
	switch dt.Name {
	case "TINYINT", "SMALLINT", "INT", "BIGINT":
		return CategoryInteger
	case "CHAR", "VARCHAR", "TEXT", "LONGTEXT":
		return CategoryText
	case "BOOLEAN":
		return CategoryBoolean
	case "FLOAT", "DOUBLE", "REAL", "DECIMAL":
		return CategoryFloat
	}
	return CategoryOther
}
