package ir

// Column is one field extracted from a source declaration.
//
// ForeignKey is model capability only: no dialect rule currently populates it,
// the renderer simply honors it when constructed directly. A column flagged
// ForeignKey without a ForeignTable is treated as not a foreign key.
type Column struct {
	Name         string
	Type         DataType
	PrimaryKey   bool
	ForeignKey   bool
	ForeignTable string
	Default      string
	Description  string
}

func (col *Column) HasForeignKey() bool {
	return col.ForeignKey && col.ForeignTable != ""
}
