package ir

// Table is the dialect-agnostic result of parsing one type declaration.
// Name is always lower-cased; Columns preserve declaration order.
type Table struct {
	Name        string
	Columns     []*Column
	Description string
}

// PrimaryKeyColumns returns the names of all primary-key columns in
// declaration order.
func (t *Table) PrimaryKeyColumns() []string {
	var names []string
	for _, col := range t.Columns {
		if col.PrimaryKey {
			names = append(names, col.Name)
		}
	}
	return names
}
