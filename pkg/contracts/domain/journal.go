package domain

// RawTable represents the unmodified contents of one Sales Journal worksheet.
// The first spreadsheet row is kept as Headers; the remaining rows may be
// ragged (trailing empty cells are not padded by the reader).
type RawTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ColumnCount returns the width of the header row, which defines the table's
// column count regardless of how wide individual data rows are.
func (t RawTable) ColumnCount() int {
	return len(t.Headers)
}

// FilteredRow is one surviving row of a filtered table: the unit category
// paired with its cleaned, non-negative rent value.
type FilteredRow struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// FilteredTable is the two-column result of applying the unit filter to one
// RawTable. When Placeholder is true the table holds the single sentinel row
// emitted for inputs with no qualifying data; otherwise the final row is the
// synthetic "Total Rent" sum.
type FilteredTable struct {
	CategoryHeader string        `json:"category_header"`
	ValueHeader    string        `json:"value_header"`
	Rows           []FilteredRow `json:"rows"`
	Placeholder    bool          `json:"placeholder"`
}

// HasHeaders reports whether the source table's column names were available
// to preserve. The schema-guard placeholder carries none.
func (t FilteredTable) HasHeaders() bool {
	return t.CategoryHeader != "" || t.ValueHeader != ""
}

// Total returns the value of the trailing total row, or 0 for a placeholder.
func (t FilteredTable) Total() float64 {
	if t.Placeholder || len(t.Rows) == 0 {
		return 0
	}
	return t.Rows[len(t.Rows)-1].Value
}
