// Package aggregate applies the unit filter to raw journal tables and
// appends the rent total.
package aggregate

import (
	"math"
	"strconv"
	"strings"

	apperrors "sjcli/internal/errors"
	"sjcli/pkg/contracts/domain"
)

const (
	// PlaceholderCategory is the sentinel emitted when a table has no
	// qualifying data.
	PlaceholderCategory = "no units of containing G, H, or I"

	// TotalCategory labels the synthetic sum row.
	TotalCategory = "Total Rent"

	categoryCol = 1
	valueCol    = 5
	unitMarkers = "GHI"
)

// valueCleaner strips accounting-format noise from value cells: dollar
// signs, thousands separators and the parentheses used for negatives.
var valueCleaner = strings.NewReplacer("$", "", ",", "", "(", "", ")", "")

// FilterUnits produces the filtered table for every raw table in the input
// mapping, keyed by the same labels. Each entry is processed independently;
// the first unparseable value cell aborts the whole batch.
func FilterUnits(tables map[string]domain.RawTable) (map[string]domain.FilteredTable, error) {
	filtered := make(map[string]domain.FilteredTable, len(tables))
	for label, table := range tables {
		ft, err := filterTable(label, table)
		if err != nil {
			return nil, err
		}
		filtered[label] = ft
	}
	return filtered, nil
}

// filterTable selects rows whose category contains 'G', 'H' or 'I', cleans
// their value column and appends the total row. Tables with fewer than six
// columns, or with no surviving rows, yield the placeholder.
func filterTable(label string, table domain.RawTable) (domain.FilteredTable, error) {
	if table.ColumnCount() <= valueCol {
		return placeholder("", ""), nil
	}

	catHeader := table.Headers[categoryCol]
	valHeader := table.Headers[valueCol]

	var rows []domain.FilteredRow
	var sum float64

	for i, raw := range table.Rows {
		category := cell(raw, categoryCol)
		if !strings.ContainsAny(category, unitMarkers) {
			continue
		}

		value := strings.TrimSpace(cell(raw, valueCol))
		if value == "" {
			continue
		}

		cleaned := strings.TrimSpace(valueCleaner.Replace(value))
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			// Spreadsheet row number: +1 for the header, +1 for 1-based.
			return domain.FilteredTable{}, apperrors.NewValueParseError(label, value, i+2, err)
		}

		parsed = math.Abs(parsed)
		if parsed == 0 {
			continue
		}

		rows = append(rows, domain.FilteredRow{Category: category, Value: parsed})
		sum += parsed
	}

	if len(rows) == 0 {
		return placeholder(catHeader, valHeader), nil
	}

	rows = append(rows, domain.FilteredRow{Category: TotalCategory, Value: sum})
	return domain.FilteredTable{
		CategoryHeader: catHeader,
		ValueHeader:    valHeader,
		Rows:           rows,
	}, nil
}

func placeholder(catHeader, valHeader string) domain.FilteredTable {
	return domain.FilteredTable{
		CategoryHeader: catHeader,
		ValueHeader:    valHeader,
		Rows:           []domain.FilteredRow{{Category: PlaceholderCategory, Value: 0}},
		Placeholder:    true,
	}
}

// cell returns the idx-th cell of a possibly ragged row, or "" when the row
// is too short.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
