// Package report serializes filtered tables into one multi-sheet Excel
// workbook, one sheet per journal label.
package report

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "sjcli/internal/errors"
	"sjcli/pkg/contracts/domain"
)

const (
	// maxSheetNameLen is the sheet-name ceiling imposed by the xlsx format.
	maxSheetNameLen = 31

	filenameSuffix = " unit aggregation report.xlsx"

	// Header fallbacks for placeholder tables that carry no source headers.
	defaultCategoryHeader = "Unit"
	defaultValueHeader    = "Amount"
)

// DefaultFilename returns the conventional report name for today:
// "YYYY-MM-DD unit aggregation report.xlsx".
func DefaultFilename() string {
	return time.Now().Format("2006-01-02") + filenameSuffix
}

// Write creates (or overwrites) the workbook at path with one sheet per
// label. Sheets are written in sorted-label order so repeated runs over the
// same input produce comparable files.
func Write(path string, tables map[string]domain.FilteredTable) error {
	f := excelize.NewFile()
	defer f.Close()

	labels := make([]string, 0, len(tables))
	for label := range tables {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	used := make(map[string]bool)
	for _, label := range labels {
		name := sheetName(label, used)
		used[name] = true

		if _, err := f.NewSheet(name); err != nil {
			return apperrors.NewReportError(fmt.Sprintf("failed to create sheet %q", name), err)
		}
		if err := writeTable(f, name, tables[label]); err != nil {
			return err
		}
		slog.Debug("wrote report sheet",
			slog.String("label", label),
			slog.String("sheet", name),
			slog.Int("rows", len(tables[label].Rows)))
	}

	// Drop the workbook's default sheet unless a label claimed the name.
	if !used["Sheet1"] {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return apperrors.NewReportError("failed to remove default sheet", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewReportError(fmt.Sprintf("failed to save report to %q", path), err)
	}
	return nil
}

// writeTable writes the header row and the table's rows into sheet name.
func writeTable(f *excelize.File, name string, table domain.FilteredTable) error {
	catHeader, valHeader := table.CategoryHeader, table.ValueHeader
	if !table.HasHeaders() {
		catHeader, valHeader = defaultCategoryHeader, defaultValueHeader
	}

	if err := setRow(f, name, 1, catHeader, valHeader); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := setRow(f, name, i+2, row.Category, row.Value); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, category, value interface{}) error {
	for col, v := range []interface{}{category, value} {
		cellRef, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return apperrors.NewReportError("invalid cell coordinates", err)
		}
		if err := f.SetCellValue(sheet, cellRef, v); err != nil {
			return apperrors.NewReportError(fmt.Sprintf("failed to write cell %s!%s", sheet, cellRef), err)
		}
	}
	return nil
}

// sheetName truncates label to the 31-rune sheet-name ceiling. Labels that
// collide after truncation are disambiguated with a " (N)" suffix, itself
// kept within the ceiling.
func sheetName(label string, used map[string]bool) string {
	name := truncate(label, maxSheetNameLen)
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(label, maxSheetNameLen-len(suffix)) + suffix
	}
	return name
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
