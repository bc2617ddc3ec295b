// Package journal discovers and loads Sales Journal workbooks.
//
// A source is eligible when its file name starts with "Sales Journal for "
// and carries a spreadsheet extension (.xls or .xlsx). Each eligible file
// is keyed by a label derived from its name, "March 2024" for
// "Sales Journal for March 2024.xlsx", falling back to the full file name
// when the pattern does not match.
package journal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "sjcli/internal/errors"
	"sjcli/pkg/contracts/domain"
)

// FilePrefix is the literal every eligible source file name starts with.
const FilePrefix = "Sales Journal for "

var labelPattern = regexp.MustCompile(`Sales Journal for ([A-Za-z]+ \d{4})`)

// IsEligible reports whether name denotes a loadable Sales Journal file.
// The prefix match is case-sensitive, the extension match is not.
func IsEligible(name string) bool {
	if !strings.HasPrefix(name, FilePrefix) {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xls", ".xlsx":
		return true
	}
	return false
}

// DeriveLabel extracts "<Month> <Year>" from an eligible file name, or
// returns the name unchanged when the pattern does not match.
func DeriveLabel(name string) string {
	if m := labelPattern.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// Load reads Sales Journal workbooks from path, which may be a single file
// or a directory. Directory mode enumerates immediate entries only.
// The result maps each derived label to the raw contents of the file's
// first worksheet.
func Load(path string) (map[string]domain.RawTable, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewInvalidPathError(path, err)
	}

	tables := make(map[string]domain.RawTable)

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, apperrors.NewInvalidPathError(path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !IsEligible(entry.Name()) {
				continue
			}
			table, err := readWorkbook(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			label := DeriveLabel(entry.Name())
			slog.Debug("loaded journal file",
				slog.String("file", entry.Name()),
				slog.String("label", label),
				slog.Int("rows", len(table.Rows)))
			tables[label] = table
		}
		if len(tables) == 0 {
			return nil, apperrors.NewNoDataError(path)
		}
		return tables, nil
	}

	name := filepath.Base(path)
	if !IsEligible(name) {
		return nil, apperrors.NewInvalidPathError(path, nil)
	}
	table, err := readWorkbook(path)
	if err != nil {
		return nil, err
	}
	tables[DeriveLabel(name)] = table
	return tables, nil
}

// readWorkbook loads the first worksheet of an Excel file into a RawTable.
// The first row becomes the header row; an empty sheet yields a zero-column
// table, which the downstream schema guard turns into a placeholder.
func readWorkbook(path string) (domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.RawTable{}, apperrors.NewParsingError(
			fmt.Sprintf("failed to open workbook %q", path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.RawTable{}, apperrors.NewParsingError(
			fmt.Sprintf("failed to read sheet %q of %q", sheet, path), err)
	}

	if len(rows) == 0 {
		return domain.RawTable{}, nil
	}
	return domain.RawTable{Headers: rows[0], Rows: rows[1:]}, nil
}
