package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "sjcli/internal/errors"
)

// writeWorkbook creates an .xlsx fixture whose first sheet holds rows.
func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cellRef, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func journalRows() [][]interface{} {
	return [][]interface{}{
		{"Date", "Unit", "Tenant", "Memo", "Account", "Amount"},
		{"2024-03-01", "G-204", "Acme", "rent", "4000", "($1,250.00)"},
		{"2024-03-02", "A-101", "Beta", "rent", "4000", "$900.00"},
	}
}

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"xlsx with prefix", "Sales Journal for March 2024.xlsx", true},
		{"xls with prefix", "Sales Journal for March 2024.xls", true},
		{"uppercase extension", "Sales Journal for March 2024.XLSX", true},
		{"missing prefix", "Journal for March 2024.xlsx", false},
		{"prefix is case-sensitive", "sales journal for March 2024.xlsx", false},
		{"wrong extension", "Sales Journal for March 2024.csv", false},
		{"office lock file", "~$Sales Journal for March 2024.xlsx", false},
		{"prefix only", "Sales Journal for .xlsx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligible(tt.fileName))
		})
	}
}

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"month and year", "Sales Journal for March 2024.xlsx", "March 2024"},
		{"another month", "Sales Journal for April 2024.xls", "April 2024"},
		{"pattern mismatch falls back to file name", "Sales Journal for Q1 2024.xlsx", "Sales Journal for Q1 2024.xlsx"},
		{"two-digit year falls back", "Sales Journal for March 24.xlsx", "Sales Journal for March 24.xlsx"},
		{"extra words after year still match", "Sales Journal for March 2024 (final).xlsx", "March 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveLabel(tt.fileName))
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "Sales Journal for March 2024.xlsx"), journalRows())
	writeWorkbook(t, filepath.Join(dir, "Sales Journal for April 2024.xlsx"), journalRows())
	writeWorkbook(t, filepath.Join(dir, "Expenses for March 2024.xlsx"), journalRows())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	tables, err := Load(dir)
	require.NoError(t, err)

	assert.Len(t, tables, 2)
	assert.Contains(t, tables, "March 2024")
	assert.Contains(t, tables, "April 2024")

	march := tables["March 2024"]
	assert.Equal(t, []string{"Date", "Unit", "Tenant", "Memo", "Account", "Amount"}, march.Headers)
	require.Len(t, march.Rows, 2)
	assert.Equal(t, "G-204", march.Rows[0][1])
	assert.Equal(t, "($1,250.00)", march.Rows[0][5])
}

func TestLoad_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Sales Journal for March 2024.xlsx")
	writeWorkbook(t, path, journalRows())

	tables, err := Load(path)
	require.NoError(t, err)

	require.Len(t, tables, 1)
	assert.Equal(t, 6, tables["March 2024"].ColumnCount())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	ineligible := filepath.Join(dir, "report.xlsx")
	writeWorkbook(t, ineligible, journalRows())

	empty := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantType apperrors.ErrorType
	}{
		{"nonexistent path", filepath.Join(dir, "missing.xlsx"), apperrors.ErrTypeInvalidPath},
		{"ineligible single file", ineligible, apperrors.ErrTypeInvalidPath},
		{"directory without eligible files", empty, apperrors.ErrTypeNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestLoad_CorruptWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Sales Journal for March 2024.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing), "got %v", err)
}

func TestLoad_EmptySheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Sales Journal for May 2024.xlsx")
	writeWorkbook(t, path, nil)

	tables, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, tables["May 2024"].ColumnCount())
}
