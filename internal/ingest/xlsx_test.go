package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/grapmap-dev/grapmap/internal/model"
)

func writeWorkbook(t *testing.T, records [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rec))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestXLSXParse(t *testing.T) {
	buf := writeWorkbook(t, [][]string{
		{"Account Code", "Account Description", "Debit Balance", "Credit Balance"},
		{"1000", "Bank - Current Account", "100000.00", ""},
		{"2000", "Trade Creditors", "", "40000.00"},
	})

	result, err := (&XLSXParser{}).Parse(buf)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "1000", result.Rows[0].AccountCode)
	assert.True(t, result.Rows[0].Amount.Equal(dec("100000")))
	assert.Equal(t, model.SideDebit, result.Rows[0].Side)
	assert.Equal(t, model.SideCredit, result.Rows[1].Side)

	// The same data through the CSV parser yields the same rows.
	fromCSV := parseCSV(t, strings.Join([]string{
		"Account Code,Account Description,Debit Balance,Credit Balance",
		"1000,Bank - Current Account,100000.00,",
		"2000,Trade Creditors,,40000.00",
	}, "\n"))
	require.Len(t, fromCSV.Rows, 2)
	for i := range result.Rows {
		assert.Equal(t, fromCSV.Rows[i].AccountCode, result.Rows[i].AccountCode)
		assert.Equal(t, fromCSV.Rows[i].Label, result.Rows[i].Label)
		assert.True(t, fromCSV.Rows[i].Amount.Equal(result.Rows[i].Amount))
		assert.Equal(t, fromCSV.Rows[i].Side, result.Rows[i].Side)
	}
}

func TestXLSXParseNotAWorkbook(t *testing.T) {
	_, err := (&XLSXParser{}).Parse(bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)
}

func TestParseFileAndScan(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tb.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"Account Code,Account Description,Debit,Credit\n1000,Bank,50,\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	result, err := DefaultRegistry().ParseFile(csvPath)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	_, err = DefaultRegistry().ParseFile(filepath.Join(dir, "notes.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, csvPath, files[0])

	none, err := Scan(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, none)
}
