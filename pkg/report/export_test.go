package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.csv")
	require.NoError(t, Export(path, testTopics()))

	fh, err := os.Open(path) //nolint:gosec // test file
	require.NoError(t, err)
	defer fh.Close()
	records, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Go generics tutorial for beginners", records[1][1])
	assert.Equal(t, "Tutorial", records[1][3])
	assert.Equal(t, "83.6", records[1][4])
	assert.Equal(t, "go, generics", records[1][12])
	assert.Equal(t, "Comparison", records[2][3])
}

func TestExport_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.xlsx")
	require.NoError(t, Export(path, testTopics()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "title", rows[0][1])
	assert.Equal(t, "Go generics tutorial for beginners", rows[1][1])
	assert.Equal(t, "Rust vs Go in 2025", rows[2][1])
	assert.Equal(t, "High", rows[2][10])
}

func TestExport_BadPath(t *testing.T) {
	err := Export(filepath.Join(t.TempDir(), "missing", "topics.csv"), testTopics())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create export file")
}
