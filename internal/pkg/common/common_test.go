package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteCSVFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "collection_report.csv")
	records := [][]string{
		{"serialNumber", "customerName", "amount"},
		{"A-100", "Dela Cruz", "100.00"},
	}

	err := WriteCSVFile(filename, records)
	assert.NoError(t, err)

	content, err := os.ReadFile(filename)
	assert.NoError(t, err)
	assert.Equal(t, "serialNumber,customerName,amount\nA-100,Dela Cruz,100.00\n", string(content))
}

func TestConvertUTCToPHT(t *testing.T) {
	utc := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	pht := ConvertUTCToPHT(utc)

	assert.Equal(t, 4, pht.Hour())
	assert.Equal(t, 2, pht.Day())
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2024, 2, 1, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}
