package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// WriteCSVFile writes records to a CSV file.
func WriteCSVFile(filename string, records [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write record: %v", err)
		}
	}

	return nil
}

// ConvertUTCToPHT converts a UTC time to Philippine Time (PHT, UTC+8)
func ConvertUTCToPHT(utcTime time.Time) time.Time {
	loc := time.FixedZone("Asia/Manila", 8*60*60) // PHT is UTC+8

	return utcTime.In(loc)
}

// DayBounds returns the UTC midnight-to-midnight window containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// MonthBounds returns the UTC window for the calendar month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
