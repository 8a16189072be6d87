package utils

import (
	"globe/machop_loan_ledger/internal/pkg/consts"
	"regexp"
	"strings"
	"time"
)

// ValidateSerialNumber trims and checks a human-assigned loan serial number.
func ValidateSerialNumber(serialNumber string) (string, error) {
	trimmed := strings.TrimSpace(serialNumber)
	if trimmed == "" {
		return "", consts.ErrorInvalidSerialNumber
	}

	validSerial := regexp.MustCompile(consts.ValidSerialNumberStr)
	if !validSerial.MatchString(trimmed) {
		return "", consts.ErrorInvalidSerialNumber
	}

	return trimmed, nil
}

// ParseDate parses a wire-format date (2006-01-02) into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	validDate := regexp.MustCompile(consts.DateRegexStr)
	if !validDate.MatchString(value) {
		return time.Time{}, consts.ErrorInvalidDate
	}

	parsed, err := time.ParseInLocation(consts.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, consts.ErrorInvalidDate
	}

	return parsed, nil
}

// ParseMonth parses a month key (2006-01) into the first day of that month.
func ParseMonth(value string) (time.Time, error) {
	validMonth := regexp.MustCompile(consts.MonthRegexStr)
	if !validMonth.MatchString(value) {
		return time.Time{}, consts.ErrorInvalidDate
	}

	parsed, err := time.ParseInLocation(consts.MonthLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, consts.ErrorInvalidDate
	}

	return parsed, nil
}

// IsValidObjectIDHex reports whether the value looks like a Mongo object id.
func IsValidObjectIDHex(value string) bool {
	return regexp.MustCompile(consts.ObjectIDRegexStr).MatchString(value)
}
