package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// PeriodLayout is the layout of resolved period labels (DD.MM.YYYY).
const PeriodLayout = "02.01.2006"

var (
	dayFirstDate  = regexp.MustCompile(`(?:^|\D)(\d{1,2})[.\-](\d{1,2})[.\-](\d{4})(?:\D|$)`)
	yearFirstDate = regexp.MustCompile(`(?:^|\D)(\d{4})[.\-](\d{1,2})[.\-](\d{1,2})(?:\D|$)`)
)

// ResolvePeriodLabel derives a DD.MM.YYYY label from a file name such as
// "Report_31.12.2024.pdf" or "2024-12-31_nakit.pdf". It returns false when the name
// carries no valid date.
func ResolvePeriodLabel(filename string) (string, bool) {
	name := filepath.Base(filename)

	if m := dayFirstDate.FindStringSubmatch(name); m != nil {
		if label, ok := formatDate(m[3], m[2], m[1]); ok {
			return label, true
		}
	}
	if m := yearFirstDate.FindStringSubmatch(name); m != nil {
		if label, ok := formatDate(m[1], m[2], m[3]); ok {
			return label, true
		}
	}
	return "", false
}

// PeriodLabel returns the resolved date label, or the file name itself when no date
// can be found in it.
func PeriodLabel(filename string) string {
	if label, ok := ResolvePeriodLabel(filename); ok {
		return label
	}
	return filename
}

// ParsePeriodLabel parses a DD.MM.YYYY label.
func ParsePeriodLabel(label string) (time.Time, bool) {
	t, err := time.Parse(PeriodLayout, label)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31.02 into March
	if t.Day() != d || int(t.Month()) != m {
		return "", false
	}
	return fmt.Sprintf("%02d.%02d.%04d", d, m, y), true
}
