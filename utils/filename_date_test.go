package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriodLabel(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		ok       bool
	}{
		{"day first with dots", "Report_31.12.2024.pdf", "31.12.2024", true},
		{"day first with dashes", "nakit-akis-30-06-2023.pdf", "30.06.2023", true},
		{"year first", "2024.03.31_bilanco.pdf", "31.03.2024", true},
		{"year first with dashes", "statement 2023-09-30.pdf", "30.09.2023", true},
		{"single digit parts are padded", "rapor_1.3.2024.pdf", "01.03.2024", true},
		{"directory is ignored", "/tmp/2020.01.01/ReportQ4.pdf", "", false},
		{"no date", "ReportQ4.pdf", "", false},
		{"impossible date", "Report_31.02.2024.pdf", "", false},
		{"month out of range", "Report_10.13.2024.pdf", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePeriodLabel(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodLabelFallsBackToFilename(t *testing.T) {
	assert.Equal(t, "31.12.2024", PeriodLabel("Report_31.12.2024.pdf"))
	assert.Equal(t, "ReportQ4.pdf", PeriodLabel("ReportQ4.pdf"))
}

func TestParsePeriodLabel(t *testing.T) {
	got, ok := ParsePeriodLabel("31.12.2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParsePeriodLabel("ReportQ4.pdf")
	assert.False(t, ok)
}
