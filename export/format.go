// Package export renders analysis results as a terminal table, JSON, CSV or XLSX.
package export

import (
	"fmt"
	"strings"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
)

// MissingPlaceholder is shown for sections that were not found.
const MissingPlaceholder = "-"

// ParseFormat accepts the format names case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported format %q (table, json, csv, xlsx)", s)
	}
}

// ContentType returns the MIME type for downloadable formats.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

// tryFormatter renders lira amounts the Turkish way: 1.234.567,89 ₺
var tryFormatter = money.NewFormatter(money.GetCurrency(money.TRY).Fraction, ",", ".", money.GetCurrency(money.TRY).Grapheme, "1 $")

// FormatAmount renders an amount in lira with Turkish separators.
func FormatAmount(v float64) string {
	return tryFormatter.Format(toMinorUnits(v))
}

// FormatNumber renders an amount with Turkish separators and no currency sign.
func FormatNumber(v float64) string {
	f := money.NewFormatter(2, ",", ".", "", "1")
	return f.Format(toMinorUnits(v))
}

// FormatValue renders a cell, using MissingPlaceholder for absent sections.
func FormatValue(v dto.Value) string {
	if !v.Present {
		return MissingPlaceholder
	}
	return FormatNumber(v.Amount)
}

// FormatPercent renders a percentage rounded half away from zero to two places.
func FormatPercent(p dto.Percent) string {
	if !p.Finite() {
		return p.String()
	}
	return decimal.NewFromFloat(float64(p)).Round(2).StringFixed(2) + "%"
}

func toMinorUnits(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}
