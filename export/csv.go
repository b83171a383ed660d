package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/gocarina/gocsv"
)

// PivotCSVRow is one pivot cell in long form. Value is empty when the section was not found.
type PivotCSVRow struct {
	Period  string `csv:"period"`
	Source  string `csv:"source"`
	Section string `csv:"section"`
	Label   string `csv:"label"`
	Value   string `csv:"value"`
}

type ComparisonCSVRow struct {
	Section        string  `csv:"section"`
	Label          string  `csv:"label"`
	From           string  `csv:"from"`
	To             string  `csv:"to"`
	Previous       float64 `csv:"previous"`
	Current        float64 `csv:"current"`
	AbsoluteChange float64 `csv:"absolute_change"`
	PercentChange  string  `csv:"percent_change"`
}

// Table names accepted by WriteCSV.
const (
	TablePivot      = "pivot"
	TableComparison = "comparison"
)

// WriteCSV writes either the pivot (long form, one row per period and section) or the
// comparison table.
func WriteCSV(w io.Writer, resp *dto.AnalysisResponse, table string) error {
	switch table {
	case "", TablePivot:
		return marshalCSV(w, PivotRows(resp))
	case TableComparison:
		return marshalCSV(w, ComparisonRows(resp.Comparison))
	default:
		return fmt.Errorf("unknown table %q (pivot, comparison)", table)
	}
}

func marshalCSV(w io.Writer, rows interface{}) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// PivotRows flattens the pivot table. Raw numbers are written so spreadsheets can parse them.
func PivotRows(resp *dto.AnalysisResponse) []*PivotCSVRow {
	sources := make(map[string]string, len(resp.Periods))
	for _, p := range resp.Periods {
		sources[p.Label] = p.Source
	}

	var rows []*PivotCSVRow
	for col, period := range resp.Pivot.Columns {
		for _, r := range resp.Pivot.Rows {
			row := &PivotCSVRow{
				Period:  period,
				Source:  sources[period],
				Section: string(r.Section),
				Label:   r.Label,
			}
			if v := r.Cells[col]; v.Present {
				row.Value = strconv.FormatFloat(v.Amount, 'f', -1, 64)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func ComparisonRows(table dto.ComparisonTable) []*ComparisonCSVRow {
	rows := make([]*ComparisonCSVRow, 0, len(table.Rows))
	for _, r := range table.Rows {
		pct := r.PercentDisplay
		if r.PercentChange.Finite() {
			pct = strconv.FormatFloat(float64(r.PercentChange), 'f', 2, 64)
		}
		rows = append(rows, &ComparisonCSVRow{
			Section:        string(r.Section),
			Label:          r.Label,
			From:           r.From,
			To:             r.To,
			Previous:       r.Previous,
			Current:        r.Current,
			AbsoluteChange: r.AbsoluteChange,
			PercentChange:  pct,
		})
	}
	return rows
}
