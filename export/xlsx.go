package export

import (
	"fmt"
	"io"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	SheetPivot      = "Pivot"
	SheetComparison = "Karşılaştırma"
	SheetDocuments  = "Belgeler"
)

// WriteXLSX writes a workbook with the pivot, comparison and per-document sheets.
// Amounts are stored as numbers; absent sections are left blank.
func WriteXLSX(w io.Writer, resp *dto.AnalysisResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPivot); err != nil {
		return fmt.Errorf("failed to create pivot sheet: %w", err)
	}
	for _, name := range []string{SheetComparison, SheetDocuments} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := writePivotSheet(f, resp.Pivot, header); err != nil {
		return err
	}
	if err := writeComparisonSheet(f, resp.Comparison, header); err != nil {
		return err
	}
	if err := writeDocumentsSheet(f, resp.Documents, header); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func writePivotSheet(f *excelize.File, table dto.PivotTable, header int) error {
	head := []interface{}{"Section"}
	for _, c := range table.Columns {
		head = append(head, c)
	}
	rows := [][]interface{}{head}
	for _, r := range table.Rows {
		row := []interface{}{r.Label}
		for _, v := range r.Cells {
			row = append(row, cellValue(v))
		}
		rows = append(rows, row)
	}
	return writeSheet(f, SheetPivot, rows, len(head), header)
}

func writeComparisonSheet(f *excelize.File, table dto.ComparisonTable, header int) error {
	head := []interface{}{"Section", "From", "To", "Previous", "Current", "Absolute change", "Percent change"}
	rows := [][]interface{}{head}
	for _, r := range table.Rows {
		var pct interface{} = r.PercentDisplay
		if r.PercentChange.Finite() {
			pct = float64(r.PercentChange)
		}
		rows = append(rows, []interface{}{r.Label, r.From, r.To, r.Previous, r.Current, r.AbsoluteChange, pct})
	}
	return writeSheet(f, SheetComparison, rows, len(head), header)
}

func writeDocumentsSheet(f *excelize.File, docs []dto.DocumentResult, header int) error {
	head := []interface{}{"Source", "Label", "Unit", "Error"}
	for _, key := range dto.AllSections() {
		head = append(head, string(key))
	}
	rows := [][]interface{}{head}
	for _, d := range docs {
		row := []interface{}{d.Source, d.Label, "", d.Error}
		if d.Record != nil {
			row[2] = d.Record.Signals.Unit
		}
		for _, key := range dto.AllSections() {
			if d.Record == nil {
				row = append(row, nil)
				continue
			}
			row = append(row, cellValue(d.Record.Get(key)))
		}
		rows = append(rows, row)
	}
	return writeSheet(f, SheetDocuments, rows, len(head), header)
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, cols, header int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	lastCol, _, err := excelize.SplitCellName(last)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 48); err != nil {
		return err
	}
	if cols > 1 {
		return f.SetColWidth(sheet, "B", lastCol, 18)
	}
	return nil
}

func cellValue(v dto.Value) interface{} {
	if !v.Present {
		return nil
	}
	return v.Amount
}
