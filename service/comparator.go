package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/utils"
)

// Aggregate turns successful document results into periods, in input order. Duplicate
// labels get a " (2)", " (3)" suffix; the result's Label is updated to match.
func Aggregate(results []dto.DocumentResult) []dto.Period {
	used := make(map[string]bool)
	var periods []dto.Period

	for i := range results {
		res := &results[i]
		if !res.OK() {
			continue
		}

		base := res.Label
		label := base
		for n := 2; used[label]; n++ {
			label = fmt.Sprintf("%s (%d)", base, n)
		}
		used[label] = true
		res.Label = label

		period := dto.Period{Label: label, Source: res.Source, Record: *res.Record}
		if date, ok := utils.ParsePeriodLabel(base); ok {
			period.Date = &date
		}
		periods = append(periods, period)
	}
	return periods
}

// SortPeriods orders periods chronologically. Dated periods come first; undated ones
// follow in label order.
func SortPeriods(periods []dto.Period) {
	sort.SliceStable(periods, func(i, j int) bool {
		a, b := periods[i], periods[j]
		switch {
		case a.Date != nil && b.Date != nil:
			if !a.Date.Equal(*b.Date) {
				return a.Date.Before(*b.Date)
			}
		case a.Date != nil:
			return true
		case b.Date != nil:
			return false
		}
		return a.Label < b.Label
	})
}

// BuildPivot lays out one row per section and one column per period. An empty sections
// list means every section.
func BuildPivot(periods []dto.Period, sections []dto.SectionKey) dto.PivotTable {
	if len(sections) == 0 {
		sections = dto.AllSections()
	}

	table := dto.PivotTable{Columns: make([]string, len(periods)), Rows: make([]dto.PivotRow, 0, len(sections))}
	for i, p := range periods {
		table.Columns[i] = p.Label
	}

	for _, key := range sections {
		row := dto.PivotRow{Section: key, Label: key.Label(), Cells: make([]dto.Value, len(periods))}
		for i, p := range periods {
			row.Cells[i] = p.Record.Get(key)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// Compare computes changes between adjacent periods for every section present in both.
func Compare(periods []dto.Period, sections []dto.SectionKey) dto.ComparisonTable {
	if len(sections) == 0 {
		sections = dto.AllSections()
	}

	table := dto.ComparisonTable{Rows: []dto.ComparisonRow{}}
	for i := 1; i < len(periods); i++ {
		prev, curr := periods[i-1], periods[i]
		for _, key := range sections {
			pv, cv := prev.Record.Get(key), curr.Record.Get(key)
			if !pv.Present || !cv.Present {
				continue
			}
			pct := PercentChange(pv.Amount, cv.Amount)
			table.Rows = append(table.Rows, dto.ComparisonRow{
				Section:        key,
				Label:          key.Label(),
				From:           prev.Label,
				To:             curr.Label,
				Previous:       pv.Amount,
				Current:        cv.Amount,
				AbsoluteChange: cv.Amount - pv.Amount,
				PercentChange:  pct,
				PercentDisplay: pct.String(),
			})
		}
	}
	return table
}

// PercentChange is (curr - prev) / |prev| * 100. A zero previous value gives an infinity
// carrying the sign of the change, except that two zeros give 0 rather than an infinity.
func PercentChange(prev, curr float64) dto.Percent {
	diff := curr - prev
	if prev == 0 {
		switch {
		case diff > 0:
			return dto.Percent(math.Inf(1))
		case diff < 0:
			return dto.Percent(math.Inf(-1))
		default:
			return 0
		}
	}
	return dto.Percent(diff / math.Abs(prev) * 100)
}
