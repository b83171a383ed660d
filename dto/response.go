package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Custom errors
var (
	ErrNoFiles      = errors.New("at least one document is required")
	ErrFileTooLarge = errors.New("file exceeds the size limit")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Percent is a percentage change. It is +Inf or -Inf when the previous value was zero.
type Percent float64

func (p Percent) Finite() bool {
	f := float64(p)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// String renders the percentage with two decimals, or N/A when it is not finite.
func (p Percent) String() string {
	if !p.Finite() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Finite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

// UnmarshalJSON reads null back as NaN. The sign of an infinite change is not kept;
// both render as N/A.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Percent(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

// PivotRow is one section across all periods.
type PivotRow struct {
	Section SectionKey `json:"section"`
	Label   string     `json:"label"`
	Cells   []Value    `json:"cells"`
}

// PivotTable has one column per period in chronological order.
type PivotTable struct {
	Columns []string   `json:"columns"`
	Rows    []PivotRow `json:"rows"`
}

// ComparisonRow is the change of one section between two adjacent periods.
type ComparisonRow struct {
	Section        SectionKey `json:"section"`
	Label          string     `json:"label"`
	From           string     `json:"from"`
	To             string     `json:"to"`
	Previous       float64    `json:"previous"`
	Current        float64    `json:"current"`
	AbsoluteChange float64    `json:"absolute_change"`
	PercentChange  Percent    `json:"percent_change"`
	PercentDisplay string     `json:"percent_display"`
}

type ComparisonTable struct {
	Rows []ComparisonRow `json:"rows"`
}

// DocumentResult reports the outcome for a single input document.
type DocumentResult struct {
	Source      string  `json:"source"`
	Label       string  `json:"label"`
	Record      *Record `json:"record,omitempty"`
	TextPreview string  `json:"text_preview,omitempty"`
	Error       string  `json:"error,omitempty"`
	Err         error   `json:"-"`
}

// OK reports whether the document produced at least one section.
func (d DocumentResult) OK() bool {
	return d.Err == nil && d.Record != nil && !d.Record.Empty()
}

// AnalysisResponse is the final response structure
type AnalysisResponse struct {
	BatchID     string           `json:"batch_id"`
	Documents   []DocumentResult `json:"documents"`
	Periods     []Period         `json:"periods"`
	Pivot       PivotTable       `json:"pivot"`
	Comparison  ComparisonTable  `json:"comparison"`
	ProcessedAt string           `json:"processed_at"`
}

// SectionRules lists the heading rules registered for a section.
type SectionRules struct {
	Section  SectionKey `json:"section"`
	Label    string     `json:"label"`
	Rules    []RuleInfo `json:"rules"`
	SubItems []RuleInfo `json:"sub_items,omitempty"`
}

type RuleInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}
