package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/Aashish23092/cashflow-analyzer/dto"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 46,
		ValueWidth: 20,
	}
}

// Reporter writes an analysis as plain-text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const reportTemplate = `Cash-flow analysis {{.BatchID}}
Processed at: {{.ProcessedAt}}
{{range $doc := .Documents}}
=== {{$doc.Source}} ({{$doc.Label}}) ===
{{if $doc.Error}}ERROR: {{$doc.Error}}
{{else}}{{with $doc.Record}}{{if .Signals.Unit}}Unit: {{.Signals.Unit}}
{{end}}{{end}}{{separator 2}}
{{row (list "Section" "Value")}}
{{separator 2}}
{{range sections}}{{row (list .Label (cell $doc.Record .Key))}}
{{end}}{{separator 2}}
{{end}}{{end}}
=== Pivot ===
{{pivot .Pivot}}

=== Comparison ===
{{if .Comparison.Rows}}{{separator 6}}
{{row (list "Section" "From" "To" "Previous" "Current" "Change")}}
{{separator 6}}
{{range .Comparison.Rows}}{{row (list .Label .From .To (number .Previous) (number .Current) (number .AbsoluteChange))}}
{{row (list "" "" "" "" "" (percent .PercentChange))}}
{{end}}{{separator 6}}
{{else}}Not enough periods to compare.
{{end}}`

type sectionRow struct {
	Key   dto.SectionKey
	Label string
}

// Handle writes the per-document tables, the pivot table and the comparison table.
func (c *Reporter) Handle(resp *dto.AnalysisResponse) error {
	funcMap := template.FuncMap{
		"list": func(items ...string) []string { return items },
		"row":  c.formatRow,
		"separator": func(cols int) string {
			return c.separator(cols)
		},
		"sections": func() []sectionRow {
			var out []sectionRow
			for _, key := range dto.AllSections() {
				out = append(out, sectionRow{Key: key, Label: key.Label()})
			}
			return out
		},
		"cell": func(r *dto.Record, key dto.SectionKey) string {
			if r == nil {
				return MissingPlaceholder
			}
			v := r.Get(key)
			if !v.Present {
				return MissingPlaceholder
			}
			return FormatAmount(v.Amount)
		},
		"number":  FormatNumber,
		"percent": FormatPercent,
		"pivot":   c.pivot,
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, resp)
}

func (c *Reporter) pivot(table dto.PivotTable) string {
	if len(table.Columns) == 0 {
		return "No periods extracted.\n"
	}

	cols := len(table.Columns) + 1
	header := append([]string{"Section"}, table.Columns...)

	var b strings.Builder
	b.WriteString(c.separator(cols) + "\n")
	b.WriteString(c.formatRow(header) + "\n")
	b.WriteString(c.separator(cols) + "\n")
	for _, row := range table.Rows {
		cells := []string{row.Label}
		for _, v := range row.Cells {
			cells = append(cells, FormatValue(v))
		}
		b.WriteString(c.formatRow(cells) + "\n")
	}
	b.WriteString(c.separator(cols))
	return b.String()
}

func (c *Reporter) formatRow(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i == 0 {
			parts[i] = pad(cell, c.config.LabelWidth, false)
		} else {
			parts[i] = pad(cell, c.config.ValueWidth, true)
		}
	}
	return "| " + strings.Join(parts, " | ") + " |"
}

func (c *Reporter) separator(cols int) string {
	parts := make([]string, cols)
	for i := range parts {
		w := c.config.ValueWidth
		if i == 0 {
			w = c.config.LabelWidth
		}
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

// pad pads or truncates s to width runes.
func pad(s string, width int, right bool) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-1]) + "…"
	}
	fill := strings.Repeat(" ", width-n)
	if right {
		return fill + s
	}
	return s + fill
}
