package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/export"
	"github.com/spf13/cobra"
)

func (cli *CLI) newRenderCmd() *cobra.Command {
	ac := &analyzeCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "render <report.json>",
		Short: "Render a saved JSON analysis in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := export.ParseFormat(ac.format)
			if err != nil {
				return err
			}
			if format == export.FormatXLSX && ac.output == "" {
				return fmt.Errorf("the xlsx format needs --out")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			var resp dto.AnalysisResponse
			if err := json.Unmarshal(data, &resp); err != nil {
				return fmt.Errorf("failed to decode %s: %w", args[0], err)
			}
			return ac.write(format, &resp)
		},
	}

	cmd.Flags().StringVarP(&ac.format, "format", "f", string(export.FormatTable), "Output format (table, json, csv, xlsx)")
	cmd.Flags().StringVarP(&ac.output, "out", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&ac.table, "table", export.TablePivot, "Table written by the csv format (pivot, comparison)")

	return cmd
}
