package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/export"
	"github.com/Aashish23092/cashflow-analyzer/utils/cashflow"
	"github.com/spf13/cobra"
)

var errNoPeriods = errors.New("no document produced a cash-flow section")

type analyzeCmd struct {
	cli      *CLI
	format   string
	output   string
	password string
	table    string
	sections []string
}

func (cli *CLI) newAnalyzeCmd() *cobra.Command {
	ac := &analyzeCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Extract cash-flow sections from statements and compare periods",
		Long: "Extract cash-flow sections from PDF statements (or .txt files holding already " +
			"extracted text), order them by the date in each file name and print the pivot " +
			"and period-over-period comparison.",
		Args: cobra.MinimumNArgs(1),
		RunE: ac.run,
	}

	cmd.Flags().StringVarP(&ac.format, "format", "f", string(export.FormatTable), "Output format (table, json, csv, xlsx)")
	cmd.Flags().StringVarP(&ac.output, "out", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&ac.password, "password", "", "Password applied to every encrypted PDF")
	cmd.Flags().StringVar(&ac.table, "table", export.TablePivot, "Table written by the csv format (pivot, comparison)")
	cmd.Flags().StringSliceVarP(&ac.sections, "sections", "s", nil, "Sections to include (default all)")

	return cmd
}

func (ac *analyzeCmd) run(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(ac.format)
	if err != nil {
		return err
	}
	if format == export.FormatXLSX && ac.output == "" {
		return fmt.Errorf("the xlsx format needs --out")
	}
	sections, err := cashflow.ParseSections(ac.sections)
	if err != nil {
		return err
	}

	docs, err := ac.readDocuments(args)
	if err != nil {
		return err
	}

	svc, err := ac.cli.newService()
	if err != nil {
		return err
	}
	resp, err := svc.Analyze(ac.cli.logger.WithContext(cmd.Context()), docs, sections)
	if err != nil {
		return err
	}

	for _, d := range resp.Documents {
		if d.Err != nil {
			ac.cli.logger.Warn().Str("file", d.Source).Err(d.Err).Msg("document skipped")
		}
	}

	if err := ac.write(format, resp); err != nil {
		return err
	}
	if len(resp.Periods) == 0 {
		return errNoPeriods
	}
	return nil
}

func (ac *analyzeCmd) readDocuments(paths []string) ([]dto.DocumentInput, error) {
	docs := make([]dto.DocumentInput, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		doc := dto.DocumentInput{Name: filepath.Base(path), Password: ac.password}
		if strings.EqualFold(filepath.Ext(path), ".txt") {
			doc.Text = string(data)
		} else {
			doc.Data = data
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (ac *analyzeCmd) write(format export.Format, resp *dto.AnalysisResponse) error {
	var w io.Writer = ac.cli.out
	if ac.output != "" {
		f, err := os.Create(ac.output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", ac.output, err)
		}
		defer f.Close()
		w = f
	}
	if err := export.Write(w, format, resp, ac.table); err != nil {
		return err
	}
	if ac.output != "" {
		ac.cli.logger.Info().Str("file", ac.output).Str("format", string(format)).Msg("report written")
	}
	return nil
}
