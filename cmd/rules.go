package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (cli *CLI) newRulesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the heading and sub-item rules in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extractor, err := cli.newExtractor()
			if err != nil {
				return err
			}
			rules := extractor.Rules()

			if asJSON {
				enc := json.NewEncoder(cli.out)
				enc.SetIndent("", "  ")
				return enc.Encode(rules.Describe())
			}

			tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SECTION\tKIND\tNAME\tPATTERN")
			for _, r := range rules.Headings() {
				fmt.Fprintf(tw, "%s\theading\t%s\t%s\n", r.Section, r.Name, r.Pattern)
			}
			for _, r := range rules.SubItems() {
				fmt.Fprintf(tw, "%s\tsub-item\t%s\t%s\n", r.Section, r.Name, r.Pattern)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the rules as JSON")
	return cmd
}
