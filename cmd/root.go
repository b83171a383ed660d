package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Aashish23092/cashflow-analyzer/config"
	"github.com/Aashish23092/cashflow-analyzer/logger"
	"github.com/Aashish23092/cashflow-analyzer/service"
	"github.com/Aashish23092/cashflow-analyzer/utils/cashflow"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI represents the command-line interface
type CLI struct {
	v       *viper.Viper
	out     io.Writer
	cfg     *config.Config
	logger  zerolog.Logger
	rootCmd *cobra.Command
}

// NewCLI creates a CLI that writes command output to out.
func NewCLI(out io.Writer) *CLI {
	if out == nil {
		out = os.Stdout
	}
	cli := &CLI{
		v:      config.New(),
		out:    out,
		logger: zerolog.Nop(),
	}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewCLI(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cashflow",
		Short:         "Extract and compare cash-flow statements from PDF reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cli.cfg = config.FromViper(cli.v)
			cli.logger = logger.Setup(cli.cfg.LogLevel, cli.cfg.LogFormat)
			return nil
		},
	}
	cmd.SetOut(cli.out)

	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")
	flags.String("rules-file", "", "YAML file with additional or replacement heading rules")
	flags.Int("min-value-digits", 1, "Minimum digits a token needs to count as a section value")
	flags.Int("value-lookahead", 0, "Maximum bytes scanned after a heading (0 = unbounded)")
	flags.Int("max-concurrency", 1, "Documents processed in parallel")
	for _, name := range []string{"log-level", "log-format", "rules-file", "min-value-digits", "value-lookahead", "max-concurrency"} {
		_ = cli.v.BindPFlag(viperKey(name), flags.Lookup(name))
	}

	cmd.AddCommand(cli.newServeCmd())
	cmd.AddCommand(cli.newAnalyzeCmd())
	cmd.AddCommand(cli.newRulesCmd())
	cmd.AddCommand(cli.newRenderCmd())

	return cmd
}

func viperKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// newExtractor builds the extractor from the configured rule file and value options.
func (cli *CLI) newExtractor() (*cashflow.Extractor, error) {
	rules, err := cashflow.LoadRuleSet(cli.cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	opts := cashflow.DefaultOptions()
	opts.MinDigits = cli.cfg.MinValueDigits
	opts.Lookahead = cli.cfg.ValueLookahead
	return cashflow.NewExtractor(rules, opts), nil
}

func (cli *CLI) newService() (*service.CashFlowService, error) {
	extractor, err := cli.newExtractor()
	if err != nil {
		return nil, err
	}
	return service.NewCashFlowService(service.NewPDFProcessor(), extractor, cli.cfg.MaxConcurrency), nil
}
