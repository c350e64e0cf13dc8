package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/umi000/AMMA-Stress/internal/config"
	"github.com/umi000/AMMA-Stress/internal/output"
	"github.com/umi000/AMMA-Stress/internal/report"
)

var version = "0.1.0"

// NewRootCmd builds the stress-report command tree. Run without a
// subcommand it generates the HTML report.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stress-report",
		Short:   "Render k6 stress test summaries into an HTML report",
		Version: version,
		Long: `stress-report reads the k6 summary exports of the AMMA-Stress runs
(smoke, load, load-500 and load-7000) from the results directory and writes
a static HTML table to results/index.html.

Missing or malformed exports are reported with placeholder cells; only a
failure to write the report is an error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("results-dir", config.DefaultResultsDir, "Directory containing the k6 summary exports (env RESULTS_DIR)")
	flags.StringP("output", "o", "", "Report file (env REPORT_OUTPUT, default <results-dir>/index.html)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newCasesCmd())

	return rootCmd
}

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// runEnv bundles what every command needs once flags are parsed.
type runEnv struct {
	settings *config.Settings
	log      *logrus.Logger
	console  *output.Console
}

func newRunEnv(cmd *cobra.Command) (*runEnv, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("results-dir") {
		settings.ResultsDir, _ = flags.GetString("results-dir")
	}
	if flags.Changed("output") {
		settings.OutputPath, _ = flags.GetString("output")
	}
	verbose, _ := flags.GetBool("verbose")
	noColor, _ := flags.GetBool("no-color")

	log := newLogger(cmd.ErrOrStderr(), settings.LogLevel, verbose)

	return &runEnv{
		settings: settings,
		log:      log,
		console: output.NewConsole(output.ConsoleConfig{
			Writer:      cmd.OutOrStdout(),
			NoColor:     noColor,
			ForceColors: settings.ForceColor,
		}),
	}, nil
}

func (e *runEnv) reportOptions() report.Options {
	return report.Options{
		ResultsDir: e.settings.ResultsDir,
		OutputPath: e.settings.ReportPath(),
		Cases:      config.Cases(),
		Logger:     e.log,
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	env, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	opts := env.reportOptions()
	env.log.WithFields(logrus.Fields{
		"results_dir": opts.ResultsDir,
		"output":      opts.OutputPath,
	}).Debug("Generating report")

	if err := report.Generate(opts); err != nil {
		return err
	}

	env.console.ReportWritten(opts.OutputPath)
	return nil
}
