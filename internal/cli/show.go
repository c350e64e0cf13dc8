package cli

import (
	"github.com/spf13/cobra"

	"github.com/umi000/AMMA-Stress/internal/report"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the report table to the terminal",
		Long: `Print the same rows and columns as the HTML report as a console table.
Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}

			rows, err := report.Collect(env.reportOptions())
			if err != nil {
				return err
			}

			env.console.Rows(rows)
			return nil
		},
	}
}
