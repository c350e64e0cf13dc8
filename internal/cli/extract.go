package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umi000/AMMA-Stress/internal/summary"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <summary.json>",
		Short: "Print the statistics extracted from one summary export as JSON",
		Long: `Print the eleven statistics the report reads from a k6 summary export.
Absent statistics are printed as null. Unlike report generation, a missing
or malformed file is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read summary export: %w", err)
			}

			doc, err := summary.ParseDocument(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}

			checker, err := summary.NewSchemaChecker()
			if err != nil {
				return err
			}
			for _, violation := range checker.Check(data) {
				env.log.WithField("file", path).Warn(violation.Error())
			}
			env.log.WithField("metrics", doc.Metrics()).Debug("Metric groups in export")

			return env.console.JSON(summary.Extract(doc))
		},
	}
}
