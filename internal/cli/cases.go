package cli

import (
	"github.com/spf13/cobra"

	"github.com/umi000/AMMA-Stress/internal/config"
)

func newCasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List the k6 runs covered by the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}

			env.console.Cases(config.Cases())
			return nil
		},
	}
}
