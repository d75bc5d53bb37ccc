package cmd

import (
	"fmt"

	"github.com/Iron-Ham/adversarial-critique/internal/roles"
	"github.com/spf13/cobra"
)

func newPairCmd(a *app) *cobra.Command {
	var strategist string

	pairCmd := &cobra.Command{
		Use:   "pair",
		Short: "Print the two critics that debate each other",
		Long: `Print the first two critics, in models.available order, one per line.

At least three model families must be available: the strategist plus two
critics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strategist != "" {
				a.v.Set("roles.strategist", strategist)
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			_, pair, err := roles.NewResolver(a.env, a.logger).Pair(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, pair[0])
			fmt.Fprintln(out, pair[1])
			return nil
		},
	}

	pairCmd.Flags().StringVar(&strategist, "strategist", "", "strategist model family (overrides roles.strategist)")

	return pairCmd
}
