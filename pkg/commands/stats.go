package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	var plain bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the streak and how many entries of each kind are recorded.",
		Example: `
growth stats
growth stats --plain
growth stats --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(nil)
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				st, err := s.service.Stats(cmd.Context())
				if err != nil {
					return output.HandleError(err)
				}
				return output.Print(cmd.OutOrStdout(), st)
			}
			r := stats.Stats{
				Plain:   plain,
				Fetcher: s.fetcher(),
				Service: s.service,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print a table instead of cards.")

	topLevel.AddCommand(cmd)
}
