package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the journal is stored and which config was read.",
		Example: `
growth info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(nil)
			if err != nil {
				return output.HandleError(err)
			}
			i := info.Info{
				Config:  s.config,
				Store:   s.store,
				Service: s.service,
				Out:     cmd.OutOrStdout(),
			}
			err = i.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
