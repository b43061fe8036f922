package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/commands/options"
	"tableflip.dev/growth/pkg/runner/visit"
)

func addVisit(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Record today's visit and show the streak.",
		Example: `
growth visit
growth visit --on 2025-1-2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(oo)
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				sess, err := s.service.Start(cmd.Context())
				if err != nil {
					return output.HandleError(err)
				}
				return output.Print(cmd.OutOrStdout(), sess.Visit)
			}
			v := visit.Visit{
				Service: s.service,
				Out:     cmd.OutOrStdout(),
			}
			err = v.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
