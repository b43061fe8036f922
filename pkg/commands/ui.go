package commands

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/runner/stats"
	teaui "tableflip.dev/growth/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the dashboard.",
		Example: `
growth ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

// runDashboard opens the dashboard, or prints stats when stdout is not a
// terminal.
func runDashboard(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	s, err := openSession(nil)
	if err != nil {
		return output.HandleError(err)
	}
	if output.JSON || !interactive() {
		if output.JSON {
			st, err := s.service.Stats(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			return output.Print(cmd.OutOrStdout(), st)
		}
		r := stats.Stats{Plain: true, Service: s.service, Out: cmd.OutOrStdout()}
		return output.HandleError(r.Do(cmd.Context()))
	}
	return teaui.Run(cmd.Context(), s.service, teaui.Options{
		Picker:  content.Picker{},
		Fetcher: s.fetcher(),
	})
}

func interactive() bool {
	return teaui.Interactive(os.Stdout)
}

// terminalWidth is the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	if !interactive() {
		return 0
	}
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0
	}
	return w
}
