package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/commands/options"
	"tableflip.dev/growth/pkg/logging"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "growth",
		Short: options.Wrap80("A growth mindset journal on the command line."),
		Long: options.Wrap80("Track what challenges you, reflect on what you learn and " +
			"celebrate what you achieve. Every day you open the journal extends " +
			"your streak."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.Out = cmd.OutOrStdout()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.SetLevel(cfg.LogLevel())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd)
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addVisit(topLevel)
	addAdd(topLevel)
	addJourney(topLevel)
	addLists(topLevel)
	addStats(topLevel)
	addQuote(topLevel)
	addResources(topLevel)
	addAbout(topLevel)
	addAssess(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
