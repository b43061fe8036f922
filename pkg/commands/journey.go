package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/commands/options"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/runner/journey"
)

func addJourney(topLevel *cobra.Command) {
	jo := &options.JourneyOptions{}

	cmd := &cobra.Command{
		Use:     "journey",
		Aliases: []string{"timeline"},
		Short:   "Show recent entries across the journal, newest first.",
		Example: `
growth journey
growth journey --last 1w --kind challenge --kind achievement
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kinds, err := jo.GetKinds()
			if err != nil {
				return output.HandleError(err)
			}
			return runJourney(cmd, jo, kinds, false)
		},
	}

	options.AddJourneyArgs(cmd, jo, journey.DefaultLimit)
	options.AddKindArgs(cmd, jo)
	_ = cmd.RegisterFlagCompletionFunc("kind", kindCompletions)

	topLevel.AddCommand(cmd)
}

// addLists adds one listing command per entry kind.
func addLists(topLevel *cobra.Command) {
	for _, k := range journal.Kinds() {
		k := k
		jo := &options.JourneyOptions{}
		cmd := &cobra.Command{
			Use:   k.Plural(),
			Short: "List recorded " + k.Plural() + ", newest first.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				return runJourney(cmd, jo, []journal.Kind{k}, true)
			},
		}
		options.AddJourneyArgs(cmd, jo, 0)
		topLevel.AddCommand(cmd)
	}
}

func runJourney(cmd *cobra.Command, jo *options.JourneyOptions, kinds []journal.Kind, list bool) error {
	s, err := openSession(nil)
	if err != nil {
		return output.HandleError(err)
	}
	since, err := jo.GetSince(time.Now())
	if err != nil {
		return output.HandleError(err)
	}

	if output.JSON {
		limit := jo.Limit
		if !list && limit == 0 {
			limit = journey.DefaultLimit
		}
		items, err := s.service.Timeline(cmd.Context(), journal.TimelineOptions{
			Kinds: kinds,
			Since: since,
			Limit: limit,
		})
		if err != nil {
			return output.HandleError(err)
		}
		return output.Print(cmd.OutOrStdout(), items)
	}

	j := journey.Journey{
		ShowID:  jo.ShowID,
		Kinds:   kinds,
		Since:   since,
		Limit:   jo.Limit,
		List:    list,
		Width:   terminalWidth(),
		Service: s.service,
		Out:     cmd.OutOrStdout(),
	}
	err = j.Do(cmd.Context())
	return output.HandleError(err)
}
