package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/commands/options"
	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a challenge, reflection or achievement.",
		Example: `
growth add challenge learning a new language
growth add reflection -i
growth add achievement ran my first 5k
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEntry(cmd, journal.Challenge, "What's challenging you today?")
	addEntry(cmd, journal.Reflection, "")
	addEntry(cmd, journal.Achievement, "What did you achieve today?")

	topLevel.AddCommand(cmd)
}

func addEntry(parent *cobra.Command, k journal.Kind, question string) {
	oo := &options.OnOptions{}
	ia := &options.InteractiveOptions{}
	var promptFlag string

	name := string(k)
	cmd := &cobra.Command{
		Use:     name + " [text]",
		Aliases: []string{name[:1]},
		Short:   "Add a " + name + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			picker := content.Picker{}
			prompt := promptFlag
			if k == journal.Reflection && prompt == "" {
				prompt = picker.Prompt()
			}

			text := strings.Join(args, " ")
			if ia.Interactive || text == "" {
				label := question
				if k == journal.Reflection {
					label = prompt
				}
				var err error
				if text, err = ia.Ask(label); err != nil {
					return output.HandleError(err)
				}
			}

			s, err := openSession(oo)
			if err != nil {
				return output.HandleError(err)
			}
			a := add.Add{
				Kind:    k,
				Message: text,
				Prompt:  prompt,
				Picker:  picker,
				Service: s.service,
				Out:     cmd.OutOrStdout(),
			}
			err = a.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	if k == journal.Reflection {
		cmd.Flags().StringVarP(&promptFlag, "prompt", "p", "",
			"The question being answered; a random one is picked when empty.")
	}
	options.AddOnArgs(cmd, oo)
	options.InteractiveArgs(cmd, ia)

	parent.AddCommand(cmd)
}
