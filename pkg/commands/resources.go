package commands

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/runner/resources"
)

func addQuote(topLevel *cobra.Command) {
	var plain bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show a motivational quote.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			picker := content.Picker{}
			if output.JSON {
				return output.Print(cmd.OutOrStdout(), picker.Quote())
			}
			q := resources.Quote{
				Picker: picker,
				Plain:  plain,
				Width:  terminalWidth(),
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(q.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without a frame.")

	topLevel.AddCommand(cmd)
}

func addResources(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Books and talks about the growth mindset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if output.JSON {
				return output.Print(cmd.OutOrStdout(), map[string]any{
					"books":  content.Books(),
					"videos": content.Videos(),
				})
			}
			r := resources.Resources{Out: cmd.OutOrStdout()}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addAbout(topLevel *cobra.Command) {
	var style string

	cmd := &cobra.Command{
		Use:   "about",
		Short: "What a growth mindset is and how this journal helps.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if style == "" {
				style = "light"
				if termenv.HasDarkBackground() {
					style = "dark"
				}
				if !interactive() {
					style = "notty"
				}
			}
			a := resources.About{
				Style: style,
				Width: terminalWidth(),
				Out:   cmd.OutOrStdout(),
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Glamour style: dark, light, notty, ascii or pink. Detected when empty.")

	topLevel.AddCommand(cmd)
}

func addAssess(topLevel *cobra.Command) {
	var score int

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score your growth mindset from 1 to 5.",
		Example: `
growth assess --score 4
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if output.JSON {
				res, err := content.Assess(score)
				if err != nil {
					return output.HandleError(err)
				}
				return output.Print(cmd.OutOrStdout(), res)
			}
			a := resources.Assess{Score: score, Out: cmd.OutOrStdout()}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVarP(&score, "score", "s", 0,
		"Score from 1 to 5.")
	_ = cmd.MarkFlagRequired("score")

	topLevel.AddCommand(cmd)
}
