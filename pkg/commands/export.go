package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/commands/options"
	"tableflip.dev/growth/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole journal as JSON, YAML or MessagePack.",
		Example: `
growth export > journal.json
growth export -o journal.yaml
growth export -f msgpack -o journal.msgpack
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			f, err := fo.GetFormat(fo.Output)
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(nil)
			if err != nil {
				return output.HandleError(err)
			}
			e := export.Export{
				Service: s.service,
				Format:  f,
				Output:  fo.Output,
				Out:     cmd.OutOrStdout(),
			}
			err = e.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo, "")
	options.AddOutputFileArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal with a previous export.",
		Example: `
growth import journal.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			f, err := fo.GetFormat(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(nil)
			if err != nil {
				return output.HandleError(err)
			}
			i := export.Import{
				Service: s.service,
				Input:   args[0],
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			err = i.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo, "")

	topLevel.AddCommand(cmd)
}
