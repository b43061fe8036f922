package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/runner/export"
)

// FormatOptions select a dump encoding.
type FormatOptions struct {
	Format string
	Output string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions, def string) {
	names := make([]string, 0, 3)
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	cmd.Flags().StringVarP(&o.Format, "format", "f", def,
		"Encoding, one of "+strings.Join(names, ", ")+".")
}

func AddOutputFileArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Write to this file instead of stdout.")
}

// GetFormat resolves --format, falling back to the extension of path.
func (o *FormatOptions) GetFormat(path string) (export.Format, error) {
	if o.Format == "" {
		if path == "" {
			return export.JSON, nil
		}
		return export.FormatFor(path), nil
	}
	return export.ParseFormat(o.Format)
}
