package add

import (
	"context"
	"io"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/printers"
)

type Add struct {
	Kind    journal.Kind
	Message string
	// Prompt is only used for reflections; empty picks one at random.
	Prompt string
	Picker content.Picker

	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoStore
	}
	prompt := n.Prompt
	if n.Kind == journal.Reflection && prompt == "" {
		prompt = n.Picker.Prompt()
	}

	e, err := n.Service.Add(ctx, app.AddOptions{
		Kind:   n.Kind,
		Text:   n.Message,
		Prompt: prompt,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Added(n.Kind, e)
	if e != nil {
		pp.Entries(n.Kind, *e)
	}
	return nil
}
