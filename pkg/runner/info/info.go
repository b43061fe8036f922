package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/store"
)

type Info struct {
	Config  store.Config
	Store   *store.Store
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", store.EnvConfigPath, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", store.EnvConfigPath)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if used := store.ConfigFileUsed(n.Config); used != "" {
		_, _ = fmt.Fprintln(out, "Config file:", used)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.file:", n.Config.FileName())
	_, _ = fmt.Fprintln(out, "Animations:", n.Config.Animations())

	if n.Store == nil || n.Service == nil {
		return errors.New("info: failed to create persistence object")
	}
	_, _ = fmt.Fprintln(out, "Journal:", n.Store.Path())

	res := n.Store.Load()
	switch {
	case res.Missing():
		_, _ = fmt.Fprintln(out, "  no journal yet")
		return nil
	case res.Recovered():
		_, _ = color.New(color.FgRed).Fprintf(out, "  unreadable: %v\n", res.Reason)
		return nil
	}
	c := res.State.Counts()
	_, _ = fmt.Fprintf(out, "  %d challenges, %d reflections, %d achievements\n", c.Challenges, c.Reflections, c.Achievements)
	_, _ = fmt.Fprintf(out, "  streak %d", res.State.Streak)
	if res.State.LastVisit != nil {
		_, _ = fmt.Fprintf(out, ", last visit %s", res.State.LastVisit)
	}
	_, _ = fmt.Fprintln(out)
	return nil
}
