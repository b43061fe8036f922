package teaui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/growth/pkg/app"
)

// Interactive reports whether f is a terminal the dashboard can drive.
func Interactive(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run launches the dashboard and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	p := tea.NewProgram(New(ctx, svc, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
