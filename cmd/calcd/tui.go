package main

import (
	"context"
	"fmt"

	"calcd/internal/engine"
	"calcd/internal/theme"
	"calcd/internal/tui"
	"calcd/internal/tui/messages"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newTUICmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a)
		},
	}
}

// tuiTheme opens the configured theme store for the terminal UI. A store the
// terminal cannot open becomes an in-memory one, and an unreadable preference
// leaves the terminal background in charge.
func (a *cliApp) tuiTheme() (theme.Store, *theme.Controller) {
	store, err := theme.NewStore(a.cfg.Theme, nil)
	if err != nil {
		// the preferences backend needs the GUI; keep the choice for this session only
		a.log.WithError(err).Warn("theme preference will not be persisted")
		store = theme.NewMemoryStore()
	}

	ctl := theme.NewController(store)
	if err := ctl.Load(); err != nil {
		a.log.WithError(err).Warn("using terminal theme")
	}
	return store, ctl
}

func runTUI(a *cliApp) error {
	store, ctl := a.tuiTheme()

	systemDark := lipgloss.HasDarkBackground()
	m := tui.New(engine.New(), ctl, systemDark)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if fileStore, ok := store.(*theme.FileStore); ok && a.cfg.Theme.Watch {
		w, err := theme.NewWatcher(fileStore, ctl)
		if err != nil {
			a.log.WithError(err).Warn("theme file will not be watched")
		} else {
			defer w.Close()
			go w.Run(ctx)
			go func() {
				for {
					select {
					case <-ctx.Done():
						return
					case <-w.Reloaded():
						p.Send(messages.ThemeChangedMsg{Dark: ctl.Resolve(systemDark)})
					}
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
