package main

import (
	"fmt"

	"calcd/internal/config"
	"calcd/internal/errors"
	"calcd/internal/log"
	"calcd/internal/theme"

	"github.com/spf13/cobra"
)

func newThemeCmd(a *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := a.themeController()
			if err != nil {
				return err
			}
			name := themeName(ctl.IsDark())
			if ctl.Preference() == nil {
				name += " (default)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store the theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var dark bool
			switch args[0] {
			case "dark":
				dark = true
			case "light":
			default:
				return errors.NewConfigError(fmt.Sprintf("unknown theme %q, want light or dark", args[0]), "theme", errors.InvalidConfig, nil)
			}

			ctl, err := a.themeController()
			if err != nil {
				return err
			}
			if err := ctl.SetDark(dark); err != nil {
				return err
			}
			a.log.With(log.F("dark", dark)).Info("theme preference stored")
			fmt.Fprintln(cmd.OutOrStdout(), themeName(dark))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := a.themeController()
			if err != nil {
				return err
			}
			if err := ctl.Toggle(); err != nil {
				return err
			}
			a.log.With(log.F("dark", ctl.IsDark())).Info("theme preference toggled")
			fmt.Fprintln(cmd.OutOrStdout(), themeName(ctl.IsDark()))
			return nil
		},
	})

	return cmd
}

// themeController opens the configured store outside the GUI. The fyne
// preferences backend is only reachable from a running GUI app.
func (a *cliApp) themeController() (*theme.Controller, error) {
	if a.cfg.Theme.Store == config.StorePreferences {
		return nil, errors.NewConfigError("the preferences theme store is only available from the gui; set theme.store to file", "theme.store", errors.InvalidConfig, nil)
	}

	store, err := theme.NewStore(a.cfg.Theme, nil)
	if err != nil {
		return nil, err
	}
	ctl := theme.NewController(store)
	if err := ctl.Load(); err != nil {
		return nil, err
	}
	return ctl, nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
