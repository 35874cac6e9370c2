package main

import (
	"fmt"

	"calcd/internal/engine"
	"calcd/internal/gui"

	"github.com/spf13/cobra"
)

func newGUICmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("this build has no GUI; use calcd tui instead")
			}

			app, err := gui.NewFactory(a.cfg, engine.New()).Create()
			if err != nil {
				return fmt.Errorf("error creating GUI: %w", err)
			}
			a.log.Info("starting GUI")
			app.Run()
			return nil
		},
	}
}
