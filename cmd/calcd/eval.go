package main

import (
	"fmt"
	"strings"

	"calcd/internal/engine"
	"calcd/internal/keypad"
	"calcd/internal/log"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *cliApp) *cobra.Command {
	var steps bool

	cmd := &cobra.Command{
		Use:   "eval <keys>...",
		Short: "Press a sequence of keys and print the display",
		Long: `Press each key in order, as if typed on the keypad, and print the
resulting display. ASCII aliases are accepted: - for −, * or x for ×, / for ÷.

  calcd eval "2+3*4="     prints 2+3×4=20`,
		Example: `  calcd eval 7+3=
  calcd eval --steps "10/4="`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, "")
			eng := engine.New()
			out := cmd.OutOrStdout()

			if steps {
				eng.OnChange(func(display string) {
					fmt.Fprintln(out, display)
				})
			}

			if err := keypad.PressAll(eng, input); err != nil {
				return err
			}

			a.log.With(log.F("input", input)).Debugf("display %s", eng.Display())
			if !steps {
				fmt.Fprintln(out, eng.Display())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&steps, "steps", false, "print the display after every key")
	return cmd
}
