package main

import (
	"fmt"

	"calcd/internal/config"
	"calcd/internal/log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// cliApp carries what the root command resolves for its subcommands.
type cliApp struct {
	cfgFile string
	debug   bool
	cfg     *config.Config
	log     *log.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &cliApp{}

	rootCmd := &cobra.Command{
		Use:   "calcd",
		Short: "A left-to-right calculator",
		Long: `calcd is a calculator that evaluates strictly left to right,
so 2+3×4 is 20. It runs as a desktop window, in the terminal,
or as a one-shot command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/calcd/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newThemeCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newGUICmd(a))
	rootCmd.AddCommand(newTUICmd(a))

	return rootCmd
}

// setup loads the configuration and configures logging.
func (a *cliApp) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadConfigFile(a.cfgFile)
	} else {
		a.cfg, err = config.LoadConfig()
	}
	if err != nil {
		if a.cfgFile != "" {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nUsing default settings.\n", err)
		a.cfg = config.New()
	}

	opts := []log.Option{log.WithOutput(cmd.ErrOrStderr()), log.WithLevel(a.cfg.Log.Level)}
	if a.cfg.Log.JSON {
		opts = append(opts, log.WithJSON())
	}
	if a.cfg.Log.File != "" {
		opts = append(opts, log.WithFile(a.cfg.Log.File))
	}
	if a.debug {
		opts = append(opts, log.WithLevel("debug"))
	}
	log.Configure(opts...)
	if a.debug {
		log.SetDebug(true)
	}

	a.log = log.LogWithFields(
		log.F("session", uuid.NewString()),
		log.F("command", cmd.Name()),
	)
	a.log.Debugf("configuration loaded (theme store %s)", a.cfg.Theme.Store)
	return nil
}
