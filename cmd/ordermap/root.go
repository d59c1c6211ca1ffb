package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"order-mapper/internal/assemble"
	"order-mapper/internal/config"
)

// app carries the resolved settings shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	output     string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "ordermap",
		Short:         "Assemble storefront orders from raw order records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVarP(&a.output, "output", "o", "", "output format: json, yaml or dump")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newDetailCmd(a),
		newSummaryCmd(a),
		newSchemaCmd(a),
		newValidateCmd(a),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()

	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	return nil
}

func (a *app) assembler() *assemble.Assembler {
	return assemble.New(assemble.WithLogger(a.logger))
}
