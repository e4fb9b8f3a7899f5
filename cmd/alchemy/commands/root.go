// SPDX-License-Identifier: MIT

// Package commands implements the alchemy command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/alchemy/formula"
	"github.com/katalvlaran/alchemy/internal/config"
	"github.com/katalvlaran/alchemy/internal/printer"
	"github.com/katalvlaran/alchemy/periodic"
	"github.com/spf13/cobra"
)

var versionInfo = "dev"

// SetVersionInfo sets the version reported by --version.
func SetVersionInfo(v, c, d string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// env is what the root command resolves before any subcommand runs.
type env struct {
	cfg    *config.Config
	table  *periodic.Table
	parser *formula.Parser
	logger *slog.Logger
	out    *printer.Printer
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		tablePath  string
		logLevel   string
		noColor    bool
	)
	e := &env{}

	cmd := &cobra.Command{
		Use:   "alchemy",
		Short: "Inorganic substance classifier",
		Long: `alchemy classifies inorganic substances (simple substances, hydrides,
oxides, peroxides, bases, acids and salts), resolves the oxidation state of
every element and predicts simple two-reagent reactions.

Settings are read from ./alchemy.yaml (or --config); flags take precedence.`,
		Version:       versionInfo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("table") {
				cfg.TablePath = tablePath
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if noColor {
				off := false
				cfg.Color = &off
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return e.setup(cmd, cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file path (default ./alchemy.yaml when present)")
	flags.StringVar(&tablePath, "table", "", "YAML periodic table replacing the embedded one")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newClassifyCmd(e), newReactCmd(e), newElementCmd(e))

	return cmd
}

// setup builds the logger, printer and periodic table from cfg.
func (e *env) setup(cmd *cobra.Command, cfg *config.Config) error {
	e.cfg = cfg
	e.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	e.out = printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.UseColor())

	var err error
	if cfg.TablePath != "" {
		e.table, err = periodic.Load(cfg.TablePath)
	} else {
		e.table, err = periodic.Default()
	}
	if err != nil {
		return e.out.Error("Cannot load periodic table", err.Error(), []string{
			"check the table path given by --table or the config file",
		})
	}
	e.parser = formula.NewParser(e.table)
	e.logger.Debug("periodic table loaded",
		slog.String("path", cfg.TablePath),
		slog.Int("elements", e.table.Len()))

	return nil
}
