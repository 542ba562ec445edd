package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/pkg/config"
	"github.com/dmitrymomot/recordkit/pkg/logger"
)

const (
	serviceName = "recordcheck"
	envPrefix   = "RECORDCHECK_"
)

// Settings is read from RECORDCHECK_* variables and an optional .env file.
type Settings struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Env       string `env:"ENV" envDefault:"development"`
	Lang      string `env:"LANG"`
	NoColor   bool   `env:"NO_COLOR"`
}

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	settings Settings
	envFile  string
	logLevel string
	noColor  bool
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   serviceName,
		Short: "Validate records against field schemas",
		Long: `recordcheck loads a schema from YAML, builds records from a YAML list
and reports which records the schema rejects and why.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with RECORDCHECK_* settings")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newCheckCmd(a),
		newExportCmd(a),
		newFieldsCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.settings, config.WithPrefix(envPrefix), config.WithEnvFiles(a.envFile)); err != nil {
		return err
	}
	if a.logLevel != "" {
		a.settings.LogLevel = a.logLevel
	}
	if a.noColor {
		a.settings.NoColor = true
	}

	level, err := logger.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	format := logger.Format(strings.ToLower(a.settings.LogFormat))
	if format != logger.FormatJSON && format != logger.FormatText {
		return fmt.Errorf("invalid log format %q", a.settings.LogFormat)
	}

	a.log = logger.New(
		logger.WithEnvironment(a.settings.Env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
	a.log.Debug("settings loaded",
		logger.Component("cli"),
		slog.String("command", cmd.Name()),
		slog.String("lang", a.settings.Lang),
	)
	return nil
}

// output wraps w for styled text. Non-terminal writers get no colors.
func (a *app) output(cmd *cobra.Command) *termenv.Output {
	if a.settings.NoColor {
		return termenv.NewOutput(cmd.OutOrStdout(), termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(cmd.OutOrStdout())
}
