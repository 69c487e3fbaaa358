// Package cli holds the wmsctl command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wmsconsole/wms-console/internal/config"
	"github.com/wmsconsole/wms-console/internal/output"
	"github.com/wmsconsole/wms-console/internal/wmsapi"
	"github.com/wmsconsole/wms-console/pkg/doccode"
	"github.com/wmsconsole/wms-console/pkg/logger"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

type flags struct {
	configPath string
	envFile    string
	format     string
	logLevel   string
}

// App is the state shared by every command of one invocation.
type App struct {
	flags  flags
	cfg    *config.Config
	logger *zap.Logger
	codes  *doccode.Generator
	ownLog bool
}

// Option configures the App behind the root command.
type Option func(*App)

// WithLogger makes the commands log to l instead of a logger built from
// the configured level.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithGenerator replaces the document-number generator.
func WithGenerator(g *doccode.Generator) Option {
	return func(a *App) { a.codes = g }
}

// NewRootCommand builds the wmsctl command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &App{codes: doccode.New()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:               "wmsctl",
		Short:             "Command-line client for the WMS admin backend",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.flags.envFile, "env-file", "", ".env file loaded before the environment is read")
	pf.StringVarP(&a.flags.format, "format", "f", "", fmt.Sprintf("output format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newCodeCommand(a),
		newSubCommand(a),
		newResourcesCommand(a),
		newListCommand(a),
		newGetCommand(a),
		newDeleteCommand(a),
		newExportCommand(a),
		newFooterCommand(a),
		newTopBarCommand(a),
	)
	return root
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.configPath, a.flags.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.flags.format
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if _, err := output.NewFormatter(cfg.Output.Format); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		l, err := logger.New(cfg.Log.Level)
		if err != nil {
			return err
		}
		a.logger = l
		a.ownLog = true
	}
	a.logger.Debug("configuration loaded",
		zap.String("config", a.flags.configPath),
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("format", cfg.Output.Format))
	return nil
}

func (a *App) teardown(*cobra.Command, []string) {
	if a.ownLog {
		_ = a.logger.Sync()
	}
}

func (a *App) client() *wmsapi.Client {
	return wmsapi.New(a.cfg.API, logger.Named(a.logger, "wmsapi"))
}

func (a *App) render(cmd *cobra.Command, t *output.Table) error {
	return output.Render(cmd.OutOrStdout(), a.cfg.Output.Format, t)
}
