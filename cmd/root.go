package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/phpgraph/config"
)

// options holds flags shared by all commands
type options struct {
	configURL string
	logLevel  string
	noColor   bool
}

// NewRootCmd creates phpgraph root command with its subcommands
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "phpgraph",
		Short:         "phpgraph - PHP namespace inspector and class diagram generator",
		Long:          `phpgraph resolves PHP namespace imports and renders PlantUML class diagrams of PHP sources.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configURL, "config", "c", "", "config file (.yaml, .yml or .toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newDiagramCmd(opts))
	rootCmd.AddCommand(newContextCmd(opts))
	return rootCmd
}

// Execute runs phpgraph CLI
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig loads config file when given, applies log level override and validates the result
func (o *options) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg := config.Default()
	if o.configURL != "" {
		loaded, err := config.Load(ctx, afs.New(), o.configURL)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)
