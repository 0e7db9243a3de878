package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/phpgraph/config"
	"github.com/viant/phpgraph/diagram"
	"github.com/viant/phpgraph/diagram/backend"
	"github.com/viant/phpgraph/inspector"
	"github.com/viant/phpgraph/inspector/php"
)

type diagramFlags struct {
	output      string
	backend     string
	format      string
	serverURL   string
	exclude     []string
	concurrency int
	withTests   bool
	strict      bool
}

func newDiagramCmd(opts *options) *cobra.Command {
	flags := &diagramFlags{}
	cmd := &cobra.Command{
		Use:   "diagram [paths...]",
		Short: "Render PlantUML class diagram of PHP sources",
		Long: `Inspects PHP files under the given paths (config source or current directory by default)
and writes a PlantUML class diagram, or an image rendered by a PlantUML server or command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}
			return runDiagram(cmd, cfg, args)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file or URL (default <project>.puml)")
	cmd.Flags().StringVarP(&flags.backend, "backend", "b", "", "render backend (text, server, command)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "image format for server and command backends")
	cmd.Flags().StringVar(&flags.serverURL, "server", "", "PlantUML server URL")
	cmd.Flags().StringSliceVarP(&flags.exclude, "exclude", "e", nil, "glob patterns of excluded paths")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 0, "files parsed in parallel")
	cmd.Flags().BoolVar(&flags.withTests, "with-tests", false, "include tests")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on files with syntax errors")
	return cmd
}

// apply overrides config values with explicitly set flags
func (f *diagramFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("backend") {
		cfg.Backend.Kind = f.backend
	}
	if changed("format") {
		cfg.Backend.Format = f.format
	}
	if changed("server") {
		cfg.Backend.URL = f.serverURL
	}
	if changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, f.exclude...)
	}
	if changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if changed("with-tests") {
		cfg.SkipTests = !f.withTests
	}
	if changed("strict") {
		cfg.StrictParse = f.strict
	}
}

func runDiagram(cmd *cobra.Command, cfg *config.Config, args []string) error {
	ctx := cmd.Context()
	logger := newLogger(cfg, cmd.ErrOrStderr())
	locations := args
	if len(locations) == 0 {
		locations = cfg.Source
	}
	if len(locations) == 0 {
		locations = []string{"."}
	}

	srv, err := inspector.New(cfg.Inspection(), php.WithLogger(logger))
	if err != nil {
		return err
	}
	project, err := srv.InspectProject(ctx, locations...)
	if err != nil {
		return err
	}
	renderer, err := backend.New(&cfg.Backend)
	if err != nil {
		return err
	}

	URL := cfg.OutputURL(project.Name)
	out := cmd.OutOrStdout()
	if err = diagram.New(logger, renderer, afs.New()).CreateProject(ctx, project, URL); err != nil {
		if errors.Is(err, diagram.ErrRenderFailed) {
			failureColor.Fprintf(out, "failed: %v\n", URL)
		}
		return err
	}
	counts := project.Namespace.Count()
	infoColor.Fprintf(out, "inspected %d files: %d classes, %d interfaces, %d traits\n",
		len(project.Files), counts.Classes, counts.Interfaces, counts.Traits)
	successColor.Fprintf(out, "written: %v\n", URL)
	return nil
}
