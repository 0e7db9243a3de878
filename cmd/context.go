package cmd

import (
	"github.com/spf13/cobra"
	"github.com/viant/phpgraph/inspector/php"
	"github.com/viant/phpgraph/inspector/symbol"
	"gopkg.in/yaml.v3"
)

// namespaceContext is YAML view of a resolved namespace context
type namespaceContext struct {
	File      string            `yaml:"file"`
	Namespace string            `yaml:"namespace"`
	Aliases   map[string]string `yaml:"aliases"`
}

func newContextCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "context <file.php>...",
		Short: "Print resolved namespace imports of PHP files as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			srv, err := php.NewInspector(cfg.Inspection(), php.WithLogger(newLogger(cfg, cmd.ErrOrStderr())))
			if err != nil {
				return err
			}
			var result []*namespaceContext
			for _, filename := range args {
				namespaces, err := srv.InspectFile(cmd.Context(), filename)
				if err != nil {
					return err
				}
				for _, ns := range namespaces {
					resolved := symbol.Resolve(ns)
					result = append(result, &namespaceContext{
						File:      filename,
						Namespace: resolved.Namespace(),
						Aliases:   resolved.Aliases(),
					})
				}
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err = encoder.Encode(result); err != nil {
				return err
			}
			return encoder.Close()
		},
	}
}
