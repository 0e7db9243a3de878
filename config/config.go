package config

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/phpgraph/diagram/backend"
	"github.com/viant/phpgraph/inspector/graph"
	"gopkg.in/yaml.v3"
)

// Config represents phpgraph settings
type Config struct {
	Source      []string       `yaml:"source" toml:"source"`           // Source files or directories
	Exclude     []string       `yaml:"exclude" toml:"exclude"`         // Glob patterns of excluded paths
	Output      string         `yaml:"output" toml:"output"`           // Diagram output URL or path
	SkipTests   bool           `yaml:"skipTests" toml:"skipTests"`     // Skip *Test.php files and tests directories
	StrictParse bool           `yaml:"strictParse" toml:"strictParse"` // Fail on files with syntax errors
	Concurrency int            `yaml:"concurrency" toml:"concurrency"` // Files parsed in parallel
	LogLevel    string         `yaml:"logLevel" toml:"logLevel"`
	Backend     backend.Config `yaml:"backend" toml:"backend"`
}

// Default returns default config
func Default() *Config {
	return &Config{
		Exclude:     []string{"**/vendor/**"},
		SkipTests:   true,
		Concurrency: runtime.NumCPU(),
		LogLevel:    "info",
		Backend:     backend.Config{Kind: backend.KindText},
	}
}

// Load loads config from YAML or TOML file, values not set in the file keep defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	cfg := Default()
	switch strings.ToLower(path.Ext(URL)) {
	case ".toml":
		if _, err = toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to decode config: %v", URL)
		}
	case ".yaml", ".yml", "":
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to decode config: %v", URL)
		}
	default:
		return nil, errors.Errorf("unsupported config format: %v", URL)
	}
	return cfg, cfg.Validate()
}

// Validate checks config values
func (c *Config) Validate() error {
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := backend.New(&c.Backend); err != nil {
		return err
	}
	return nil
}

// Level returns slog level for LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level: %v", c.LogLevel)
	}
	return level, nil
}

// Inspection returns inspector settings
func (c *Config) Inspection() *graph.Config {
	return &graph.Config{
		SkipTests:   c.SkipTests,
		Exclude:     c.Exclude,
		Concurrency: c.Concurrency,
		StrictParse: c.StrictParse,
	}
}

// OutputURL returns output location, defaults to <name>.<ext> where ext depends on backend format
func (c *Config) OutputURL(name string) string {
	if c.Output != "" {
		return c.Output
	}
	if name == "" {
		name = "classes"
	}
	name = strings.NewReplacer("/", "-", `\`, "-").Replace(name)
	ext := "puml"
	if kind := strings.ToLower(c.Backend.Kind); kind == backend.KindServer || kind == backend.KindCommand {
		ext = c.Backend.Format
		if ext == "" {
			ext = "png"
		}
	}
	return name + "." + ext
}
