package backend

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Backend kinds
const (
	KindText    = "text"
	KindServer  = "server"
	KindCommand = "command"
)

// Backend converts diagram markup into final output bytes; an empty result means rendering failed
type Backend interface {
	Render(ctx context.Context, markup string) ([]byte, error)
}

// Config represents backend settings
type Config struct {
	Kind      string        `yaml:"kind" toml:"kind"`
	URL       string        `yaml:"url,omitempty" toml:"url"`             // PlantUML server base URL
	Format    string        `yaml:"format,omitempty" toml:"format"`       // png, svg, txt
	Command   []string      `yaml:"command,omitempty" toml:"command"`     // local plantuml command
	Timeout   time.Duration `yaml:"timeout,omitempty" toml:"timeout"`     // render timeout
	CacheSize int           `yaml:"cacheSize,omitempty" toml:"cacheSize"` // rendered outputs kept in memory, 0 disables cache
}

// DefaultServerURL is the public PlantUML server
const DefaultServerURL = "https://www.plantuml.com/plantuml"

// New creates a backend for supplied config
func New(config *Config) (Backend, error) {
	if config == nil {
		config = &Config{Kind: KindText}
	}
	var result Backend
	switch strings.ToLower(config.Kind) {
	case "", KindText:
		result = &Text{}
	case KindServer:
		URL := config.URL
		if URL == "" {
			URL = DefaultServerURL
		}
		result = NewServer(URL, config.Format, config.Timeout)
	case KindCommand:
		result = NewCommand(config.Format, config.Command...)
	default:
		return nil, errors.Errorf("unsupported backend kind: %v", config.Kind)
	}
	if config.CacheSize > 0 {
		return NewCached(result, config.CacheSize)
	}
	return result, nil
}

// Text returns the markup itself, the output is a .puml file
type Text struct{}

func (t *Text) Render(ctx context.Context, markup string) ([]byte, error) {
	return []byte(markup), nil
}
