package inspector

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/viant/phpgraph/inspector/graph"
	"github.com/viant/phpgraph/inspector/php"
	"github.com/viant/phpgraph/inspector/repository"
)

// Inspector inspects PHP projects into a namespace descriptor tree
type Inspector struct {
	config   *graph.Config
	detector *repository.Detector
	php      *php.Inspector
}

// New creates a project inspector with the given config
func New(config *graph.Config, options ...php.Option) (*Inspector, error) {
	if config == nil {
		config = graph.DefaultConfig()
	}
	phpInspector, err := php.NewInspector(config, options...)
	if err != nil {
		return nil, err
	}
	return &Inspector{
		config:   config,
		detector: repository.New(),
		php:      phpInspector,
	}, nil
}

// InspectProject detects the project holding the first location and inspects all locations.
// When a single project root is given, composer autoload directories are inspected instead of the whole root.
func (i *Inspector) InspectProject(ctx context.Context, locations ...string) (*graph.Project, error) {
	if len(locations) == 0 {
		return nil, errors.New("no source location")
	}
	repo, err := i.detector.DetectRepository(ctx, locations[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detect project: %v", locations[0])
	}
	info := repo.Info
	if len(locations) == 1 {
		locations = sourceLocations(info, locations[0])
	}
	root, files, err := i.php.Inspect(ctx, locations...)
	if err != nil {
		return nil, err
	}
	project := &graph.Project{
		Name:          info.Name,
		Type:          info.Type,
		RootPath:      info.RootPath,
		RepositoryURL: repo.Origin,
		Files:         files,
		Namespace:     root,
	}
	project.Init()
	return project, nil
}

// sourceLocations returns existing composer autoload directories when location is the project root
func sourceLocations(info *repository.Project, location string) []string {
	if info.RelativePath != "." || info.Composer == nil {
		return []string{location}
	}
	var result []string
	for _, dir := range info.Composer.SourceDirs() {
		candidate := filepath.Join(info.RootPath, dir)
		if stat, err := os.Stat(candidate); err == nil && stat.IsDir() {
			result = append(result, candidate)
		}
	}
	if len(result) == 0 {
		return []string{location}
	}
	return result
}
