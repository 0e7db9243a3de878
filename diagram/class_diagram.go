package diagram

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/phpgraph/diagram/backend"
	"github.com/viant/phpgraph/diagram/plantuml"
	"github.com/viant/phpgraph/inspector/graph"
)

// ErrRenderFailed is returned when the backend produced no output
var ErrRenderFailed = errors.New("Generating the class diagram failed")

// Logger reports generator failures, *slog.Logger satisfies it
type Logger interface {
	Error(msg string, args ...any)
}

// ClassDiagram generates class diagram files from a namespace tree
type ClassDiagram struct {
	logger  Logger
	backend backend.Backend
	fs      afs.Service
}

// New creates a class diagram generator
func New(logger Logger, renderer backend.Backend, fs afs.Service) *ClassDiagram {
	if fs == nil {
		fs = afs.New()
	}
	return &ClassDiagram{logger: logger, backend: renderer, fs: fs}
}

// Create renders namespace tree and writes the result to URL; nothing is written when rendering fails
func (d *ClassDiagram) Create(ctx context.Context, root *graph.Namespace, URL string) error {
	if root == nil {
		return nil
	}
	markup := plantuml.Render(root)
	output, err := d.backend.Render(ctx, markup)
	if err != nil || len(output) == 0 {
		d.logger.Error(ErrRenderFailed.Error(), "url", URL, "error", err)
		if err != nil {
			return errors.Wrap(ErrRenderFailed, err.Error())
		}
		return ErrRenderFailed
	}
	if err = d.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(output)); err != nil {
		return errors.Wrapf(err, "failed to write diagram: %v", URL)
	}
	return nil
}

// CreateProject renders project namespace tree
func (d *ClassDiagram) CreateProject(ctx context.Context, project *graph.Project, URL string) error {
	if project == nil {
		return nil
	}
	return d.Create(ctx, project.Namespace, URL)
}
