package php

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/viant/phpgraph/inspector/graph"
	"github.com/viant/phpgraph/inspector/node"
	"golang.org/x/sync/errgroup"
)

// Inspector provides functionality to inspect PHP code and extract namespace declarations
type Inspector struct {
	config  *graph.Config
	exclude []glob.Glob
	logger  *slog.Logger
}

// Option configures inspector
type Option func(*Inspector)

// WithLogger sets inspector logger
func WithLogger(logger *slog.Logger) Option {
	return func(i *Inspector) {
		i.logger = logger
	}
}

// NewInspector creates a new PHP Inspector with the provided configuration
func NewInspector(config *graph.Config, options ...Option) (*Inspector, error) {
	if config == nil {
		config = graph.DefaultConfig()
	}
	result := &Inspector{config: config, logger: slog.Default()}
	for _, pattern := range config.Exclude {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		result.exclude = append(result.exclude, compiled)
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

// InspectSource parses PHP source code and returns declared namespaces
func (i *Inspector) InspectSource(ctx context.Context, src []byte, filename string) ([]*node.Namespace, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(php.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if i.config.StrictParse {
			return nil, fmt.Errorf("syntax error in %s", filename)
		}
		i.logger.Debug("inspecting file with syntax errors", "path", filename)
	}
	return i.processProgram(root, src, filename), nil
}

// InspectFile parses a PHP source file and returns declared namespaces
func (i *Inspector) InspectFile(ctx context.Context, filename string) ([]*node.Namespace, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.InspectSource(ctx, src, filename)
}

// InspectFiles parses files concurrently, namespaces are returned in files order
func (i *Inspector) InspectFiles(ctx context.Context, filenames []string) ([]*node.Namespace, error) {
	results := make([][]*node.Namespace, len(filenames))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, i.config.Concurrency))
	for idx, filename := range filenames {
		idx, filename := idx, filename
		group.Go(func() error {
			namespaces, err := i.InspectFile(groupCtx, filename)
			if err != nil {
				return err
			}
			results[idx] = namespaces
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var namespaces []*node.Namespace
	for _, fileNamespaces := range results {
		namespaces = append(namespaces, fileNamespaces...)
	}
	return namespaces, nil
}

// FindFiles returns PHP files under the locations in lexical order
func (i *Inspector) FindFiles(locations ...string) ([]string, error) {
	var result []string
	for _, location := range locations {
		info, err := os.Stat(location)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", location, err)
		}
		if !info.IsDir() {
			result = append(result, location)
			continue
		}
		err = filepath.WalkDir(location, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				if path != location && i.skipDir(path, entry.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if i.skipFile(path, entry.Name()) {
				return nil
			}
			result = append(result, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", location, err)
		}
	}
	return result, nil
}

// Inspect inspects locations and builds a namespace tree
func (i *Inspector) Inspect(ctx context.Context, locations ...string) (*graph.Namespace, []string, error) {
	files, err := i.FindFiles(locations...)
	if err != nil {
		return nil, nil, err
	}
	namespaces, err := i.InspectFiles(ctx, files)
	if err != nil {
		return nil, nil, err
	}
	builder := graph.NewBuilder()
	for _, ns := range namespaces {
		builder.Add(ns)
	}
	i.logger.Debug("inspected files", "count", len(files))
	return builder.Build(), files, nil
}

func (i *Inspector) skipDir(path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if i.config.SkipTests {
		switch strings.ToLower(name) {
		case "test", "tests":
			return true
		}
	}
	return i.isExcluded(filepath.ToSlash(path) + "/")
}

func (i *Inspector) skipFile(path, name string) bool {
	if filepath.Ext(name) != ".php" {
		return true
	}
	if i.config.SkipTests && strings.HasSuffix(name, "Test.php") {
		return true
	}
	return i.isExcluded(filepath.ToSlash(path))
}

func (i *Inspector) isExcluded(path string) bool {
	for _, pattern := range i.exclude {
		if pattern.Match(path) || pattern.Match("/"+path) {
			return true
		}
	}
	return false
}

// processProgram splits program statements into namespaces
func (i *Inspector) processProgram(root *sitter.Node, src []byte, filename string) []*node.Namespace {
	global := &node.Namespace{Path: filename}
	var namespaces []*node.Namespace
	current := global
	for j := 0; j < int(root.NamedChildCount()); j++ {
		child := root.NamedChild(j)
		if child.Type() != node.TypeNamespace {
			i.appendStatement(current, child, src)
			continue
		}
		ns := &node.Namespace{Name: parseNamespaceName(child, src), Path: filename}
		namespaces = append(namespaces, ns)
		if body := child.ChildByFieldName("body"); body != nil {
			for k := 0; k < int(body.NamedChildCount()); k++ {
				i.appendStatement(ns, body.NamedChild(k), src)
			}
			current = global
			continue
		}
		current = ns
	}
	if hasDeclarations(global) || len(namespaces) == 0 {
		namespaces = append([]*node.Namespace{global}, namespaces...)
	}
	return namespaces
}

func (i *Inspector) appendStatement(ns *node.Namespace, n *sitter.Node, src []byte) {
	var stmt node.Stmt
	switch n.Type() {
	case node.TypeUse:
		stmt = parseUseDeclaration(n, src)
	case node.TypeClass:
		if class := parseClassDeclaration(n, src); class != nil {
			stmt = class
		}
	case node.TypeInterface:
		if iface := parseInterfaceDeclaration(n, src); iface != nil {
			stmt = iface
		}
	case node.TypeTrait:
		if trait := parseTraitDeclaration(n, src); trait != nil {
			stmt = trait
		}
	case node.TypeFunction:
		if function := parseFunctionDefinition(n, src); function != nil {
			stmt = function
		}
	case node.TypeConst:
		if constant := parseConstDeclaration(n, src); constant != nil {
			stmt = constant
		}
	case "php_tag", "text", "text_interpolation", "comment":
		return
	}
	if stmt == nil {
		stmt = &node.Opaque{Kind: n.Type()}
	}
	ns.Append(stmt)
}

func hasDeclarations(ns *node.Namespace) bool {
	for _, stmt := range ns.Stmts {
		if _, ok := stmt.(*node.Opaque); !ok {
			return true
		}
	}
	return false
}
