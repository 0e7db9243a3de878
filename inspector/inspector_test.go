package inspector_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/phpgraph/inspector"
	"github.com/viant/phpgraph/inspector/graph"
)

func TestInspector_InspectProject(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"composer.json":         `{"name":"acme/shop","autoload":{"psr-4":{"Acme\\Shop\\":"src/"}}}`,
		"src/Cart.php":          "<?php\nnamespace Acme\\Shop;\n\nclass Cart extends Base {}\n",
		"src/Base.php":          "<?php\nnamespace Acme\\Shop;\n\nabstract class Base {}\n",
		"bin/console.php":       "<?php\nnamespace Acme\\Cli;\n\nclass Console {}\n",
		"vendor/x/y/Vendor.php": "<?php\nnamespace X;\n\nclass Vendor {}\n",
	}
	for name, content := range files {
		location := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0644))
	}

	testCases := []struct {
		description string
		locations   []string
		expectFiles []string
	}{
		{
			description: "project root uses autoload directories",
			locations:   []string{root},
			expectFiles: []string{"src/Base.php", "src/Cart.php"},
		},
		{
			description: "explicit locations",
			locations:   []string{filepath.Join(root, "src", "Cart.php"), filepath.Join(root, "bin")},
			expectFiles: []string{"src/Cart.php", "bin/console.php"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			srv, err := inspector.New(nil)
			require.NoError(t, err)
			project, err := srv.InspectProject(context.Background(), tc.locations...)
			require.NoError(t, err)
			assert.Equal(t, "acme/shop", project.Name)
			assert.Equal(t, "php", project.Type)
			assert.Equal(t, root, project.RootPath)
			var expectFiles []string
			for _, file := range tc.expectFiles {
				expectFiles = append(expectFiles, filepath.FromSlash(file))
			}
			assert.Equal(t, expectFiles, project.Files)
			require.NotNil(t, project.Namespace)
		})
	}
}

func TestInspector_InspectProject_Locations(t *testing.T) {
	root := t.TempDir()
	source := "<?php\nnamespace Acme\\Shop;\n\nclass Cart extends Base {}\nabstract class Base {}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "Cart.php"), []byte(source), 0644))

	srv, err := inspector.New(&graph.Config{Concurrency: 1})
	require.NoError(t, err)
	project, err := srv.InspectProject(context.Background(), filepath.Join(root, "Cart.php"))
	require.NoError(t, err)

	var classes []string
	project.Namespace.Walk(func(ns *graph.Namespace) bool {
		for _, class := range ns.Classes.Items() {
			classes = append(classes, class.FQSEN)
			if class.Parent != nil {
				assert.True(t, class.Parent.IsResolved())
			}
			assert.Equal(t, "Cart.php", class.Location.Path)
		}
		return true
	})
	assert.Equal(t, []string{`\Acme\Shop\Cart`, `\Acme\Shop\Base`}, classes)

	_, err = srv.InspectProject(context.Background())
	assert.Error(t, err)
	_, err = srv.InspectProject(context.Background(), filepath.Join(root, "missing"))
	assert.Error(t, err)
}
