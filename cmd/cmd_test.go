package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/phpgraph/cmd"
	"github.com/viant/phpgraph/diagram/plantuml"
)

const cartSource = `<?php
namespace Acme\Shop;

use Acme\Contract\Countable as CountableContract;

class Cart extends Base implements CountableContract
{
    use Totals;
}
`

func execute(t *testing.T, args ...string) (string, error) {
	rootCmd := cmd.NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDiagramCmd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Cart.php"), []byte(cartSource), 0644))
	output := filepath.Join(root, "out", "classes.puml")

	stdout, err := execute(t, "diagram", root, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "inspected 1 files: 1 classes, 0 interfaces, 0 traits")
	assert.Contains(t, stdout, "written: "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	markup := string(data)
	assert.True(t, strings.HasPrefix(markup, plantuml.Header))
	assert.Contains(t, markup, `\\Acme\\Shop\\Totals <-- \\Acme\\Shop\\Cart : uses`)
	assert.Contains(t, markup, `class \\Acme\\Shop\\Cart extends \\Acme\\Shop\\Base implements \\Acme\\Contract\\Countable {`)
}

func TestDiagramCmd_InvalidBackend(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "diagram", root, "-b", "graphviz")
	assert.Error(t, err)
}

func TestContextCmd(t *testing.T) {
	root := t.TempDir()
	location := filepath.Join(root, "Cart.php")
	require.NoError(t, os.WriteFile(location, []byte(cartSource), 0644))

	stdout, err := execute(t, "context", location)
	require.NoError(t, err)
	assert.Equal(t, "- file: "+location+"\n"+
		"  namespace: Acme\\Shop\n"+
		"  aliases:\n"+
		"    CountableContract: Acme\\Contract\\Countable\n", stdout)

	_, err = execute(t, "context")
	assert.Error(t, err)
}
