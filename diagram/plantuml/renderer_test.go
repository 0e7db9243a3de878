package plantuml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/phpgraph/diagram/plantuml"
	"github.com/viant/phpgraph/inspector/graph"
)

func sampleTree() *graph.Namespace {
	root := graph.NewNamespace(`\`)
	app := root.AddChild(graph.NewNamespace(`\App`))

	entity := &graph.Interface{
		FQSEN:   `\App\Entity`,
		Parents: []*graph.Ref{graph.Unresolved(`\A\B`), graph.Unresolved(`\C`)},
	}
	loggable := &graph.Trait{
		FQSEN:  `\App\Loggable`,
		Traits: []*graph.Ref{graph.Unresolved(`\Psr\LoggerAwareTrait`)},
	}
	app.Classes.Add(&graph.Class{
		FQSEN:      `\App\User`,
		Parent:     graph.Unresolved(`\App\Base`),
		Interfaces: []*graph.Ref{graph.Resolved(entity), graph.Unresolved(`\Countable`)},
		Traits:     []*graph.Ref{graph.Resolved(loggable)},
	})
	app.Interfaces.Add(entity)
	app.Traits.Add(loggable)

	sub := app.AddChild(graph.NewNamespace(`\App\Sub`))
	sub.Classes.Add(&graph.Class{FQSEN: `\App\Sub\Thing`, Abstract: true})
	return root
}

func TestRenderNamespace(t *testing.T) {
	testCases := []struct {
		description string
		input       *graph.Namespace
		expected    string
	}{
		{
			description: "nil namespace",
			input:       nil,
			expected:    "",
		},
		{
			description: "empty namespace",
			input:       graph.NewNamespace(`\`),
			expected:    "",
		},
		{
			description: "class, interface, trait and child namespace",
			input:       sampleTree(),
			expected: strings.Join([]string{
				`\\App\\Loggable <-- \\App\\User : uses`,
				``,
				`class \\App\\User extends \\App\\Base implements \\App\\Entity,\\Countable {`,
				`}`,
				``,
				`interface \\App\\Entity extends \\A\\B,\\C {`,
				`}`,
				`\\Psr\\LoggerAwareTrait <-- \\App\\Loggable : uses`,
				``,
				`class \\App\\Loggable << (T,#FF7700) Trait >> {`,
				`}`,
				``,
				`abstract class \\App\\Sub\\Thing {`,
				`}`,
				``,
			}, "\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual := plantuml.RenderNamespace(tc.input)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, actual, plantuml.RenderNamespace(tc.input))
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("empty root renders header only", func(t *testing.T) {
		expected := "skinparam shadowing false\n" +
			"skinparam linetype ortho\n" +
			"hide empty members\n" +
			"left to right direction\n" +
			"set namespaceSeparator \\\\\n" +
			"\n"
		assert.Equal(t, expected, plantuml.Render(graph.NewNamespace(`\`)))
	})

	t.Run("ordering", func(t *testing.T) {
		output := plantuml.Render(sampleTree())
		classIdx := strings.Index(output, `class \\App\\User`)
		interfaceIdx := strings.Index(output, `interface \\App\\Entity`)
		traitIdx := strings.Index(output, `class \\App\\Loggable`)
		childIdx := strings.Index(output, `abstract class \\App\\Sub\\Thing`)
		assert.True(t, strings.HasPrefix(output, plantuml.Header))
		assert.True(t, classIdx > 0)
		assert.True(t, classIdx < interfaceIdx)
		assert.True(t, interfaceIdx < traitIdx)
		assert.True(t, traitIdx < childIdx)
	})

	t.Run("deep nesting", func(t *testing.T) {
		root := graph.NewNamespace(`\`)
		current := root
		fqsen := ""
		for i := 0; i < 2000; i++ {
			fqsen += `\N`
			current = current.AddChild(graph.NewNamespace(fqsen))
		}
		current.Classes.Add(&graph.Class{FQSEN: fqsen + `\Leaf`})
		output := plantuml.Render(root)
		assert.True(t, strings.HasSuffix(output, `\\Leaf {`+"\n}\n"))
	})
}

func TestEscape(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    string
	}{
		{description: "plain", input: "Foo", expected: "Foo"},
		{description: "separators", input: `\Foo\Bar\Baz`, expected: `\\Foo\\Bar\\Baz`},
		{description: "quotes", input: `a'b"c`, expected: `a\'b\"c`},
		{description: "nul", input: "a\x00b", expected: `a\0b`},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, plantuml.Escape(tc.input))
		})
	}
}
