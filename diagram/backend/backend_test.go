package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/phpgraph/diagram/backend"
)

type countingBackend struct {
	calls  int
	output []byte
}

func (c *countingBackend) Render(ctx context.Context, markup string) ([]byte, error) {
	c.calls++
	return c.output, nil
}

func TestNew(t *testing.T) {
	testCases := []struct {
		description string
		config      *backend.Config
		expectType  interface{}
		expectErr   bool
	}{
		{description: "default", config: nil, expectType: &backend.Text{}},
		{description: "text", config: &backend.Config{Kind: "text"}, expectType: &backend.Text{}},
		{description: "server", config: &backend.Config{Kind: "server"}, expectType: &backend.Server{}},
		{description: "command", config: &backend.Config{Kind: "command"}, expectType: &backend.Command{}},
		{description: "cached", config: &backend.Config{Kind: "text", CacheSize: 4}, expectType: &backend.Cached{}},
		{description: "unsupported", config: &backend.Config{Kind: "dot"}, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := backend.New(tc.config)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.expectType, actual)
		})
	}
}

func TestText_Render(t *testing.T) {
	output, err := (&backend.Text{}).Render(context.Background(), "class A {\n}\n")
	require.NoError(t, err)
	assert.Equal(t, "class A {\n}\n", string(output))
}

func TestEncode(t *testing.T) {
	markup := "@startuml\nclass \\\\App\\\\User {\n}\n@enduml\n"
	encoded, err := backend.Encode(markup)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
	decoded, err := backend.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, markup, decoded)
}

func TestServer_Render(t *testing.T) {
	var rendered string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/svg/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		markup, err := backend.Decode(strings.TrimPrefix(r.URL.Path, "/svg/"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		rendered = markup
		_, _ = w.Write([]byte("<svg/>"))
	}))
	defer server.Close()

	srv := backend.NewServer(server.URL+"/", "svg", 0)
	output, err := srv.Render(context.Background(), "class A {\n}\n")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(output))
	assert.Equal(t, "@startuml\nclass A {\n}\n\n@enduml\n", rendered)

	failing := backend.NewServer(server.URL, "png", 0)
	output, err = failing.Render(context.Background(), "class A {\n}\n")
	assert.Error(t, err)
	assert.Empty(t, output)
}

func TestCached_Render(t *testing.T) {
	delegate := &countingBackend{output: []byte("image")}
	cached, err := backend.NewCached(delegate, 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		output, err := cached.Render(context.Background(), "class A {\n}\n")
		require.NoError(t, err)
		assert.Equal(t, "image", string(output))
	}
	assert.Equal(t, 1, delegate.calls)
	assert.Equal(t, 1, cached.Len())

	_, _ = cached.Render(context.Background(), "class B {\n}\n")
	assert.Equal(t, 2, delegate.calls)

	empty := &countingBackend{}
	cachedEmpty, err := backend.NewCached(empty, 2)
	require.NoError(t, err)
	_, _ = cachedEmpty.Render(context.Background(), "x")
	_, _ = cachedEmpty.Render(context.Background(), "x")
	assert.Equal(t, 2, empty.calls, "empty outputs are not cached")
}
