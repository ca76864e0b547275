package mcpserver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkerboard/ikpagrid/internal/redact"
)

func connect(t *testing.T, ctx context.Context) *mcp.ClientSession {
	t.Helper()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	go func() {
		_ = Run(ctx, "v1.0.0-test", nil, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "v1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() }) //nolint:errcheck // best-effort close in test
	return session
}

func TestNew_ReturnsServer(t *testing.T) {
	assert.NotNil(t, New("v1.0.0-test", nil))
}

func TestServer_ListsTools(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session := connect(t, ctx)

	result, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, tool := range result.Tools {
		names[tool.Name] = true
		require.NotNil(t, tool.Annotations)
		assert.True(t, tool.Annotations.ReadOnlyHint, tool.Name)
	}
	assert.Equal(t, map[string]bool{"render": true, "explain": true, "catalog": true}, names)
}

func TestServer_CallExplain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session := connect(t, ctx)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "explain",
		Arguments: map[string]any{
			"column": "Nilai Akhir (Nilai Total/Konversi Bobot)",
			"with":   []string{"Kode Satker", "Revisi DIPA"},
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, "Nilai Akhir")
}

func TestServer_CallRenderError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session := connect(t, ctx)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "render",
		Arguments: map[string]any{"path": "/nonexistent/ikpa.xlsx"},
	})
	require.NoError(t, err, "tool errors are reported in the result")
	assert.True(t, res.IsError)
}

func TestServer_ErrorsHideHomeDirectory(t *testing.T) {
	home := tempDir(t)
	t.Setenv("HOME", home)
	redact.ResetForTest()
	t.Cleanup(redact.ResetForTest)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session := connect(t, ctx)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "render",
		Arguments: map[string]any{"path": filepath.Join(home, "ikpa", "missing.xlsx")},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
	msg := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, msg, "~/ikpa/missing.xlsx")
	assert.NotContains(t, msg, home)
}
