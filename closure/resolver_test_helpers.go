package closure

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeRepoFile creates a file inside a test repository tree, creating parent
// directories as needed, and returns its absolute path.
func writeRepoFile(t *testing.T, root, relPath, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "failed to create parent directories for %s", relPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "failed to create file %s", relPath)
	return path
}

// discardLogger returns a logger whose output is dropped.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestResolver returns a Resolver that keeps test output quiet.
func newTestResolver() *Resolver {
	return &Resolver{Logger: discardLogger()}
}
