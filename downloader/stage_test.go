package downloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file under root, creating parent directories as
// needed, and returns its path.
func writeFile(t *testing.T, root, relPath, content string) string {
	t.Helper()
	path := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStageSources_CopiesFilesFlat(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()
	writeFile(t, repo, "src/deep/util.c", "int util;\n")
	writeFile(t, repo, "main.c", "int main;\n")
	dest := t.TempDir()

	err := stageSources(repo, []string{"src/deep/util.c", "main.c"}, dest)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dest, "util.c"))
	assert.FileExists(t, filepath.Join(dest, "main.c"))
	assert.NoFileExists(t, filepath.Join(dest, "src", "deep", "util.c"))
}

func TestStageSources_CopiesDirectoriesRecursively(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()
	writeFile(t, repo, "include/err.h", "#define ERR 1\n")
	writeFile(t, repo, "include/sys/types.h", "typedef int t;\n")
	dest := t.TempDir()

	err := stageSources(repo, []string{"include"}, dest)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dest, "err.h"))
	assert.FileExists(t, filepath.Join(dest, "sys", "types.h"))
}

func TestStageSources_MissingPathFails(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()
	dest := t.TempDir()

	err := stageSources(repo, []string{"src/ghost.c"}, dest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost.c")
}

func TestStageSources_PreservesContent(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()
	writeFile(t, repo, "main.c", "int main(void) { return 0; }\n")
	dest := t.TempDir()

	require.NoError(t, stageSources(repo, []string{"main.c"}, dest))

	data, err := os.ReadFile(filepath.Join(dest, "main.c"))
	require.NoError(t, err)
	assert.Equal(t, "int main(void) { return 0; }\n", string(data))
}
