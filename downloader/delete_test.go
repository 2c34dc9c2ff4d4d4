package downloader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuihee/c-rust-program-pairs/config"
)

func TestDelete_RemovesPairsAndClones(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	cfg := config.Config{
		PairsDir:  filepath.Join(base, "program_pairs"),
		ClonesDir: filepath.Join(base, "repository_clones"),
	}
	writeFile(t, cfg.PairsDir, "grep/c-program/main.c", "int main;\n")
	writeFile(t, cfg.ClonesDir, "c/grep/main.c", "int main;\n")

	require.NoError(t, Delete(cfg))

	assert.NoDirExists(t, cfg.PairsDir)
	assert.NoDirExists(t, cfg.ClonesDir)
}

func TestDelete_MissingDirectoriesAreFine(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	cfg := config.Config{
		PairsDir:  filepath.Join(base, "program_pairs"),
		ClonesDir: filepath.Join(base, "repository_clones"),
	}

	assert.NoError(t, Delete(cfg))
}
