package closure

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotedIncludes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "quoted include",
			content: "#include \"util.h\"\n",
			want:    []string{"util.h"},
		},
		{
			name:    "multiple includes",
			content: "#include \"a.h\"\n#include \"b.h\"\n",
			want:    []string{"a.h", "b.h"},
		},
		{
			name:    "system include is ignored",
			content: "#include <stdio.h>\n",
			want:    nil,
		},
		{
			name:    "indented include is not recognized",
			content: "  #include \"util.h\"\n",
			want:    nil,
		},
		{
			name:    "trailing text disqualifies the line",
			content: "#include \"util.h\" /* helpers */\n",
			want:    nil,
		},
		{
			name:    "missing closing quote is ignored",
			content: "#include \"util.h\n",
			want:    nil,
		},
		{
			name:    "carriage returns are tolerated",
			content: "#include \"util.h\"\r\n",
			want:    []string{"util.h"},
		},
		{
			name:    "macro include is ignored",
			content: "#include CONFIG_HEADER\n",
			want:    nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, QuotedIncludes([]byte(tc.content)))
		})
	}
}

func TestCollectClosure_FollowsIncludesTransitively(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mainC := writeRepoFile(t, root, "main.c", "#include \"util.h\"\nint main(void) { return 0; }\n")
	writeRepoFile(t, root, "util.h", "#include \"types.h\"\n")
	writeRepoFile(t, root, "types.h", "typedef int number;\n")

	locator := newFileLocator(root)
	visited := make(map[string]bool)

	err := collectClosure(root, visited, mainC, os.ReadFile, locator.find, nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"main.c": true, "util.h": true, "types.h": true}, visited)
}

func TestCollectClosure_TerminatesOnIncludeCycle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	aC := writeRepoFile(t, root, "a.c", "#include \"b.h\"\n")
	writeRepoFile(t, root, "b.h", "#include \"a.c\"\n")

	locator := newFileLocator(root)
	visited := make(map[string]bool)

	err := collectClosure(root, visited, aC, os.ReadFile, locator.find, nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a.c": true, "b.h": true}, visited)
}

func TestCollectClosure_MissingIncludeTargetIsIgnored(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mainC := writeRepoFile(t, root, "main.c", "#include \"ghost.h\"\n")

	locator := newFileLocator(root)
	visited := make(map[string]bool)

	err := collectClosure(root, visited, mainC, os.ReadFile, locator.find, nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"main.c": true}, visited)
}

func TestCollectClosure_UnreadableFileFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mainC := writeRepoFile(t, root, "main.c", "#include \"util.h\"\n")
	writeRepoFile(t, root, "util.h", "")

	failOnUtil := func(path string) ([]byte, error) {
		if filepath.Base(path) == "util.h" {
			return nil, errors.New("read failure")
		}
		return os.ReadFile(path)
	}

	locator := newFileLocator(root)
	visited := make(map[string]bool)

	err := collectClosure(root, visited, mainC, failOnUtil, locator.find, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "util.h")
}

func TestCollectClosure_FileOutsideRepositoryRootFails(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	root := filepath.Join(base, "repo")
	require.NoError(t, os.MkdirAll(root, 0755))
	outside := writeRepoFile(t, base, "outside.c", "")

	locator := newFileLocator(root)
	visited := make(map[string]bool)

	err := collectClosure(root, visited, outside, os.ReadFile, locator.find, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside repository root")
}

func TestCollectClosure_RecordsIncludeEdges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mainC := writeRepoFile(t, root, "main.c", "#include \"util.h\"\n")
	writeRepoFile(t, root, "util.h", "")

	locator := newFileLocator(root)
	visited := make(map[string]bool)

	var edges []string
	err := collectClosure(root, visited, mainC, os.ReadFile, locator.find, func(from, to string) {
		edges = append(edges, from+" -> "+to)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"main.c -> util.h"}, edges)
}

func TestRepoRelative(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	rel, err := repoRelative(root, filepath.Join(root, "src", "main.c"))
	require.NoError(t, err)
	assert.Equal(t, "src/main.c", rel)

	_, err = repoRelative(root, filepath.Join(filepath.Dir(root), "elsewhere.c"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "outside repository root"))
}
