package watch

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMetadata = `{
  "pairs": [
    {
      "program_name": "grep",
      "program_description": "Line-oriented search tool",
      "translation_tools": ["manual"],
      "feature_relationship": "rust_equivalent_to_c",
      "c_program": {
        "documentation_url": "https://www.gnu.org/software/grep/manual/",
        "repository_url": "https://git.savannah.gnu.org/git/grep.git",
        "source_paths": ["src/grep.c"]
      },
      "rust_program": {
        "documentation_url": "https://docs.rs/ripgrep",
        "repository_url": "https://github.com/BurntSushi/ripgrep",
        "source_paths": ["crates/core/main.rs"]
      }
    }
  ]
}`

// safeBuffer serializes writes so the watcher goroutine can log while the
// test reads.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestIsRelevantChange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{
			name:     "metadata write",
			event:    fsnotify.Event{Name: "metadata/projects/grep.json", Op: fsnotify.Write},
			expected: true,
		},
		{
			name:     "metadata create",
			event:    fsnotify.Event{Name: "metadata/individual/cmp.json", Op: fsnotify.Create},
			expected: true,
		},
		{
			name:     "editor swap file",
			event:    fsnotify.Event{Name: "metadata/projects/.grep.json.swp", Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "metadata remove",
			event:    fsnotify.Event{Name: "metadata/projects/grep.json", Op: fsnotify.Remove},
			expected: false,
		},
		{
			name:     "chmod only",
			event:    fsnotify.Event{Name: "metadata/projects/grep.json", Op: fsnotify.Chmod},
			expected: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, isRelevantChange(tc.event))
		})
	}
}

func TestWatchMetadata_ValidatesChangedFiles(t *testing.T) {
	dir := t.TempDir()

	out := &safeBuffer{}
	logger := slog.New(slog.NewTextHandler(out, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchMetadata(ctx, []string{dir}, logger)
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)

	validPath := filepath.Join(dir, "grep.json")
	require.NoError(t, os.WriteFile(validPath, []byte(validMetadata), 0644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "metadata file is valid")
	}, 3*time.Second, 50*time.Millisecond)

	invalidPath := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte("{"), 0644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "metadata validation failed")
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchMetadata_SkipsMissingDirectories(t *testing.T) {
	dir := t.TempDir()

	out := &safeBuffer{}
	logger := slog.New(slog.NewTextHandler(out, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchMetadata(ctx, []string{filepath.Join(dir, "missing"), dir}, logger)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	assert.Contains(t, out.String(), "skipping unwatchable directory")
}

func TestWatchMetadata_NoWatchableDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	err := watchMetadata(context.Background(), []string{filepath.Join(dir, "missing")}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be watched")
}
