package closure

import (
	"log/slog"
	"os"
	"sort"
)

// Resolver computes the source-file closure of a program from the build
// fragments found in a repository checkout.
//
// The zero value is ready to use. Every Resolve call discovers fragments
// afresh and works on its own visited set, so a single Resolver can serve
// independent resolutions; the repository tree is assumed stable for the
// duration of one call.
type Resolver struct {
	// ReadFile loads file content during extraction and closure walking.
	// Defaults to os.ReadFile.
	ReadFile ContentReader

	// Logger receives diagnostics for recoverable failures such as an
	// unreadable fragment. Defaults to slog.Default().
	Logger *slog.Logger
}

// Resolve returns the complete, de-duplicated set of source files that
// program depends on, as sorted slash-separated paths relative to repoRoot.
//
// Fragments named Makefile.am, local.mk, or Makemodule.am anywhere under
// repoRoot seed the closure with the files their `<program>_SOURCES` lines
// declare; the closure then grows by following quoted includes transitively.
// An empty result with a nil error means no fragment declared sources for
// the program.
func (r *Resolver) Resolve(program, repoRoot string) ([]string, error) {
	visited, err := r.expandClosure(program, repoRoot, nil)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(visited))
	for path := range visited {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths, nil
}

// expandClosure runs fragment discovery, source-list extraction, and the
// include walk against a fresh visited set. onEdge, when non-nil, observes
// every resolved include edge.
func (r *Resolver) expandClosure(program, repoRoot string, onEdge func(from, to string)) (map[string]bool, error) {
	read := r.contentReader()
	logger := r.diagnostics()
	locator := newFileLocator(repoRoot)
	visited := make(map[string]bool)

	for _, fragmentName := range buildFragmentNames {
		for _, fragmentPath := range locator.find(fragmentName) {
			for _, seed := range sourcesForProgram(fragmentPath, program, read, locator.find, logger) {
				if err := collectClosure(repoRoot, visited, seed, read, locator.find, onEdge); err != nil {
					return nil, err
				}
			}
		}
	}

	return visited, nil
}

func (r *Resolver) contentReader() ContentReader {
	if r.ReadFile != nil {
		return r.ReadFile
	}
	return os.ReadFile
}

func (r *Resolver) diagnostics() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
