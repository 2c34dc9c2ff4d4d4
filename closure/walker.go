package closure

import (
	"fmt"
	"path/filepath"
	"strings"
)

const includePrefix = `#include "`

// QuotedIncludes returns the include targets referenced by content using the
// literal form `#include "<name>"`. The directive must start the line and the
// closing quote must end it; angle-bracket includes, macro-expanded names,
// and conditional forms are not recognized.
func QuotedIncludes(content []byte) []string {
	var targets []string
	for _, line := range splitLines(string(content)) {
		rest, ok := strings.CutPrefix(line, includePrefix)
		if !ok {
			continue
		}
		target, ok := strings.CutSuffix(rest, `"`)
		if !ok {
			continue
		}
		targets = append(targets, target)
	}
	return targets
}

// collectClosure expands visited with every file reachable from root through
// quoted includes, using an iterative worklist instead of recursion so deep
// include chains cannot exhaust the stack. Paths enter the set relative to
// the repository root; the visited check is the sole termination guard
// against include cycles.
//
// A file that cannot be expressed relative to repoRoot, or that cannot be
// read once discovered, aborts the walk: both indicate the tree violates the
// walker's structural assumptions rather than a data-quality issue.
//
// onEdge, when non-nil, observes every resolved include edge between files
// as repository-relative paths.
func collectClosure(repoRoot string, visited map[string]bool, root string, read ContentReader, locate func(string) []string, onEdge func(from, to string)) error {
	pending := []string{root}

	for len(pending) > 0 {
		path := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		relPath, err := repoRelative(repoRoot, path)
		if err != nil {
			return err
		}
		if visited[relPath] {
			continue
		}
		visited[relPath] = true

		content, err := read(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		for _, target := range QuotedIncludes(content) {
			for _, match := range locate(target) {
				if onEdge != nil {
					matchRel, err := repoRelative(repoRoot, match)
					if err != nil {
						return err
					}
					onEdge(relPath, matchRel)
				}
				pending = append(pending, match)
			}
		}
	}

	return nil
}

// repoRelative converts path to a slash-separated path relative to repoRoot.
// A path outside the repository root is a structural error.
func repoRelative(repoRoot, path string) (string, error) {
	rel, err := filepath.Rel(repoRoot, path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s relative to %s: %w", path, repoRoot, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file %s lies outside repository root %s", path, repoRoot)
	}
	return filepath.ToSlash(rel), nil
}
