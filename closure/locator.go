package closure

import (
	"io/fs"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// FindFilesNamed walks the tree rooted at root and returns the paths of all
// regular files whose base name equals name exactly (case-sensitive, no glob
// semantics). Entries that cannot be read during the walk are skipped
// silently; partial trees are expected when a clone is incomplete.
// The order of the returned paths is unspecified.
func FindFilesNamed(root, name string) []string {
	var matches []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == name {
			matches = append(matches, path)
		}
		return nil
	})

	return matches
}

const locatorCacheSize = 1024

// fileLocator resolves bare file names to paths within one repository tree.
// Lookups are memoized for the lifetime of a single resolution, during which
// the tree is assumed stable.
type fileLocator struct {
	root  string
	cache *lru.Cache[string, []string]
}

func newFileLocator(root string) *fileLocator {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, []string](locatorCacheSize)
	return &fileLocator{root: root, cache: cache}
}

func (l *fileLocator) find(name string) []string {
	if paths, ok := l.cache.Get(name); ok {
		return paths
	}
	paths := FindFilesNamed(l.root, name)
	l.cache.Add(name, paths)
	return paths
}
