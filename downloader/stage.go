package downloader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// stageSources copies the listed repository paths into dest. Plain
// files land directly under dest by base name, regardless of how
// deeply they sit in the repository; directories have their contents
// copied recursively with structure preserved.
func stageSources(repoDir string, sourcePaths []string, dest string) error {
	for _, sourcePath := range sourcePaths {
		source := filepath.Join(repoDir, sourcePath)

		info, err := os.Stat(source)
		if err != nil {
			return fmt.Errorf("failed to stat source path %s: %w", source, err)
		}

		if info.IsDir() {
			if err := copyDirContents(source, dest); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(source, filepath.Join(dest, filepath.Base(sourcePath))); err != nil {
			return err
		}
	}
	return nil
}

// copyDirContents mirrors the tree rooted at source into dest.
func copyDirContents(source, dest string) error {
	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if entry.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(source, dest string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}
