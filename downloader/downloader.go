// Package downloader assembles the local corpus: it reads program
// pair metadata, clones the referenced repositories into a cache, and
// stages the listed source files under the pairs directory.
package downloader

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/wuihee/c-rust-program-pairs/config"
	"github.com/wuihee/c-rust-program-pairs/corpus"
	"github.com/wuihee/c-rust-program-pairs/git"
)

// Downloader builds the on-disk corpus described by metadata files.
type Downloader struct {
	// Config supplies the directory layout and clone depth.
	Config config.Config

	// Logger receives per-file and per-pair diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Output is where progress bars render. Defaults to os.Stderr.
	Output io.Writer
}

// Run downloads every program pair described under the metadata
// directories. When demo is true only the demo directory is read.
// A file that fails to parse, or a pair that fails to download, is
// logged and skipped so one bad entry cannot halt a corpus build.
func (d *Downloader) Run(demo bool) error {
	dirs := d.Config.MetadataDirs()
	if demo {
		dirs = []string{d.Config.DemoMetadataDir}
	}

	total, err := countFiles(dirs)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(d.output()),
		progressbar.OptionSetDescription("Processing metadata files"),
	)

	for _, dir := range dirs {
		if err := d.downloadDirectory(dir, bar); err != nil {
			return err
		}
	}

	_ = bar.Finish()
	fmt.Fprintln(d.output())
	return nil
}

// downloadDirectory processes each metadata file in dir, advancing the
// bar once per successfully parsed file.
func (d *Downloader) downloadDirectory(dir string, bar *progressbar.ProgressBar) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read metadata directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := corpus.Parse(path)
		if err != nil {
			d.logger().Warn("failed to parse metadata file", "path", path, "error", err)
			continue
		}

		for _, pair := range doc.Metadata().Pairs {
			if err := d.downloadPair(pair); err != nil {
				d.logger().Warn("failed to download pair", "program", pair.ProgramName, "error", err)
			}
		}
		_ = bar.Add(1)
	}
	return nil
}

// downloadPair stages one C-Rust pair under the pairs directory.
func (d *Downloader) downloadPair(pair corpus.ProgramPair) error {
	base := d.Config.PairDir(pair.ProgramName)
	cDir := filepath.Join(base, "c-program")
	rustDir := filepath.Join(base, "rust-program")

	for _, dir := range []string{cDir, rustDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := d.downloadProgram(pair.CProgram, cDir); err != nil {
		return err
	}
	return d.downloadProgram(pair.RustProgram, rustDir)
}

// downloadProgram clones the program's repository into the cache, or
// reuses an existing clone, then copies its listed source paths.
func (d *Downloader) downloadProgram(program corpus.Program, dest string) error {
	cloneDir := d.Config.CloneDir(string(program.Language), git.RepositoryName(program.RepositoryURL))

	err := git.Clone(program.RepositoryURL, cloneDir, git.CloneOptions{
		Depth:    d.Config.CloneDepth,
		Progress: d.output(),
	})
	if err != nil {
		return err
	}

	return stageSources(cloneDir, program.SourcePaths, dest)
}

// countFiles totals the regular entries across the given directories.
func countFiles(dirs []string) (int, error) {
	total := 0
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return 0, fmt.Errorf("failed to read metadata directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				total++
			}
		}
	}
	return total, nil
}

func (d *Downloader) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d *Downloader) output() io.Writer {
	if d.Output != nil {
		return d.Output
	}
	return os.Stderr
}
