// Package audit cross-checks the literal include scan against a full
// C parse. The resolver only honors directives that start a line and
// use quotes; audit reports what that strictness leaves behind.
package audit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wuihee/c-rust-program-pairs/closure"
)

// Finding is a quoted include directive the literal line scan does
// not recognize.
type Finding struct {
	// File is the repository-relative file holding the directive.
	File string

	// Include is the include path as written in the directive.
	Include string
}

// Report summarizes one audit over a program's resolved files.
type Report struct {
	// FilesExamined is the size of the resolved closure.
	FilesExamined int

	// MissedIncludes lists quoted directives invisible to the literal
	// scan, ordered by file and then by position in the file.
	MissedIncludes []Finding

	// SystemIncludes counts angle-bracket directives, which the
	// resolver skips.
	SystemIncludes int
}

// Auditor re-parses a program's resolved files with a C grammar and
// compares the result against the literal scan.
type Auditor struct {
	// ReadFile loads file contents. Defaults to os.ReadFile.
	ReadFile closure.ContentReader

	// Logger receives resolution diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Audit resolves program's source closure under repoRoot, then parses
// each resolved file and reports every quoted include the literal scan
// would miss, plus a count of the system includes it skips.
func (a *Auditor) Audit(program, repoRoot string) (*Report, error) {
	resolver := &closure.Resolver{ReadFile: a.ReadFile, Logger: a.Logger}
	files, err := resolver.Resolve(program, repoRoot)
	if err != nil {
		return nil, err
	}

	read := a.read()
	report := &Report{FilesExamined: len(files)}
	for _, relPath := range files {
		content, err := read(filepath.Join(repoRoot, relPath))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
		}

		parsed, err := ParseIncludes(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", relPath, err)
		}

		literal := make(map[string]bool)
		for _, include := range closure.QuotedIncludes(content) {
			literal[include] = true
		}

		for _, include := range parsed {
			if include.Kind == IncludeSystem {
				report.SystemIncludes++
				continue
			}
			if !literal[include.Path] {
				report.MissedIncludes = append(report.MissedIncludes, Finding{
					File:    relPath,
					Include: include.Path,
				})
			}
		}
	}
	return report, nil
}

func (a *Auditor) read() closure.ContentReader {
	if a.ReadFile != nil {
		return a.ReadFile
	}
	return os.ReadFile
}
