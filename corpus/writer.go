package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrUnknownShape reports a Document that was not produced by Parse.
var ErrUnknownShape = errors.New("metadata document has no recognized shape")

// SetCSourcePaths replaces the C source paths of every pair named program.
// It reports whether any pair matched.
func (d *Document) SetCSourcePaths(program string, paths []string) bool {
	found := false

	switch d.Shape {
	case ShapeIndividual:
		for i := range d.individual.Pairs {
			if d.individual.Pairs[i].ProgramName == program {
				d.individual.Pairs[i].CProgram.SourcePaths = paths
				found = true
			}
		}
	case ShapeProject:
		for i := range d.project.Pairs {
			if d.project.Pairs[i].ProgramName == program {
				d.project.Pairs[i].CProgram.SourcePaths = paths
				found = true
			}
		}
	}

	return found
}

// RefreshCSourcePaths recomputes the C source paths of pairs in doc using
// resolve, which maps a program name to its repository-relative source files.
// When program is non-empty, only pairs with that name are refreshed.
// Returns the number of pairs updated.
func RefreshCSourcePaths(doc *Document, program string, resolve func(name string) ([]string, error)) (int, error) {
	updated := 0
	for _, pair := range doc.Metadata().Pairs {
		if program != "" && pair.ProgramName != program {
			continue
		}

		paths, err := resolve(pair.ProgramName)
		if err != nil {
			return updated, fmt.Errorf("failed to resolve sources for %s: %w", pair.ProgramName, err)
		}

		doc.SetCSourcePaths(pair.ProgramName, paths)
		updated++
	}
	return updated, nil
}

// Encode serializes the document in its original on-disk layout with
// two-space indentation and a trailing newline.
func (d *Document) Encode() ([]byte, error) {
	var value interface{}
	switch d.Shape {
	case ShapeIndividual:
		value = d.individual
	case ShapeProject:
		value = d.project
	default:
		return nil, ErrUnknownShape
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	return append(data, '\n'), nil
}

// Write serializes the document back to the file it was parsed from.
func (d *Document) Write() error {
	if d.Path == "" {
		return errors.New("metadata document has no file path")
	}

	data, err := d.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.Path, err)
	}
	return nil
}

// Diff renders a character-level comparison of two metadata serializations,
// with insertions and deletions colored for terminal display.
func Diff(oldContent, newContent string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	return dmp.DiffPrettyText(diffs)
}
