package closure

import (
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"
)

// buildFragmentNames are the recognized build-fragment file names. The set is
// fixed and case-sensitive; no configuration mechanism extends it.
var buildFragmentNames = []string{"Makefile.am", "local.mk", "Makemodule.am"}

// sourcesForProgram extracts the source files declared for program in a
// single build fragment.
//
// Logical lines are matched against the `<program>_SOURCES` key by substring,
// so a program whose name is a suffix of another program's name (for example
// "diff" and "cmp_diff") also matches that program's declaration. Each
// declared token is reduced to its base name and resolved against the whole
// repository tree; a token that matches zero or several files contributes
// zero or several paths, without raising an error.
//
// A fragment that cannot be read is diagnosed and contributes nothing.
func sourcesForProgram(fragmentPath, program string, read ContentReader, locate func(string) []string, logger *slog.Logger) []string {
	content, err := read(fragmentPath)
	if err != nil {
		logger.Warn("failed to read build fragment", "path", fragmentPath, "error", err)
		return nil
	}

	sourcesKey := program + "_SOURCES"

	var paths []string
	for _, line := range normalizeContinuations(splitLines(string(content))) {
		if !strings.Contains(line, sourcesKey) {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) <= 2 {
			continue
		}

		// tokens[0] is the variable name and tokens[1] the assignment
		// operator; everything after them is a candidate file name.
		for _, token := range tokens[2:] {
			paths = append(paths, locate(filepath.Base(token))...)
		}
	}

	return paths
}

// splitLines splits content into physical lines, tolerating CRLF endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// normalizeContinuations collapses backslash line continuations into logical
// lines. Trailing whitespace is stripped from every physical line; a line
// then ending in a backslash has all trailing backslashes removed and is
// joined to the next line with no separator. A continuation left dangling at
// end of input is flushed as a final logical line.
func normalizeContinuations(lines []string) []string {
	normalized := make([]string, 0, len(lines))
	var continued strings.Builder

	for _, line := range lines {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)

		if strings.HasSuffix(trimmed, `\`) {
			continued.WriteString(strings.TrimRight(trimmed, `\`))
			continue
		}

		continued.WriteString(trimmed)
		normalized = append(normalized, continued.String())
		continued.Reset()
	}

	if continued.Len() > 0 {
		normalized = append(normalized, continued.String())
	}

	return normalized
}
