// Package git shells out to the git binary for the repository
// operations the downloader needs: detecting cached clones and
// creating new shallow ones.
package git

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// CloneOptions controls how Clone fetches a repository.
type CloneOptions struct {
	// Depth limits history depth; values below 1 clone full history.
	Depth int

	// Progress, when non-nil, receives a progress bar driven by the
	// transfer percentages git prints on stderr.
	Progress io.Writer
}

// IsRepository checks if the given path is inside a git work tree.
func IsRepository(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = path
	return cmd.Run() == nil
}

// RepositoryName extracts the repository name from a clone URL: the
// last path segment with any .git suffix removed.
func RepositoryName(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	name := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		name = trimmed[idx+1:]
	}
	return strings.TrimSuffix(name, ".git")
}

// Clone fetches url into dest. An existing work tree at dest is a
// cache hit and is left untouched.
func Clone(url, dest string, opts CloneOptions) error {
	if IsRepository(dest) {
		return nil
	}

	args := []string{"clone"}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	if opts.Progress != nil {
		args = append(args, "--progress")
	}
	args = append(args, url, dest)

	cmd := exec.Command("git", args...)

	if opts.Progress == nil {
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return cloneError(url, err, stderr.String())
		}
		return nil
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to capture git output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return cloneError(url, err, "")
	}

	var captured bytes.Buffer
	trackProgress(stderr, &captured, opts.Progress, RepositoryName(url))

	if err := cmd.Wait(); err != nil {
		return cloneError(url, err, captured.String())
	}
	return nil
}

// progressPattern matches the transfer phases git reports with a
// running percentage during clone.
var progressPattern = regexp.MustCompile(`(Receiving objects|Resolving deltas):\s+(\d+)%`)

// parseProgressLine extracts the percentage from one line of
// git clone --progress output.
func parseProgressLine(line string) (int, bool) {
	matches := progressPattern.FindStringSubmatch(line)
	if matches == nil {
		return 0, false
	}
	percent, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, false
	}
	return percent, true
}

// trackProgress scans git's stderr, mirrors it into captured for error
// reporting, and moves the bar whenever a transfer percentage appears.
func trackProgress(r io.Reader, captured *bytes.Buffer, out io.Writer, description string) {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
	)

	scanner := bufio.NewScanner(r)
	scanner.Split(scanGitLines)
	for scanner.Scan() {
		line := scanner.Text()
		captured.WriteString(line)
		captured.WriteByte('\n')
		if percent, ok := parseProgressLine(line); ok {
			_ = bar.Set(percent)
		}
	}

	_ = bar.Finish()
	fmt.Fprintln(out)
}

// scanGitLines splits on both \r and \n because git rewrites progress
// lines in place with carriage returns.
func scanGitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// cloneError reports a failed clone. git writes status chatter to
// stderr even on success, so the exit code decides failure and the
// last stderr line supplies the reason.
func cloneError(url string, runErr error, stderr string) error {
	if errors.Is(runErr, exec.ErrNotFound) {
		return fmt.Errorf("git command not found - please install Git to download repositories")
	}

	reason := ""
	for _, line := range strings.Split(stderr, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			reason = trimmed
		}
	}
	if reason == "" {
		return fmt.Errorf("failed to clone %s: %w", url, runErr)
	}
	return fmt.Errorf("failed to clone %s: %s", url, reason)
}
