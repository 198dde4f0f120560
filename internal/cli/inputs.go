package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// ResolveInputs determines which files a run processes: explicit
// positional arguments take priority; absent those, file paths are read
// one per line from stdin if stdin is not a TTY; absent both, every
// "*.md" file in the current directory is used.
func ResolveInputs(args []string, stdin io.Reader, isStdinTTY bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if !isStdinTTY {
		paths, err := readPathsFromStdin(stdin)
		if err != nil {
			return nil, fmt.Errorf("read paths from stdin: %w", err)
		}
		if len(paths) > 0 {
			return paths, nil
		}
	}

	matches, err := filepath.Glob("*.md")
	if err != nil {
		return nil, fmt.Errorf("glob *.md: %w", err)
	}
	return matches, nil
}

// IsTTY reports whether the given writer/reader-backed file descriptor is
// attached to a terminal.
func IsTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func readPathsFromStdin(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan stdin: %w", err)
	}
	return paths, nil
}
