package cli

import (
	"errors"

	"github.com/ttscoff/md-fixup/pkg/rules"
)

// Exit codes for md-fixup.
const (
	// ExitSuccess indicates every input was processed without error.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a malformed config file or invalid rule
	// identifier.
	ExitConfigError = 65

	// ExitIOError indicates an unreadable input or a failed overwrite.
	ExitIOError = 74

	// ExitInternalError indicates a pipeline invariant violation.
	ExitInternalError = 70
)

// errIO marks an unreadable input or unwritable output, reported per file
// while the driver continues with the rest.
type errIO struct{ err error }

func (e *errIO) Error() string { return e.err.Error() }
func (e *errIO) Unwrap() error { return e.err }

// wrapIO tags err as an IO-kind failure for exit code classification.
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &errIO{err: err}
}

// ExitCodeFromError maps a command's returned error to an exit code:
// config errors and invalid rule identifiers are fatal before processing
// (65), IO failures are reported per file but still yield a nonzero exit
// (74), and anything else yields ExitInvalidUsage (64).
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ioErr *errIO
	if errors.As(err, &ioErr) {
		return ExitIOError
	}
	if errors.Is(err, rules.ErrInvalidRule) {
		return ExitConfigError
	}
	return ExitInvalidUsage
}
