package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrNoMessage indicates there was no commit message to read.
	ErrNoMessage = errors.New("no commit message")

	// ErrMessageFile indicates the commit message file could not be used.
	ErrMessageFile = errors.New("commit message file unusable")

	// ErrNotInGitRepo indicates the command requires a git repository.
	ErrNotInGitRepo = errors.New("not in a git repository")

	// ErrPermissionDenied indicates insufficient permissions.
	ErrPermissionDenied = errors.New("permission denied")
)
