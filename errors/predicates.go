package errors

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/randalmurphal/pairwith/config"
)

// IsAliasError checks if an error comes from defining or removing an alias.
func IsAliasError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, config.ErrAliasNotFound) ||
		errors.Is(err, config.ErrAliasSelfReference) ||
		errors.Is(err, config.ErrNoHandles) ||
		errors.Is(err, config.ErrInvalidAliasName)
}

// IsMessageError checks if an error is about the commit message input.
func IsMessageError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrNoMessage) || errors.Is(err, ErrMessageFile)
}

// IsPermissionError checks if an error is permission-related.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrPermissionDenied) || errors.Is(err, fs.ErrPermission) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "read-only file system")
}
