// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors for common scenarios:
//   - ErrNoMessage: No commit message was given on stdin or as a file
//   - ErrMessageFile: The commit message file could not be read or written
//   - ErrNotInGitRepo: Command requires a git repository
//   - ErrPermissionDenied: A file could not be written
//
// Alias failures keep the sentinel from the config package
// (config.ErrAliasNotFound, ...) as their underlying error.
//
// Example usage:
//
//	if err := save.SetAlias(scope, root, name, handles); err != nil {
//	    return errors.WrapAliasError(err, name)
//	}
//
//	if errors.IsAliasError(err) {
//	    // Handle alias-related error
//	}
package errors
