package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/randalmurphal/pairwith/config"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to change wording, for example when pairwith runs
// under a different command name.
type ErrorMessenger interface {
	// NoMessageMessage returns the message and suggestion when no commit message was given.
	NoMessageMessage() (message, suggestion string)

	// MessageFileMessage returns the message and suggestion for an unusable message file.
	MessageFileMessage(path string) (message, suggestion string)

	// NotInGitRepoMessage returns the message and suggestion for git repo errors.
	NotInGitRepoMessage() (message, suggestion string)

	// PermissionDeniedMessage returns the message and suggestion for unwritable files.
	PermissionDeniedMessage(path string) (message, suggestion string)

	// AliasNotFoundMessage returns the message and suggestion for unknown aliases.
	AliasNotFoundMessage(name string) (message, suggestion string)

	// AliasElsewhereMessage returns the message and suggestion for an alias that
	// is defined, but not in the config file being changed.
	AliasElsewhereMessage(name, path string, definedIn config.Source) (message, suggestion string)

	// AliasInvalidMessage returns the message and suggestion for alias definitions
	// that cannot be saved.
	AliasInvalidMessage(name string, reason error) (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) NoMessageMessage() (string, string) {
	return "No commit message to read.",
		"Pass a message file, or pipe the message on stdin."
}

func (m DefaultMessenger) MessageFileMessage(path string) (string, string) {
	return fmt.Sprintf("Cannot use commit message file %s", path),
		"git passes the message file as the first argument to the commit-msg hook."
}

func (m DefaultMessenger) NotInGitRepoMessage() (string, string) {
	return "This command must be run from within a git repository.",
		"Run it from a git repository, or save the setting globally instead."
}

func (m DefaultMessenger) PermissionDeniedMessage(path string) (string, string) {
	return fmt.Sprintf("Permission denied writing %s", path),
		"Check the file's ownership and permissions."
}

func (m DefaultMessenger) AliasNotFoundMessage(name string) (string, string) {
	return fmt.Sprintf("No alias named %q.", name),
		"Run 'pairwith alias list' to see the defined aliases."
}

func (m DefaultMessenger) AliasElsewhereMessage(name, path string, definedIn config.Source) (string, string) {
	msg := fmt.Sprintf("Alias %q is not defined in %s.", name, path)
	switch definedIn {
	case config.SourceLocal:
		return msg, "It comes from the repository's " + config.LocalConfigName + "; pass --local to delete it there."
	case config.SourceGlobal:
		return msg, "It comes from your user config; run the command without --local."
	default:
		return msg, "Run 'pairwith alias list' to see the defined aliases."
	}
}

func (m DefaultMessenger) AliasInvalidMessage(name string, reason error) (string, string) {
	switch {
	case errors.Is(reason, config.ErrAliasSelfReference):
		return fmt.Sprintf("Alias %q cannot include itself.", name),
			"Remove the alias name from its list of handles."
	case errors.Is(reason, config.ErrNoHandles):
		return fmt.Sprintf("Alias %q needs at least one handle.", name),
			"Usage: pairwith alias set <name> <handle>..."
	default:
		return fmt.Sprintf("%q is not a valid alias name.", name),
			"Alias names must be non-empty and cannot contain dots."
	}
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapAliasError wraps alias save/delete errors with helpful guidance.
// Errors that are not alias errors are returned unchanged.
func WrapAliasError(err error, name string, opts ...Option) error {
	if err == nil {
		return nil
	}

	messenger := getMessenger(opts)

	switch {
	case errors.Is(err, config.ErrAliasNotFound):
		msg, suggestion := messenger.AliasNotFoundMessage(name)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}
	case errors.Is(err, config.ErrAliasSelfReference),
		errors.Is(err, config.ErrNoHandles),
		errors.Is(err, config.ErrInvalidAliasName):
		msg, suggestion := messenger.AliasInvalidMessage(name, err)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	return err
}

// NewAliasElsewhereError creates an error for deleting an alias from a config
// file that does not define it while another source does.
func NewAliasElsewhereError(name, path string, definedIn config.Source, opts ...Option) error {
	msg, suggestion := getMessenger(opts).AliasElsewhereMessage(name, path, definedIn)
	return &CLIError{
		Err:        fmt.Errorf("alias %s: %w", name, config.ErrAliasNotFound),
		Message:    msg,
		Suggestion: suggestion,
	}
}

// WrapMessageFileError wraps a failure to read or write the commit message file.
func WrapMessageFileError(err error, path string, opts ...Option) error {
	if err == nil {
		return nil
	}

	messenger := getMessenger(opts)

	if IsPermissionError(err) {
		msg, suggestion := messenger.PermissionDeniedMessage(path)
		return &CLIError{
			Err:        errors.Join(ErrMessageFile, ErrPermissionDenied, err),
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	msg, suggestion := messenger.MessageFileMessage(path)
	cliErr := &CLIError{
		Err:        errors.Join(ErrMessageFile, err),
		Message:    msg,
		Suggestion: suggestion,
	}
	if !errors.Is(err, fs.ErrNotExist) {
		cliErr.Details = err.Error()
	}
	return cliErr
}

// WrapConfigWriteError wraps a failure to write a config file.
func WrapConfigWriteError(err error, path string, opts ...Option) error {
	if err == nil {
		return nil
	}

	if IsPermissionError(err) {
		msg, suggestion := getMessenger(opts).PermissionDeniedMessage(path)
		return &CLIError{
			Err:        errors.Join(ErrPermissionDenied, err),
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	return err
}

// NewNotInGitRepoError creates an error for commands that require a git repository.
func NewNotInGitRepoError(opts ...Option) error {
	msg, suggestion := getMessenger(opts).NotInGitRepoMessage()
	return &CLIError{
		Err:        ErrNotInGitRepo,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewNoMessageError creates an error for when no commit message was supplied.
func NewNoMessageError(opts ...Option) error {
	msg, suggestion := getMessenger(opts).NoMessageMessage()
	return &CLIError{
		Err:        ErrNoMessage,
		Message:    msg,
		Suggestion: suggestion,
	}
}
