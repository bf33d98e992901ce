// Package errors provides standardized error handling for launchpad.
// It defines the error kinds a shell or the entry point can produce, typed
// errors carrying the shell, parameter or input involved, and helpers for
// consistent creation, wrapping and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Input error kinds
	InvalidInput
	// Shell error kinds
	ShellInitFailed
	ShellAlreadyRun
	UnknownShell
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case ShellInitFailed:
		return "shell init failed"
	case ShellAlreadyRun:
		return "shell already run"
	case UnknownShell:
		return "unknown shell"
	case InvalidConfig:
		return "invalid config"
	case ConfigNotFound:
		return "config not found"
	}
	return "unknown"
}

// Common error constants for frequently occurring errors
var (
	ErrNoDisplay     = NewShellError("no display available", "", ShellInitFailed, nil)
	ErrNoTerminal    = NewShellError("not attached to a terminal", "", ShellInitFailed, nil)
	ErrAlreadyRun    = NewShellError("shell has already been run", "", ShellAlreadyRun, nil)
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ShellError represents a failure of a specific UI shell
type ShellError struct {
	ApplicationError
	shell string
}

// NewShellError creates a new shell error
func NewShellError(msg string, shell string, kind ErrorKind, err error) *ShellError {
	return &ShellError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		shell: shell,
	}
}

// Error returns the shell error message
func (e *ShellError) Error() string {
	if e.shell != "" {
		if e.err != nil {
			return fmt.Sprintf("%s shell: %s: %v", e.shell, e.msg, e.err)
		}
		return fmt.Sprintf("%s shell: %s", e.shell, e.msg)
	}
	return e.ApplicationError.Error()
}

// Shell returns the name of the shell the error belongs to
func (e *ShellError) Shell() string {
	return e.shell
}

// Is matches sentinel shell errors: an error attributed to a shell with
// ForShell still satisfies errors.Is against the unattributed sentinel.
func (e *ShellError) Is(target error) bool {
	t, ok := target.(*ShellError)
	if !ok || t.shell != "" {
		return false
	}
	return t.kind == e.kind && t.msg == e.msg
}

// ForShell returns a copy of a sentinel shell error attributed to the named shell.
func ForShell(sentinel *ShellError, shell string) *ShellError {
	return NewShellError(sentinel.msg, shell, sentinel.kind, sentinel.err)
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// InputError represents a malformed piece of interactive input
type InputError struct {
	ApplicationError
	token string
}

// NewInputError creates a new input error for the offending token
func NewInputError(msg string, token string, err error) *InputError {
	return &InputError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidInput,
		},
		token: token,
	}
}

// Error returns the input error message
func (e *InputError) Error() string {
	if e.token != "" {
		return fmt.Sprintf("%s: %q", e.msg, e.token)
	}
	return e.ApplicationError.Error()
}

// Token returns the input that could not be understood
func (e *InputError) Token() string {
	return e.token
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewKind creates a new error of the given kind
func NewKind(kind ErrorKind, format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first application error in err's chain
// that carries a kind other than Unknown.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsShellInit checks if the error is a shell initialization failure
func IsShellInit(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Kind() == ShellInitFailed
	}
	return false
}

// IsUnknownShell checks if the error names a shell kind that does not exist
func IsUnknownShell(err error) bool {
	return KindOf(err) == UnknownShell
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}
