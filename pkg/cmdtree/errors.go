package cmdtree

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports misuse detected while building a command tree:
// malformed command strings, invalid parameter lists, name collisions and
// top-level names refused by the host platform.
type ConfigurationError struct {
	// Input is the command string, path or parameter token being registered.
	Input   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Input != "" {
		fmt.Fprintf(&b, " in %q", e.Input)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErrorf(input, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Input: input, Message: fmt.Sprintf(format, args...)}
}

// ArgumentShortfallError is returned by a strict bind when the input ran out
// before every required parameter received a value.
type ArgumentShortfallError struct {
	// Missing is the first required parameter without a value.
	Missing Parameter
	// Bound holds the values assigned before the input ran out.
	Bound Args
}

func (e *ArgumentShortfallError) Error() string {
	return fmt.Sprintf("missing value for required parameter %s", e.Missing.Usage())
}

// ExecutionError is the failure a handler returns when the request cannot
// be served and the caller should be told why. Any other error returned by
// a handler is treated as a programming error.
type ExecutionError struct {
	// Message is shown to the caller. An empty message shows nothing.
	Message string
	Err     error
}

func (e *ExecutionError) Error() string {
	switch {
	case e.Message == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	default:
		return e.Message
	}
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Fail returns an ExecutionError carrying message.
func Fail(message string) error {
	return &ExecutionError{Message: message}
}

// Failf returns an ExecutionError with a formatted message.
func Failf(format string, args ...interface{}) error {
	return &ExecutionError{Message: fmt.Sprintf(format, args...)}
}

// FailSilently aborts a handler without showing anything to the caller.
func FailSilently() error {
	return &ExecutionError{}
}

// CommandNotDeclaredError is returned by a Platform that only accepts
// top-level commands it declared up front.
type CommandNotDeclaredError struct {
	Name string
}

func (e *CommandNotDeclaredError) Error() string {
	return fmt.Sprintf("Command: '%s' not exists", e.Name)
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsExecutionError reports whether err is or wraps an ExecutionError.
func IsExecutionError(err error) bool {
	var target *ExecutionError
	return errors.As(err, &target)
}
