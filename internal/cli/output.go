package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/contacts/internal/contact"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Nothing matched (unknown name, empty search)
	ExitCommandError = 2 // Command error (unreadable or unwritable file, bad flags)
)

// Error codes reported in JSON output.
const (
	ErrCodeNotFound  = "E001"
	ErrCodeFile      = "E002"
	ErrCodeMalformed = "E003"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for one-shot commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ContactView is the JSON shape of a contact.
type ContactView struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func viewOf(c contact.Contact) ContactView {
	return ContactView{Name: c.Name(), Phone: c.Phone()}
}

// Success outputs a successful result in the configured format.
// In text mode each line is written as is.
func (f *OutputFormatter) Success(data any, lines ...string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	for _, line := range lines {
		fmt.Fprintln(f.Writer, line)
	}
	return nil
}

// Contacts outputs a contact list. empty is the text shown when there are none.
func (f *OutputFormatter) Contacts(contacts []contact.Contact, empty string) error {
	views := make([]ContactView, 0, len(contacts))
	lines := make([]string, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, viewOf(c))
		lines = append(lines, c.String())
	}
	if len(lines) == 0 {
		lines = append(lines, empty)
	}
	return f.Success(views, lines...)
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
			},
		})
	}

	fmt.Fprintln(f.Writer, message)
	return nil
}
