package textfile

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen matches every *OpenError.
	ErrOpen = errors.New("could not open contacts file")

	// ErrMalformed matches every *MalformedError.
	ErrMalformed = errors.New("malformed contacts file")
)

// Operation names carried by OpenError.
const (
	OpSave = "save"
	OpLoad = "load"
)

// OpenError reports a contacts file that could not be opened.
type OpenError struct {
	Op   string // OpSave or OpLoad
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrOpen) hold.
func (e *OpenError) Is(target error) bool {
	return target == ErrOpen
}

// MalformedError reports the first line pair that does not follow the
// Name/Number layout. Line is 1-based and points at the offending line;
// for a dangling name line with no number after it, Line is that name line.
type MalformedError struct {
	Path string // empty when decoding a bare reader
	Line int
	Text string
}

func (e *MalformedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed data in %s at line %d: %q", e.Path, e.Line, e.Text)
	}
	return fmt.Sprintf("malformed data at line %d: %q", e.Line, e.Text)
}

// Is makes errors.Is(err, ErrMalformed) hold.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
