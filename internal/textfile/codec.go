package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/contacts/internal/contact"
)

// Line prefixes of the file format.
const (
	NamePrefix   = "Name: "
	NumberPrefix = "Number: "
)

// Encoder writes contacts in the two-line format.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder returns an encoder writing to w. Call Flush when done.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes one contact.
func (e *Encoder) Encode(c contact.Contact) error {
	if _, err := e.w.WriteString(NamePrefix + c.Name() + "\n"); err != nil {
		return err
	}
	_, err := e.w.WriteString(NumberPrefix + c.Phone() + "\n")
	return err
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

// Decoder reads contacts in the two-line format.
type Decoder struct {
	r    *bufio.Reader
	line int
	err  error
}

// NewDecoder returns a decoder reading from r.
// Lines are split on '\n' only and have no length limit; any other byte,
// including a carriage return, is part of the value.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next returns the next contact.
//
// It returns io.EOF once the input is exhausted on a record boundary, and
// a *MalformedError when a pair lacks its prefixes or the input ends after
// a lone line. Any other error comes from the underlying reader.
func (d *Decoder) Next() (contact.Contact, error) {
	nameLine, ok := d.readLine()
	if !ok {
		if d.err != nil {
			return contact.Contact{}, d.err
		}
		return contact.Contact{}, io.EOF
	}
	nameLineNo := d.line

	numberLine, ok := d.readLine()
	if !ok {
		if d.err != nil {
			return contact.Contact{}, d.err
		}
		return contact.Contact{}, &MalformedError{Line: nameLineNo, Text: nameLine}
	}

	name, ok := strings.CutPrefix(nameLine, NamePrefix)
	if !ok {
		return contact.Contact{}, &MalformedError{Line: nameLineNo, Text: nameLine}
	}
	number, ok := strings.CutPrefix(numberLine, NumberPrefix)
	if !ok {
		return contact.Contact{}, &MalformedError{Line: d.line, Text: numberLine}
	}

	return contact.New(name, number), nil
}

// readLine returns the next line without its '\n'. A final line with no
// newline is still returned. On end of input or a read failure it reports
// false, with d.err set for the failure.
func (d *Decoder) readLine() (string, bool) {
	if d.err != nil {
		return "", false
	}
	line, err := d.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		d.err = fmt.Errorf("read line %d: %w", d.line+1, err)
		return "", false
	}
	if line == "" {
		return "", false
	}
	d.line++
	return strings.TrimSuffix(line, "\n"), true
}
