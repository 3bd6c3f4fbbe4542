package textfile

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/roach88/contacts/internal/contact"
)

// DefaultPath is the contacts file used when none is given.
const DefaultPath = "contacts.txt"

// Lister is the read side of a contact list.
type Lister interface {
	All() iter.Seq[contact.Contact]
}

// Replacer is the write side of a contact list that Load fills.
type Replacer interface {
	Clear()
	Add(name, phone string)
	Len() int
}

// Save writes every contact to path, truncating the file.
//
// If the file cannot be opened it is left as it was and an *OpenError is
// returned. A failure part-way through writing is returned as is; whatever
// was already written stays on disk.
func Save(contacts Lister, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &OpenError{Op: OpSave, Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	enc := NewEncoder(f)
	for c := range contacts.All() {
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load replaces the contents of dst with the contacts stored at path and
// returns how many contacts dst holds afterwards.
//
// If the file cannot be opened, dst is not touched and an *OpenError is
// returned with a count of 0. Otherwise dst is cleared and filled pair by
// pair; the first malformed pair stops the load with a *MalformedError
// while keeping everything read before it.
func Load(dst Replacer, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &OpenError{Op: OpLoad, Path: path, Err: err}
	}
	defer f.Close()

	dst.Clear()

	dec := NewDecoder(f)
	for {
		c, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return dst.Len(), nil
		}
		if err != nil {
			var malformed *MalformedError
			if errors.As(err, &malformed) {
				malformed.Path = path
			}
			return dst.Len(), err
		}
		dst.Add(c.Name(), c.Phone())
	}
}
