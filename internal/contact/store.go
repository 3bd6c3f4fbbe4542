package contact

import (
	"errors"
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned when no contact has the requested name.
var ErrNotFound = errors.New("contact not found")

// Store is an ordered, in-memory list of contacts.
// The zero value is an empty store ready for use.
type Store struct {
	contacts []Contact
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a contact. It never fails and does not check for duplicates.
func (s *Store) Add(name, phone string) {
	s.contacts = append(s.contacts, New(name, phone))
}

// Len returns the number of contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// All yields every contact in insertion order.
func (s *Store) All() iter.Seq[Contact] {
	return func(yield func(Contact) bool) {
		for _, c := range s.contacts {
			if !yield(c) {
				return
			}
		}
	}
}

// FindByNameSubstring yields every contact whose name contains query.
// Matching is case-sensitive and compares NFC forms. The empty query
// matches every contact.
func (s *Store) FindByNameSubstring(query string) iter.Seq[Contact] {
	query = norm.NFC.String(query)
	return func(yield func(Contact) bool) {
		for _, c := range s.contacts {
			if !strings.Contains(norm.NFC.String(c.name), query) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// FindFirstExact returns the first contact named exactly name.
func (s *Store) FindFirstExact(name string) (Contact, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}

// EditPhone replaces the phone number of the first contact named name.
// Returns ErrNotFound and leaves the store untouched if there is none.
func (s *Store) EditPhone(name, phone string) error {
	i := s.indexOf(name)
	if i < 0 {
		return ErrNotFound
	}
	s.contacts[i].phone = phone
	return nil
}

// DeleteByName removes the first contact named name, keeping the relative
// order of the others. Returns ErrNotFound if there is none.
func (s *Store) DeleteByName(name string) error {
	i := s.indexOf(name)
	if i < 0 {
		return ErrNotFound
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	return nil
}

// Clear removes every contact.
func (s *Store) Clear() {
	clear(s.contacts)
	s.contacts = s.contacts[:0]
}

// indexOf returns the position of the first contact whose name equals
// name once both are in NFC, or -1.
func (s *Store) indexOf(name string) int {
	name = norm.NFC.String(name)
	return slices.IndexFunc(s.contacts, func(c Contact) bool {
		return norm.NFC.String(c.name) == name
	})
}
