package harness

import (
	"os"
	"slices"

	"github.com/roach88/contacts/internal/contact"
)

func (h *Harness) checkAssertions(assertions []Assertion) {
	for i, a := range assertions {
		switch a.Type {
		case AssertContacts:
			h.assertContacts(i+1, a.Contacts)
		case AssertFile:
			h.assertFile(i+1, a.Content)
		case AssertCount:
			if got := h.store.Len(); got != a.Count {
				h.result.AddError("assertion %d (count): expected %d contacts, got %d", i+1, a.Count, got)
			}
		default:
			h.result.AddError("assertion %d: unknown type %q", i+1, a.Type)
		}
	}
}

func (h *Harness) assertContacts(n int, want []ContactSpec) {
	got := slices.Collect(h.store.All())
	if len(got) != len(want) {
		h.result.AddError("assertion %d (contacts): expected %d contacts, got %d", n, len(want), len(got))
		return
	}
	for i, w := range want {
		if !got[i].Equal(contact.New(w.Name, w.Phone)) {
			h.result.AddError("assertion %d (contacts): index %d: expected %q/%q, got %q/%q",
				n, i, w.Name, w.Phone, got[i].Name(), got[i].Phone())
		}
	}
}

func (h *Harness) assertFile(n int, want string) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		h.result.AddError("assertion %d (file): %v", n, err)
		return
	}
	if string(data) != want {
		h.result.AddError("assertion %d (file): expected %q, got %q", n, want, string(data))
	}
}
