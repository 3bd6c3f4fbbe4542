package harness

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/textfile"
)

// FileName is the contacts file every scenario works on, inside its directory.
const FileName = "contacts.txt"

// Harness executes the steps of one scenario.
type Harness struct {
	store  *contact.Store
	path   string
	result *Result
}

// Run executes a scenario in dir, which should be empty and private to
// this run. It returns an error only when the scenario cannot be set up;
// failed expectations are reported in the Result.
func Run(scenario *Scenario, dir string) (*Result, error) {
	h := &Harness{
		store:  contact.NewStore(),
		path:   filepath.Join(dir, FileName),
		result: NewResult(),
	}

	if scenario.File != nil {
		if err := os.WriteFile(h.path, []byte(*scenario.File), 0o644); err != nil {
			return nil, fmt.Errorf("write initial contacts file: %w", err)
		}
	}

	for i, step := range scenario.Steps {
		event := h.execute(step)
		event.Seq = i + 1
		h.result.Trace = append(h.result.Trace, event)
		h.checkExpect(event, step.Expect)
	}

	h.checkAssertions(scenario.Assertions)

	return h.result, nil
}

func (h *Harness) execute(step Step) TraceEvent {
	event := TraceEvent{Op: step.Op}
	var err error

	switch step.Op {
	case OpAdd:
		event.Args = []string{arg("name", step.Name), arg("phone", step.Phone)}
		h.store.Add(step.Name, step.Phone)
	case OpEdit:
		event.Args = []string{arg("name", step.Name), arg("phone", step.Phone)}
		err = h.store.EditPhone(step.Name, step.Phone)
	case OpDelete:
		event.Args = []string{arg("name", step.Name)}
		err = h.store.DeleteByName(step.Name)
	case OpFind:
		event.Args = []string{arg("name", step.Name)}
		event.Names = []string{}
		if c, ok := h.store.FindFirstExact(step.Name); ok {
			event.Names = append(event.Names, c.Name())
		} else {
			err = contact.ErrNotFound
		}
	case OpSearch:
		event.Args = []string{arg("query", step.Query)}
		event.Names = []string{}
		for c := range h.store.FindByNameSubstring(step.Query) {
			event.Names = append(event.Names, c.Name())
		}
		if len(event.Names) == 0 {
			err = contact.ErrNotFound
		}
	case OpSave:
		event.Args = []string{arg("file", FileName)}
		err = textfile.Save(h.store, h.path)
	case OpLoad:
		event.Args = []string{arg("file", FileName)}
		_, err = textfile.Load(h.store, h.path)
	case OpClear:
		h.store.Clear()
	case OpWriteFile:
		event.Args = []string{"bytes=" + strconv.Itoa(len(step.Content))}
		err = os.WriteFile(h.path, []byte(step.Content), 0o644)
	}

	event.Outcome = outcomeOf(err)
	event.Count = h.store.Len()
	return event
}

func (h *Harness) checkExpect(event TraceEvent, expect *Expect) {
	if expect == nil {
		return
	}
	if expect.Outcome != "" && expect.Outcome != event.Outcome {
		h.result.AddError("step %d (%s): expected outcome %s, got %s", event.Seq, event.Op, expect.Outcome, event.Outcome)
	}
	if expect.Count != nil && *expect.Count != event.Count {
		h.result.AddError("step %d (%s): expected count %d, got %d", event.Seq, event.Op, *expect.Count, event.Count)
	}
	if expect.Names != nil && !slices.Equal(expect.Names, event.Names) {
		h.result.AddError("step %d (%s): expected names %q, got %q", event.Seq, event.Op, expect.Names, event.Names)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, contact.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, textfile.ErrOpen):
		return OutcomeOpenError
	case errors.Is(err, textfile.ErrMalformed):
		return OutcomeMalformed
	default:
		return OutcomeError
	}
}

func arg(key, value string) string {
	return key + "=" + strconv.Quote(value)
}
