package harness

import (
	"fmt"
	"strconv"
	"strings"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq     int      `json:"seq"`
	Op      string   `json:"op"`
	Args    []string `json:"args,omitempty"` // rendered key=value pairs
	Outcome string   `json:"outcome"`
	Count   int      `json:"count"`           // store size after the step
	Names   []string `json:"names,omitempty"` // search and find results
}

// String renders the event as a single trace line, for example:
//
//	3 search query="Ad" -> ok count=2 names=["Ada" "Adam"]
func (e TraceEvent) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s", e.Seq, e.Op)
	for _, arg := range e.Args {
		b.WriteString(" ")
		b.WriteString(arg)
	}
	fmt.Fprintf(&b, " -> %s count=%d", e.Outcome, e.Count)
	if e.Names != nil {
		quoted := make([]string, len(e.Names))
		for i, n := range e.Names {
			quoted[i] = strconv.Quote(n)
		}
		fmt.Fprintf(&b, " names=[%s]", strings.Join(quoted, " "))
	}
	return b.String()
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace holds one event per executed step.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// TraceText renders the trace one event per line, newline-terminated.
func (r *Result) TraceText() string {
	var b strings.Builder
	for _, e := range r.Trace {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}
