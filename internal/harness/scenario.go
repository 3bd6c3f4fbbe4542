package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted run against a fresh store.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// File is the initial content of the contacts file.
	// When nil the file does not exist when the first step runs.
	File *string `yaml:"file,omitempty"`

	// Steps run in order against the same store and file.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final store and file.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one operation.
type Step struct {
	Op      string  `yaml:"op"`
	Name    string  `yaml:"name,omitempty"`
	Phone   string  `yaml:"phone,omitempty"`
	Query   string  `yaml:"query,omitempty"`
	Content string  `yaml:"content,omitempty"`
	Expect  *Expect `yaml:"expect,omitempty"`
}

// Expect is checked against a step's outcome. Unset fields are not checked.
type Expect struct {
	// Outcome is one of the Outcome constants.
	Outcome string `yaml:"outcome,omitempty"`

	// Count is the store size after the step.
	Count *int `yaml:"count,omitempty"`

	// Names are the contact names a search or find produced, in order.
	Names []string `yaml:"names,omitempty"`
}

// Assertion validates the state after the last step.
type Assertion struct {
	Type     string        `yaml:"type"`
	Contacts []ContactSpec `yaml:"contacts,omitempty"`
	Content  string        `yaml:"content,omitempty"`
	Count    int           `yaml:"count,omitempty"`
}

// ContactSpec is a contact as written in a scenario.
type ContactSpec struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// Step operations.
const (
	OpAdd       = "add"
	OpEdit      = "edit"
	OpDelete    = "delete"
	OpFind      = "find"
	OpSearch    = "search"
	OpSave      = "save"
	OpLoad      = "load"
	OpClear     = "clear"
	OpWriteFile = "write_file"
)

// Step outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeOpenError = "open_error"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

// Assertion types.
const (
	AssertContacts = "contacts"
	AssertFile     = "file"
	AssertCount    = "count"
)

var validOps = map[string]bool{
	OpAdd: true, OpEdit: true, OpDelete: true, OpFind: true, OpSearch: true,
	OpSave: true, OpLoad: true, OpClear: true, OpWriteFile: true,
}

var validOutcomes = map[string]bool{
	OutcomeOK: true, OutcomeNotFound: true, OutcomeOpenError: true,
	OutcomeMalformed: true, OutcomeError: true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Reject unknown fields so "asertions:" does not silently skip checks.
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertContacts, AssertFile, AssertCount:
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i+1, a.Type)
		}
	}

	return nil
}

func validateStep(step Step) error {
	if !validOps[step.Op] {
		return fmt.Errorf("unknown op %q", step.Op)
	}

	switch step.Op {
	case OpAdd, OpEdit, OpDelete, OpFind:
		// Blank names are legal contacts but almost always a typo here.
		if step.Name == "" {
			return fmt.Errorf("%s requires name", step.Op)
		}
	}

	if step.Expect != nil && step.Expect.Outcome != "" && !validOutcomes[step.Expect.Outcome] {
		return fmt.Errorf("unknown outcome %q", step.Expect.Outcome)
	}

	return nil
}
