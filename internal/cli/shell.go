package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/textfile"
)

// MenuChoice is a numbered entry of the interactive menu.
type MenuChoice int

const (
	ChoiceAdd MenuChoice = iota + 1
	ChoiceView
	ChoiceSave
	ChoiceLoad
	ChoiceEdit
	ChoiceDelete
	ChoiceSearch
	ChoiceExit
)

const menuText = `
-----[ contact list menu]----
    1. Add Contact
    2. View Contacts
    3. Save Contacts
    4. Load Contacts
    5. Edit Contact
    6. Delete Contact
    7. Search Contacts
    8. Exit
-----------[ end ]-----------`

// NewShellCommand creates the shell command, an explicit name for the
// interactive menu the root command starts by default.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Long: `Start the interactive menu.

The contacts file is loaded once at start. Changes stay in memory until
"Save Contacts" is chosen.

Example:
  contacts shell
  contacts --file ~/phonebook.txt shell`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(rootOpts, cmd)
		},
	}
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	shell := NewShell(contact.NewStore(), opts.File, cmd.InOrStdin(), cmd.OutOrStdout())
	return shell.Run()
}

// Shell runs the interactive menu over one store and one file path.
type Shell struct {
	store  *contact.Store
	path   string
	prompt *Prompter
	out    io.Writer
}

// NewShell creates a shell. The store is loaded from path when Run starts.
func NewShell(store *contact.Store, path string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store:  store,
		path:   path,
		prompt: NewPrompter(in, out),
		out:    out,
	}
}

// Run loads the contacts file and serves the menu until the operator
// chooses Exit or the input ends. Data errors are reported and never end
// the loop.
func (s *Shell) Run() error {
	s.load()

	for {
		fmt.Fprintln(s.out, menuText)

		choice, err := s.prompt.Choice("Enter your choice: ", "Invalid input! Please enter a number.")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			slog.Debug("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		if MenuChoice(choice) == ChoiceExit {
			fmt.Fprintln(s.out, "Exiting ...")
			fmt.Fprintln(s.out)
			return nil
		}

		if err := s.dispatch(MenuChoice(choice)); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) dispatch(choice MenuChoice) error {
	switch choice {
	case ChoiceAdd:
		return s.add()
	case ChoiceView:
		s.view()
	case ChoiceSave:
		s.save()
	case ChoiceLoad:
		s.load()
	case ChoiceEdit:
		return s.edit()
	case ChoiceDelete:
		return s.delete()
	case ChoiceSearch:
		return s.search()
	default:
		fmt.Fprintln(s.out, "Unknown choice, please select a number between 1 and 8.")
	}
	return nil
}

func (s *Shell) add() error {
	name, err := s.prompt.Word("Please enter name: ")
	if err != nil {
		return err
	}
	phone, err := s.prompt.Word("Please enter phone number: ")
	if err != nil {
		return err
	}

	s.store.Add(name, phone)
	slog.Debug("contact added", "name", name, "count", s.store.Len())
	fmt.Fprintf(s.out, "Contact %s added successfully!\n", name)
	return nil
}

func (s *Shell) view() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No contacts yet! :(")
		return
	}
	for c := range s.store.All() {
		fmt.Fprintln(s.out, c)
	}
}

func (s *Shell) save() {
	err := textfile.Save(s.store, s.path)
	switch {
	case errors.Is(err, textfile.ErrOpen):
		slog.Debug("save failed", "path", s.path, "error", err)
		fmt.Fprintf(s.out, "Error: Could not open file %s for saving.\n", s.path)
	case err != nil:
		slog.Debug("save failed", "path", s.path, "error", err)
		fmt.Fprintf(s.out, "Error: Could not write file %s: %v\n", s.path, err)
	default:
		slog.Debug("contacts saved", "path", s.path, "count", s.store.Len())
		fmt.Fprintf(s.out, "Contacts saved to %s.\n", s.path)
	}
}

func (s *Shell) load() {
	n, err := textfile.Load(s.store, s.path)
	switch {
	case errors.Is(err, textfile.ErrOpen):
		slog.Debug("load failed", "path", s.path, "error", err)
		fmt.Fprintf(s.out, "Error: Could not open file %s for reading.\n", s.path)
		return
	case errors.Is(err, textfile.ErrMalformed):
		slog.Debug("load stopped early", "path", s.path, "error", err)
		fmt.Fprintf(s.out, "Warning: Malformed data in %s. Stopping load.\n", s.path)
	case err != nil:
		slog.Debug("load failed", "path", s.path, "error", err)
		fmt.Fprintf(s.out, "Error: Could not read file %s: %v\n", s.path, err)
	}
	slog.Debug("contacts loaded", "path", s.path, "count", n)
	fmt.Fprintf(s.out, "Contacts loaded from %s. Total contacts: %d.\n", s.path, n)
}

func (s *Shell) edit() error {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No contacts to edit!")
		return nil
	}
	name, err := s.prompt.Line("Enter the name of the contact you want to edit: ")
	if err != nil {
		return err
	}

	if _, ok := s.store.FindFirstExact(name); !ok {
		fmt.Fprintln(s.out, "No contact edited!")
		return nil
	}
	phone, err := s.prompt.Line(fmt.Sprintf("Enter the new number of %s: ", name))
	if err != nil {
		return err
	}
	if err := s.store.EditPhone(name, phone); err != nil {
		fmt.Fprintln(s.out, "No contact edited!")
		return nil
	}
	slog.Debug("contact edited", "name", name)
	return nil
}

func (s *Shell) delete() error {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No contacts to delete!")
		return nil
	}
	name, err := s.prompt.Line("Enter the name of the contact you want to delete: ")
	if err != nil {
		return err
	}

	if err := s.store.DeleteByName(name); errors.Is(err, contact.ErrNotFound) {
		fmt.Fprintln(s.out, "No contact deleted!")
		return nil
	}
	slog.Debug("contact deleted", "name", name, "count", s.store.Len())
	return nil
}

func (s *Shell) search() error {
	query, err := s.prompt.Line("Please enter a name or part of it: ")
	if err != nil {
		return err
	}

	found := false
	for c := range s.store.FindByNameSubstring(query) {
		found = true
		fmt.Fprintln(s.out, c)
	}
	if !found {
		fmt.Fprintln(s.out, "No contacts found!")
	}
	return nil
}
