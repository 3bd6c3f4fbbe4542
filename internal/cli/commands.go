package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/textfile"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <phone>",
		Short: "Add a contact",
		Long: `Append a contact to the contacts file.

Names are not required to be unique. A missing contacts file is created.

Example:
  contacts add "Ada Lovelace" 555-0100`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(rootOpts, cmd, func(s *contact.Store, f *OutputFormatter) error {
				s.Add(args[0], args[1])
				return f.Success(viewOf(contact.New(args[0], args[1])),
					fmt.Sprintf("Contact %s added successfully!", args[0]))
			})
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Aliases:       []string{"view"},
		Short:         "List all contacts in file order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatterFor(rootOpts, cmd)
			s, err := openStore(rootOpts)
			if err != nil && !errors.Is(err, textfile.ErrMalformed) {
				return reportError(f, err)
			}
			return f.Contacts(slices.Collect(s.All()), "No contacts yet! :(")
		},
	}
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "List contacts whose name contains query",
		Long: `List every contact whose name contains query.

Matching is case-sensitive. Exits with status 1 when nothing matches.

Example:
  contacts search Ada`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatterFor(rootOpts, cmd)
			s, err := openStore(rootOpts)
			if err != nil && !errors.Is(err, textfile.ErrMalformed) {
				return reportError(f, err)
			}
			found := slices.Collect(s.FindByNameSubstring(args[0]))
			if len(found) == 0 {
				return reportError(f, NewExitError(ExitFailure, "No contacts found!"))
			}
			return f.Contacts(found, "")
		},
	}
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name> <phone>",
		Short: "Change the phone number of a contact",
		Long: `Change the phone number of the first contact with exactly this name.

Example:
  contacts edit Bob 555-9999`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(rootOpts, cmd, func(s *contact.Store, f *OutputFormatter) error {
				if err := s.EditPhone(args[0], args[1]); err != nil {
					return WrapExitError(ExitFailure, "No contact edited!", err)
				}
				return f.Success(viewOf(contact.New(args[0], args[1])),
					fmt.Sprintf("Contact %s updated.", args[0]))
			})
		},
	}
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a contact",
		Long: `Delete the first contact with exactly this name.

Example:
  contacts delete Ada`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(rootOpts, cmd, func(s *contact.Store, f *OutputFormatter) error {
				c, _ := s.FindFirstExact(args[0])
				if err := s.DeleteByName(args[0]); err != nil {
					return WrapExitError(ExitFailure, "No contact deleted!", err)
				}
				return f.Success(viewOf(c), fmt.Sprintf("Contact %s deleted.", args[0]))
			})
		},
	}
}

func formatterFor(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// openStore loads the contacts file for a one-shot command.
//
// A file that does not exist yet is an empty list. A malformed file is
// logged and the contacts read before the bad line are returned together
// with the *textfile.MalformedError.
func openStore(opts *RootOptions) (*contact.Store, error) {
	s := contact.NewStore()
	n, err := textfile.Load(s, opts.File)
	switch {
	case err == nil:
		slog.Debug("contacts loaded", "path", opts.File, "count", n)
		return s, nil
	case errors.Is(err, textfile.ErrOpen) && errors.Is(err, fs.ErrNotExist):
		slog.Debug("contacts file does not exist yet", "path", opts.File)
		return s, nil
	case errors.Is(err, textfile.ErrMalformed):
		slog.Warn("malformed contacts file, stopped loading", "path", opts.File, "count", n, "error", err)
		return s, err
	case errors.Is(err, textfile.ErrOpen):
		return nil, WrapExitError(ExitCommandError,
			fmt.Sprintf("Error: Could not open file %s for reading.", opts.File), err)
	default:
		return nil, WrapExitError(ExitCommandError,
			fmt.Sprintf("Error: Could not read file %s.", opts.File), err)
	}
}

// mutate loads the contacts file, applies op and saves the result.
// A malformed file is never written back, so the unread tail is not lost.
func mutate(opts *RootOptions, cmd *cobra.Command, op func(*contact.Store, *OutputFormatter) error) error {
	f := formatterFor(opts, cmd)

	s, err := openStore(opts)
	if errors.Is(err, textfile.ErrMalformed) {
		return reportError(f, WrapExitError(ExitCommandError,
			fmt.Sprintf("Warning: Malformed data in %s. Refusing to overwrite it.", opts.File), err))
	}
	if err != nil {
		return reportError(f, err)
	}

	// The success output is written by op before the save; hold it back
	// until the file is on disk.
	var pending bytes.Buffer
	staged := &OutputFormatter{Format: f.Format, Writer: &pending}
	if err := op(s, staged); err != nil {
		return reportError(f, err)
	}

	if err := textfile.Save(s, opts.File); err != nil {
		msg := fmt.Sprintf("Error: Could not write file %s.", opts.File)
		if errors.Is(err, textfile.ErrOpen) {
			msg = fmt.Sprintf("Error: Could not open file %s for saving.", opts.File)
		}
		return reportError(f, WrapExitError(ExitCommandError, msg, err))
	}
	slog.Debug("contacts saved", "path", opts.File, "count", s.Len())

	_, err = f.Writer.Write(pending.Bytes())
	return err
}

// reportError writes err through the formatter and returns it as an
// *ExitError so main can pick the exit status.
func reportError(f *OutputFormatter, err error) error {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = WrapExitError(ExitCommandError, err.Error(), err)
	}

	code := ErrCodeFile
	switch {
	case errors.Is(err, contact.ErrNotFound), exitErr.Code == ExitFailure:
		code = ErrCodeNotFound
	case errors.Is(err, textfile.ErrMalformed):
		code = ErrCodeMalformed
	}

	if outErr := f.Error(code, exitErr.Message); outErr != nil {
		return outErr
	}
	return exitErr
}
