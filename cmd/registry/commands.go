package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"contract-registry/internal/domain/entities"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contracts sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.contracts.ListContracts(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderer.List(cmd.OutOrStdout(), items)
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of one contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.contracts.GetContract(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.renderer.Detail(c))
			return err
		},
	}
}

// formFlags binds one flag per editor field.
type formFlags struct {
	input entities.ContractFormInput
}

func (f *formFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.input.Name, "name", "", "contract name (required)")
	fs.StringVar(&f.input.PartyOne, "party-one", "", "first contracting party (required)")
	fs.StringVar(&f.input.PartyTwo, "party-two", "", "second contracting party")
	fs.StringVar(&f.input.CreatedDate, "created", "", "date of signing, YYYY-MM-DD")
	fs.StringVar(&f.input.EndDate, "end", "", "end date, YYYY-MM-DD")
	fs.StringVar(&f.input.Amount, "amount", "", "contract amount, e.g. 150000.50")
	fs.StringVar(&f.input.DocumentPath, "document", "", "path of the linked document")
}

// overlay copies the flags the user actually passed onto base.
func (f *formFlags) overlay(cmd *cobra.Command, base entities.ContractFormInput) entities.ContractFormInput {
	fs := cmd.Flags()
	fields := []struct {
		flag string
		dst  *string
		src  string
	}{
		{"name", &base.Name, f.input.Name},
		{"party-one", &base.PartyOne, f.input.PartyOne},
		{"party-two", &base.PartyTwo, f.input.PartyTwo},
		{"created", &base.CreatedDate, f.input.CreatedDate},
		{"end", &base.EndDate, f.input.EndDate},
		{"amount", &base.Amount, f.input.Amount},
		{"document", &base.DocumentPath, f.input.DocumentPath},
	}
	for _, fld := range fields {
		if fs.Changed(fld.flag) {
			*fld.dst = fld.src
		}
	}
	return base
}

func newAddCommand(a *app) *cobra.Command {
	f := &formFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := a.contracts.NewCreateForm(nil).Submit(cmd.Context(), f.input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created contract %d: %s\n", saved.ID, saved)
			return err
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCommand(a *app) *cobra.Command {
	f := &formFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a contract",
		Long: `Edit a contract. Fields keep their stored value unless a flag is
passed; an empty flag value clears an optional field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form, err := a.contracts.NewEditForm(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			saved, err := form.Submit(cmd.Context(), f.overlay(cmd, form.LoadInitialValues()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated contract %d: %s\n", saved.ID, saved)
			return err
		},
	}
	f.register(cmd)
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contract permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				c, err := a.contracts.GetContract(cmd.Context(), id)
				if err != nil {
					return err
				}
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Are you sure you want to delete the contract %q?", c.Name))
				if err != nil {
					return err
				}
				if !ok {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return err
				}
			}
			removed, err := a.contracts.DeleteContract(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !removed {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Contract %d does not exist\n", id)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted contract %d\n", id)
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirm asks a y/N question. Anything but y or yes counts as no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", question); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func newOpenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open the linked document with the default application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.contracts.OpenDocument(cmd.Context(), id)
		},
	}
}
