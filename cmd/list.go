package cmd

import (
	"errors"

	"github.com/gopak/contactbook/internal/contacts"
	"github.com/gopak/contactbook/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openManager()
			if err != nil {
				return err
			}
			err = console.NewConsoleUI(m).List()
			if errors.Is(err, contacts.ErrNoContacts) {
				return nil
			}
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}
