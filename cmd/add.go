package cmd

import (
	"github.com/gopak/contactbook/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	var name, phone, email string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact; missing fields are prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := console.AskMissing(&name, &phone, &email); err != nil {
				return err
			}
			m, err := openManager()
			if err != nil {
				return err
			}
			return console.NewConsoleUI(m).Add(name, phone, email)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "contact name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	rootCmd.AddCommand(cmd)
}
