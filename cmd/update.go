package cmd

import (
	"github.com/gopak/contactbook/internal/contacts"
	"github.com/gopak/contactbook/internal/logging"
	"github.com/gopak/contactbook/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	var name, phone, email string
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update the first contact with the given name",
		Long:  "Update the first contact with the given name. With no field flags the interactive field menu is shown.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openManager()
			if err != nil {
				return err
			}
			ui := console.NewConsoleUI(m)
			values := map[contacts.Field]string{}
			if cmd.Flags().Changed("name") {
				values[contacts.FieldName] = name
			}
			if cmd.Flags().Changed("phone") {
				values[contacts.FieldPhone] = phone
			}
			if cmd.Flags().Changed("email") {
				values[contacts.FieldEmail] = email
			}
			for f, v := range values {
				if err := contacts.ValidateField(f, v); err != nil {
					logging.Error(err.Error())
					return err
				}
			}
			if len(values) == 0 {
				return ui.Update(args[0])
			}
			ed := contacts.NewScriptedEditor(values)
			if err := ui.UpdateWith(args[0], ed); err != nil {
				return err
			}
			return ed.Err()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	rootCmd.AddCommand(cmd)
}
