package cmd

import (
	"github.com/gopak/contactbook/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"remove", "rm"},
		Short:   "Delete every contact with the given name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openManager()
			if err != nil {
				return err
			}
			return console.NewConsoleUI(m).RunDeleteImperative(args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "assume yes and delete without prompting")
	rootCmd.AddCommand(cmd)
}
