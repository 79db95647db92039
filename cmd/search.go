package cmd

import (
	"github.com/gopak/contactbook/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find contacts whose name contains keyword (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openManager()
			if err != nil {
				return err
			}
			return console.NewConsoleUI(m).Search(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}
