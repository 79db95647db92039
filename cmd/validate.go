package cmd

import (
	"fmt"

	"github.com/gopak/contactbook/internal/logging"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and that every stored contact parses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		logging.Success(fmt.Sprintf("Configuration is valid; %s holds %d contact(s)", m.Path(), m.Len()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
