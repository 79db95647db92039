package cmd

import (
	"os"
	"path/filepath"

	"github.com/gopak/contactbook/internal/assets"
	"github.com/gopak/contactbook/internal/logging"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init-config [dir]",
		Short: "Write the default contactbook.yaml (default dir: ~/.config/contactbook)",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			} else {
				base, err := os.UserConfigDir()
				if err != nil {
					return err
				}
				dir = filepath.Join(base, "contactbook")
			}
			p, err := assets.WriteDefaultConfigIfMissing(dir)
			if err != nil {
				return err
			}
			logging.Info("config: " + p)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
