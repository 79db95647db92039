package cmd

import (
	"os"

	"github.com/gopak/contactbook/internal/assets"
	"github.com/gopak/contactbook/internal/config"
	"github.com/gopak/contactbook/internal/contacts"
	"github.com/gopak/contactbook/internal/logging"
	"github.com/gopak/contactbook/internal/ui/console"
	"github.com/spf13/cobra"
)

var cfgFile string
var dataFile string
var verbose bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "contactbook",
	Short:         "Personal contact directory",
	Long:          "Add, list, search, update and delete contacts kept in a plain text file.\nRun without a subcommand for the interactive menu.",
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		return console.NewConsoleUI(m).Run()
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (defaults are built in)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "contacts file, overrides the config (default contacts.txt)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var files []string
	if cfgFile != "" {
		files = append(files, cfgFile)
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultConfig(), files)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	if dataFile != "" {
		cfg.File = dataFile
		config.Set(cfg)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		logging.Error("schema error: " + err.Error())
		os.Exit(1)
	}
	logging.Init(cfg.LogFile)
	logging.SetVerbose(verbose)
	logging.Debug("contacts file: " + cfg.File)
}

func openManager() (*contacts.Manager, error) {
	return contacts.Open(config.Get().File)
}
