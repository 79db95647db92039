package main

import (
	"os"

	"github.com/gopak/contactbook/cmd"
	"github.com/gopak/contactbook/internal/logging"
	"github.com/gopak/contactbook/internal/ui/console"
)

func main() {
	err := cmd.Execute()
	if err != nil && !console.Reported(err) {
		logging.Error(err.Error())
	}
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
