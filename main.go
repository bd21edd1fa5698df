package main

import (
	"os"

	"github.com/gopak/minigrep/cmd"
	"github.com/gopak/minigrep/internal/logging"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		logging.Error(err.Error())
	}
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
