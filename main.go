package main

import (
	"os"

	"github.com/alpacahq/jpholiday/cmd"
	"github.com/alpacahq/jpholiday/utils/log"
)

func main() {
	os.Exit(run())
}

// run executes the command line and flushes the logger before the process
// exits.
func run() int {
	defer log.Sync()

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
