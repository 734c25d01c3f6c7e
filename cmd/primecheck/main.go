package main

import (
	"os"

	"libprime/cmd/primecheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
