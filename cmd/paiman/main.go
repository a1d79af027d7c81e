package main

import (
	"os"

	"github.com/x4fyr/paiman/cmd/paiman/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
