package main

import (
	"os"

	"github.com/saveup-dev/saveup/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
