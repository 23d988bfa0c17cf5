package main

import (
	"os"

	"github.com/paylens-dev/paylens/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
