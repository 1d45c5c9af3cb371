package main

import (
	"os"

	"github.com/grapmap-dev/grapmap/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
