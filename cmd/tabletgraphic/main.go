package main

import (
	"os"

	"github.com/tabletlab/tablet/cmd/tabletgraphic/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
