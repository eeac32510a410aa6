package main

import (
	"os"

	"github.com/msto63/pawnboard/cmd/pawnboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
