package main

import (
	"os"

	"github.com/msto63/brackets/cmd/brackets/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
