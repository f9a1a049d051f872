package main

import (
	"fmt"
	"os"

	"github.com/nsuurmey/apple-discount-planning/cmd/apple-planner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
