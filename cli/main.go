package main

import (
	"context"
	"os"

	"github.com/tplib/comfort/cli/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
