package main

import (
	"os"

	"github.com/texpilot/texpilot/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
