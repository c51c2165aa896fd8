package main

import (
	"os"

	"github.com/avashk/vttcue/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
