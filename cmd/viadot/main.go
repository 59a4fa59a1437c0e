package main

import (
	"os"

	"github.com/adrian-wojcik/viadot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
