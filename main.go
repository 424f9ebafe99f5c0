package main

import (
	"os"

	"github.com/samuelfneumann/goalvshole/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
