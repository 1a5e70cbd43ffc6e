package main

import (
	"os"

	"github.com/alexrr04/mini-scheme-interpreter/cmd/scheme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
