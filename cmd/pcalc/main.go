package main

import (
	"os"

	"github.com/cwbudde/go-pcalc/cmd/pcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
