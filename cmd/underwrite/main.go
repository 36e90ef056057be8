package main

import (
	"os"

	"magicbank-loan-engine/cmd/underwrite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
