package main

import (
	"os"

	"github.com/FedericoCarboni/scarpet-parser/cmd/scarpet-tools/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
