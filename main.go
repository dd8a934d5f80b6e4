package main

import (
	"os"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
