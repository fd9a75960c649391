package main

import (
	"os"

	"github.com/shikshamitra/shikshamitra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
