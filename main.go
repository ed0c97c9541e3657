package main

import (
	"os"

	"github.com/daxvengers/daxvengers/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
