package main

import (
	"os"

	"github.com/keracoffee/kera/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
