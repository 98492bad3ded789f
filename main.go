package main

import (
	"os"

	"github.com/minatgo/minatgo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
