package main

import (
	"os"

	"assetnorm/cmd/assetnorm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
