// Package main is the entry point for the babynames CLI.
package main

import (
	"os"

	"github.com/huangsam/babynames/cmd"
	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/datastore"
)

func main() {
	defer datastore.CloseStore()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Failed to stop profiling", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		contract.LogWarn("Command failed", err)
		datastore.CloseStore()
		os.Exit(1)
	}
}
