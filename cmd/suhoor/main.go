// suhoor shows the next Suhoor and Iftar times in six languages.
//
// Usage:
//
//	suhoor                     # interactive TUI
//	suhoor next --lang ar      # next times in Arabic
//	suhoor serve               # JSON API on localhost:8785
//
// Environment variables:
//
//	SUHOOR_CONFIG_DIR  Override ~/.suhoor
//	SUHOOR_LANG        Language for this run, ahead of the saved preference
//	SUHOOR_TIMETABLE   Timetable TOML file
//	SUHOOR_PROFILE     Write a CPU profile to this path
//
// A .env file in the working directory is read at startup.
package main

import (
	"os"

	"github.com/wethinkt/go-suhoor/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
