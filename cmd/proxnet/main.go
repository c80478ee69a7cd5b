// Package main provides the proxnet CLI.
//
// Usage:
//
//	proxnet edges --input relocs.csv --threshold 50 --id ID --coords X,Y --timegroup timegroup
//	proxnet version
//
// Configuration:
//
//	Flag defaults are read from a YAML file (--config or PROXNET_CONFIG)
//	and from PROXNET_* environment variables, e.g. PROXNET_THRESHOLD=50.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/proxnet/cmd/proxnet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
