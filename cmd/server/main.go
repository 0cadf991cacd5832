// Command server runs one of the sumbandila HTTP services, applies database
// migrations, or mints development tokens. Each subcommand shares the same
// configuration: defaults, an optional YAML file and SUMBANDILA_* variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
