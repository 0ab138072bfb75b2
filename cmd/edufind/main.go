// Command edufind is the EduFind CLI entry point.
package main

import (
	"os"

	"github.com/kidssmart-labs/edufind-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
