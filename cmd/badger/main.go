// Command badger renders and inspects badge overlays.
package main

import (
	"os"

	"github.com/go-drift/badger/cmd/badger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
