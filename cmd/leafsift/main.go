// leafsift classifies functions and methods in a source tree as leaf
// candidates: self-contained routines suitable for isolation into a
// trusted-execution boundary.
package main

import (
	"os"

	"github.com/corey/leafsift/cmd/leafsift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
