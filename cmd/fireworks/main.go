// Command fireworks replays fireworks show scenarios.
package main

import (
	"fmt"
	"os"

	"fireworks-show/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
