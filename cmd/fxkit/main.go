// Command fxkit generates and checks game art and audio assets.
package main

import (
	"fmt"
	"os"

	"github.com/haewon/fxkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
