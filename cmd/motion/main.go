// Command motion inspects timing curves and simulates animations using the
// defaults from motion.yaml.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/motion/cmd/motion/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
