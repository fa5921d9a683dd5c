// Command easelab inspects easing curves and plays them as terminal motion.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/easelab/cmd/easelab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
