package cmd

import (
	"fmt"
	"runtime"

	"github.com/go-drift/easelab/cmd/easelab/internal/config"
	"github.com/go-drift/easelab/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the easelab version, config schema and registered easing count.",
		Usage: "easelab version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Fprintf(stdout, "easelab version %s (built %s, %s)\n", Version, BuildTime, runtime.Version())
	fmt.Fprintf(stdout, "config schema %s, %d easings\n", config.SchemaVersion, len(easing.IDs()))
}
