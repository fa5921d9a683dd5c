package cmd

import (
	"fmt"

	"github.com/go-drift/easelab/cmd/easelab/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration easelab would use, in easelab.yaml form.

The file is found by searching upwards from the current directory, or
given with --config. Fields missing from the file show their defaults.`,
		Usage: "easelab config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments (got %q)", args[0])
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Path != "" {
		fmt.Fprintf(stdout, "# %s\n", cfg.Path)
	} else {
		fmt.Fprintf(stdout, "# no %s found, showing defaults\n", config.FileName)
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
