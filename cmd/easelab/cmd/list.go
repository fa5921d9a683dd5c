package cmd

import (
	"fmt"
	"sort"

	"github.com/go-drift/easelab/pkg/curve"
	"github.com/go-drift/easelab/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "List registered easings",
		Long: `List every registered easing function.

For each easing the sampled minimum and maximum are shown; values outside
[0, 1] mean the curve overshoots. Aliases are listed after the table.`,
		Usage: "easelab list",
		Run:   runList,
	})
}

func runList(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("list takes no arguments (got %q)", args[0])
	}

	fmt.Fprintf(stdout, "%-14s %-16s %-10s %8s %8s\n", "ID", "NAME", "OVERSHOOT", "MIN", "MAX")
	for _, e := range easing.All() {
		c, err := curve.Sample(e, curve.DefaultResolution, curve.DefaultDomain)
		if err != nil {
			return err
		}
		lo, hi := curve.Bounds(c)
		over := "no"
		if e.Overshoots {
			over = "yes"
		}
		fmt.Fprintf(stdout, "%-14s %-16s %-10s %8.4f %8.4f\n", e.ID, e.Name, over, lo, hi)
	}

	aliases := easing.Aliases()
	if len(aliases) == 0 {
		return nil
	}
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Aliases:")
	for _, alias := range names {
		marker := ""
		if alias == easing.DefaultID {
			marker = " (default)"
		}
		fmt.Fprintf(stdout, "  %-12s -> %s%s\n", alias, aliases[alias], marker)
	}
	return nil
}
