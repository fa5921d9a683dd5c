// Package main generates the easing gallery for the documentation site.
// It plots every registered easing as SVG and PNG and writes an index page
// listing them.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-drift/easelab/pkg/curve"
	"github.com/go-drift/easelab/pkg/easing"
)

// galleryDir is where the gallery is written, relative to the repo root.
const galleryDir = "docs/easings"

func main() {
	// Find repository root (where go.mod is)
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Repository root: %s\n", root)

	outDir := filepath.Join(root, galleryDir)
	entries, err := generate(outDir, easing.All())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating gallery: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nGallery generated: %d easings in %s\n", len(entries), outDir)
}

// entry is one row of the gallery index.
type entry struct {
	ID         string
	Name       string
	Min, Max   float64
	Overshoots bool
	Aliases    []string
}

// generate writes one SVG and one PNG per easing plus index.md into outDir.
func generate(outDir string, all []easing.Easing) ([]entry, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outDir, err)
	}

	aliasesOf := make(map[string][]string)
	for alias, target := range easing.Aliases() {
		aliasesOf[target] = append(aliasesOf[target], alias)
	}

	cache := curve.NewCache()
	entries := make([]entry, 0, len(all))
	for _, e := range all {
		c, err := cache.Get(e, curve.DefaultResolution, curve.DefaultDomain)
		if err != nil {
			return nil, err
		}

		fmt.Printf("Plotting %s...\n", e.ID)
		svgPath := filepath.Join(outDir, e.ID+".svg")
		if err := os.WriteFile(svgPath, []byte(curve.SVGDocument(c)), 0644); err != nil {
			return nil, err
		}
		if err := writePNG(filepath.Join(outDir, e.ID+".png"), c, e.Name); err != nil {
			return nil, err
		}

		lo, hi := curve.Bounds(c)
		aliases := aliasesOf[e.ID]
		sort.Strings(aliases)
		entries = append(entries, entry{
			ID:         e.ID,
			Name:       e.Name,
			Min:        lo,
			Max:        hi,
			Overshoots: curve.Overshoots(c),
			Aliases:    aliases,
		})
	}

	index := renderIndex(entries)
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), []byte(index), 0644); err != nil {
		return nil, err
	}
	return entries, nil
}

func writePNG(path string, c curve.SampledCurve, label string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	opts := curve.DefaultRenderOptions()
	opts.Label = label
	if err := curve.EncodePNG(w, c, opts); err != nil {
		return err
	}
	return w.Flush()
}

func renderIndex(entries []entry) string {
	var sb strings.Builder
	sb.WriteString(`---
id: easings
title: Easing Gallery
sidebar_position: 2
---

`)
	sb.WriteString("| ID | Name | Range | Aliases | Plot |\n")
	sb.WriteString("|----|------|-------|---------|------|\n")
	for _, e := range entries {
		rng := fmt.Sprintf("%.3f to %.3f", e.Min, e.Max)
		if e.Overshoots {
			rng += " (overshoots)"
		}
		aliases := "-"
		if len(e.Aliases) > 0 {
			aliases = "`" + strings.Join(e.Aliases, "`, `") + "`"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s | ![%s](%s.svg) |\n", e.ID, e.Name, rng, aliases, e.Name, e.ID)
	}
	return sb.String()
}

func findRepoRoot() (string, error) {
	// Start from current directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}
