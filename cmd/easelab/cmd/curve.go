package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/easelab/pkg/curve"
	"github.com/go-drift/easelab/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curve",
		Short: "Plot an easing curve",
		Long: `Sample an easing function and write its curve.

Formats:
  svg      SVG document with axes and the curve path (default)
  png      Rasterized plot with the easing name as label
  points   One "t value x y" line per sample

Without an id the easing from easelab.yaml (or easeInOut) is used.
Unknown ids fall back to easeInOut with a warning.

Flags:
  --resolution N   Number of sample intervals (default 100)
  --format F       svg, png or points
  --out FILE       Write to FILE instead of stdout`,
		Usage: "easelab curve [id] [--resolution N] [--format svg|png|points] [--out FILE]",
		Run:   runCurve,
	})
}

type curveOptions struct {
	id         string
	resolution int
	format     string
	out        string
}

func parseCurveArgs(args []string) (curveOptions, error) {
	var opts curveOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline, isFlag := splitFlag(arg)
		if !isFlag {
			if opts.id != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.id = arg
			continue
		}
		var err error
		switch name {
		case "--resolution":
			opts.resolution, err = intFlag(args, &i, name, inline, hasInline)
		case "--format":
			opts.format, err = flagValue(args, &i, name, inline, hasInline)
		case "--out":
			opts.out, err = flagValue(args, &i, name, inline, hasInline)
		default:
			err = fmt.Errorf("unknown flag %s", name)
		}
		if err != nil {
			return opts, err
		}
	}

	opts.format = strings.ToLower(opts.format)
	switch opts.format {
	case "":
		opts.format = "svg"
	case "svg", "png", "points":
	default:
		return opts, fmt.Errorf("unknown format %q (use svg, png or points)", opts.format)
	}
	return opts, nil
}

func runCurve(args []string) error {
	opts, err := parseCurveArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	e := cfg.Easing
	if opts.id != "" {
		e = easing.LookupOrDefault(opts.id)
	}
	resolution := cfg.Resolution
	if opts.resolution != 0 {
		resolution = opts.resolution
	}

	c, err := curve.Sample(e, resolution, cfg.Domain)
	if err != nil {
		return err
	}

	if opts.out == "" {
		if opts.format == "png" {
			return fmt.Errorf("png output needs --out FILE")
		}
		return writeCurve(stdout, c, e, cfg.Render, opts.format)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	w := bufio.NewWriter(f)
	if err := writeCurve(w, c, e, cfg.Render, opts.format); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%s, %d points)\n", opts.out, e.ID, len(c.Points))
	return nil
}

func writeCurve(w io.Writer, c curve.SampledCurve, e easing.Easing, render curve.RenderOptions, format string) error {
	switch format {
	case "png":
		render.Label = e.Name
		return curve.EncodePNG(w, c, render)
	case "points":
		for _, p := range c.Points {
			if _, err := fmt.Fprintf(w, "%.4f %.6f %.2f %.2f\n", p.T, p.Value, p.X, p.Y); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := io.WriteString(w, curve.SVGDocumentWith(c, render))
		return err
	}
}
