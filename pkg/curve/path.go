package curve

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand is a single path operation and its end point.
type PathCommand struct {
	Op   PathOp
	X, Y float64
}

// Path is an open polyline built from move and line commands.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// PathOf builds the polyline through every sample of c.
func PathOf(c SampledCurve) *Path {
	p := &Path{Commands: make([]PathCommand, 0, len(c.Points))}
	for i, pt := range c.Points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, X: x, Y: y})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, X: x, Y: y})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// SVG renders the path as SVG path data: "M x,y L x,y L ...".
func (p *Path) SVG() string {
	var sb strings.Builder
	for i, cmd := range p.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch cmd.Op {
		case PathOpMoveTo:
			sb.WriteString("M ")
		case PathOpLineTo:
			sb.WriteString("L ")
		}
		sb.WriteString(formatCoord(cmd.X))
		sb.WriteByte(',')
		sb.WriteString(formatCoord(cmd.Y))
	}
	return sb.String()
}

// Line is a straight segment between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Axes returns the baseline (progress 0) and the left edge (t = 0) of d,
// both spanning the plot area.
func Axes(d Domain) (baseline, left Line) {
	x0, y0 := d.Map(0, 0)
	x1, _ := d.Map(1, 0)
	_, y1 := d.Map(0, 1)
	return Line{X1: x0, Y1: y0, X2: x1, Y2: y0}, Line{X1: x0, Y1: y0, X2: x0, Y2: y1}
}

// SVGDocument renders c as a standalone SVG image with its axes.
func SVGDocument(c SampledCurve) string {
	return SVGDocumentWith(c, DefaultRenderOptions())
}

// SVGDocumentWith is SVGDocument using the colors and stroke width of opts.
// The background is left transparent.
func SVGDocumentWith(c SampledCurve, opts RenderOptions) string {
	d := c.Domain
	base, left := Axes(d)
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatCoord(d.Width), formatCoord(d.Height), formatCoord(d.Width), formatCoord(d.Height))
	sb.WriteByte('\n')
	if opts.Axis != nil {
		for _, l := range []Line{base, left} {
			fmt.Fprintf(&sb, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`,
				formatCoord(l.X1), formatCoord(l.Y1), formatCoord(l.X2), formatCoord(l.Y2), hexOf(opts.Axis))
			sb.WriteByte('\n')
		}
	}
	stroke := "white"
	if opts.Stroke != nil {
		stroke = hexOf(opts.Stroke)
	}
	fmt.Fprintf(&sb, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
		PathOf(c).SVG(), stroke, formatCoord(opts.StrokeWidth))
	sb.WriteString("\n</svg>\n")
	return sb.String()
}

func hexOf(c color.Color) string {
	if cc, ok := c.(Color); ok {
		return cc.Hex()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A).Hex()
}

// formatCoord prints the shortest representation that round-trips.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
