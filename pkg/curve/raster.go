package curve

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RenderOptions controls raster output of a sampled curve.
type RenderOptions struct {
	// Background fills the whole image.
	Background color.Color
	// Stroke colors the curve.
	Stroke color.Color
	// Axis colors the two axis lines.
	Axis color.Color
	// StrokeWidth is the curve thickness in pixels.
	StrokeWidth float64
	// Label is drawn in the top-left corner when non-empty.
	Label string
}

// DefaultRenderOptions matches the dark plot used by the demo host.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Background:  RGB(0x18, 0x18, 0x1b),
		Stroke:      ColorWhite,
		Axis:        RGB(0x33, 0x33, 0x33),
		StrokeWidth: 2,
	}
}

// Render rasterizes the axes and curve of c into a new image sized to its
// domain. Overshooting samples are drawn where they fall; anything outside the
// image bounds is clipped by the raster itself.
func Render(c SampledCurve, opts RenderOptions) *image.RGBA {
	d := c.Domain
	w, h := int(math.Ceil(d.Width)), int(math.Ceil(d.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	if opts.Background != nil {
		xdraw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}

	if opts.Axis != nil {
		base, left := Axes(d)
		z := vector.NewRasterizer(w, h)
		strokeSegment(z, base.X1, base.Y1, base.X2, base.Y2, 1)
		strokeSegment(z, left.X1, left.Y1, left.X2, left.Y2, 1)
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Axis), image.Point{})
	}

	if opts.Stroke != nil && len(c.Points) > 1 {
		z := vector.NewRasterizer(w, h)
		for i := 1; i < len(c.Points); i++ {
			a, b := c.Points[i-1], c.Points[i]
			strokeSegment(z, a.X, a.Y, b.X, b.Y, opts.StrokeWidth)
			if i < len(c.Points)-1 {
				joinAt(z, b.X, b.Y, opts.StrokeWidth/2)
			}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Stroke), image.Point{})
	}

	if opts.Label != "" {
		fg := opts.Stroke
		if fg == nil {
			fg = color.White
		}
		dr := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(fg),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(int(d.PaddingX), int(math.Max(d.PaddingY-4, 13))),
		}
		dr.DrawString(opts.Label)
	}
	return img
}

// EncodePNG renders c and writes it as PNG.
func EncodePNG(w io.Writer, c SampledCurve, opts RenderOptions) error {
	return png.Encode(w, Render(c, opts))
}

// strokeSegment adds a quad of the given width around segment a→b. All quads
// share one winding so overlapping coverage saturates instead of cancelling.
func strokeSegment(z *vector.Rasterizer, ax, ay, bx, by, width float64) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
}

// joinAt fills a small diamond at an interior vertex to hide seams between
// consecutive segment quads.
func joinAt(z *vector.Rasterizer, x, y, r float64) {
	z.MoveTo(float32(x+r), float32(y))
	z.LineTo(float32(x), float32(y-r))
	z.LineTo(float32(x-r), float32(y))
	z.LineTo(float32(x), float32(y+r))
	z.ClosePath()
}
