package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/npillmayer/quake"
	"github.com/npillmayer/quake/config"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Canvas is a square raster surface with white background, stroked in black.
// Strokes end flat at their end points and are beveled at joins, so they
// never reach further than half the stroke width from a segment.
// A canvas is owned by a single quake drawing.
type Canvas struct {
	dc    *gg.Context
	width int
}

// NewCanvas creates a blank square canvas of side length width.
func NewCanvas(width int) (*Canvas, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: canvas width must be positive, is %d",
			config.ErrInvalidConfig, width)
	}
	dc := gg.NewContext(width, width)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinBevel)
	return &Canvas{dc: dc, width: width}, nil
}

// Size is part of interface Surface.
func (c *Canvas) Size() (int, int) {
	return c.width, c.width
}

// Polyline is part of interface Surface.
func (c *Canvas) Polyline(points []quake.Pair, strokeWidth int) {
	if len(points) < 2 {
		return
	}
	c.dc.SetLineWidth(float64(strokeWidth))
	c.dc.MoveTo(points[0].F())
	for _, p := range points[1:] {
		c.dc.LineTo(p.F())
	}
	c.dc.Stroke()
}

// Image returns the canvas contents as drawn.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Rotated returns the canvas contents turned by 270° counterclockwise,
// which is the orientation quake images are saved in.
func (c *Canvas) Rotated() image.Image {
	return rotate270(c.dc.Image())
}

// SavePNG writes the rotated canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := gg.SavePNG(path, c.Rotated()); err != nil {
		tracer().Errorf("cannot save quake image: %v", err)
		return err
	}
	tracer().Infof("saved quake image %s", path)
	return nil
}

// rotate270 turns an image by 270° counterclockwise (90° clockwise):
// pixel (x, y) moves to (maxY-1-y, x).
func rotate270(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	s2d := f64.Aff3{
		0, -1, float64(b.Max.Y),
		1, 0, float64(-b.Min.X),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}
