/*
Package render draws quakes and their mirror lines onto a raster canvas.

Drawing is done on a Surface. A Surface knows its size in pixels and can
stroke a polyline with a given width. The quake coordinate system has its
origin at the center of the surface. Canvas implements Surface on top of a
fogleman/gg context, and writes the final image as a PNG file.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/quake"
	"github.com/npillmayer/quake/config"
	"github.com/npillmayer/quake/mirror"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quake'
func tracer() tracing.Trace {
	return tracing.Select("quake")
}

// ErrEmptyPath indicates a path without any knots.
var ErrEmptyPath = errors.New("path has no knots")

// Surface is a raster surface to stroke polylines on, in pixel coordinates.
type Surface interface {
	Size() (int, int)                              // width and height in pixels
	Polyline(points []quake.Pair, strokeWidth int) // stroke a connected line through points
}

// DrawPath strokes path on s. The origin of path is placed at the center
// of s. A path consisting of a single knot has no segments and leaves s
// untouched.
//
// Leading and trailing segments which cannot leave a mark on s are not
// handed to s. One of them is kept on either side, so the joins at the
// knots which remain are stroked as before.
func DrawPath(s Surface, path *quake.Path, strokeWidth int) error {
	if path.N() == 0 {
		return ErrEmptyPath
	}
	if path.N() == 1 {
		tracer().Debugf("path %s has no segments to draw", path)
		return nil
	}
	w, h := s.Size()
	from, to, ok := visibleSpan(path, w, h, strokeWidth)
	if !ok {
		tracer().Debugf("path %s lies outside of the surface", path)
		return nil
	}
	if from > 0 || to < path.N()-1 {
		tracer().Debugf("stroking knots %d…%d of %d", from, to, path.N())
	}
	center := quake.P(float64(w)/2, float64(h)/2)
	s.Polyline(path.Shifted(center).Points()[from:to+1], strokeWidth)
	return nil
}

// visibleSpan returns the first and last knot of the part of path to stroke
// on a surface of w × h pixels. A segment is visible if its bounding box,
// widened by the stroke width, overlaps the surface. ok is false if no
// segment is visible.
func visibleSpan(path *quake.Path, w, h, strokeWidth int) (from, to int, ok bool) {
	box := frame(w, h)
	margin := float64(strokeWidth)
	box.Min.X, box.Min.Y = box.Min.X-margin, box.Min.Y-margin
	box.Max.X, box.Max.Y = box.Max.X+margin, box.Max.Y+margin
	first, last := -1, -1
	for i := 0; i+1 < path.N(); i++ {
		a, b := path.Z(i), path.Z(i+1)
		seg := polyclip.Contour{{X: a.X(), Y: a.Y()}, {X: b.X(), Y: b.Y()}}
		if box.Overlaps(seg.BoundingBox()) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0, false
	}
	from = first - 1
	if from < 0 {
		from = 0
	}
	to = last + 2
	if to > path.N()-1 {
		to = path.N() - 1
	}
	return from, to, true
}

// DrawQuake strokes a quake with FatWidth and then every line of its fan
// with ThinWidth, in ascending order of mirror index. Mirror lines drawn
// later may cover the quake where they cross it.
func DrawQuake(s Surface, path *quake.Path, fan *mirror.Set, conf config.Config) error {
	if path.N() == 0 {
		return ErrEmptyPath
	}
	w, h := s.Size()
	extent := Extent(path, fan)
	if !Visible(extent, w, h) {
		tracer().Infof("quake lies completely outside of a %d × %d surface", w, h)
	} else if !Fits(extent, w, h) {
		tracer().Infof("quake extends to [%.1f,%.1f]–[%.1f,%.1f] and will be clipped",
			extent.Min.X, extent.Min.Y, extent.Max.X, extent.Max.Y)
	}
	if err := DrawPath(s, path, conf.FatWidth); err != nil {
		return err
	}
	var err error
	fan.Each(func(index int, line *quake.Path) {
		if err != nil {
			return
		}
		if e := DrawPath(s, line, conf.ThinWidth); e != nil {
			err = fmt.Errorf("mirror line %d: %w", index, e)
		}
	})
	return err
}

// Extent returns the bounding box of a quake and its fan, in quake
// coordinates.
func Extent(path *quake.Path, fan *mirror.Set) polyclip.Rectangle {
	var poly polyclip.Polygon
	poly.Add(contour(path))
	fan.Each(func(_ int, line *quake.Path) {
		poly.Add(contour(line))
	})
	return poly.BoundingBox()
}

// Fits is a predicate: does extent lie completely within a surface of
// w × h pixels, if the origin is placed at its center?
func Fits(extent polyclip.Rectangle, w, h int) bool {
	box := frame(w, h)
	return extent.Min.X >= box.Min.X && extent.Max.X <= box.Max.X &&
		extent.Min.Y >= box.Min.Y && extent.Max.Y <= box.Max.Y
}

// Visible is a predicate: does extent overlap a surface of w × h pixels,
// if the origin is placed at its center?
func Visible(extent polyclip.Rectangle, w, h int) bool {
	return frame(w, h).Overlaps(extent)
}

// frame is the area of a surface in quake coordinates.
func frame(w, h int) polyclip.Rectangle {
	hw, hh := float64(w)/2, float64(h)/2
	return polyclip.Rectangle{
		Min: polyclip.Point{X: -hw, Y: -hh},
		Max: polyclip.Point{X: hw, Y: hh},
	}
}

func contour(path *quake.Path) polyclip.Contour {
	c := make(polyclip.Contour, 0, path.N())
	for _, p := range path.Points() {
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// Filename returns the name of an image file for a quake drawn at time t,
// with a timestamp of second precision.
func Filename(prefix string, t time.Time) string {
	return prefix + t.Format("060102150405") + ".png"
}
