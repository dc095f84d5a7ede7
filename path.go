package quake

import (
	"errors"
	"strings"
)

// ErrIndexOutOfRange indicates access to a knot or segment a path does not have.
var ErrIndexOutOfRange = errors.New("path index out of range")

// Path is an ordered sequence of pairs, connected by straight segments.
// To construct a path, start with Nullpath() and append knots to it.
// Once built, paths are never changed: operations on paths derive new ones.
type Path struct {
	points []Pair // point i
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls:
//
//	path := Nullpath().Knot(P(0,0)).Knot(P(50,0)).Knot(P(80,40)).End()
func Nullpath() *Path {
	return &Path{points: make([]Pair, 0, 16)}
}

// Knot appends a point to a path. Part of builder functionality.
func (path *Path) Knot(p Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// N returns the number of knots of a path.
func (path *Path) N() int {
	if path == nil {
		return 0
	}
	return len(path.points)
}

// Z returns knot i of a path. Z panics with ErrIndexOutOfRange for an
// invalid index.
func (path *Path) Z(i int) Pair {
	if i < 0 || i >= path.N() {
		panic(ErrIndexOutOfRange)
	}
	return path.points[i]
}

// Last returns the final knot of a path, or the origin for an empty path.
func (path *Path) Last() Pair {
	if path.N() == 0 {
		return Origin
	}
	return path.points[len(path.points)-1]
}

// Points returns a copy of the knots of a path.
func (path *Path) Points() []Pair {
	pts := make([]Pair, path.N())
	if path != nil {
		copy(pts, path.points)
	}
	return pts
}

// Bearing returns the direction angle of segment i, which runs from
// knot i to knot i+1.
func (path *Path) Bearing(i int) float64 {
	if i < 0 || i+1 >= path.N() {
		panic(ErrIndexOutOfRange)
	}
	return Bearing(path.points[i], path.points[i+1])
}

// Map derives a new path by applying f to every knot of path.
func (path *Path) Map(f func(Pair) Pair) *Path {
	mapped := &Path{points: make([]Pair, path.N())}
	for i := 0; i < path.N(); i++ {
		mapped.points[i] = f(path.points[i])
	}
	return mapped
}

// Rotated returns a new path with every knot rotated around the origin by
// theta (counterclockwise).
func (path *Path) Rotated(theta float64) *Path {
	return path.Map(func(p Pair) Pair {
		return p.Rotated(theta)
	})
}

// Shifted returns a new path with every knot translated by v.
func (path *Path) Shifted(v Pair) *Path {
	return path.Map(func(p Pair) Pair {
		return p.Shifted(v)
	})
}

// String returns the knot coordinates of a path in one line:
//
//	(0,0) .. (50,0) .. (80,40)
func (path *Path) String() string {
	var sb strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			sb.WriteString(" .. ")
		}
		sb.WriteString(path.points[i].String())
	}
	return sb.String()
}
