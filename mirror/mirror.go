/*
Package mirror derives the fan of mirror lines of a quake.

Every mirror line is the quake rotated around its origin. Mirror line i, for
i in [-NrMirrorLines, NrMirrorLines) and i ≠ 0, is rotated by

	EndAngleMirrorLines ⋅ i / NrMirrorLines

Index 0 would be the quake itself and is left out of the fan.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mirror

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/quake"
	"github.com/npillmayer/quake/config"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quake'
func tracer() tracing.Trace {
	return tracing.Select("quake")
}

// Rotate derives a new path from path, rotating every knot around the origin
// by phi. Knots at the origin stay there.
func Rotate(path *quake.Path, phi float64) *quake.Path {
	return path.Rotated(phi)
}

// Shift returns the rotation angle of mirror line index.
func Shift(index int, conf config.Config) float64 {
	return conf.EndAngleMirrorLines * float64(index) / float64(conf.NrMirrorLines)
}

// Set is the fan of mirror lines of a quake, keyed by mirror index.
type Set struct {
	lines *treemap.Map
}

// Fan derives all mirror lines of path. The resulting set holds
// 2⋅NrMirrorLines - 1 paths, or none if NrMirrorLines is 0.
func Fan(path *quake.Path, conf config.Config) *Set {
	set := &Set{lines: treemap.NewWithIntComparator()}
	for i := -conf.NrMirrorLines; i < conf.NrMirrorLines; i++ {
		if i == 0 {
			continue
		}
		set.lines.Put(i, Rotate(path, Shift(i, conf)))
	}
	tracer().Infof("fanned out %d mirror lines", set.Len())
	return set
}

// Len is the number of mirror lines in a set.
func (set *Set) Len() int {
	if set == nil || set.lines == nil {
		return 0
	}
	return set.lines.Size()
}

// Line returns mirror line index, if present.
func (set *Set) Line(index int) (*quake.Path, bool) {
	if set.Len() == 0 {
		return nil, false
	}
	line, found := set.lines.Get(index)
	if !found {
		return nil, false
	}
	return line.(*quake.Path), true
}

// Indices returns the mirror indices of a set in ascending order.
func (set *Set) Indices() []int {
	indices := make([]int, 0, set.Len())
	set.Each(func(index int, _ *quake.Path) {
		indices = append(indices, index)
	})
	return indices
}

// Each calls f for every mirror line, in ascending order of index.
func (set *Set) Each(f func(index int, line *quake.Path)) {
	if set.Len() == 0 {
		return
	}
	it := set.lines.Iterator()
	for it.Next() {
		f(it.Key().(int), it.Value().(*quake.Path))
	}
}
