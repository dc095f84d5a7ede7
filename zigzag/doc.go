/*
Package zigzag generates the zigzag paths of quakes by a constrained random walk.

A path starts at the origin. Every step draws a segment length from
[MinSegmentLength, MaxSegmentLength] and a direction. The first segment points
right, within MaxFirstAngle. Every later segment turns left or right by
roughly 90° against its predecessor, within MaxDeviationFromPerpendicular.
Its bearing must also stay strictly inside (-G, G), where G is
MaxDeviationFromGoingRight, so the quake keeps moving rightwards.

Turns are found by rejection sampling. Sampler.NextAngle draws candidates
until one satisfies the bearing bound. No segment is ever checked for
collision with earlier segments. The result is a decorative stroke, not a
simple polygon.

# Usage

	gen, err := zigzag.NewGenerator(config.Default(), rand.New(rand.NewSource(seed)))
	...
	path := gen.Generate()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package zigzag
