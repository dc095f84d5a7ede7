/*
Package quake implements points and paths for drawing "vertical earthquakes":
zigzag lines which are fanned out by rotated copies of themselves.

Points are pairs, stored as complex numbers. This lets clients switch between
Cartesian and polar representation without loss: a pair (x,y) is the complex
number x+iy, and its polar form is (|z|, arg z).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package quake

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// === Pair Data Type ========================================================

// Pair is a 2D-point in a plane centered on the origin of a quake.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Polar constructs a pair from magnitude r and angle phi (radians),
// i.e. (r⋅cos φ, r⋅sin φ).
func Polar(r, phi float64) Pair {
	return Pair(cmplx.Rect(r, phi))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Polar returns the magnitude and angle of p. The origin has no defined
// angle; it is reported as (0, 0).
func (p Pair) Polar() (float64, float64) {
	if p == Origin {
		return 0, 0
	}
	return cmplx.Polar(p.C())
}

// Magnitude is the distance of p from the origin.
func (p Pair) Magnitude() float64 {
	return cmplx.Abs(p.C())
}

// IsOrigin is a predicate: is this pair exactly the origin?
func (p Pair) IsOrigin() bool {
	return p == Origin
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
// The rotation is done in polar form, adding theta to the angle of p. The
// origin is invariant and will never pick up a spurious angle.
func (p Pair) Rotated(theta float64) Pair {
	r, phi := p.Polar()
	if r == 0 {
		return Origin
	}
	return Polar(r, phi+theta)
}

// Bearing is the angle of the direction vector from one pair to another,
// relative to the positive x-axis, in (-π, π].
func Bearing(from, to Pair) float64 {
	return cmplx.Phase((to - from).C())
}
