// Package geometry holds the integer point and rectangle math shared by the
// crop model, the hit tester and the overlay builder.
package geometry

import "image"

// Clamp limits v to [lo, hi]. When lo > hi, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Contains reports whether pointer lies in the square hit region of side
// 2*radius centered on handle. The comparison is strict on both axes: a point
// exactly radius away is outside. The region is a square, not the circle the
// handle is drawn as.
func Contains(handle, pointer image.Point, radius int) bool {
	return abs(handle.X-pointer.X) < radius && abs(handle.Y-pointer.Y) < radius
}

// Midpoint returns the integer midpoint of a and b.
func Midpoint(a, b image.Point) image.Point {
	return image.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// ClampPoint clamps p into bounds, treating Max as inclusive.
func ClampPoint(p image.Point, bounds image.Rectangle) image.Point {
	return image.Pt(
		Clamp(p.X, bounds.Min.X, bounds.Max.X),
		Clamp(p.Y, bounds.Min.Y, bounds.Max.Y),
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
