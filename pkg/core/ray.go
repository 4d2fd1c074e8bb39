package core

import "math"

// Ray represents a ray with an origin, a unit direction and a traversal bound.
// TMax is +Inf for primary and secondary rays; shadow rays bound it to the
// light distance so occluders beyond the light are rejected.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMax      float64
}

// NewRay creates an unbounded ray. The direction is normalized here so every
// downstream t value measures world-space distance.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), TMax: math.Inf(1)}
}

// NewBoundedRay creates a ray that only reports hits up to tMax, used for
// shadow occlusion tests.
func NewBoundedRay(origin, direction Vec3, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
