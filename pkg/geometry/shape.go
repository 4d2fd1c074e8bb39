package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Epsilon is the self-intersection offset applied to every hit point along its
// oriented normal. Rays spawned from an offset point cannot re-hit the surface
// they originated from (shadow acne).
const Epsilon = 1e-6

// HitRecord contains information about a ray-object intersection.
// Point is already offset by Epsilon along the oriented normal.
type HitRecord struct {
	Point     core.Vec3         // Point of intersection, epsilon-offset
	Normal    core.Vec3         // Surface normal at intersection
	T         float64           // Parameter t along the ray
	FrontFace bool              // Whether ray hit the front face
	Material  material.Material // Material of the hit object
}

// SetFaceNormal orients the normal against the ray, records which face was
// hit, and applies the self-intersection offset to the stored point.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
	h.Point = h.Point.Add(h.Normal.Multiply(Epsilon))
}

// InteriorPoint returns the hit point pushed to the far side of the surface,
// for spawning transmission rays.
func (h *HitRecord) InteriorPoint() core.Vec3 {
	return h.Point.Subtract(h.Normal.Multiply(2 * Epsilon))
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
