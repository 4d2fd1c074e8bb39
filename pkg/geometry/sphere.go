package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere.
//
// Uses the geometric solution: project the origin-to-center vector onto the
// ray direction (tca), then test the perpendicular distance squared against
// the radius squared. This is better conditioned near grazing incidence than
// expanding the quadratic coefficients directly.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Projected distance along the ray to the point closest to the center
	tca := oc.Dot(ray.Direction)

	// Sphere entirely behind the origin
	if tca < 0 && oc.LengthSquared() > s.Radius*s.Radius {
		return nil, false
	}

	// Perpendicular distance squared from center to the ray
	d2 := oc.LengthSquared() - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return nil, false
	}

	// Half-chord length; roots are tca +/- thc
	thc := math.Sqrt(r2 - d2)

	// Prefer the near root, fall back to the far root (origin inside sphere)
	root := tca - thc
	if root < tMin || root > tMax {
		root = tca + thc
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal via division by radius, exact without renormalizing
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
