// Package integrator implements the recursive Whitted-style tracer: Phong
// local illumination with hard shadows, plus mirror-reflection and dielectric
// transmission rays up to a bounded depth.
package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Whitted evaluates ray colors against a read-only scene. Not safe for
// concurrent use because of the ray counter; give each render worker its own
// instance and reduce the counters at the end.
type Whitted struct {
	scene    *scene.Scene
	rayCount int64
}

// NewWhitted creates an integrator for the given scene
func NewWhitted(s *scene.Scene) *Whitted {
	return &Whitted{scene: s}
}

// RayCount returns the number of rays traced so far, shadow rays included
func (w *Whitted) RayCount() int64 {
	return w.rayCount
}

// TraceRay returns the color seen along a primary ray. The recursion starts
// in the ambient medium on both slots of the index-of-refraction pair.
func (w *Whitted) TraceRay(ray core.Ray) core.Vec3 {
	ambient := w.scene.Config.AmbientIndex
	return w.trace(ray, ambient, ambient, 0)
}

// trace resolves the nearest hit and shades it. The (ior, prevIoR) pair
// threads the current medium and the one the ray would return into, so a ray
// exiting a dielectric restores the enclosing medium instead of a hardcoded
// ambient value. Depth increases on every recursive call, which bounds the
// evaluation tree at 2^MaxDepth leaves per sample.
func (w *Whitted) trace(ray core.Ray, ior, prevIoR float64, depth int) core.Vec3 {
	w.rayCount++

	if depth >= w.scene.Config.MaxDepth {
		return w.scene.Config.Background
	}

	hit, isHit := w.scene.NearestHit(ray)
	if !isHit {
		return w.scene.Config.Background
	}

	return w.shade(ray, hit, ior, prevIoR, depth)
}

// shade combines the additive terms of the illumination model: checkerboard
// or ambient base, mirror reflection, dielectric transmission, and the
// shadow-tested Phong diffuse and specular terms.
func (w *Whitted) shade(ray core.Ray, hit *geometry.HitRecord, ior, prevIoR float64, depth int) core.Vec3 {
	mat := hit.Material
	cfg := w.scene.Config

	color := mat.AmbientAt(hit.Point).MultiplyVec(cfg.AmbientLight)

	if mat.Reflecting {
		reflected := material.Reflect(ray.Direction, hit.Normal)
		bounce := w.trace(core.NewRay(hit.Point, reflected), ior, prevIoR, depth+1)
		color = color.Add(bounce.MultiplyVec(mat.ReflectingPower))
	}

	if mat.Refracts {
		color = color.Add(w.transmission(ray, hit, ior, prevIoR, depth))
	}

	// Shadow test: a bounded ray toward the light. Any hit closer than the
	// light leaves only the terms accumulated so far.
	toLight := cfg.LightPosition.Subtract(hit.Point)
	lightDistance := toLight.Length()
	lightDir := toLight.Multiply(1.0 / lightDistance)
	shadowRay := core.NewBoundedRay(hit.Point, lightDir, lightDistance)
	w.rayCount++
	if _, occluded := w.scene.NearestHit(shadowRay); occluded {
		return color
	}

	// Phong diffuse
	diffuseFactor := math.Max(0, lightDir.Dot(hit.Normal))
	color = color.Add(mat.Diffuse.Multiply(diffuseFactor).MultiplyVec(cfg.DiffuseLight))

	// Phong specular: reflected light direction against the view direction
	viewDir := ray.Direction.Negate()
	reflectedLight := material.Reflect(lightDir.Negate(), hit.Normal)
	specularFactor := math.Pow(math.Max(0, reflectedLight.Dot(viewDir)), mat.Shininess)
	color = color.Add(mat.Specular.Multiply(specularFactor).MultiplyVec(cfg.SpecularLight))

	return color
}

// transmission computes the refracted contribution through a dielectric
// boundary. Entering pushes the current medium onto the pair; exiting
// restores the enclosing medium. Total internal reflection redirects the
// energy into the mirror ray instead of discarding it.
func (w *Whitted) transmission(ray core.Ray, hit *geometry.HitRecord, ior, prevIoR float64, depth int) core.Vec3 {
	var ratio, nextIoR, nextPrev float64
	if hit.FrontFace {
		ratio = ior / hit.Material.IndexOfRefraction
		nextIoR = hit.Material.IndexOfRefraction
		nextPrev = ior
	} else {
		ratio = ior / prevIoR
		nextIoR = prevIoR
		nextPrev = w.scene.Config.AmbientIndex
	}

	refracted, canRefract := material.Refract(ray.Direction, hit.Normal, ratio)
	if !canRefract {
		reflected := material.Reflect(ray.Direction, hit.Normal)
		return w.trace(core.NewRay(hit.Point, reflected), ior, prevIoR, depth+1)
	}

	origin := hit.InteriorPoint()
	return w.trace(core.NewRay(origin, refracted), nextIoR, nextPrev, depth+1)
}
