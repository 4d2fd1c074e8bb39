package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// CameraConfig describes the viewpoint for a render
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera faces
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	FocalDistance float64   // Distance from center to the screen plane
}

// MergeCameraConfig merges override values into a base camera configuration.
// Zero-valued override fields keep the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	zero := core.Vec3{}
	if override.Center != zero {
		merged.Center = override.Center
	}
	if override.LookAt != zero {
		merged.LookAt = override.LookAt
	}
	if override.Up != zero {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.FocalDistance != 0 {
		merged.FocalDistance = override.FocalDistance
	}
	return merged
}

// RenderConfig collects the render-wide constants: the point light, the
// global light colors, background, recursion bound and sampling rate. One
// immutable value passed explicitly to the tracer and renderer.
type RenderConfig struct {
	LightPosition   core.Vec3 // Single point light
	AmbientLight    core.Vec3 // Global ambient light color
	DiffuseLight    core.Vec3 // Point light diffuse color
	SpecularLight   core.Vec3 // Point light specular color
	Background      core.Vec3 // Color for rays that miss everything
	AmbientIndex    float64   // Index of refraction of empty space
	MaxDepth        int       // Recursion bound for secondary rays
	SamplesPerPixel int       // Jittered samples averaged per pixel
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		LightPosition:   core.NewVec3(0, 10, -5),
		AmbientLight:    core.NewVec3(1, 1, 1),
		DiffuseLight:    core.NewVec3(1, 1, 1),
		SpecularLight:   core.NewVec3(1, 1, 1),
		Background:      core.NewVec3(0.5, 0.7, 1.0),
		AmbientIndex:    1.0,
		MaxDepth:        10,
		SamplesPerPixel: 4,
	}
}

// Scene is an insertion-ordered collection of shapes plus the camera and
// render configuration. Built once before rendering and read-only afterwards,
// so it is safe to share across render workers.
type Scene struct {
	Shapes       []geometry.Shape
	CameraConfig CameraConfig
	Config       RenderConfig
}

// tMinHit guards against reporting a hit at exactly t = 0
const tMinHit = 1e-9

// NearestHit returns the closest intersection along the ray, honoring the
// ray's traversal bound. Linear scan; the first shape added wins ties.
func (s *Scene) NearestHit(ray core.Ray) (*geometry.HitRecord, bool) {
	var closest *geometry.HitRecord
	for _, shape := range s.Shapes {
		hit, isHit := shape.Hit(ray, tMinHit, ray.TMax)
		if !isHit {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}
	return closest, closest != nil
}

// Validate fails fast on degenerate configuration before any ray is cast
func (s *Scene) Validate() error {
	if len(s.Shapes) == 0 {
		return fmt.Errorf("scene has no shapes")
	}
	for i, shape := range s.Shapes {
		if sphere, ok := shape.(*geometry.Sphere); ok {
			if sphere.Radius == 0 {
				return fmt.Errorf("shape %d: sphere radius must be non-zero", i)
			}
			if sphere.Material.Refracts && sphere.Material.IndexOfRefraction <= 0 {
				return fmt.Errorf("shape %d: index of refraction must be positive, got %g", i, sphere.Material.IndexOfRefraction)
			}
		}
		if plane, ok := shape.(*geometry.Plane); ok {
			if plane.Normal.LengthSquared() == 0 {
				return fmt.Errorf("shape %d: plane normal must be non-zero", i)
			}
		}
	}

	cam := s.CameraConfig
	forward := cam.LookAt.Subtract(cam.Center)
	if forward.LengthSquared() == 0 {
		return fmt.Errorf("camera look-at coincides with camera center")
	}
	if cam.Up.LengthSquared() == 0 {
		return fmt.Errorf("camera up vector must be non-zero")
	}
	if forward.Cross(cam.Up).LengthSquared() == 0 {
		return fmt.Errorf("camera up vector is parallel to the view direction")
	}
	if cam.VFov <= 0 || cam.VFov >= 180 {
		return fmt.Errorf("camera field of view must be in (0, 180), got %g", cam.VFov)
	}
	if cam.FocalDistance <= 0 {
		return fmt.Errorf("camera focal distance must be positive, got %g", cam.FocalDistance)
	}

	cfg := s.Config
	if math.IsNaN(cfg.LightPosition.Length()) {
		return fmt.Errorf("light position must be finite")
	}
	if cfg.AmbientIndex <= 0 {
		return fmt.Errorf("ambient index of refraction must be positive, got %g", cfg.AmbientIndex)
	}
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("max recursion depth must be at least 1, got %d", cfg.MaxDepth)
	}
	if cfg.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", cfg.SamplesPerPixel)
	}
	return nil
}
