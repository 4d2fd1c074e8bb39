package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light. It is a plain value,
// immutable once attached to a shape.
type Material struct {
	Ambient           core.Vec3 // Ambient reflectance (non-negative RGB)
	Diffuse           core.Vec3 // Diffuse reflectance
	Specular          core.Vec3 // Specular reflectance
	Shininess         float64   // Phong specular exponent, >= 0
	Reflecting        bool      // Surface spawns mirror-reflection rays
	ReflectingPower   core.Vec3 // Per-channel weight of the reflected color
	Refracts          bool      // Surface transmits rays (dielectric)
	IndexOfRefraction float64   // Snell's-law index, > 0
	Checkerboard      bool      // Ambient term uses the procedural checker
}

// Checkerboard tiling parameters
const checkerTileSize = 1.0

var (
	checkerTintA = core.NewVec3(0.9, 0.9, 0.9)
	checkerTintB = core.NewVec3(0.15, 0.1, 0.1)
)

// NewDiffuse creates an opaque Phong material with the given reflectances
func NewDiffuse(ambient, diffuse, specular core.Vec3, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewMirror creates a reflective material. Power weights the reflected color
// per channel.
func NewMirror(power core.Vec3) Material {
	return Material{
		Ambient:         core.NewVec3(0.05, 0.05, 0.05),
		Specular:        core.NewVec3(0.8, 0.8, 0.8),
		Shininess:       200,
		Reflecting:      true,
		ReflectingPower: power,
	}
}

// NewGlass creates a refractive dielectric material
func NewGlass(indexOfRefraction float64) Material {
	return Material{
		Specular:          core.NewVec3(0.6, 0.6, 0.6),
		Shininess:         300,
		Refracts:          true,
		IndexOfRefraction: indexOfRefraction,
	}
}

// NewCheckerboard creates a diffuse material whose ambient term alternates
// between two tints on a unit grid.
func NewCheckerboard(diffuse core.Vec3) Material {
	return Material{
		Diffuse:      diffuse,
		Checkerboard: true,
	}
}

// AmbientAt returns the ambient reflectance at a surface point. Checkerboard
// materials alternate tints based on the XOR of the x/z tile-index parities.
func (m Material) AmbientAt(point core.Vec3) core.Vec3 {
	if !m.Checkerboard {
		return m.Ambient
	}
	ix := int(math.Floor(point.X / checkerTileSize))
	iz := int(math.Floor(point.Z / checkerTileSize))
	if (ix%2 == 0) != (iz%2 == 0) {
		return checkerTintB
	}
	return checkerTintA
}

// Reflect mirrors v about the surface normal n: r = v - 2*dot(v,n)*n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends a unit direction through a boundary with relative index
// etaiOverEtat per Snell's law. Returns false on total internal reflection
// (negative discriminant), in which case no transmitted ray exists.
func Refract(uv, n core.Vec3, etaiOverEtat float64) (core.Vec3, bool) {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	sin2Theta := 1.0 - cosTheta*cosTheta

	discriminant := 1.0 - etaiOverEtat*etaiOverEtat*sin2Theta
	if discriminant < 0 {
		return core.Vec3{}, false
	}

	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(discriminant))
	return rOutPerp.Add(rOutParallel), true
}
