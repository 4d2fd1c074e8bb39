package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays from an orthonormal basis derived from a
// look-at configuration. Immutable for the duration of a render.
type Camera struct {
	center       core.Vec3
	forward      core.Vec3
	right        core.Vec3
	up           core.Vec3
	screenWidth  float64 // World-space width of the screen plane
	screenHeight float64 // World-space height of the screen plane
	focal        float64
}

// NewCamera builds a camera basis from the configuration. The screen plane
// sits focal-distance along the forward axis; its height follows from the
// vertical field of view and the width from the image aspect ratio.
func NewCamera(config scene.CameraConfig, imageWidth, imageHeight int) (*Camera, error) {
	forward := config.LookAt.Subtract(config.Center)
	if forward.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera look-at coincides with camera center")
	}
	forward = forward.Normalize()

	right := forward.Cross(config.Up)
	if right.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera up vector is parallel to the view direction")
	}
	right = right.Normalize()
	up := right.Cross(forward)

	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera field of view must be in (0, 180), got %g", config.VFov)
	}
	if config.FocalDistance <= 0 {
		return nil, fmt.Errorf("camera focal distance must be positive, got %g", config.FocalDistance)
	}

	theta := config.VFov * math.Pi / 180
	screenHeight := 2 * math.Tan(theta/2) * config.FocalDistance
	aspectRatio := float64(imageWidth) / float64(imageHeight)
	screenWidth := screenHeight * aspectRatio

	return &Camera{
		center:       config.Center,
		forward:      forward,
		right:        right,
		up:           up,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		focal:        config.FocalDistance,
	}, nil
}

// GetRay generates a primary ray through screen coordinates (s, t) where
// 0 <= s,t <= 1, with (0, 0) at the top-left of the image.
func (c *Camera) GetRay(s, t float64) core.Ray {
	screenPoint := c.center.
		Add(c.forward.Multiply(c.focal)).
		Add(c.right.Multiply((s - 0.5) * c.screenWidth)).
		Add(c.up.Multiply((0.5 - t) * c.screenHeight))

	return core.NewRay(c.center, screenPoint.Subtract(c.center))
}

// Forward returns the camera's forward basis vector
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// Right returns the camera's right basis vector
func (c *Camera) Right() core.Vec3 {
	return c.right
}

// Up returns the camera's up basis vector
func (c *Camera) Up() core.Vec3 {
	return c.up
}
