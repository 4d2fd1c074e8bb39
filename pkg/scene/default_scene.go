package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the default scene: a diffuse red sphere flanked by
// a mirror sphere and a glass sphere over a checkerboard ground plane.
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Center:        core.NewVec3(0, 1.5, -8),
		LookAt:        core.NewVec3(0, 0.75, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		FocalDistance: 1.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	config := DefaultRenderConfig()
	config.LightPosition = core.NewVec3(-3, 8, -6)
	config.Background = core.NewVec3(0.5, 0.7, 1.0)

	diffuseRed := material.NewDiffuse(
		core.NewVec3(0.1, 0.02, 0.02),
		core.NewVec3(0.8, 0.1, 0.1),
		core.NewVec3(0.5, 0.5, 0.5),
		50,
	)
	mirror := material.NewMirror(core.NewVec3(0.85, 0.85, 0.85))
	glass := material.NewGlass(1.5)
	checker := material.NewCheckerboard(core.NewVec3(0.5, 0.5, 0.5))

	s := &Scene{
		CameraConfig: cameraConfig,
		Config:       config,
	}
	s.Shapes = []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0.75, 0), 0.75, diffuseRed),
		geometry.NewSphere(core.NewVec3(-1.8, 0.75, 0.5), 0.75, mirror),
		geometry.NewSphere(core.NewVec3(1.8, 0.75, 0.5), 0.75, glass),
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), checker),
	}

	return s
}

// NewGlassScene creates a scene with nested glass spheres in front of a
// checkered backdrop, exercising refraction through stacked media.
func NewGlassScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Center:        core.NewVec3(0, 1, -6),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          45.0,
		FocalDistance: 1.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	config := DefaultRenderConfig()
	config.LightPosition = core.NewVec3(4, 10, -8)
	config.Background = core.NewVec3(0.1, 0.1, 0.15)

	glassOuter := material.NewGlass(1.5)
	glassInner := material.NewGlass(1.1)
	diffuseBlue := material.NewDiffuse(
		core.NewVec3(0.02, 0.02, 0.1),
		core.NewVec3(0.1, 0.2, 0.7),
		core.NewVec3(0.4, 0.4, 0.4),
		30,
	)
	checker := material.NewCheckerboard(core.NewVec3(0.6, 0.6, 0.6))

	s := &Scene{
		CameraConfig: cameraConfig,
		Config:       config,
	}
	s.Shapes = []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glassOuter),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 0.5, glassInner),
		geometry.NewSphere(core.NewVec3(0, 1, 4), 0.8, diffuseBlue),
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), checker),
	}

	return s
}
