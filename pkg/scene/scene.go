package scene

import (
	"image"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/renderer"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// Scene is the frame-immutable snapshot the renderer reads: the ordered shape
// list, the camera, one directional light, and an optional background image
// that shows through wherever rays miss.
type Scene struct {
	Name           string
	ShapeList      sdf.Scene
	Camera         renderer.CameraConfig
	LightDirection core.Vec3
	BackgroundImg  image.Image
}

// Shapes returns the ordered shape list
func (s *Scene) Shapes() sdf.Scene {
	return s.ShapeList
}

// CameraConfig returns the camera parameters
func (s *Scene) CameraConfig() renderer.CameraConfig {
	return s.Camera
}

// Light returns the direction the light travels
func (s *Scene) Light() core.Vec3 {
	return s.LightDirection
}

// Background returns the miss background, nil for black
func (s *Scene) Background() image.Image {
	return s.BackgroundImg
}

// ByName returns a built-in scene by name, or nil if unknown
func ByName(name string) *Scene {
	switch name {
	case "default":
		return NewDefaultScene()
	case "blend":
		return NewBlendScene()
	case "carved":
		return NewCarvedScene()
	}
	return nil
}

// Names lists the built-in scene names
func Names() []string {
	return []string{"default", "blend", "carved"}
}

// defaultCamera is the camera shared by the built-in scenes
func defaultCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center: core.NewVec3(0, 1.5, -6),
		LookAt: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
	}
}
