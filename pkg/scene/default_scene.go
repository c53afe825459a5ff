package scene

import (
	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// NewDefaultScene creates a scene with a ground box and a few union shapes:
// a sphere resting on the ground, a box beside it, and a torus ring
func NewDefaultScene() *Scene {
	shapes := sdf.Scene{
		{
			Kind:     sdf.KindBox,
			Blend:    sdf.BlendUnion,
			Position: core.NewVec3(0, -0.5, 0),
			Scale:    core.NewVec3(6, 0.5, 6), // Ground slab
			Color:    core.NewVec3(0.85, 0.85, 0.85),
		},
		{
			Kind:     sdf.KindSphere,
			Blend:    sdf.BlendUnion,
			Position: core.NewVec3(-1.2, 1, 0),
			Scale:    core.NewVec3(1, 0, 0),
			Color:    core.NewVec3(0.9, 0.2, 0.2),
		},
		{
			Kind:     sdf.KindBox,
			Blend:    sdf.BlendUnion,
			Position: core.NewVec3(1.4, 0.6, 0.5),
			Scale:    core.NewVec3(0.6, 0.6, 0.6),
			Color:    core.NewVec3(0.2, 0.5, 0.9),
		},
		{
			Kind:     sdf.KindTorus,
			Blend:    sdf.BlendUnion,
			Position: core.NewVec3(0.2, 0.25, -1.5),
			Scale:    core.NewVec3(0.8, 0.25, 0), // Major and minor radius
			Color:    core.NewVec3(0.95, 0.8, 0.2),
		},
	}

	return &Scene{
		Name:           "default",
		ShapeList:      shapes,
		Camera:         defaultCamera(),
		LightDirection: core.NewVec3(0.4, -1, 0.6).Normalize(),
	}
}
