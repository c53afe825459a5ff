package scene

import (
	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// NewCarvedScene demonstrates the subtract and mask blend modes: a box with
// a sphere carved out of it, and a second box/sphere pair masked down to
// their intersection
func NewCarvedScene() *Scene {
	shapes := sdf.Scene{
		{
			Kind:     sdf.KindBox,
			Blend:    sdf.BlendUnion,
			Position: core.NewVec3(-1.5, 0.8, 0),
			Scale:    core.NewVec3(0.8, 0.8, 0.8),
			Color:    core.NewVec3(0.9, 0.6, 0.2),
		},
		{
			// Carve a spherical bite out of the box corner
			Kind:     sdf.KindSphere,
			Blend:    sdf.BlendSubtract,
			Position: core.NewVec3(-0.9, 1.4, -0.6),
			Scale:    core.NewVec3(0.9, 0, 0),
			Color:    core.NewVec3(0.5, 0.2, 0.6),
		},
		{
			Kind:     sdf.KindBox,
			Blend:    sdf.BlendUnion,
			Position: core.NewVec3(1.5, 0.8, 0),
			Scale:    core.NewVec3(0.8, 0.8, 0.8),
			Color:    core.NewVec3(0.2, 0.7, 0.5),
		},
		{
			// Mask the second box down to its overlap with this sphere
			Kind:     sdf.KindSphere,
			Blend:    sdf.BlendMask,
			Position: core.NewVec3(1.5, 0.8, 0),
			Scale:    core.NewVec3(1.0, 0, 0),
			Color:    core.NewVec3(0.2, 0.7, 0.5),
		},
	}

	return &Scene{
		Name:           "carved",
		ShapeList:      shapes,
		Camera:         defaultCamera(),
		LightDirection: core.NewVec3(0.2, -1, 0.4).Normalize(),
	}
}
