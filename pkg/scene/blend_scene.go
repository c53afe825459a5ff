package scene

import (
	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// NewBlendScene creates a scene of smoothly merged spheres, the classic
// metaball look. Shape order matters: each smooth shape folds into the
// result of everything before it.
func NewBlendScene() *Scene {
	shapes := sdf.Scene{
		{
			Kind:     sdf.KindSphere,
			Blend:    sdf.BlendUnion,
			Position: core.NewVec3(-0.9, 0.8, 0),
			Scale:    core.NewVec3(0.9, 0, 0),
			Color:    core.NewVec3(0.9, 0.3, 0.2),
		},
		{
			Kind:          sdf.KindSphere,
			Blend:         sdf.BlendSmooth,
			BlendStrength: 0.8,
			Position:      core.NewVec3(0.9, 0.8, 0),
			Scale:         core.NewVec3(0.9, 0, 0),
			Color:         core.NewVec3(0.2, 0.4, 0.9),
		},
		{
			Kind:          sdf.KindSphere,
			Blend:         sdf.BlendSmooth,
			BlendStrength: 0.6,
			Position:      core.NewVec3(0, 1.9, 0.3),
			Scale:         core.NewVec3(0.7, 0, 0),
			Color:         core.NewVec3(0.3, 0.9, 0.4),
		},
	}

	return &Scene{
		Name:           "blend",
		ShapeList:      shapes,
		Camera:         defaultCamera(),
		LightDirection: core.NewVec3(-0.3, -1, 0.5).Normalize(),
	}
}
