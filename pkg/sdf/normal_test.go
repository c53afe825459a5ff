package sdf

import (
	"math"
	"testing"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
)

func TestEstimateNormal_SphereRadial(t *testing.T) {
	center := core.NewVec3(1, -2, 0.5)
	scene := Scene{sphereAt(center, 1, BlendUnion)}

	// On a sphere the normal is radial; check several surface points
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 1, 1).Normalize(),
		core.NewVec3(-0.3, 0.8, 0.2).Normalize(),
	}

	for _, dir := range directions {
		surface := center.Add(dir)
		normal := scene.EstimateNormal(surface)

		if math.Abs(normal.Length()-1) > 1e-9 {
			t.Errorf("Normal should be unit length, got %v", normal.Length())
		}
		// Parallel to the radial direction within finite-difference tolerance
		if normal.Dot(dir) < 1-1e-5 {
			t.Errorf("At %v: expected normal parallel to %v, got %v", surface, dir, normal)
		}
	}
}

func TestEstimateNormal_BoxFace(t *testing.T) {
	scene := Scene{{
		Kind:     KindBox,
		Blend:    BlendUnion,
		Position: core.NewVec3(0, 0, 0),
		Scale:    core.NewVec3(1, 1, 1),
		Color:    core.NewVec3(1, 1, 1),
	}}

	normal := scene.EstimateNormal(core.NewVec3(1, 0.2, -0.3))
	expected := core.NewVec3(1, 0, 0)

	if normal.Subtract(expected).Length() > 1e-6 {
		t.Errorf("Expected +X face normal, got %v", normal)
	}
}

func TestEstimateNormal_DegenerateFallsBackToUp(t *testing.T) {
	// An empty scene has a constant distance field, so the gradient is zero
	scene := Scene{}
	normal := scene.EstimateNormal(core.NewVec3(3, 1, -2))

	if normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Degenerate gradient should fall back to up, got %v", normal)
	}
}
