// Package mesh exports the composited implicit surface of a scene as a
// triangle mesh using the github.com/deadsy/sdfx SDF toolkit.
package mesh

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	sdfx "github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// defaultMeshCells controls marching cubes tessellation resolution
const defaultMeshCells = 200

// sceneSDF3 adapts a shape list to sdfx's SDF3 interface so the blended
// distance field can be meshed directly, smooth blends and carves included
type sceneSDF3 struct {
	shapes sdf.Scene
	bounds sdfx.Box3
}

// NewSceneSDF3 wraps a shape list as an sdfx SDF3
func NewSceneSDF3(shapes sdf.Scene) sdfx.SDF3 {
	return &sceneSDF3{
		shapes: shapes,
		bounds: boundingBox(shapes),
	}
}

// Evaluate returns the composited signed distance at p
func (s *sceneSDF3) Evaluate(p v3.Vec) float64 {
	_, dist := s.shapes.Evaluate(core.NewVec3(p.X, p.Y, p.Z))
	return dist
}

// BoundingBox returns the axis-aligned bounding box of the shape list
func (s *sceneSDF3) BoundingBox() sdfx.Box3 {
	return s.bounds
}

// ExportSTL meshes the scene's distance field with uniform marching cubes
// and writes the triangles to an STL file. cells <= 0 selects the default
// resolution.
func ExportSTL(shapes sdf.Scene, path string, cells int) error {
	if len(shapes) == 0 {
		return fmt.Errorf("cannot mesh an empty scene")
	}
	if cells <= 0 {
		cells = defaultMeshCells
	}

	render.ToSTL(NewSceneSDF3(shapes), path, render.NewMarchingCubesUniform(cells))
	return nil
}

// boundingBox computes a conservative bounds over every shape. Subtract and
// mask shapes only remove material, but including their extent merely wastes
// a few marching cubes cells, so all shapes are treated alike.
func boundingBox(shapes sdf.Scene) sdfx.Box3 {
	if len(shapes) == 0 {
		return sdfx.Box3{Min: v3.Vec{X: -1, Y: -1, Z: -1}, Max: v3.Vec{X: 1, Y: 1, Z: 1}}
	}

	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for _, shape := range shapes {
		extent := shapeExtent(shape).Add(core.NewVec3(shape.BlendStrength, shape.BlendStrength, shape.BlendStrength))
		lo = componentMin(lo, shape.Position.Subtract(extent))
		hi = componentMax(hi, shape.Position.Add(extent))
	}

	// Margin so the surface never touches the lattice boundary
	margin := 0.1
	lo = lo.Subtract(core.NewVec3(margin, margin, margin))
	hi = hi.Add(core.NewVec3(margin, margin, margin))

	return sdfx.Box3{
		Min: v3.Vec{X: lo.X, Y: lo.Y, Z: lo.Z},
		Max: v3.Vec{X: hi.X, Y: hi.Y, Z: hi.Z},
	}
}

// shapeExtent returns the half-extent of a single shape around its position
func shapeExtent(shape sdf.Shape) core.Vec3 {
	switch shape.Kind {
	case sdf.KindSphere:
		r := shape.Scale.X
		return core.NewVec3(r, r, r)
	case sdf.KindBox:
		return shape.Scale
	case sdf.KindTorus:
		ring := shape.Scale.X + shape.Scale.Y
		return core.NewVec3(ring, shape.Scale.Y, ring)
	}
	return core.NewVec3(0, 0, 0)
}

func componentMin(a, b core.Vec3) core.Vec3 {
	return core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
}

func componentMax(a, b core.Vec3) core.Vec3 {
	return core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))
}
