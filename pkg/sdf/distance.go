package sdf

import (
	"math"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
)

// Distance returns the exact signed distance from point to the surface of a
// primitive of the given kind, negative inside the solid. Unknown kinds
// evaluate to MaxDistance so a malformed shape drops out of compositing
// instead of failing the render.
func Distance(kind Kind, point, position, scale core.Vec3) float64 {
	switch kind {
	case KindSphere:
		return sphereDistance(point, position, scale.X)
	case KindBox:
		return boxDistance(point, position, scale)
	case KindTorus:
		return torusDistance(point, position, scale.X, scale.Y)
	}
	return MaxDistance
}

// sphereDistance returns the signed distance to a sphere of the given radius
func sphereDistance(point, center core.Vec3, radius float64) float64 {
	return point.Subtract(center).Length() - radius
}

// boxDistance returns the signed distance to an axis-aligned box with the
// given half-extents
func boxDistance(point, center, halfExtents core.Vec3) float64 {
	q := point.Subtract(center).Abs().Subtract(halfExtents)
	outside := q.Max(0).Length()
	inside := math.Min(math.Max(q.X, math.Max(q.Y, q.Z)), 0)
	return outside + inside
}

// torusDistance returns the signed distance to a torus whose ring lies in the
// XZ plane, with the given major (ring) and minor (tube) radii
func torusDistance(point, center core.Vec3, major, minor float64) float64 {
	rel := point.Subtract(center)
	ring := math.Sqrt(rel.X*rel.X+rel.Z*rel.Z) - major
	return math.Sqrt(ring*ring+rel.Y*rel.Y) - minor
}
