package renderer

import (
	"math"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

const (
	// ShadowBias offsets shadow ray origins along the surface normal so the
	// march does not immediately re-hit the surface it started on
	ShadowBias = sdf.Epsilon * 50

	// AmbientIntensity is the lighting floor for occluded points
	AmbientIntensity = 0.2

	// softShadowAttenuation is reserved for a distance-attenuated soft shadow
	// variant. It is intentionally not applied: occlusion stays binary.
	softShadowAttenuation = 200.0

	// minStep guards the march against non-positive distance estimates; the
	// loop bounds on traveled distance, so a zero step would never terminate
	minStep = 1e-4
)

// Marcher sphere-traces rays against a scene's distance field and shades hit
// points with a single directional light and hard shadows. It holds only
// frame-immutable data and is safe for concurrent use.
type Marcher struct {
	shapes sdf.Scene
	light  core.Vec3 // direction the light travels, unit length
}

// NewMarcher creates a marcher for the given shape list and light direction
func NewMarcher(shapes sdf.Scene, lightDirection core.Vec3) *Marcher {
	return &Marcher{
		shapes: shapes,
		light:  lightDirection.Normalize(),
	}
}

// March traces a ray into the scene. On a hit it returns the shaded color,
// true, and the number of march steps taken; on a miss (distance budget
// exhausted) it returns false and the caller keeps whatever the pixel already
// holds.
func (m *Marcher) March(ray core.Ray) (core.Vec3, bool, int) {
	origin := ray.Origin
	traveled := 0.0
	steps := 0

	for traveled < sdf.MaxDistance {
		color, dist := m.shapes.Evaluate(origin)
		steps++

		if dist < sdf.Epsilon {
			surface := origin.Add(ray.Direction.Multiply(dist))
			normal := m.shapes.EstimateNormal(surface)

			lighting := math.Max(0, normal.Dot(m.light.Negate()))
			shadow := m.shadowFactor(surface, normal)

			return color.Multiply(lighting * shadow), true, steps
		}

		step := math.Max(dist, minStep)
		origin = origin.Add(ray.Direction.Multiply(step))
		traveled += step
	}

	return core.Vec3{}, false, steps
}

// shadowFactor marches from a surface point toward the light and reports the
// lighting factor: AmbientIntensity if an occluder blocks the path within the
// distance budget, 1.0 otherwise. No distance attenuation is applied.
func (m *Marcher) shadowFactor(surface, normal core.Vec3) float64 {
	origin := surface.Add(normal.Multiply(ShadowBias))
	toLight := m.light.Negate()
	traveled := 0.0

	for traveled < sdf.MaxDistance {
		_, dist := m.shapes.Evaluate(origin)
		if dist <= sdf.Epsilon {
			return AmbientIntensity
		}

		step := math.Max(dist, minStep)
		origin = origin.Add(toLight.Multiply(step))
		traveled += step
	}

	return 1.0
}
