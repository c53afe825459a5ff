package sdf

import (
	"github.com/rk31/go-sdf-raymarcher/pkg/core"
)

const (
	// MaxDistance is the ray distance budget and the "infinitely far" sentinel
	// for empty scenes and unknown shape kinds
	MaxDistance = 80.0

	// Epsilon is the hit threshold for sphere tracing and the step size for
	// finite-difference normals
	Epsilon = 0.001

	// minBlendStrength keeps the smooth-min denominator away from zero
	minBlendStrength = 1e-6
)

// Scene is the ordered shape list for one frame. Order matters: blend modes
// fold left to right, and Subtract/Mask are not commutative.
type Scene []Shape

// Evaluate composites every shape's distance and color at point, folding the
// shape list in order. It returns the blended surface color and the signed
// distance to the nearest composited surface.
//
// Evaluate is called many times per pixel (march steps, normal offsets,
// shadow steps) and must stay pure: identical inputs give identical results.
func (s Scene) Evaluate(point core.Vec3) (core.Vec3, float64) {
	color := core.NewVec3(1, 1, 1)
	dist := MaxDistance

	for i := range s {
		shape := &s[i]
		d := Distance(shape.Kind, point, shape.Position, shape.Scale)

		switch shape.Blend {
		case BlendUnion:
			// Closest surface wins; ties keep the earlier shape
			if d < dist {
				dist = d
				color = shape.Color
			}
		case BlendSmooth:
			// Unconditional: h saturates to 0 or 1 at large separation, so
			// distant shapes perturb the result by a vanishing amount
			dist, color = smoothMin(dist, d, color, shape.Color, shape.BlendStrength)
		case BlendSubtract:
			// Carve the shape out of the accumulated solid: max(a, -b)
			if -d > dist {
				dist = -d
				color = shape.Color
			}
		case BlendMask:
			// Keep the accumulated solid only where this shape exists: max(a, b)
			if d > dist {
				dist = d
				color = shape.Color
			}
		}
	}

	return color, dist
}

// smoothMin blends distances a and b with the polynomial smooth minimum of
// radius k, interpolating colors with the same weight
func smoothMin(a, b float64, colorA, colorB core.Vec3, k float64) (float64, core.Vec3) {
	if k < minBlendStrength {
		k = minBlendStrength
	}
	h := 0.5 + 0.5*(b-a)/k
	h = max(0, min(1, h))

	dist := b + (a-b)*h - k*h*(1-h)
	color := colorB.Lerp(colorA, h)
	return dist, color
}
