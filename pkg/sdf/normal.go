package sdf

import (
	"github.com/rk31/go-sdf-raymarcher/pkg/core"
)

// EstimateNormal approximates the surface normal at point by central finite
// differences of the scene distance along each axis, six Evaluate calls in
// total. If the raw gradient is degenerate (surface flatter than Epsilon in
// every direction) it falls back to world up rather than dividing by zero.
func (s Scene) EstimateNormal(point core.Vec3) core.Vec3 {
	_, dxPlus := s.Evaluate(point.Add(core.NewVec3(Epsilon, 0, 0)))
	_, dxMinus := s.Evaluate(point.Subtract(core.NewVec3(Epsilon, 0, 0)))
	_, dyPlus := s.Evaluate(point.Add(core.NewVec3(0, Epsilon, 0)))
	_, dyMinus := s.Evaluate(point.Subtract(core.NewVec3(0, Epsilon, 0)))
	_, dzPlus := s.Evaluate(point.Add(core.NewVec3(0, 0, Epsilon)))
	_, dzMinus := s.Evaluate(point.Subtract(core.NewVec3(0, 0, Epsilon)))

	normal := core.NewVec3(dxPlus-dxMinus, dyPlus-dyMinus, dzPlus-dzMinus)
	if normal.LengthSquared() < 1e-24 {
		return core.NewVec3(0, 1, 0)
	}
	return normal.Normalize()
}
