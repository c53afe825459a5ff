package core

import "math"

// Mat4 is a 4x4 transform matrix in row-major order.
// Points and directions are treated as column vectors, so transforms
// compose left to right: m.MulPoint(p) applies m to p.
type Mat4 [4][4]float64

// Identity returns the identity matrix
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// MulPoint applies the transform to a point (homogeneous w = 1).
// The w component of the result is discarded without a perspective divide,
// matching how camera rays treat inverse-projected coordinates.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// MulDirection applies the transform to a direction (homogeneous w = 0),
// so the translation column contributes nothing
func (m Mat4) MulDirection(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// LookAt builds a camera-to-world matrix for a camera at eye looking toward
// target. The camera looks down its local -Z axis, with +X right and +Y up.
func LookAt(eye, target, up Vec3) Mat4 {
	zAxis := eye.Subtract(target).Normalize() // camera -forward
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		{xAxis.X, yAxis.X, zAxis.X, eye.X},
		{xAxis.Y, yAxis.Y, zAxis.Y, eye.Y},
		{xAxis.Z, yAxis.Z, zAxis.Z, eye.Z},
		{0, 0, 0, 1},
	}
}

// InversePerspective builds the inverse of a standard perspective projection
// with vertical field of view vfov (degrees), aspect ratio width/height, and
// near/far clip planes. Applying it to an NDC point (x, y, 0) yields a
// camera-space direction with Z = -1.
func InversePerspective(vfov, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(vfov*math.Pi/180.0/2.0)
	b := 2.0 * far * near / (near - far)
	a := (far + near) / (near - far)

	return Mat4{
		{aspect / f, 0, 0, 0},
		{0, 1 / f, 0, 0},
		{0, 0, 0, -1},
		{0, 0, 1 / b, a / b},
	}
}
