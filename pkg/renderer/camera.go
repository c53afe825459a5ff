package renderer

import (
	"github.com/rk31/go-sdf-raymarcher/pkg/core"
)

// Near/far clip planes for the projection matrix. Sphere tracing has no depth
// buffer, so these only shape the inverse projection.
const (
	nearClip = 0.1
	farClip  = 100.0
)

// CameraConfig holds camera parameters for matrix construction
type CameraConfig struct {
	Center core.Vec3 // Camera position in world space
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // World up vector
	VFov   float64   // Vertical field of view in degrees
}

// Camera converts pixel coordinates to world-space rays using a
// camera-to-world matrix and an inverse projection matrix
type Camera struct {
	cameraToWorld     core.Mat4
	inverseProjection core.Mat4
	width             int
	height            int
}

// NewCamera builds the camera transform matrices from a config
func NewCamera(config CameraConfig, width, height int) *Camera {
	aspect := float64(width) / float64(height)
	return &Camera{
		cameraToWorld:     core.LookAt(config.Center, config.LookAt, config.Up),
		inverseProjection: core.InversePerspective(config.VFov, aspect, nearClip, farClip),
		width:             width,
		height:            height,
	}
}

// NewCameraFromMatrices wraps externally supplied transform matrices
func NewCameraFromMatrices(cameraToWorld, inverseProjection core.Mat4, width, height int) *Camera {
	return &Camera{
		cameraToWorld:     cameraToWorld,
		inverseProjection: inverseProjection,
		width:             width,
		height:            height,
	}
}

// GetRay generates the world-space ray for pixel (i, j). The pixel coordinate
// is normalized to [-1,1] device coordinates; image rows grow downward, so the
// vertical axis flips.
func (c *Camera) GetRay(i, j int) core.Ray {
	ndcX := 2*float64(i)/float64(c.width) - 1
	ndcY := 1 - 2*float64(j)/float64(c.height)

	origin := c.cameraToWorld.MulPoint(core.NewVec3(0, 0, 0))

	direction := c.inverseProjection.MulPoint(core.NewVec3(ndcX, ndcY, 0))
	direction = c.cameraToWorld.MulDirection(direction).Normalize()

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.cameraToWorld.MulDirection(core.NewVec3(0, 0, -1)).Normalize()
}
