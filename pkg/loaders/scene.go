package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/renderer"
	"github.com/rk31/go-sdf-raymarcher/pkg/scene"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// sceneFile is the on-disk JSON scene format
type sceneFile struct {
	Name   string      `json:"name"`
	Light  []float64   `json:"light"` // Direction the light travels
	Camera cameraFile  `json:"camera"`
	Shapes []shapeFile `json:"shapes"`
}

type cameraFile struct {
	Center []float64 `json:"center"`
	LookAt []float64 `json:"lookAt"`
	Up     []float64 `json:"up"`
	VFov   float64   `json:"vfov"`
}

type shapeFile struct {
	Kind          string    `json:"kind"`
	Blend         string    `json:"blend"`
	BlendStrength float64   `json:"blendStrength"`
	Position      []float64 `json:"position"`
	Scale         []float64 `json:"scale"`
	Rotation      []float64 `json:"rotation"`
	Color         []float64 `json:"color"` // RGB, or RGBA with alpha ignored
}

// LoadScene reads a scene description from a JSON file
func LoadScene(filename string) (*scene.Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseScene(data)
}

// ParseScene parses a JSON scene description
func ParseScene(data []byte) (*scene.Scene, error) {
	var file sceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	light, err := vec3Field(file.Light, "light")
	if err != nil {
		return nil, err
	}
	if light.LengthSquared() == 0 {
		return nil, fmt.Errorf("light direction must be non-zero")
	}

	camera, err := parseCamera(file.Camera)
	if err != nil {
		return nil, err
	}

	shapes := make(sdf.Scene, 0, len(file.Shapes))
	for i, sf := range file.Shapes {
		shape, err := parseShape(sf)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}

	return &scene.Scene{
		Name:           file.Name,
		ShapeList:      shapes,
		Camera:         camera,
		LightDirection: light.Normalize(),
	}, nil
}

func parseCamera(cf cameraFile) (renderer.CameraConfig, error) {
	center, err := vec3Field(cf.Center, "camera.center")
	if err != nil {
		return renderer.CameraConfig{}, err
	}
	lookAt, err := vec3Field(cf.LookAt, "camera.lookAt")
	if err != nil {
		return renderer.CameraConfig{}, err
	}

	up := core.NewVec3(0, 1, 0)
	if len(cf.Up) > 0 {
		if up, err = vec3Field(cf.Up, "camera.up"); err != nil {
			return renderer.CameraConfig{}, err
		}
	}

	vfov := cf.VFov
	if vfov == 0 {
		vfov = 45
	}
	if vfov < 0 || vfov >= 180 {
		return renderer.CameraConfig{}, fmt.Errorf("camera.vfov %v out of range (0, 180)", vfov)
	}

	return renderer.CameraConfig{Center: center, LookAt: lookAt, Up: up, VFov: vfov}, nil
}

func parseShape(sf shapeFile) (sdf.Shape, error) {
	kind, err := sdf.ParseKind(sf.Kind)
	if err != nil {
		return sdf.Shape{}, err
	}
	blend, err := sdf.ParseBlendMode(sf.Blend)
	if err != nil {
		return sdf.Shape{}, err
	}
	if sf.BlendStrength < 0 {
		return sdf.Shape{}, fmt.Errorf("blendStrength must be >= 0, got %v", sf.BlendStrength)
	}

	position, err := vec3Field(sf.Position, "position")
	if err != nil {
		return sdf.Shape{}, err
	}
	scale, err := vec3Field(sf.Scale, "scale")
	if err != nil {
		return sdf.Shape{}, err
	}

	rotation := core.Vec3{}
	if len(sf.Rotation) > 0 {
		if rotation, err = vec3Field(sf.Rotation, "rotation"); err != nil {
			return sdf.Shape{}, err
		}
	}

	color := core.NewVec3(1, 1, 1)
	if len(sf.Color) > 0 {
		// RGBA is accepted for compatibility, alpha plays no part in shading
		if len(sf.Color) != 3 && len(sf.Color) != 4 {
			return sdf.Shape{}, fmt.Errorf("color must have 3 or 4 components, got %d", len(sf.Color))
		}
		color = core.NewVec3(sf.Color[0], sf.Color[1], sf.Color[2])
	}

	return sdf.Shape{
		Kind:          kind,
		Blend:         blend,
		BlendStrength: sf.BlendStrength,
		Position:      position,
		Scale:         scale,
		Rotation:      rotation,
		Color:         color,
	}, nil
}

func vec3Field(values []float64, name string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s must have 3 components, got %d", name, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
