package sdf

import (
	"fmt"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
)

// Kind identifies the analytic distance function of a shape
type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindTorus
)

// BlendMode determines how a shape combines with the shapes before it
type BlendMode int

const (
	BlendUnion BlendMode = iota
	BlendSmooth
	BlendSubtract
	BlendMask
)

// Shape is one implicit primitive in a scene. Shapes are immutable for the
// duration of a frame; the renderer only ever reads them.
type Shape struct {
	Kind          Kind
	Blend         BlendMode
	BlendStrength float64   // Smoothing radius for BlendSmooth, >= 0
	Position      core.Vec3 // Center, world space
	Scale         core.Vec3 // Meaning depends on Kind (radius, half-extents, (major,minor))
	Rotation      core.Vec3 // Parsed and stored but not applied by distance evaluation
	Color         core.Vec3 // RGB in [0,1]
}

// String returns the shape kind name
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindTorus:
		return "torus"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// String returns the blend mode name
func (b BlendMode) String() string {
	switch b {
	case BlendUnion:
		return "union"
	case BlendSmooth:
		return "smooth"
	case BlendSubtract:
		return "subtract"
	case BlendMask:
		return "mask"
	}
	return fmt.Sprintf("blend(%d)", int(b))
}

// ParseKind converts a shape kind name to its Kind value
func ParseKind(name string) (Kind, error) {
	switch name {
	case "sphere":
		return KindSphere, nil
	case "box":
		return KindBox, nil
	case "torus":
		return KindTorus, nil
	}
	return 0, fmt.Errorf("unknown shape kind %q", name)
}

// ParseBlendMode converts a blend mode name to its BlendMode value
func ParseBlendMode(name string) (BlendMode, error) {
	switch name {
	case "union", "":
		return BlendUnion, nil
	case "smooth":
		return BlendSmooth, nil
	case "subtract":
		return BlendSubtract, nil
	case "mask":
		return BlendMask, nil
	}
	return 0, fmt.Errorf("unknown blend mode %q", name)
}
