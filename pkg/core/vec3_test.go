package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length: expected 5, got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("Expected y cross x = -z, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()

	const tolerance = 1e-12
	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Normalized vector should have unit length, got %v", v.Length())
	}

	// Zero vector normalizes to zero rather than dividing by zero
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"At start", 0, NewVec3(0, 0, 0)},
		{"Midpoint", 0.5, NewVec3(1, 2, 3)},
		{"At end", 1, NewVec3(2, 4, 6)},
		{"Clamped below", -1, NewVec3(0, 0, 0)},
		{"Clamped above", 2, NewVec3(2, 4, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if v != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, 1))

	if got := ray.At(0); got != ray.Origin {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
	if got := ray.At(2.5); got != NewVec3(1, 0, 2.5) {
		t.Errorf("Expected (1,0,2.5), got %v", got)
	}
}
