package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(-1, 2.5, 7)},
		{"Subtract", a.Subtract(b), NewVec3(3, 1.5, -1)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(-2, 1, 12)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Splat", Splat(0.3), NewVec3(0.3, 0.3, 0.3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.NearlyEqual(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_AddIsCommutativeAndAssociative(t *testing.T) {
	a := NewVec3(0.1, 0.7, 2)
	b := NewVec3(5, 0.25, 0.5)
	c := NewVec3(1, 1, 3)

	if a.Add(b) != b.Add(a) {
		t.Errorf("Add is not commutative: %v vs %v", a.Add(b), b.Add(a))
	}
	if !a.Add(b).Add(c).NearlyEqual(a.Add(b.Add(c)), 1e-12) {
		t.Errorf("Add is not associative: %v vs %v", a.Add(b).Add(c), a.Add(b.Add(c)))
	}
}

func TestVec3_Dot(t *testing.T) {
	if got := NewVec3(1, 2, 3).Dot(NewVec3(4, -5, 6)); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := NewVec3(1, 0, 0).Dot(NewVec3(0, 1, 0)); got != 0 {
		t.Errorf("Expected orthogonal vectors to have dot 0, got %f", got)
	}
}

func TestVec3_Unit(t *testing.T) {
	v, err := NewVec3(0, 3, 4).Unit()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !v.NearlyEqual(NewVec3(0, 0.6, 0.8), 1e-12) {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", v)
	}

	_, err = NewVec3(0, 0, 0).Unit()
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector for zero vector, got %v", err)
	}
}

func TestVec3_LowerThan(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"all below", NewVec3(0.0001, 0.0002, 0), true},
		{"one channel above", NewVec3(0.0001, 0.5, 0), false},
		{"equal to threshold", Splat(0.001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.LowerThan(0.001); got != tt.expected {
				t.Errorf("LowerThan(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-0.5, 0.5, 3).Clamp(0, 1)
	if got != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0, 0.5, 1), got %v", got)
	}
}

func TestAlignZero(t *testing.T) {
	if AlignZero(1e-12) != 0 {
		t.Errorf("Expected tiny value to snap to zero")
	}
	if AlignZero(-1e-12) != 0 {
		t.Errorf("Expected tiny negative value to snap to zero")
	}
	if AlignZero(0.5) != 0.5 {
		t.Errorf("Expected 0.5 to stay unchanged")
	}
}
