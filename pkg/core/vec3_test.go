package core

import (
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{
			name:     "Add",
			result:   NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)),
			expected: NewVec3(5, 7, 9),
		},
		{
			name:     "Subtract",
			result:   NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)),
			expected: NewVec3(3, 3, 3),
		},
		{
			name:     "Multiply by scalar",
			result:   NewVec3(1, -2, 3).Multiply(2),
			expected: NewVec3(2, -4, 6),
		},
		{
			name:     "MultiplyVec component-wise",
			result:   NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 3, 4)),
			expected: NewVec3(2, 6, 12),
		},
		{
			name:     "Cross of axes",
			result:   NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Negate",
			result:   NewVec3(1, -2, 3).Negate(),
			expected: NewVec3(-1, 2, -3),
		},
		{
			name:     "Clamp",
			result:   NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1),
			expected: NewVec3(0, 0.5, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	result := NewVec3(1, 2, 3).Dot(NewVec3(4, -5, 6))
	expected := 12.0
	if math.Abs(result-expected) > 1e-9 {
		t.Errorf("Expected %f, got %f", expected, result)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	expected := NewVec3(0.6, 0.8, 0)
	if v.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, v)
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero.Length() != 0 {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 0.5, 1.0).GammaCorrect(2.2)

	expected := NewVec3(
		math.Pow(0.25, 1.0/2.2),
		math.Pow(0.5, 1.0/2.2),
		1.0,
	)
	if v.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}
