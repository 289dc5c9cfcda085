package utils

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestGetDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     f64.Vec2
		expected float64
	}{
		{"same point", f64.Vec2{3, 4}, f64.Vec2{3, 4}, 0},
		{"horizontal", f64.Vec2{0, 0}, f64.Vec2{40, 0}, 40},
		{"vertical", f64.Vec2{0, 10}, f64.Vec2{0, -10}, 20},
		{"3-4-5", f64.Vec2{0, 0}, f64.Vec2{3, 4}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.expected {
				t.Errorf("Distance() = %v, expected %v", got, tc.expected)
			}
			if got := Distance(tc.b, tc.a); got != tc.expected {
				t.Errorf("Distance() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   f64.Vec2
	}{
		{"axis", f64.Vec2{0, -3}},
		{"diagonal", f64.Vec2{-1, 1}},
		{"arbitrary", f64.Vec2{3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := Normalize(tc.in)
			if l := math.Hypot(n[0], n[1]); math.Abs(l-1) > 1e-12 {
				t.Errorf("len(Normalize(%v)) = %v, expected 1", tc.in, l)
			}
			// 方向不变
			if math.Signbit(n[0]) != math.Signbit(tc.in[0]) || math.Signbit(n[1]) != math.Signbit(tc.in[1]) {
				t.Errorf("Normalize(%v) = %v changed direction", tc.in, n)
			}
		})
	}

	if n := Normalize(f64.Vec2{}); n != (f64.Vec2{}) {
		t.Errorf("Normalize(zero) = %v, expected zero", n)
	}
}

func TestAdd(t *testing.T) {
	got := Add(f64.Vec2{1, 2}, f64.Vec2{0, -1}, 10)
	if got != (f64.Vec2{1, -8}) {
		t.Errorf("Add() = %v, expected [1 -8]", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.v, tc.min, tc.max, got, tc.expected)
		}
	}
}
