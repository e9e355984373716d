package utils

import (
	"math"
	"testing"
)

func TestEasing(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		input    float64
		expected float64
	}{
		{"线性起点", EaseLinear, 0.0, 0.0},
		{"线性中点", EaseLinear, 0.5, 0.5},
		{"二次缓出起点", EaseOutQuad, 0.0, 0.0},
		{"二次缓出中点", EaseOutQuad, 0.5, 0.75},
		{"二次缓出终点", EaseOutQuad, 1.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0, 50, 0, 0},
		{"终点", 0, 50, 1, 50},
		{"反向中点", 50, 0, 0.5, 25},
		{"分数索引", 5, 6, 0.25, 5.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		input, expected float64
	}{
		{-1, 0}, {0, 0}, {0.3, 0.3}, {1, 1}, {2.5, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}
