package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"start", 0.0, 0.0},
		{"middle", 0.5, 0.875},
		{"end", 1.0, 1.0},
		{"below zero clamps", -1, 0},
		{"above one clamps", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}

	// 开始快于线性
	for p := 0.1; p < 0.5; p += 0.1 {
		if EaseOutCubic(p) <= p {
			t.Errorf("EaseOutCubic(%v) 应该大于线性值", p)
		}
	}
}

func TestEaseInOutSine(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseInOutSine(tt.input); math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("EaseInOutSine(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}

func TestPingPong(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float64
		period   float64
		expected float64
	}{
		{"start", 0, 2, 0},
		{"quarter period", 0.5, 2, 0.5},
		{"half period peaks", 1, 2, 1},
		{"falls back", 1.5, 2, 0.5},
		{"next period", 2.5, 2, 0.5},
		{"invalid period", 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PingPong(tt.elapsed, tt.period); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("PingPong(%v, %v) = %v, 期望 %v", tt.elapsed, tt.period, got, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
	if got := Lerp(5, -5, 1); got != -5 {
		t.Errorf("Lerp(5, -5, 1) = %v, 期望 -5", got)
	}
}
