// internal/utils/math_test.go
package utils

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Run("нулевой вектор остаётся нулевым", func(t *testing.T) {
		x, y := Normalize(0, 0)
		if x != 0 || y != 0 {
			t.Errorf("want (0, 0), got (%v, %v)", x, y)
		}
	})

	t.Run("единичная длина", func(t *testing.T) {
		x, y := Normalize(3, 4)
		if math.Abs(math.Hypot(x, y)-1) > 1e-9 {
			t.Errorf("normalized vector must have length 1, got %v", math.Hypot(x, y))
		}
		if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
			t.Errorf("want (0.6, 0.8), got (%v, %v)", x, y)
		}
	})
}

func TestDist(t *testing.T) {
	if d := Dist(0, 0, 3, 4); d != 5 {
		t.Errorf("want 5, got %v", d)
	}
}

func TestLerp(t *testing.T) {
	if v := Lerp(0, 10, 0.5); v != 5 {
		t.Errorf("want 5, got %v", v)
	}
	if v := Lerp(2, 4, 0); v != 2 {
		t.Errorf("want start value at t=0, got %v", v)
	}
}
