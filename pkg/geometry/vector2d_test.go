package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})
}

func TestVector_Trunc(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want Vector2D
	}{
		{"Positive", Vector2D{4.9, 2.1}, Vector2D{4, 2}},
		{"Negative rounds toward zero", Vector2D{-4.9, -0.5}, Vector2D{-4, 0}},
		{"Integral", Vector2D{3, -3}, Vector2D{3, -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Trunc(); !got.Eq(tt.want) {
				t.Errorf("%v.Trunc() = %v; want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		zero := Vector2D{0, 0}
		got := zero.Normalize()
		if !got.Eq(zero) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
	})
}

func TestVector_ClampLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want Vector2D
	}{
		{"Below limit untouched", Vector2D{3, 0}, 5, Vector2D{3, 0}},
		{"At limit untouched", Vector2D{3, 4}, 5, Vector2D{3, 4}},
		{"Above limit rescaled", Vector2D{6, 8}, 5, Vector2D{3, 4}},
		{"Zero stays zero", Vector2D{0, 0}, 5, Vector2D{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLen(tt.max)
			if !got.Eq(tt.want) {
				t.Errorf("%v.ClampLen(%v) = %v; want %v", tt.v, tt.max, got, tt.want)
			}
			if got.Len() > tt.max+Epsilon {
				t.Errorf("ClampLen length = %v; want <= %v", got.Len(), tt.max)
			}
		})
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}

	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Angles(t *testing.T) {
	t.Run("Angle", func(t *testing.T) {
		tests := []struct {
			v    Vector2D
			want float64
		}{
			{Vector2D{1, 0}, 0},
			{Vector2D{0, 1}, math.Pi / 2},
			{Vector2D{-1, 0}, math.Pi}, // math.Atan2 returns Pi for (-1, 0)
			{Vector2D{0, -1}, -math.Pi / 2},
		}
		for _, tt := range tests {
			if got := tt.v.Angle(); !floatEquals(got, tt.want) {
				t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
			}
		}
	})

	t.Run("Heading", func(t *testing.T) {
		// Moving right means the "up" sprite is turned a quarter clockwise.
		if got := (Vector2D{1, 0}).Heading(); !floatEquals(got, math.Pi/2) {
			t.Errorf("Heading(1,0) = %v; want %v", got, math.Pi/2)
		}
		if got := (Vector2D{0, -1}).Heading(); !floatEquals(got, 0) {
			t.Errorf("Heading(0,-1) = %v; want 0", got)
		}
	})
}

func TestVector_Rotate(t *testing.T) {
	v := Vector2D{1, 0}
	got := v.Rotate(math.Pi / 2)
	want := Vector2D{0, 1}
	if !got.Eq(want) {
		t.Errorf("Rotate(90) = %v; want %v", got, want)
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		points []Vector2D
		want   Vector2D
	}{
		{"Empty", nil, Vector2D{0, 0}},
		{"Single", []Vector2D{{7, -3}}, Vector2D{7, -3}},
		{"Pair", []Vector2D{{0, 0}, {50, 0}}, Vector2D{25, 0}},
		{"Triangle", []Vector2D{{0, 0}, {3, 0}, {0, 3}}, Vector2D{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.points...); !got.Eq(tt.want) {
				t.Errorf("Mean(%v) = %v; want %v", tt.points, got, tt.want)
			}
		})
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	vDiff := Vector2D{1.1, 2}
	if v.Eq(vDiff) {
		t.Error("Eq mismatch failed")
	}
}
