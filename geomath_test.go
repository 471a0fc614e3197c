package coordconv

import (
	"math"
	"testing"
)

func TestSincosdExact(t *testing.T) {
	for _, tc := range []struct {
		x, sin, cos float64
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{-90, -1, 0},
		{360, 0, 1},
		{-720, 0, 1},
		{30, 0.5, math.Sqrt(3) / 2},
	} {
		s, c := sincosd(tc.x)
		if math.Abs(s-tc.sin) > 1e-15 || math.Abs(c-tc.cos) > 1e-15 {
			t.Errorf("sincosd(%v) = %v, %v, expected %v, %v", tc.x, s, c, tc.sin, tc.cos)
		}
	}
	if s, _ := sincosd(180); s != 0 {
		t.Errorf("sin(180) = %v, expected exactly 0", s)
	}
}

func TestAtan2d(t *testing.T) {
	for _, tc := range []struct {
		y, x, want float64
	}{
		{0, 1, 0},
		{1, 0, 90},
		{0, -1, 180},
		{-1, 0, -90},
		{1, 1, 45},
		{-1, -1, -135},
		{1, -1, 135},
	} {
		if got := atan2d(tc.y, tc.x); math.Abs(got-tc.want) > 1e-13 {
			t.Errorf("atan2d(%v, %v) = %v, expected %v", tc.y, tc.x, got, tc.want)
		}
	}
	if got := atand(tand(45)); math.Abs(got-45) > 1e-13 {
		t.Errorf("atand(tand(45)) = %v", got)
	}
}

func TestAngNormalize(t *testing.T) {
	for _, tc := range []struct {
		x, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{540, 180},
		{-540, -180},
		{190, -170},
		{-190, 170},
		{360, 0},
	} {
		if got := angNormalize(tc.x); got != tc.want {
			t.Errorf("angNormalize(%v) = %v, expected %v", tc.x, got, tc.want)
		}
	}
}

func TestAngDiff(t *testing.T) {
	for _, tc := range []struct {
		x, y, want float64
	}{
		{0, 10, 10},
		{10, 0, -10},
		{170, -170, 20},
		{-170, 170, -20},
		{-75, -73.985278, 1.014722},
		{1e9, 1e9 + 1, 1},
	} {
		if got := angDiff(tc.x, tc.y); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("angDiff(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTaufInvertsTaupf(t *testing.T) {
	es := utmProjection.es
	for lat := -89.5; lat <= 89.5; lat += 0.5 {
		tau := tand(lat)
		got := tauf(taupf(tau, es), es)
		if math.Abs(got-tau) > 1e-13*math.Max(1, math.Abs(tau)) {
			t.Fatalf("tauf(taupf(%v)) = %v at latitude %v", tau, got, lat)
		}
	}
}

func TestPolyval(t *testing.T) {
	// 2x^2 + 3x + 4
	if got := polyval([]float64{2, 3, 4}, 2); got != 18 {
		t.Errorf("polyval = %v, expected 18", got)
	}
	if got := polyval(nil, 2); got != 0 {
		t.Errorf("polyval of empty = %v, expected 0", got)
	}
}

func TestProjectionConstructorsValidate(t *testing.T) {
	for _, tc := range []struct {
		name     string
		a, f, k0 float64
	}{
		{"zero axis", 0, flattening, utmScaleFactor},
		{"flattening", semiMajorAxis, 1.0 / 100, utmScaleFactor},
		{"scale", semiMajorAxis, flattening, 0},
	} {
		if _, err := newTransverseMercator(tc.a, tc.f, tc.k0); err == nil {
			t.Errorf("%s: expected transverse Mercator error", tc.name)
		}
		if _, err := newPolarStereographic(tc.a, tc.f, tc.k0); err == nil {
			t.Errorf("%s: expected polar stereographic error", tc.name)
		}
	}
}
