package utils

import "testing"

func TestCalculateDistance_IdenticalPoints(t *testing.T) {
	if d := CalculateDistance(51.5, -0.12, 51.5, -0.12); d != 0 {
		t.Fatalf("distance between identical points = %v; want 0", d)
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := CalculateDistance(48.8566, 2.3522, 41.9028, 12.4964)
	b := CalculateDistance(41.9028, 12.4964, 48.8566, 2.3522)
	if a != b {
		t.Fatalf("d(A,B)=%v d(B,A)=%v; want equal", a, b)
	}
}

func TestCalculateDistance_OneDegreeLongitudeAtEquator(t *testing.T) {
	d := CalculateDistance(0, 0, 0, 1)
	if d < 111.18 || d > 111.20 {
		t.Fatalf("distance (0,0)-(0,1) = %v; want ~111.19", d)
	}
}

func TestCalculateDistance_RoundedToTwoDecimals(t *testing.T) {
	d := CalculateDistance(52.5200, 13.4050, 48.1351, 11.5820)
	if d != Round2(d) {
		t.Fatalf("distance %v not rounded to 2 decimals", d)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{3.14159, 3.14},
		{2.718, 2.72},
		{25, 25},
		{-1.2345, -1.23},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
