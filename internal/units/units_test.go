package units

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	if m := MillimetersToMeters(2.0); m != 0.002 {
		t.Errorf("2 mm should be 0.002 m, got %f", m)
	}
	if mm := MetersToMillimeters(0.005); mm != 5.0 {
		t.Errorf("0.005 m should be 5 mm, got %f", mm)
	}
	if pa := GigapascalsToPascals(77); pa != 77e9 {
		t.Errorf("77 GPa should be 77e9 Pa, got %g", pa)
	}
	if gpa := PascalsToGigapascals(77e9); gpa != 77 {
		t.Errorf("77e9 Pa should be 77 GPa, got %g", gpa)
	}
}

func TestConversions_RoundTrip(t *testing.T) {
	for _, v := range []float64{0.1, 1, 18, 2500} {
		if got := MetersToMillimeters(MillimetersToMeters(v)); math.Abs(got-v) > 1e-12 {
			t.Errorf("mm round trip for %g: got %g", v, got)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1925000, "1,925,000.00 N/m"},
		{12.5, "12.50 N/m"},
		{0, "0.00 N/m"},
	}
	for _, tt := range tests {
		if got := FormatRate(tt.value); got != tt.want {
			t.Errorf("FormatRate(%g) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatForce(t *testing.T) {
	if got := FormatForce(9625); got != "9,625.00 N" {
		t.Errorf("FormatForce(9625) = %q", got)
	}
}
