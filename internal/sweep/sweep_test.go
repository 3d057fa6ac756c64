package sweep

import (
	"math"
	"testing"

	"github.com/pkiran/springcalc/internal/spring"
)

func baseSpec() spring.Specification {
	return spring.Specification{
		WireDiameter:  0.002,
		InnerDiameter: 0.018,
		ActiveCoils:   10,
		ShearModulus:  77e9,
	}
}

func TestRun_WireSweepIsIncreasing(t *testing.T) {
	// k ~ d^4 / (ID+d)^3 grows with d over any positive range.
	points, err := Run(baseSpec(), ParamWire, 0.001, 0.004, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Rate <= points[i-1].Rate {
			t.Errorf("rate should increase with wire diameter: %v then %v", points[i-1], points[i])
		}
	}
}

func TestRun_CoilsSweepIsDecreasing(t *testing.T) {
	points, err := Run(baseSpec(), ParamCoils, 2, 20, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Rate >= points[i-1].Rate {
			t.Errorf("rate should decrease with more coils: %v then %v", points[i-1], points[i])
		}
	}
}

func TestRun_SkipsInvalidSamples(t *testing.T) {
	// First sample has d = 0, which the physics rejects.
	points, err := Run(baseSpec(), ParamWire, 0, 0.003, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Errorf("expected the d=0 sample skipped, got %d points", len(points))
	}
}

func TestRun_BadRequests(t *testing.T) {
	if _, err := Run(baseSpec(), ParamWire, 0.001, 0.004, 1); err == nil {
		t.Error("expected error for a single step")
	}
	if _, err := Run(baseSpec(), ParamWire, 0.004, 0.001, 5); err == nil {
		t.Error("expected error for a decreasing range")
	}
	if _, err := Run(baseSpec(), Param("pitch"), 0.001, 0.004, 5); err == nil {
		t.Error("expected error for unknown parameter")
	}
	if _, err := Run(baseSpec(), ParamWire, -0.005, -0.001, 5); err == nil {
		t.Error("expected error when no sample is computable")
	}
}

func TestRun_EndpointsIncluded(t *testing.T) {
	points, err := Run(baseSpec(), ParamInner, 0.010, 0.030, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, last := points[0].Value, points[len(points)-1].Value
	if math.Abs(first-0.010) > 1e-12 || math.Abs(last-0.030) > 1e-12 {
		t.Errorf("expected inclusive endpoints, got %v .. %v", first, last)
	}
}
