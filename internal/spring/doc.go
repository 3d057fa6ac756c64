// Package spring computes the mechanical rate and force of helical
// compression coil springs.
//
// All functions are pure and operate on SI base units (meters, pascals,
// newtons). Unit conversion from user-facing millimeters and gigapascals
// belongs to the calling boundary, keeping the physics testable on its own:
//
//	k, err := spring.Rate(spring.Specification{
//	    WireDiameter:  0.002,
//	    InnerDiameter: 0.018,
//	    ActiveCoils:   10,
//	    ShearModulus:  77e9,
//	})
//
// The rate follows k = G*d^4 / (8*Dm^3*n) with Dm = ID + d; force is
// Hooke's law F = k*delta. This is not a stress or fatigue analysis
// package: no buckling or safety-factor computation is performed.
package spring
