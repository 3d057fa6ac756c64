package spring

// Specification describes a helical compression coil spring in SI base units.
type Specification struct {
	WireDiameter  float64 // d, meters
	InnerDiameter float64 // ID, meters
	ActiveCoils   float64 // n, dimensionless
	ShearModulus  float64 // G, pascals
}

// MeanDiameter is the coil diameter measured through the wire's center.
func (s Specification) MeanDiameter() float64 {
	return s.InnerDiameter + s.WireDiameter
}

// Deflection is an optional compression distance. Valid distinguishes
// "no force requested" from a requested deflection of zero.
type Deflection struct {
	Meters float64
	Valid  bool
}

// DeflectionOf returns a requested deflection of m meters.
func DeflectionOf(m float64) Deflection {
	return Deflection{Meters: m, Valid: true}
}

// Result holds the outcome of a single computation.
type Result struct {
	Rate     float64 // k, N/m
	Force    float64 // F, N; meaningful only when HasForce
	HasForce bool
}

// Rate computes the spring rate k in N/m:
//
//	k = (G * d^4) / (8 * Dm^3 * n)
func Rate(s Specification) (float64, error) {
	if s.WireDiameter <= 0 {
		return 0, &InputError{Field: "wire diameter", Value: s.WireDiameter, Wrapped: ErrWireDiameter}
	}
	if s.ActiveCoils <= 0 {
		return 0, &InputError{Field: "active coils", Value: s.ActiveCoils, Wrapped: ErrActiveCoils}
	}
	dm := s.MeanDiameter()
	if dm <= 0 {
		return 0, &InputError{Field: "mean diameter", Value: dm, Wrapped: ErrMeanDiameter}
	}
	d := s.WireDiameter
	return (s.ShearModulus * d * d * d * d) / (8.0 * dm * dm * dm * s.ActiveCoils), nil
}

// Force applies Hooke's law F = k * delta. No validation: a zero
// deflection yields zero force.
func Force(rate, deflection float64) float64 {
	return rate * deflection
}

// Compute evaluates the rate and, when a deflection was requested, the
// resulting force. A requested deflection of zero still reports
// HasForce false so callers render a placeholder rather than 0 N.
func Compute(s Specification, defl Deflection) (Result, error) {
	k, err := Rate(s)
	if err != nil {
		return Result{}, err
	}
	res := Result{Rate: k}
	if defl.Valid && defl.Meters != 0 {
		res.Force = Force(k, defl.Meters)
		res.HasForce = true
	}
	return res, nil
}

// ValidateGeometry checks raw user-facing values (any consistent units)
// before conversion, the way the command-line boundary does. It keeps the
// legacy d >= ID + d guard, which only ever fires at ID == 0.
func ValidateGeometry(d, id, n, g float64) error {
	if d <= 0 {
		return &InputError{Field: "wire diameter", Value: d, Wrapped: ErrWireDiameter}
	}
	if id < 0 {
		return &InputError{Field: "inner diameter", Value: id, Wrapped: ErrInnerDiameter}
	}
	if n <= 0 {
		return &InputError{Field: "active coils", Value: n, Wrapped: ErrActiveCoils}
	}
	if g <= 0 {
		return &InputError{Field: "shear modulus", Value: g, Wrapped: ErrShearModulus}
	}
	if d >= id+d {
		return &InputError{Field: "wire diameter", Value: d, Wrapped: ErrWireBound}
	}
	return nil
}
