// Package units owns the boundary between user-facing units (millimeters,
// gigapascals) and the SI base units the physics works in, plus display
// formatting of results.
package units

import "github.com/dustin/go-humanize"

// Placeholder is rendered where no force was requested.
const Placeholder = "– –"

func MillimetersToMeters(mm float64) float64 { return mm / 1e3 }

func MetersToMillimeters(m float64) float64 { return m * 1e3 }

func GigapascalsToPascals(gpa float64) float64 { return gpa * 1e9 }

func PascalsToGigapascals(pa float64) float64 { return pa / 1e9 }

// FormatRate renders a spring rate with thousands separators and two
// decimals, e.g. "1,925,000.00 N/m".
func FormatRate(k float64) string {
	return humanize.FormatFloat("#,###.##", k) + " N/m"
}

// FormatForce renders a force the same way, e.g. "9,625.00 N".
func FormatForce(f float64) string {
	return humanize.FormatFloat("#,###.##", f) + " N"
}
