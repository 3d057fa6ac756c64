// Package material provides shear-modulus presets for common spring wire
// materials.
package material

import "sort"

// Material is a named spring wire material with its typical shear modulus.
type Material struct {
	Name            string
	Description     string
	ShearModulusGPa float64
}

// Typical room-temperature values from spring design handbooks.
var presets = map[string]Material{
	"music-wire": {
		Name: "music-wire", Description: "ASTM A228 high-carbon steel", ShearModulusGPa: 79.3,
	},
	"hard-drawn": {
		Name: "hard-drawn", Description: "ASTM A227 hard-drawn carbon steel", ShearModulusGPa: 79.3,
	},
	"oil-tempered": {
		Name: "oil-tempered", Description: "ASTM A229 oil-tempered carbon steel", ShearModulusGPa: 77.2,
	},
	"chrome-silicon": {
		Name: "chrome-silicon", Description: "ASTM A401 chrome-silicon alloy", ShearModulusGPa: 77.2,
	},
	"chrome-vanadium": {
		Name: "chrome-vanadium", Description: "ASTM A232 chrome-vanadium alloy", ShearModulusGPa: 77.2,
	},
	"stainless-302": {
		Name: "stainless-302", Description: "ASTM A313 type 302 stainless", ShearModulusGPa: 69.0,
	},
	"phosphor-bronze": {
		Name: "phosphor-bronze", Description: "ASTM B159 phosphor bronze", ShearModulusGPa: 41.4,
	},
	"beryllium-copper": {
		Name: "beryllium-copper", Description: "ASTM B197 beryllium copper", ShearModulusGPa: 48.3,
	},
	"inconel-x750": {
		Name: "inconel-x750", Description: "Inconel X-750 nickel alloy", ShearModulusGPa: 79.3,
	},
}

// Get looks up a preset by name.
func Get(name string) (Material, bool) {
	m, ok := presets[name]
	return m, ok
}

// List returns all presets sorted by name.
func List() []Material {
	out := make([]Material, 0, len(presets))
	for _, m := range presets {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
