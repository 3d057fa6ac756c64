package material

import (
	"sort"
	"testing"
)

func TestGet(t *testing.T) {
	m, ok := Get("music-wire")
	if !ok {
		t.Fatal("expected music-wire preset")
	}
	if m.ShearModulusGPa != 79.3 {
		t.Errorf("expected 79.3 GPa, got %g", m.ShearModulusGPa)
	}
}

func TestGet_NotFound(t *testing.T) {
	if _, ok := Get("unobtainium"); ok {
		t.Error("expected miss for unknown material")
	}
}

func TestList(t *testing.T) {
	mats := List()
	if len(mats) == 0 {
		t.Fatal("expected presets")
	}

	names := make([]string, len(mats))
	for i, m := range mats {
		names[i] = m.Name
		if m.ShearModulusGPa <= 0 {
			t.Errorf("%s: shear modulus should be positive, got %g", m.Name, m.ShearModulusGPa)
		}
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("list should be sorted by name, got %v", names)
	}
}
