package catalog

import (
	"sort"
	"testing"
)

func TestDefault_KnownLookups(t *testing.T) {
	c := Default()

	if mod, ok := c.OriginModifier("ethiopia"); !ok || mod != -1.5 {
		t.Errorf("ethiopia = (%v, %v), want (-1.5, true)", mod, ok)
	}
	if mod, ok := c.VarietalModifier("geisha"); !ok || mod != -1.5 {
		t.Errorf("geisha = (%v, %v), want (-1.5, true)", mod, ok)
	}
	if mod, ok := c.BlendModifier("classic-italian"); !ok || mod != 1.5 {
		t.Errorf("classic-italian = (%v, %v), want (1.5, true)", mod, ok)
	}
}

func TestDefault_MissingIDsReportNotFound(t *testing.T) {
	c := Default()
	if mod, ok := c.OriginModifier("mars"); ok || mod != 0 {
		t.Errorf("missing origin = (%v, %v), want (0, false)", mod, ok)
	}
	if _, ok := c.VarietalModifier(""); ok {
		t.Error("empty varietal id resolved")
	}
	if _, ok := c.BlendModifier("nope"); ok {
		t.Error("missing blend id resolved")
	}
}

func TestListings_SortedAndComplete(t *testing.T) {
	c := Default()

	origins := c.Origins()
	if len(origins) == 0 {
		t.Fatal("no origins")
	}
	if !sort.SliceIsSorted(origins, func(i, j int) bool { return origins[i].ID < origins[j].ID }) {
		t.Error("origins not sorted by id")
	}
	for _, o := range origins {
		if o.ID == "" || o.Name == "" || o.Characteristics == "" {
			t.Errorf("incomplete origin: %+v", o)
		}
	}

	if len(c.Varietals()) == 0 || len(c.Blends()) == 0 {
		t.Error("varietals and blends must not be empty")
	}
}

func TestEquipmentPresets_StructurallyValid(t *testing.T) {
	for _, g := range Grinders() {
		if g.Grinder.EspressoRangeMin >= g.Grinder.EspressoRangeMax {
			t.Errorf("%s: espresso range [%v,%v] invalid", g.ID, g.Grinder.EspressoRangeMin, g.Grinder.EspressoRangeMax)
		}
	}
	for _, b := range Baskets() {
		if b.Basket.CapacityMinG > b.Basket.CapacityMaxG {
			t.Errorf("%s: capacity range [%v,%v] invalid", b.ID, b.Basket.CapacityMinG, b.Basket.CapacityMaxG)
		}
		if b.Basket.DiameterMM <= 0 {
			t.Errorf("%s: missing diameter", b.ID)
		}
	}
	for _, m := range Machines() {
		if m.ID == "" || m.Name == "" {
			t.Errorf("machine preset missing id/name: %+v", m)
		}
	}
}
