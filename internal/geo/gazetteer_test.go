package geo

import "testing"

func TestStatic_LookupCity(t *testing.T) {
	g := Static()

	c, ok := g.LookupCity("Chicago")
	if !ok {
		t.Fatal("Expected to find Chicago")
	}
	if c.State != "IL" {
		t.Errorf("Expected state IL, got %q", c.State)
	}
	if c.Lat == 0 || c.Lng == 0 {
		t.Error("Expected non-zero coordinates")
	}

	if _, ok := g.LookupCity("Atlantis"); ok {
		t.Error("Expected Atlantis to be absent")
	}
}

func TestStatic_LookupStateCode(t *testing.T) {
	g := Static()

	code, ok := g.LookupStateCode("montana")
	if !ok || code != "MT" {
		t.Errorf("Expected MT, got %q (ok=%v)", code, ok)
	}

	code, ok = g.LookupStateCode("  District of Columbia ")
	if !ok || code != "DC" {
		t.Errorf("Expected DC, got %q (ok=%v)", code, ok)
	}
}

func TestStatic_CityOrderPreserved(t *testing.T) {
	g := Static()
	cities := g.Cities()

	if len(cities) < 100 {
		t.Fatalf("Expected a large city table, got %d entries", len(cities))
	}
	if cities[0].Key != "new york" {
		t.Errorf("Expected first entry to be new york, got %q", cities[0].Key)
	}

	// "columbus" must precede "columbus ga": the classifier scan stops at
	// the first substring hit and order decides which one shadows which.
	plain, qualified := -1, -1
	for i, c := range cities {
		switch c.Key {
		case "columbus":
			plain = i
		case "columbus ga":
			qualified = i
		}
	}
	if plain == -1 || qualified == -1 {
		t.Fatal("Expected both columbus entries in the table")
	}
	if plain > qualified {
		t.Errorf("Expected columbus (%d) before columbus ga (%d)", plain, qualified)
	}
}

func TestStatic_StateTableComplete(t *testing.T) {
	g := Static()
	if got := len(g.States()); got != 51 {
		t.Errorf("Expected 51 state entries, got %d", got)
	}
}
