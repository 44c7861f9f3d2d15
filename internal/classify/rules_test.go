package classify

import (
	"testing"

	"github.com/icewatch/icewatch/internal/geo"
	"github.com/icewatch/icewatch/internal/model"
)

func newTestRules(t *testing.T) *Rules {
	t.Helper()
	return NewRules(geo.Static())
}

func TestRules_Relevant(t *testing.T) {
	r := newTestRules(t)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"agency and action", "ICE agents arrested 12 workers at a plant", true},
		{"agency only", "ICE announced a new policy on detention centers", false},
		{"action only", "Troopers arrested a suspect downtown", false},
		{"neither", "The weather was mild on Tuesday", false},
		{"border patrol sweep", "Border Patrol conducted a sweep near the highway", true},
		{"case insensitive", "immigration RAID reported at a factory", true},
		{"ice inside police is not enough without action", "Police responded to a noise complaint", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Relevant(tt.text); got != tt.want {
				t.Errorf("Relevant(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRules_Relevant_SubstringFalsePositive(t *testing.T) {
	r := newTestRules(t)

	// "police" contains "ice" and "raid" is an action term. This matches
	// by design: plain substring checks, no word boundaries.
	if !r.Relevant("Police raid a gambling den") {
		t.Error("Expected substring match through 'police' to be relevant")
	}
}

func TestRules_TypeOf_PriorityOrder(t *testing.T) {
	r := newTestRules(t)

	tests := []struct {
		name string
		text string
		want model.IncidentType
	}{
		{"workplace", "raid at a meatpacking plant", model.TypeWorkplaceRaid},
		{"home", "agents entered an apartment complex", model.TypeHomeArrest},
		{"traffic", "arrested during a traffic stop", model.TypeTrafficStop},
		{"court", "detained after an immigration court hearing", model.TypeCourthouseArrest},
		{"school", "arrest near an elementary school", model.TypeSchoolVicinity},
		{"hospital", "taken into custody at a clinic", model.TypeHospitalClinic},
		{"church", "arrested outside a mosque", model.TypeChurchWorship},
		{"no keyword", "arrested downtown on Tuesday", model.TypeOther},
		// Workplace outranks home when both appear.
		{"workplace beats home", "raid at the business near his home", model.TypeWorkplaceRaid},
		// Home outranks courthouse; note "courthouse" itself contains
		// "house" and so always classifies as Home Arrest.
		{"home beats courthouse", "arrested at the courthouse entrance", model.TypeHomeArrest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.TypeOf(tt.text); got != tt.want {
				t.Errorf("TypeOf(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRules_AffectedCount(t *testing.T) {
	r := newTestRules(t)

	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"people arrested", "15 people were arrested at the plant", 15, true},
		{"bare arrested", "37 arrested in morning operation", 37, true},
		{"arrested approximately", "ICE arrested approximately 40 workers", 40, true},
		{"arrests noun", "the operation led to 22 arrests", 22, true},
		{"undocumented immigrants", "8 undocumented immigrants found in the truck", 8, true},
		{"no count", "several people were arrested", 0, false},
		{"zero rejected", "0 people were arrested", 0, false},
		{"over ceiling rejected", "99999 arrested in nationwide operation", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.AffectedCount(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("AffectedCount(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("AffectedCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestRules_AffectedCount_BoundFailureTriesNextPattern(t *testing.T) {
	r := newTestRules(t)

	// First pattern matches "99999 people were arrested" but fails the
	// ceiling; the "N arrests" pattern must still get its chance.
	text := "99999 people were arrested, officials confirmed 12 arrests"
	got, ok := r.AffectedCount(text)
	if !ok {
		t.Fatal("Expected a count from a later pattern")
	}
	if got != 12 {
		t.Errorf("Expected 12 from later pattern, got %d", got)
	}
}

func TestRules_Location_City(t *testing.T) {
	r := newTestRules(t)

	loc := r.Location("ICE raid reported in Chicago this morning")
	if loc.City != "Chicago" {
		t.Errorf("Expected city Chicago, got %q", loc.City)
	}
	if loc.State != "IL" {
		t.Errorf("Expected state IL, got %q", loc.State)
	}
	if loc.Lat == nil || loc.Lng == nil {
		t.Fatal("Expected coordinates for a city match")
	}
	if *loc.Lat < 41 || *loc.Lat > 43 {
		t.Errorf("Chicago latitude out of range: %f", *loc.Lat)
	}
}

func TestRules_Location_StateOnly(t *testing.T) {
	r := newTestRules(t)

	loc := r.Location("enforcement operation somewhere in Montana")
	if loc.City != "" {
		t.Errorf("Expected no city, got %q", loc.City)
	}
	if loc.State != "MT" {
		t.Errorf("Expected state MT, got %q", loc.State)
	}
	if loc.Lat != nil || loc.Lng != nil {
		t.Error("Expected no coordinates for a state-only match")
	}
}

func TestRules_Location_NoMatch(t *testing.T) {
	r := newTestRules(t)

	loc := r.Location("arrests reported at an undisclosed location")
	if loc.City != "" || loc.State != "" || loc.Lat != nil {
		t.Errorf("Expected empty location, got %+v", loc)
	}
}

func TestRules_Location_FirstCityWins(t *testing.T) {
	r := newTestRules(t)

	// Two known cities in one text: the earlier gazetteer entry wins,
	// regardless of position in the text.
	loc := r.Location("raids hit Houston and New York today")
	if loc.City == "" {
		t.Fatal("Expected a city match")
	}
	loc2 := r.Location("raids hit New York and Houston today")
	if loc.City != loc2.City {
		t.Errorf("Match should not depend on text order: %q vs %q", loc.City, loc2.City)
	}
}
