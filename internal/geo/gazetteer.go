// Package geo provides the static gazetteer the classifier resolves place
// names against. It is a data collaborator: lookups only, no pipeline logic.
package geo

import "strings"

// City is one gazetteer entry. Key is the lowercase form free text is
// matched against; Name is the display form stored on incidents.
type City struct {
	Key   string
	Name  string
	State string
	Lat   float64
	Lng   float64
}

// State maps a full lowercase state name to its two-letter code.
type State struct {
	Name string
	Code string
}

// Gazetteer resolves place names. Cities and States expose the underlying
// tables because the classifier scans them as ordered lists: iteration
// order is the table's insertion order, and the first substring match wins,
// so entry order is significant ("columbus" shadows "columbus ga").
type Gazetteer interface {
	Cities() []City
	States() []State
	LookupCity(name string) (City, bool)
	LookupStateCode(name string) (string, bool)
}

type static struct {
	cities []City
	states []State

	cityByKey  map[string]City
	codeByName map[string]string
}

// Static returns the built-in gazetteer.
func Static() Gazetteer {
	s := &static{
		cities:     cityTable,
		states:     stateTable,
		cityByKey:  make(map[string]City, len(cityTable)),
		codeByName: make(map[string]string, len(stateTable)),
	}
	for _, c := range cityTable {
		s.cityByKey[c.Key] = c
	}
	for _, st := range stateTable {
		s.codeByName[st.Name] = st.Code
	}
	return s
}

func (s *static) Cities() []City  { return s.cities }
func (s *static) States() []State { return s.states }

// LookupCity is a case-insensitive exact-name lookup.
func (s *static) LookupCity(name string) (City, bool) {
	c, ok := s.cityByKey[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// LookupStateCode is a case-insensitive exact-name lookup.
func (s *static) LookupStateCode(name string) (string, bool) {
	code, ok := s.codeByName[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}
