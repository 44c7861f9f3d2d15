package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/icewatch/icewatch/internal/geo"
	"github.com/icewatch/icewatch/internal/model"
)

// MaxAffected is the sanity ceiling for affected counts. Every Classifier
// implementation must treat a count at or above it as no answer, never a
// clamped value.
const MaxAffected = 10000

// agencyTerms and actionTerms form the relevance predicate: a document must
// contain at least one of each. Plain substring checks, no stemming, no
// negation handling; "ice" inside "police" matching is a known accepted
// false-positive source.
var (
	agencyTerms = []string{
		"ice",
		"immigration",
		"customs and border",
		"cbp",
		"border patrol",
	}
	actionTerms = []string{
		"arrest",
		"raid",
		"detain",
		"deport",
		"apprehend",
		"sweep",
	}
)

// typeGroups is scanned in order; the first group with any keyword present
// wins. Order is a design decision: text mentioning both "home" and
// "courthouse" always classifies as Home Arrest.
var typeGroups = []struct {
	incidentType model.IncidentType
	keywords     []string
}{
	{model.TypeWorkplaceRaid, []string{"workplace", "worksite", "factory", "plant", "business"}},
	{model.TypeHomeArrest, []string{"home", "apartment", "residence", "house"}},
	{model.TypeTrafficStop, []string{"traffic", "checkpoint", "highway", "vehicle"}},
	{model.TypeCourthouseArrest, []string{"courthouse", "court"}},
	{model.TypeSchoolVicinity, []string{"school"}},
	{model.TypeHospitalClinic, []string{"hospital", "clinic", "medical"}},
	{model.TypeChurchWorship, []string{"church", "mosque", "worship"}},
}

// countPatterns is an ordered list; each submatch index 1 is the count.
var countPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:people|persons|individuals|immigrants|migrants|workers)?\s*(?:were\s+)?(?:arrested|detained|taken into custody)`),
	regexp.MustCompile(`(?i)(?:arrested|detained|took into custody)\s*(?:approximately|about|over|more than|nearly)?\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*arrests`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:undocumented|illegal)\s*(?:immigrants?|workers?|migrants?)`),
}

// Rules is the reference rule-based classifier.
type Rules struct {
	gazetteer geo.Gazetteer
}

// NewRules builds the rule classifier over the given gazetteer.
func NewRules(g geo.Gazetteer) *Rules {
	return &Rules{gazetteer: g}
}

func (r *Rules) Relevant(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, agencyTerms) && containsAny(lower, actionTerms)
}

func (r *Rules) TypeOf(text string) model.IncidentType {
	lower := strings.ToLower(text)
	for _, group := range typeGroups {
		if containsAny(lower, group.keywords) {
			return group.incidentType
		}
	}
	return model.TypeOther
}

func (r *Rules) AffectedCount(text string) (int, bool) {
	for _, pattern := range countPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil || n <= 0 || n >= MaxAffected {
			// Out-of-range is a no-match for this pattern; later
			// patterns still get their chance.
			continue
		}
		return n, true
	}
	return 0, false
}

// Location scans the gazetteer city table in insertion order and returns
// the first city whose key occurs as a substring; failing that it scans
// full state names. The scan order dependence (a city key that prefixes
// another) is part of the pinned behavior.
func (r *Rules) Location(text string) Location {
	lower := strings.ToLower(text)

	for _, city := range r.gazetteer.Cities() {
		if strings.Contains(lower, city.Key) {
			lat, lng := city.Lat, city.Lng
			return Location{
				City:  city.Name,
				State: city.State,
				Lat:   &lat,
				Lng:   &lng,
			}
		}
	}

	for _, state := range r.gazetteer.States() {
		if strings.Contains(lower, state.Name) {
			return Location{State: state.Code}
		}
	}

	return Location{}
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
