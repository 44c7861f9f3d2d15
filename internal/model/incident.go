package model

import "time"

// IncidentType tags where an enforcement action took place.
type IncidentType string

const (
	TypeWorkplaceRaid    IncidentType = "Workplace Raid"
	TypeHomeArrest       IncidentType = "Home Arrest"
	TypeTrafficStop      IncidentType = "Traffic Stop"
	TypeCourthouseArrest IncidentType = "Courthouse Arrest"
	TypeSchoolVicinity   IncidentType = "School Vicinity"
	TypeHospitalClinic   IncidentType = "Hospital/Clinic"
	TypeChurchWorship    IncidentType = "Church/Place of Worship"
	TypeOther            IncidentType = "Other"
)

// IncidentCandidate is a structured incident derived from one RawDocument.
// It has not yet been checked against persisted state.
//
// City, Latitude and Longitude are set together on a gazetteer city hit;
// a state-only match sets State and nothing else. NumAffected, when
// present, is a positive integer below the sanity ceiling.
type IncidentCandidate struct {
	Date        time.Time    `json:"incident_date"`
	Type        IncidentType `json:"incident_type"`
	Description string       `json:"description"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
	Latitude    *float64     `json:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty"`
	NumAffected *int         `json:"num_affected,omitempty"`
	SourceURL   string       `json:"source_url"`
	SourceName  string       `json:"source_name"`
}

// DateString renders the incident date the way the store keys it.
func (c IncidentCandidate) DateString() string {
	return c.Date.Format("2006-01-02")
}
