package catalog

// ThreatType is a fixed reference entry joined into report projections.
type ThreatType struct {
	ID   int    `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Status is one of the three triage states a report can be in.
type Status struct {
	ID   int    `bson:"_id" json:"id"`
	Code string `bson:"code" json:"code"`
}

const (
	StatusNotOpened    = "NOT_OPENED"
	StatusUnderProcess = "UNDER_PROCESS"
	StatusResolved     = "RESOLVED"
)

// DefaultThreatTypes is the fixed catalog the portal ships with.
var DefaultThreatTypes = []ThreatType{
	{ID: 1, Name: "Fraud"},
	{ID: 2, Name: "Phishing"},
	{ID: 3, Name: "Cyber Bullying"},
	{ID: 4, Name: "National Security"},
	{ID: 5, Name: "Malware"},
}

var DefaultStatuses = []Status{
	{ID: 1, Code: StatusNotOpened},
	{ID: 2, Code: StatusUnderProcess},
	{ID: 3, Code: StatusResolved},
}

var statusIDByCode = func() map[string]int {
	m := make(map[string]int, len(DefaultStatuses))
	for _, s := range DefaultStatuses {
		m[s.Code] = s.ID
	}
	return m
}()

// StatusIDByCode resolves a status code to its catalog id. The catalog is
// immutable, so this never needs a store round trip.
func StatusIDByCode(code string) (int, bool) {
	id, ok := statusIDByCode[code]
	return id, ok
}

// ValidStatusCode reports whether code names one of the three triage states.
func ValidStatusCode(code string) bool {
	_, ok := statusIDByCode[code]
	return ok
}

// ValidThreatTypeID reports whether id exists in the threat-type catalog.
func ValidThreatTypeID(id int) bool {
	for _, t := range DefaultThreatTypes {
		if t.ID == id {
			return true
		}
	}
	return false
}
