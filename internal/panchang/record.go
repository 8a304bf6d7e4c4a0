package panchang

// DateFormat is the ISO date form used for record stamps and API parameters.
const DateFormat = "2006-01-02"

// NotFound marks a field whose label or value could not be located in the
// document. It is a per-field sentinel, distinct from a day-level failure.
const NotFound = "Not Found"

// DayRecord holds the extracted panchang fields for one calendar day.
//
// A successful record carries the six data fields, each either an extracted
// value or NotFound. When a day fails entirely (fetch error, no anchor) the
// data fields are empty and Error carries a description; omitempty keeps the
// JSON shape to {date, error} in that case.
type DayRecord struct {
	Date      string `json:"date"`
	Sunrise   string `json:"sunrise,omitempty"`
	Sunset    string `json:"sunset,omitempty"`
	Tithi     string `json:"tithi,omitempty"`
	Nakshatra string `json:"nakshatra,omitempty"`
	Yoga      string `json:"yoga,omitempty"`
	Karana    string `json:"karana,omitempty"`
	Error     string `json:"error,omitempty"`
}
