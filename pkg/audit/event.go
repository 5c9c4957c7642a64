// Package audit records per-row provisioning outcomes to a JSON-lines file
// for after-the-fact diagnosis.
package audit

import "time"

// Outcome categorizes what happened to one CSV row.
type Outcome string

const (
	OutcomeConfigured Outcome = "configured"
	OutcomePlanned    Outcome = "planned" // dry run
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
)

// Event is one per-row provisioning outcome.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Row       int       `json:"row"`
	VenueID   string    `json:"venue_id,omitempty"`
	APSerial  string    `json:"ap_serial,omitempty"`
	PortID    int       `json:"port_id,omitempty"`
	VLANID    int       `json:"vlan_id,omitempty"`
	Outcome   Outcome   `json:"outcome"`
	Detail    string    `json:"detail,omitempty"` // skip reason or error text
}

// NewEvent creates an event stamped with the current time.
func NewEvent(runID string, row int, outcome Outcome) *Event {
	return &Event{
		Timestamp: time.Now(),
		RunID:     runID,
		Row:       row,
		Outcome:   outcome,
	}
}

// WithPort attaches the port assignment fields.
func (e *Event) WithPort(venueID, apSerial string, portID, vlanID int) *Event {
	e.VenueID = venueID
	e.APSerial = apSerial
	e.PortID = portID
	e.VLANID = vlanID
	return e
}

// WithDetail attaches a skip reason or error text.
func (e *Event) WithDetail(detail string) *Event {
	e.Detail = detail
	return e
}

// Filter defines criteria for querying audit events.
type Filter struct {
	RunID   string
	VenueID string
	Outcome Outcome
	Limit   int
}
