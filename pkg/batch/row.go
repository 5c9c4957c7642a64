// Package batch processes a CSV of AP LAN port assignments, applying each
// valid row through the RUCKUS One client. Rows are independent: a bad row
// is skipped and logged, never aborting the batch.
package batch

import (
	"fmt"
	"strconv"
	"strings"
)

// VLAN IDs valid under IEEE 802.1Q.
const (
	MinVLANID = 1
	MaxVLANID = 4094
)

// Skip reasons surfaced to the operator.
const (
	ReasonParseError = "parse error"
	ReasonMissingIDs = "missing venue_id or ap_serial"
	ReasonBadVLAN    = "invalid VLAN ID"
	ReasonFieldCount = "expected 4 fields"
)

// PortAssignment is one validated CSV row: assign the given untagged VLAN
// to one AP switch port. Transient; built per row and never persisted.
type PortAssignment struct {
	VenueID  string
	APSerial string
	PortID   int
	VLANID   int
}

func (p *PortAssignment) String() string {
	return fmt.Sprintf("venue %s ap %s port %d vlan %d", p.VenueID, p.APSerial, p.PortID, p.VLANID)
}

// RowError is a per-row validation failure. It carries a short reason for
// operator output; Unwrap exposes the underlying parse error when present.
type RowError struct {
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *RowError) Unwrap() error { return e.Err }

// ParseRow validates one raw CSV record against the fixed column order
// venue_id, ap_serial, port_id, vlan_id. All failures come back as
// *RowError; nothing escapes this boundary.
//
// Validation order: field count, numeric parse, identifier presence,
// VLAN range.
func ParseRow(record []string) (*PortAssignment, error) {
	if len(record) != 4 {
		return nil, &RowError{Reason: ReasonFieldCount, Err: fmt.Errorf("got %d", len(record))}
	}

	venueID := strings.TrimSpace(record[0])
	apSerial := strings.TrimSpace(record[1])

	portID, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, &RowError{Reason: ReasonParseError, Err: fmt.Errorf("port_id %q is not an integer", record[2])}
	}
	vlanID, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, &RowError{Reason: ReasonParseError, Err: fmt.Errorf("vlan_id %q is not an integer", record[3])}
	}

	if venueID == "" || apSerial == "" {
		return nil, &RowError{Reason: ReasonMissingIDs}
	}
	if vlanID < MinVLANID || vlanID > MaxVLANID {
		return nil, &RowError{Reason: ReasonBadVLAN, Err: fmt.Errorf("%d outside [%d,%d]", vlanID, MinVLANID, MaxVLANID)}
	}

	return &PortAssignment{
		VenueID:  venueID,
		APSerial: apSerial,
		PortID:   portID,
		VLANID:   vlanID,
	}, nil
}
