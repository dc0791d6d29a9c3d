package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ResponderLocationStatus is the responder state reported with a location update.
type ResponderLocationStatus string

const (
	ResponderStatusMoving   ResponderLocationStatus = "MOVING"
	ResponderStatusPickedUp ResponderLocationStatus = "PICKEDUP"
	ResponderStatusDropped  ResponderLocationStatus = "DROPPED"
)

// LocationUpdateEvent is the typed payload of a ResponderLocationUpdatedEvent.
type LocationUpdateEvent struct {
	ResponderID string
	MissionID   string
	IncidentID  string
	Status      string
	Lat         decimal.Decimal
	Lon         decimal.Decimal
	Human       bool
	Continue    bool
}

// Key returns the key of the mission the update refers to.
func (e *LocationUpdateEvent) Key() string {
	return MissionKey(e.IncidentID, e.ResponderID)
}

// Coordinate is a JSON number decoded straight into a decimal, so no
// precision is lost to float64. Quoted numbers are rejected.
type Coordinate struct {
	decimal.Decimal
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return errors.New("coordinate must be a JSON number")
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", data, err)
	}
	c.Decimal = d
	return nil
}

// LocationUpdatePayload is the wire form of LocationUpdateEvent. Pointer
// fields distinguish a missing field from its zero value.
type LocationUpdatePayload struct {
	ResponderID *string     `json:"responderId" validate:"required,notblank"`
	MissionID   *string     `json:"missionId" validate:"required,notblank"`
	IncidentID  *string     `json:"incidentId" validate:"required,notblank"`
	Status      *string     `json:"status" validate:"required,notblank"`
	Lat         *Coordinate `json:"lat" validate:"required"`
	Lon         *Coordinate `json:"lon" validate:"required"`
	Human       *bool       `json:"human" validate:"required"`
	Continue    *bool       `json:"continue" validate:"required"`
}

// ToEvent converts a validated payload into a LocationUpdateEvent.
func (p *LocationUpdatePayload) ToEvent() *LocationUpdateEvent {
	return &LocationUpdateEvent{
		ResponderID: *p.ResponderID,
		MissionID:   *p.MissionID,
		IncidentID:  *p.IncidentID,
		Status:      *p.Status,
		Lat:         p.Lat.Decimal,
		Lon:         p.Lon.Decimal,
		Human:       *p.Human,
		Continue:    *p.Continue,
	}
}

// EncodeLocationUpdate serializes an event into its JSON wire form.
func EncodeLocationUpdate(e *LocationUpdateEvent) ([]byte, error) {
	payload := LocationUpdatePayload{
		ResponderID: &e.ResponderID,
		MissionID:   &e.MissionID,
		IncidentID:  &e.IncidentID,
		Status:      &e.Status,
		Lat:         &Coordinate{Decimal: e.Lat},
		Lon:         &Coordinate{Decimal: e.Lon},
		Human:       &e.Human,
		Continue:    &e.Continue,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location update: %w", err)
	}
	return b, nil
}
