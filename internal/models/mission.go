package models

import (
	"github.com/shopspring/decimal"
)

// MissionStatus is the lifecycle state of a mission.
type MissionStatus string

const (
	MissionStatusCreated   MissionStatus = "CREATED"
	MissionStatusUpdated   MissionStatus = "UPDATED"
	MissionStatusCompleted MissionStatus = "COMPLETED"
)

// ResponderLocationHistory is one location sample reported by a responder.
type ResponderLocationHistory struct {
	Lat       decimal.Decimal `json:"lat"`
	Lon       decimal.Decimal `json:"lon"`
	Timestamp int64           `json:"timestamp"`
}

// Mission is the rescue mission of a single responder assigned to an incident.
type Mission struct {
	ID                       string                     `json:"id"`
	IncidentID               string                     `json:"incidentId"`
	ResponderID              string                     `json:"responderId"`
	ResponderStartLat        decimal.Decimal            `json:"responderStartLat"`
	ResponderStartLong       decimal.Decimal            `json:"responderStartLong"`
	IncidentLat              decimal.Decimal            `json:"incidentLat"`
	IncidentLong             decimal.Decimal            `json:"incidentLong"`
	DestinationLat           decimal.Decimal            `json:"destinationLat"`
	DestinationLong          decimal.Decimal            `json:"destinationLong"`
	ResponderLocationHistory []ResponderLocationHistory `json:"responderLocationHistory"`
	Status                   MissionStatus              `json:"status"`
}

// MissionKey builds the repository key of a mission.
func MissionKey(incidentID, responderID string) string {
	return incidentID + ":" + responderID
}

func (m *Mission) Key() string {
	return MissionKey(m.IncidentID, m.ResponderID)
}

// AddLocation appends a sample to the location history.
func (m *Mission) AddLocation(sample ResponderLocationHistory) {
	m.ResponderLocationHistory = append(m.ResponderLocationHistory, sample)
}
