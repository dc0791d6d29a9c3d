package v1

import "github.com/shenikar/mission_location_service/internal/service"

// LocationUpdateRequest payload of a ResponderLocationUpdatedEvent
// @Description Payload of a ResponderLocationUpdatedEvent
type LocationUpdateRequest struct {
	ResponderID string  `json:"responderId" example:"64"`
	MissionID   string  `json:"missionId" example:"f5a2d4b2-1f3a-4c7e-9b1e-0d3b8a7c6e5f"`
	IncidentID  string  `json:"incidentId" example:"a1b2c3"`
	Status      string  `json:"status" example:"PICKEDUP"`
	Lat         float64 `json:"lat" example:"34.21331"`
	Lon         float64 `json:"lon" example:"-77.88692"`
	Human       bool    `json:"human"`
	Continue    bool    `json:"continue"`
}

// LocationUpdateResponse result of feeding an update into the pipeline
// @Description Result of feeding an update into the pipeline
type LocationUpdateResponse struct {
	Outcome string `json:"outcome" example:"processed"`
}

// StatsResponse pipeline counters
// @Description Pipeline counters since startup
type StatsResponse service.StatsSnapshot

// HealthResponse health of the service and its dependencies
// @Description Health of the service and its dependencies
type HealthResponse struct {
	Status       string            `json:"status" example:"ok"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}
