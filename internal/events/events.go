// Package events defines the mission domain events and their Kafka publisher.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/mission_location_service/internal/models"
)

const (
	MissionPickedUpEvent  = "MissionPickedUpEvent"
	MissionCompletedEvent = "MissionCompletedEvent"

	SpecVersion     = "1.0"
	JSONContentType = "application/json"
)

// CloudEvent is a structured-mode CloudEvents 1.0 document carrying a mission.
type CloudEvent struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            *models.Mission `json:"data"`
}

// NewMissionEvent builds a domain event announcing the current mission state.
func NewMissionEvent(eventType, source string, mission *models.Mission) CloudEvent {
	return CloudEvent{
		SpecVersion:     SpecVersion,
		ID:              uuid.NewString(),
		Source:          source,
		Type:            eventType,
		Time:            time.Now().UTC(),
		DataContentType: JSONContentType,
		Data:            mission,
	}
}
