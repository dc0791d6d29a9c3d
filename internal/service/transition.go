package service

import (
	"github.com/shenikar/mission_location_service/internal/models"
)

// EventKind identifies the domain event scheduled by a transition.
type EventKind int

const (
	EventNone EventKind = iota
	EventMissionPickedUp
	EventMissionCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventMissionPickedUp:
		return "MissionPickedUpEvent"
	case EventMissionCompleted:
		return "MissionCompletedEvent"
	default:
		return "none"
	}
}

// Transition is the effect of a responder status on its mission.
// A nil NewStatus leaves the mission status untouched.
type Transition struct {
	NewStatus *models.MissionStatus
	Event     EventKind
}

// IsNoOp reports whether the transition neither changes the status nor emits.
func (t Transition) IsNoOp() bool {
	return t.NewStatus == nil && t.Event == EventNone
}

// Apply sets the mission status if the transition carries one.
func (t Transition) Apply(mission *models.Mission) {
	if t.NewStatus != nil {
		mission.Status = *t.NewStatus
	}
}

// Decide maps a responder status to a mission transition. Unknown statuses
// are a no-op, not an error.
func Decide(status string) Transition {
	switch models.ResponderLocationStatus(status) {
	case models.ResponderStatusPickedUp, "PICKED_UP":
		return setStatus(models.MissionStatusUpdated, EventMissionPickedUp)
	case models.ResponderStatusDropped:
		return setStatus(models.MissionStatusCompleted, EventMissionCompleted)
	default:
		return Transition{}
	}
}

func setStatus(status models.MissionStatus, event EventKind) Transition {
	return Transition{NewStatus: &status, Event: event}
}
