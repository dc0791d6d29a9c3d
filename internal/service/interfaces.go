package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/shenikar/mission_location_service/internal/models"
)

// MissionRepository defines the contract of the mission store
type MissionRepository interface {
	// Get returns nil, nil when no mission is stored under key.
	Get(ctx context.Context, key string) (*models.Mission, error)
	Add(ctx context.Context, mission *models.Mission) error
}

// EventSink publishes mission domain events to downstream consumers
type EventSink interface {
	MissionPickedUp(ctx context.Context, mission *models.Mission) error
	MissionCompleted(ctx context.Context, mission *models.Mission) error
}
