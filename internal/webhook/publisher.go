package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/mission_location_service/internal/events"
	"github.com/shenikar/mission_location_service/internal/models"
	"github.com/shenikar/mission_location_service/internal/service"
)

const (
	eventQueueKey = "mission_events"
)

var _ service.EventSink = (*RedisEventPublisher)(nil)

// RedisEventPublisher queues mission events in a Redis list for the webhook worker
type RedisEventPublisher struct {
	redisClient *redis.Client
	source      string
}

func NewRedisEventPublisher(client *redis.Client, source string) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
		source:      source,
	}
}

func (p *RedisEventPublisher) MissionPickedUp(ctx context.Context, mission *models.Mission) error {
	return p.Publish(ctx, events.NewMissionEvent(events.MissionPickedUpEvent, p.source, mission))
}

func (p *RedisEventPublisher) MissionCompleted(ctx context.Context, mission *models.Mission) error {
	return p.Publish(ctx, events.NewMissionEvent(events.MissionCompletedEvent, p.source, mission))
}

// Publish pushes the event onto the queue
func (p *RedisEventPublisher) Publish(ctx context.Context, event events.CloudEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", event.Type, err)
	}

	// LPUSH here, BRPOP in the worker: FIFO
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to Redis: %w", event.Type, err)
	}
	return nil
}
