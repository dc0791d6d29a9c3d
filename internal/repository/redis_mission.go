package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/mission_location_service/internal/models"
	"github.com/shenikar/mission_location_service/internal/service"
)

const missionKeyPrefix = "mission:"

// RedisClient is the part of *redis.Client the mission store uses
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisMissionRepository struct {
	redisClient RedisClient
	ttl         time.Duration
}

// NewRedisMissionRepository stores missions as JSON documents. A zero ttl
// keeps missions without expiration.
func NewRedisMissionRepository(redisClient RedisClient, ttl time.Duration) service.MissionRepository {
	return &RedisMissionRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns the mission stored under key, or nil if there is none
func (r *RedisMissionRepository) Get(ctx context.Context, key string) (*models.Mission, error) {
	val, err := r.redisClient.Get(ctx, missionKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission %s: %w", key, err)
	}

	mission := &models.Mission{}
	if err := json.Unmarshal(val, mission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mission %s: %w", key, err)
	}
	return mission, nil
}

// Add saves the mission under its key, replacing any previous version
func (r *RedisMissionRepository) Add(ctx context.Context, mission *models.Mission) error {
	val, err := json.Marshal(mission)
	if err != nil {
		return fmt.Errorf("failed to marshal mission %s: %w", mission.Key(), err)
	}
	if err := r.redisClient.Set(ctx, missionKeyPrefix+mission.Key(), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set mission %s: %w", mission.Key(), err)
	}
	return nil
}
