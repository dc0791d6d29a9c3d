package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shenikar/mission_location_service/internal/models"
	"github.com/shenikar/mission_location_service/internal/service"
)

// DB is the subset of pgxpool.Pool used by the repository.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresMissionRepository struct {
	db DB
}

func NewPostgresMissionRepository(db DB) service.MissionRepository {
	return &PostgresMissionRepository{db: db}
}

// Get returns the mission stored under key, or nil if there is none
func (r *PostgresMissionRepository) Get(ctx context.Context, key string) (*models.Mission, error) {
	query := `
		SELECT document
		FROM missions
		WHERE mission_key = $1;
	`
	var document []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission %s: %w", key, err)
	}

	mission := &models.Mission{}
	if err := json.Unmarshal(document, mission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mission %s: %w", key, err)
	}
	return mission, nil
}

// Add upserts the mission document; the last write wins
func (r *PostgresMissionRepository) Add(ctx context.Context, mission *models.Mission) error {
	document, err := json.Marshal(mission)
	if err != nil {
		return fmt.Errorf("failed to marshal mission %s: %w", mission.Key(), err)
	}

	query := `
		INSERT INTO missions (mission_key, mission_id, status, document, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (mission_key) DO UPDATE SET
			mission_id = EXCLUDED.mission_id,
			status = EXCLUDED.status,
			document = EXCLUDED.document,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query,
		mission.Key(),
		mission.ID,
		string(mission.Status),
		document,
	); err != nil {
		return fmt.Errorf("failed to upsert mission %s: %w", mission.Key(), err)
	}
	return nil
}
