package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/mission_location_service/internal/models"
)

// Outcome is the result of one processing attempt.
type Outcome int

const (
	OutcomeProcessed Outcome = iota
	OutcomeRejected
	OutcomeMissionNotFound
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProcessed:
		return "processed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeMissionNotFound:
		return "mission_not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UpdatePipeline applies responder location updates to missions
type UpdatePipeline struct {
	validator *EnvelopeValidator
	repo      MissionRepository
	sink      EventSink
	logger    *logrus.Logger
	stats     *Stats
	now       func() time.Time
}

// PipelineOption customizes an UpdatePipeline
type PipelineOption func(*UpdatePipeline)

// WithClock sets the time source used to stamp location samples.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *UpdatePipeline) {
		p.now = now
	}
}

func NewUpdatePipeline(
	validator *EnvelopeValidator,
	repo MissionRepository,
	sink EventSink,
	logger *logrus.Logger,
	opts ...PipelineOption,
) *UpdatePipeline {
	p := &UpdatePipeline{
		validator: validator,
		repo:      repo,
		sink:      sink,
		logger:    logger,
		stats:     &Stats{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats returns the counters of the pipeline.
func (p *UpdatePipeline) Stats() *Stats {
	return p.stats
}

// Process runs one message through the pipeline and acknowledges it exactly
// once after the chain completes, whatever the outcome. Errors and panics
// are logged and never reach the caller; the message is not retried.
func (p *UpdatePipeline) Process(ctx context.Context, msg models.Message) (outcome Outcome) {
	p.stats.received.Add(1)

	defer func() {
		if r := recover(); r != nil {
			p.logger.WithFields(logrus.Fields{
				"service": "pipeline",
				"panic":   r,
			}).Error("Recovered from panic while processing location update")
			outcome = OutcomeFailed
		}
		p.stats.record(outcome)
		msg.Ack()
	}()

	event, err := p.validator.Validate(msg)
	if err != nil {
		return OutcomeRejected
	}

	outcome, err = p.processLocationUpdate(ctx, event)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"service":      "pipeline",
			"mission_key":  event.Key(),
			"mission_id":   event.MissionID,
			"responder_id": event.ResponderID,
			"status":       event.Status,
		}).WithError(err).Error("Failed to process location update")
		return OutcomeFailed
	}
	return outcome
}

func (p *UpdatePipeline) processLocationUpdate(ctx context.Context, event *models.LocationUpdateEvent) (Outcome, error) {
	key := event.Key()
	log := p.logger.WithFields(logrus.Fields{
		"service":     "pipeline",
		"mission_key": key,
	})

	mission, err := p.repo.Get(ctx, key)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("pipeline: could not get mission: %w", err)
	}
	if mission == nil {
		log.Warnf("Mission with key = %s could not be retrieved or could not be found in the repository", key)
		return OutcomeMissionNotFound, nil
	}

	mission.AddLocation(models.ResponderLocationHistory{
		Lat:       event.Lat,
		Lon:       event.Lon,
		Timestamp: p.now().UnixMilli(),
	})

	transition := Decide(event.Status)
	transition.Apply(mission)

	if err := p.emit(ctx, transition.Event, mission); err != nil {
		return OutcomeFailed, err
	}

	if err := p.repo.Add(ctx, mission); err != nil {
		return OutcomeFailed, fmt.Errorf("pipeline: could not store mission: %w", err)
	}

	log.WithFields(logrus.Fields{
		"mission_status": mission.Status,
		"event":          transition.Event.String(),
	}).Debug("Location update applied")
	return OutcomeProcessed, nil
}

func (p *UpdatePipeline) emit(ctx context.Context, kind EventKind, mission *models.Mission) error {
	var err error
	switch kind {
	case EventMissionPickedUp:
		err = p.sink.MissionPickedUp(ctx, mission)
	case EventMissionCompleted:
		err = p.sink.MissionCompleted(ctx, mission)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("pipeline: could not emit %s: %w", kind, err)
	}
	p.stats.eventsEmitted.Add(1)
	return nil
}
