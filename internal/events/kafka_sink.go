package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/mission_location_service/internal/models"
	"github.com/shenikar/mission_location_service/internal/service"
)

var _ service.EventSink = (*KafkaEventSink)(nil)

// KafkaEventSink publishes mission events in CloudEvents binary mode: the
// mission is the record value and the context attributes travel as ce_
// headers. Records are keyed by incident id.
type KafkaEventSink struct {
	producer sarama.SyncProducer
	topic    string
	source   string
	logger   *logrus.Logger
}

func NewKafkaEventSink(producer sarama.SyncProducer, topic, source string, logger *logrus.Logger) *KafkaEventSink {
	return &KafkaEventSink{
		producer: producer,
		topic:    topic,
		source:   source,
		logger:   logger,
	}
}

func (s *KafkaEventSink) MissionPickedUp(ctx context.Context, mission *models.Mission) error {
	return s.publish(ctx, NewMissionEvent(MissionPickedUpEvent, s.source, mission))
}

func (s *KafkaEventSink) MissionCompleted(ctx context.Context, mission *models.Mission) error {
	return s.publish(ctx, NewMissionEvent(MissionCompletedEvent, s.source, mission))
}

func (s *KafkaEventSink) publish(ctx context.Context, event CloudEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	value, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Data.IncidentID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			header("ce_specversion", event.SpecVersion),
			header("ce_id", event.ID),
			header("ce_type", event.Type),
			header("ce_source", event.Source),
			header("ce_time", event.Time.Format(time.RFC3339Nano)),
			header("content-type", event.DataContentType),
		},
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send %s to kafka topic %s: %w", event.Type, s.topic, err)
	}

	s.logger.WithFields(logrus.Fields{
		"component":  "kafka_event_sink",
		"topic":      s.topic,
		"partition":  partition,
		"offset":     offset,
		"event_type": event.Type,
		"ce_id":      event.ID,
		"mission_id": event.Data.ID,
	}).Debug("Published mission event")
	return nil
}

func header(key, value string) sarama.RecordHeader {
	return sarama.RecordHeader{Key: []byte(key), Value: []byte(value)}
}
