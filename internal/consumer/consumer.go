// Package consumer feeds Kafka records into the update pipeline.
package consumer

import (
	"context"
	"errors"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/mission_location_service/internal/models"
	"github.com/shenikar/mission_location_service/internal/service"
)

// Processor handles one message and acknowledges it.
type Processor interface {
	Process(ctx context.Context, msg models.Message) service.Outcome
}

// KafkaConsumer subscribes a consumer group to the location update topic
type KafkaConsumer struct {
	group     sarama.ConsumerGroup
	topic     string
	processor Processor
	logger    *logrus.Logger
}

func NewKafkaConsumer(group sarama.ConsumerGroup, topic string, processor Processor, logger *logrus.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		group:     group,
		topic:     topic,
		processor: processor,
		logger:    logger,
	}
}

// Run consumes until ctx is canceled or the group is closed. Rebalances end
// a Consume call, so it is re-entered in a loop.
func (c *KafkaConsumer) Run(ctx context.Context) error {
	log := c.logger.WithFields(logrus.Fields{
		"component": "kafka_consumer",
		"topic":     c.topic,
	})

	go func() {
		for err := range c.group.Errors() {
			log.WithError(err).Error("Error from consumer group")
		}
	}()

	handler := &groupHandler{processor: c.processor, logger: log}
	log.Info("Subscribed to location updates")
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			log.WithError(err).Error("Consumer group session ended with error")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.group.Close()
}

// groupHandler implements sarama.ConsumerGroupHandler
type groupHandler struct {
	processor Processor
	logger    *logrus.Entry
}

func (h *groupHandler) Setup(sess sarama.ConsumerGroupSession) error {
	h.logger.WithFields(logrus.Fields{
		"generation_id": sess.GenerationID(),
		"member_id":     sess.MemberID(),
	}).Info("Consumer group session setup")
	return nil
}

func (h *groupHandler) Cleanup(sess sarama.ConsumerGroupSession) error {
	h.logger.WithFields(logrus.Fields{
		"generation_id": sess.GenerationID(),
		"member_id":     sess.MemberID(),
	}).Info("Consumer group session cleanup")
	return nil
}

// ConsumeClaim processes the records of one partition sequentially. The
// offset is marked and committed when the pipeline acknowledges a record.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			h.logger.WithFields(logrus.Fields{
				"partition": msg.Partition,
				"offset":    msg.Offset,
			}).Debug("Received Kafka message")

			// Offsets are committed per record: an acknowledged update must
			// not be redelivered after a crash or rebalance.
			ack := func() {
				sess.MarkMessage(msg, "")
				sess.Commit()
			}
			h.processor.Process(sess.Context(), ToMessage(msg, ack))
		case <-sess.Context().Done():
			return nil
		}
	}
}
