package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
)

// ClientConfig contains the settings shared by the consumer group and the producer
type ClientConfig struct {
	Brokers        []string
	ClientID       string
	MaxElapsedTime time.Duration
}

// NewSaramaConfig returns the sarama configuration used by the service.
// Offsets are committed manually once a message has been acknowledged.
func NewSaramaConfig(clientID string) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = clientID

	// Consumer settings
	config.Consumer.Return.Errors = true
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Session.Timeout = 20 * time.Second
	config.Consumer.Group.Heartbeat.Interval = 6 * time.Second
	config.Consumer.Offsets.AutoCommit.Enable = false

	// Producer settings
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true
	config.Producer.Partitioner = sarama.NewHashPartitioner

	config.Version = sarama.V3_6_0_0
	return config
}

// ConnectWithRetry creates a sarama client, retrying with exponential backoff
// while the cluster is unreachable.
func ConnectWithRetry(cfg *ClientConfig, log *logrus.Logger) (sarama.Client, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 5 * time.Second
	expBackoff.MaxElapsedTime = cfg.MaxElapsedTime

	var client sarama.Client
	operation := func() error {
		var err error
		client, err = sarama.NewClient(cfg.Brokers, NewSaramaConfig(cfg.ClientID))
		if err != nil {
			log.WithError(err).WithField("brokers", cfg.Brokers).Warn("Kafka is not reachable yet")
			return fmt.Errorf("creating kafka client: %w", err)
		}
		return nil
	}

	if err := backoff.Retry(operation, expBackoff); err != nil {
		return nil, fmt.Errorf("failed to connect to Kafka after retries: %w", err)
	}
	return client, nil
}
