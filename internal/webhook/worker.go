package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/mission_location_service/internal/config"
	"github.com/shenikar/mission_location_service/internal/events"
)

const cloudEventsContentType = "application/cloudevents+json"

// EventQueue is the blocking pop the worker reads mission events with
type EventQueue interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// WebhookWorker forwards queued mission events to the configured webhook
type WebhookWorker struct {
	redisClient EventQueue
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWebhookWorker(redisClient EventQueue, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start runs the queue loop in a goroutine until ctx is done. The returned
// channel is closed once the loop has exited.
func (w *WebhookWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting webhook worker...")
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				// 0 blocks until an event arrives
				result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop mission event from Redis")
					select {
					case <-ctx.Done():
					case <-time.After(w.cfg.WebhookTimeout):
					}
					continue
				}

				// result[0] is the key, result[1] the value
				payload := result[1]
				var event events.CloudEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal mission event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
	return done
}

func (w *WebhookWorker) deliver(ctx context.Context, event events.CloudEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	})
	log.Debug("Processing mission event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = w.cfg.WebhookBaseDelay
	expBackoff.MaxElapsedTime = 0

	var retries uint64
	if w.cfg.WebhookMaxRetries > 0 {
		retries = uint64(w.cfg.WebhookMaxRetries - 1)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, retries), ctx)

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := w.send(ctx, rawPayload)
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("Webhook delivery failed")
		}
		return err
	}, policy)
	if err != nil {
		log.WithError(err).Errorf("Failed to deliver webhook for event after %d attempts.", attempt)
		return
	}
	log.Info("Webhook delivered successfully.")
}

func (w *WebhookWorker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", cloudEventsContentType)

	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 returns the hex HMAC-SHA256 of data
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
