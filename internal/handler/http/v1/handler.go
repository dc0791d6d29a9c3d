package v1

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/mission_location_service/internal/config"
	"github.com/shenikar/mission_location_service/internal/consumer"
	"github.com/shenikar/mission_location_service/internal/models"
	"github.com/shenikar/mission_location_service/internal/service"
)

const (
	maxBodyBytes       = 1 << 20
	healthCheckTimeout = 2 * time.Second
)

// LocationUpdateProcessor is the part of the update pipeline used by the API
type LocationUpdateProcessor interface {
	Process(ctx context.Context, msg models.Message) service.Outcome
	Stats() *service.Stats
}

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

type Handler struct {
	pipeline LocationUpdateProcessor
	logger   *logrus.Logger
	cfg      *config.Config
	checks   map[string]HealthCheck
}

func NewHandler(pipeline LocationUpdateProcessor, logger *logrus.Logger, cfg *config.Config, checks map[string]HealthCheck) *Handler {
	return &Handler{
		pipeline: pipeline,
		logger:   logger,
		cfg:      cfg,
		checks:   checks,
	}
}

// @Summary Submit a responder location update
// @Description Feed a CloudEvent (binary or structured content mode) into the update pipeline. The event is always acknowledged; the outcome reports what the pipeline did with it. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param ce-specversion header string false "CloudEvents spec version (binary mode)"
// @Param ce-type header string false "CloudEvent type (binary mode)" default(ResponderLocationUpdatedEvent)
// @Param ce-id header string false "CloudEvent id (binary mode)"
// @Param ce-source header string false "CloudEvent source (binary mode)"
// @Param update body LocationUpdateRequest true "Location update payload"
// @Success 202 {object} LocationUpdateResponse
// @Failure 400 {object} map[string]string "Unreadable request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location-updates [post]
func (h *Handler) submitLocationUpdate(c *gin.Context) {
	log := h.logger.WithField("method", "submitLocationUpdate")

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		log.WithError(err).Warn("Failed to read request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	contentType := c.GetHeader("Content-Type")
	var msg models.Message
	if consumer.IsStructured(contentType) {
		metadata, payload := consumer.DecodeStructured(body)
		msg = models.NewMessage(metadata, payload, nil)
	} else {
		lookup := func(key string) (string, bool) {
			values, ok := c.Request.Header[http.CanonicalHeaderKey(key)]
			if !ok || len(values) == 0 {
				return "", false
			}
			return values[0], true
		}
		msg = models.NewMessage(consumer.MetadataFromHeaders(lookup, "ce-", contentType), body, nil)
	}

	outcome := h.pipeline.Process(c.Request.Context(), msg)
	c.JSON(http.StatusAccepted, LocationUpdateResponse{Outcome: outcome.String()})
}

// @Summary Get pipeline statistics
// @Description Get the counters of the location update pipeline since startup. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse(h.pipeline.Stats().Snapshot()))
}

// @Summary Get application health status
// @Description Get health status of the application and its dependencies
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Status OK"
// @Failure 503 {object} HealthResponse "A dependency is unavailable"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Dependencies: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WithError(err).WithField("dependency", name).Warn("Health check failed")
			resp.Dependencies[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Dependencies[name] = "ok"
	}
	c.JSON(status, resp)
}
