package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/mission_location_service/internal/models"
)

const (
	ResponderLocationUpdatedEvent = "ResponderLocationUpdatedEvent"
	jsonContentType               = "application/json"
)

var acceptedMessageTypes = map[string]struct{}{
	ResponderLocationUpdatedEvent: {},
}

var (
	ErrNotCloudEvent          = errors.New("message is not a CloudEvent")
	ErrUnsupportedContentType = errors.New("unsupported data content type")
	ErrUnsupportedEventType   = errors.New("unsupported event type")
	ErrMalformedPayload       = errors.New("unexpected message structure")
)

// EnvelopeValidator extracts a LocationUpdateEvent from an inbound message
type EnvelopeValidator struct {
	logger   *logrus.Logger
	validate *validator.Validate
}

func NewEnvelopeValidator(logger *logrus.Logger) *EnvelopeValidator {
	v := validator.New()
	// notblank is not a baked-in tag
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}

	return &EnvelopeValidator{
		logger:   logger,
		validate: v,
	}
}

// Validate checks the envelope metadata and the payload of msg. Every
// rejection is logged here; callers only need to drop the message.
func (v *EnvelopeValidator) Validate(msg models.Message) (*models.LocationUpdateEvent, error) {
	log := v.logger.WithField("component", "envelope_validator")

	meta := msg.Metadata
	if meta == nil {
		log.Warn("Incoming message is not a CloudEvent")
		return nil, ErrNotCloudEvent
	}
	log = log.WithField("ce_id", meta.ID)

	if !isJSONContentType(meta.DataContentType) {
		log.WithField("content_type", meta.DataContentType).
			Warn("CloudEvent data content type is not specified or not 'application/json'. Message is ignored")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, meta.DataContentType)
	}

	if _, ok := acceptedMessageTypes[meta.Type]; !ok {
		log.Debugf("CloudEvent with type '%s' is ignored", meta.Type)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEventType, meta.Type)
	}

	event, err := v.decode(msg.Payload)
	if err != nil {
		log.WithError(err).Warn("Unexpected message structure. Message is ignored")
		return nil, err
	}

	log.WithField("payload", string(msg.Payload)).Debug("Processing message")
	return event, nil
}

func (v *EnvelopeValidator) decode(payload []byte) (*models.LocationUpdateEvent, error) {
	var p models.LocationUpdatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := v.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return p.ToEvent(), nil
}

func isJSONContentType(contentType string) bool {
	return strings.EqualFold(strings.TrimSpace(contentType), jsonContentType)
}
