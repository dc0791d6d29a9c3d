package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/mission_location_service/internal/models"
)

func newTestValidator() (*EnvelopeValidator, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewEnvelopeValidator(logger), hook
}

func TestValidate_Success(t *testing.T) {
	v, _ := newTestValidator()
	msg, _ := newMessage(t, cloudEventMetadata(), validPayload("PICKEDUP"))

	event, err := v.Validate(msg)

	require.NoError(t, err)
	assert.Equal(t, "responder-1", event.ResponderID)
	assert.Equal(t, "mission-1", event.MissionID)
	assert.Equal(t, "incident-1", event.IncidentID)
	assert.Equal(t, "PICKEDUP", event.Status)
	assert.True(t, event.Lat.Equal(decimal.RequireFromString("30.12345")))
	assert.True(t, event.Lon.Equal(decimal.RequireFromString("-77.54321")))
	assert.False(t, event.Human)
	assert.True(t, event.Continue)
	assert.Equal(t, testMissionKey, event.Key())
}

func TestNewEnvelopeValidator_RegistersNotBlank(t *testing.T) {
	logger, _ := test.NewNullLogger()

	var v *EnvelopeValidator
	require.NotPanics(t, func() { v = NewEnvelopeValidator(logger) })
	assert.Error(t, v.validate.Var("  ", "notblank"))
	assert.NoError(t, v.validate.Var("x", "notblank"))
}

func TestValidate_ContentTypeIsCaseInsensitive(t *testing.T) {
	v, _ := newTestValidator()
	for _, contentType := range []string{"APPLICATION/JSON", "Application/Json", " application/json "} {
		meta := cloudEventMetadata()
		meta.DataContentType = contentType
		msg, _ := newMessage(t, meta, validPayload("MOVING"))

		_, err := v.Validate(msg)
		assert.NoError(t, err, contentType)
	}
}

func TestValidate_RejectsEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		metadata func() *models.EventMetadata
		wantErr  error
		level    logrus.Level
	}{
		{
			name:     "not a cloud event",
			metadata: func() *models.EventMetadata { return nil },
			wantErr:  ErrNotCloudEvent,
			level:    logrus.WarnLevel,
		},
		{
			name: "missing content type",
			metadata: func() *models.EventMetadata {
				m := cloudEventMetadata()
				m.DataContentType = ""
				return m
			},
			wantErr: ErrUnsupportedContentType,
			level:   logrus.WarnLevel,
		},
		{
			name: "text content type",
			metadata: func() *models.EventMetadata {
				m := cloudEventMetadata()
				m.DataContentType = "text/plain"
				return m
			},
			wantErr: ErrUnsupportedContentType,
			level:   logrus.WarnLevel,
		},
		{
			name: "content type with parameters",
			metadata: func() *models.EventMetadata {
				m := cloudEventMetadata()
				m.DataContentType = "application/json; charset=utf-8"
				return m
			},
			wantErr: ErrUnsupportedContentType,
			level:   logrus.WarnLevel,
		},
		{
			name: "unaccepted event type",
			metadata: func() *models.EventMetadata {
				m := cloudEventMetadata()
				m.Type = "MissionStartedEvent"
				return m
			},
			wantErr: ErrUnsupportedEventType,
			level:   logrus.DebugLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, hook := newTestValidator()
			msg, _ := newMessage(t, tt.metadata(), validPayload("PICKEDUP"))

			event, err := v.Validate(msg)

			assert.Nil(t, event)
			assert.ErrorIs(t, err, tt.wantErr)
			require.Len(t, hook.AllEntries(), 1)
			assert.Equal(t, tt.level, hook.LastEntry().Level)
		})
	}
}

func TestValidate_RejectsPayload(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p map[string]any)
	}{
		{"missing responderId", func(p map[string]any) { delete(p, "responderId") }},
		{"blank responderId", func(p map[string]any) { p["responderId"] = "   " }},
		{"empty missionId", func(p map[string]any) { p["missionId"] = "" }},
		{"missing incidentId", func(p map[string]any) { delete(p, "incidentId") }},
		{"blank status", func(p map[string]any) { p["status"] = "" }},
		{"missing lat", func(p map[string]any) { delete(p, "lat") }},
		{"missing lon", func(p map[string]any) { delete(p, "lon") }},
		{"non-numeric lat", func(p map[string]any) { p["lat"] = "north" }},
		{"quoted lat", func(p map[string]any) { p["lat"] = "34.18" }},
		{"object lon", func(p map[string]any) { p["lon"] = map[string]any{"value": 1} }},
		{"null lon", func(p map[string]any) { p["lon"] = nil }},
		{"missing human", func(p map[string]any) { delete(p, "human") }},
		{"missing continue", func(p map[string]any) { delete(p, "continue") }},
		{"string flag", func(p map[string]any) { p["continue"] = "yes" }},
		{"numeric responderId", func(p map[string]any) { p["responderId"] = 42 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, hook := newTestValidator()
			payload := validPayload("PICKEDUP")
			tt.mutate(payload)
			msg, _ := newMessage(t, cloudEventMetadata(), payload)

			event, err := v.Validate(msg)

			assert.Nil(t, event)
			assert.ErrorIs(t, err, ErrMalformedPayload)
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		})
	}
}

func TestValidate_RejectsNonObjectPayload(t *testing.T) {
	v, _ := newTestValidator()
	for _, body := range []string{"", "not json", "[1,2]", "null", `"PICKEDUP"`} {
		msg := models.NewMessage(cloudEventMetadata(), []byte(body), nil)

		_, err := v.Validate(msg)
		assert.ErrorIs(t, err, ErrMalformedPayload, body)
	}
}

func TestValidate_FalseFlagsAndZeroCoordinatesArePresent(t *testing.T) {
	v, _ := newTestValidator()
	payload := validPayload("MOVING")
	payload["lat"] = 0
	payload["lon"] = 0
	payload["human"] = false
	payload["continue"] = false
	msg, _ := newMessage(t, cloudEventMetadata(), payload)

	event, err := v.Validate(msg)

	require.NoError(t, err)
	assert.True(t, event.Lat.IsZero())
	assert.True(t, event.Lon.IsZero())
	assert.False(t, event.Continue)
}

func TestLocationUpdate_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon string
	}{
		{"short coordinates", "34.21331", "-77.88692"},
		{"beyond float64 precision", "34.123456789012345678", "-77.000000000000000000001"},
		{"integers", "0", "-180"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestValidator()
			original := &models.LocationUpdateEvent{
				ResponderID: "64",
				MissionID:   "f5a2d4b2-1f3a-4c7e-9b1e-0d3b8a7c6e5f",
				IncidentID:  "a1b2c3",
				Status:      "DROPPED",
				Lat:         decimal.RequireFromString(tt.lat),
				Lon:         decimal.RequireFromString(tt.lon),
				Human:       true,
				Continue:    false,
			}

			body, err := models.EncodeLocationUpdate(original)
			require.NoError(t, err)

			decoded, err := v.Validate(models.NewMessage(cloudEventMetadata(), body, nil))
			require.NoError(t, err)

			assert.Equal(t, original.ResponderID, decoded.ResponderID)
			assert.Equal(t, original.MissionID, decoded.MissionID)
			assert.Equal(t, original.IncidentID, decoded.IncidentID)
			assert.Equal(t, original.Status, decoded.Status)
			assert.True(t, original.Lat.Equal(decoded.Lat), "lat %s != %s", original.Lat, decoded.Lat)
			assert.True(t, original.Lon.Equal(decoded.Lon), "lon %s != %s", original.Lon, decoded.Lon)
			assert.Equal(t, original.Human, decoded.Human)
			assert.Equal(t, original.Continue, decoded.Continue)
		})
	}
}

func TestValidate_KeepsPayloadPrecision(t *testing.T) {
	v, _ := newTestValidator()
	body := []byte(`{"responderId":"64","missionId":"m-1","incidentId":"a1b2c3","status":"MOVING",` +
		`"lat":34.123456789012345678,"lon":-77.5e0,"human":false,"continue":true}`)

	event, err := v.Validate(models.NewMessage(cloudEventMetadata(), body, nil))

	require.NoError(t, err)
	assert.Equal(t, "34.123456789012345678", event.Lat.String())
	assert.True(t, event.Lon.Equal(decimal.RequireFromString("-77.5")))
}
