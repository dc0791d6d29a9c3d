package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/mission_location_service/internal/config"
	"github.com/shenikar/mission_location_service/internal/models"
	"github.com/shenikar/mission_location_service/internal/service"
	"github.com/shenikar/mission_location_service/internal/service/mocks"
)

const testAPIKey = "test-api-key"

const testPayload = `{"responderId":"responder-1","missionId":"mission-1","incidentId":"incident-1",` +
	`"status":"PICKEDUP","lat":34.21331,"lon":-77.88692,"human":false,"continue":true}`

// newTestRouter wires a real pipeline with mocked collaborators behind the v1 routes
func newTestRouter(t *testing.T, checks map[string]HealthCheck) (*gin.Engine, *mocks.MockMissionRepository, *mocks.MockEventSink) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMissionRepository(ctrl)
	sinkMock := mocks.NewMockEventSink(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	pipeline := service.NewUpdatePipeline(service.NewEnvelopeValidator(logger), repoMock, sinkMock, logger)
	cfg := &config.Config{APIKeys: []string{testAPIKey}}
	handler := NewHandler(pipeline, logger, cfg, checks)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router, repoMock, sinkMock
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func binaryModeHeaders() map[string]string {
	return map[string]string{
		"X-API-Key":      testAPIKey,
		"Content-Type":   "application/json",
		"ce-specversion": "1.0",
		"ce-id":          "ce-1",
		"ce-source":      "responder-simulator",
		"ce-type":        service.ResponderLocationUpdatedEvent,
	}
}

func decodeOutcome(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp LocationUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Outcome
}

func TestSubmitLocationUpdate_BinaryMode(t *testing.T) {
	router, repoMock, sinkMock := newTestRouter(t, nil)
	mission := &models.Mission{ID: "mission-1", IncidentID: "incident-1", ResponderID: "responder-1", Status: models.MissionStatusCreated}

	gomock.InOrder(
		repoMock.EXPECT().Get(gomock.Any(), "incident-1:responder-1").Return(mission, nil),
		sinkMock.EXPECT().MissionPickedUp(gomock.Any(), mission).Return(nil),
		repoMock.EXPECT().Add(gomock.Any(), mission).Return(nil),
	)

	w := makeRequest(router, http.MethodPost, "/api/v1/location-updates", bytes.NewBufferString(testPayload), binaryModeHeaders())

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "processed", decodeOutcome(t, w))
	assert.Equal(t, models.MissionStatusUpdated, mission.Status)
	assert.Len(t, mission.ResponderLocationHistory, 1)
}

func TestSubmitLocationUpdate_StructuredMode(t *testing.T) {
	router, repoMock, _ := newTestRouter(t, nil)
	body := `{"specversion":"1.0","id":"ce-2","source":"responder-simulator","type":"ResponderLocationUpdatedEvent",` +
		`"datacontenttype":"application/json","data":` + testPayload + `}`

	repoMock.EXPECT().Get(gomock.Any(), "incident-1:responder-1").Return(nil, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/location-updates", bytes.NewBufferString(body), map[string]string{
		"X-API-Key":    testAPIKey,
		"Content-Type": "application/cloudevents+json",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "mission_not_found", decodeOutcome(t, w))
}

func TestSubmitLocationUpdate_NotACloudEvent(t *testing.T) {
	router, _, _ := newTestRouter(t, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/location-updates", bytes.NewBufferString(testPayload), map[string]string{
		"X-API-Key":    testAPIKey,
		"Content-Type": "application/json",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "rejected", decodeOutcome(t, w))
}

func TestSubmitLocationUpdate_RequiresAPIKey(t *testing.T) {
	router, _, _ := newTestRouter(t, nil)
	headers := binaryModeHeaders()
	delete(headers, "X-API-Key")

	w := makeRequest(router, http.MethodPost, "/api/v1/location-updates", bytes.NewBufferString(testPayload), headers)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	headers["Authorization"] = "Bearer wrong-key"
	w = makeRequest(router, http.MethodPost, "/api/v1/location-updates", bytes.NewBufferString(testPayload), headers)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStats(t *testing.T) {
	router, _, _ := newTestRouter(t, nil)

	makeRequest(router, http.MethodPost, "/api/v1/location-updates", bytes.NewBufferString("{}"), map[string]string{
		"Authorization": "Bearer " + testAPIKey,
	})
	w := makeRequest(router, http.MethodGet, "/api/v1/stats", nil, map[string]string{"X-API-Key": testAPIKey})

	require.Equal(t, http.StatusOK, w.Code)
	var stats StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.Received)
	assert.EqualValues(t, 1, stats.Rejected)
}

func TestHealthCheck(t *testing.T) {
	router, _, _ := newTestRouter(t, map[string]HealthCheck{
		"redis": func(context.Context) error { return nil },
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Dependencies["redis"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	router, _, _ := newTestRouter(t, map[string]HealthCheck{
		"redis": func(context.Context) error { return nil },
		"kafka": func(context.Context) error { return errors.New("no brokers available") },
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil, nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "no brokers available", resp.Dependencies["kafka"])
}
