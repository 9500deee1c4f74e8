package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/firewatch/fire-incident-service/internal/models"
	"github.com/firewatch/fire-incident-service/internal/service"
	"github.com/firewatch/fire-incident-service/internal/service/mocks"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockFireIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockFireIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(mockService, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	handler.RegisterRoutes(router)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ptr[T any](v T) *T {
	return &v
}

// newFireIncidentRequest - полностью заполненное тело запроса
func newFireIncidentRequest() FireIncidentRequest {
	return FireIncidentRequest{
		X:                     ptr(1.0),
		Y:                     ptr(2.0),
		IncidentSize:          ptr(100.0),
		ContainmentDatetime:   ptr("2020-01-01T00:00:00+00:00"),
		FireDiscoveryDatetime: ptr("2020-01-01T00:00:00+00:00"),
		IncidentName:          ptr("Test Fire"),
		IncidentTypeCategory:  ptr("WF"),
		InitialLatitude:       ptr(34.0),
		InitialLongitude:      ptr(-118.0),
		PooCity:               ptr("LA"),
		PooCounty:             ptr("Los Angeles"),
		PooState:              ptr("US-CA"),
		FireCauseID:           ptr(int64(1)),
		PooLandownerCategory:  ptr("federal"),
		UniqueFireIdentifier:  ptr("1994-AZCRA-000037"),
	}
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Healthy", resp.Message)
}

func TestIndex(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IndexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FireIncident REST API Service", resp.Name)
	assert.Equal(t, "1.0", resp.Version)
	assert.Equal(t, "http://example.com/fires", resp.Paths)
}

func TestRequestIDHeader(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/healthcheck", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	// Переданный клиентом идентификатор сохраняется
	w = makeRequest(router, "GET", "/healthcheck", nil, map[string]string{RequestIDHeader: "my-request"})
	assert.Equal(t, "my-request", w.Header().Get(RequestIDHeader))
}

func TestListFireIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedIncidents := []*models.FireIncident{
		{ObjectID: 1, IncidentName: "Fire 1", PooCounty: "Los Angeles"},
		{ObjectID: 2, IncidentName: "Fire 2", PooCounty: "Ventura"},
	}

	mockService.EXPECT().ListIncidents(gomock.Any(), "").Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/fires", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FireIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedIncidents[0].IncidentName, resp[0].IncidentName)
}

func TestListFireIncidents_FilterByPooCounty(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedIncidents := []*models.FireIncident{
		{ObjectID: 1, IncidentName: "Fire 1", PooCounty: "Los Angeles"},
	}

	mockService.EXPECT().ListIncidents(gomock.Any(), "Los Angeles").Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/fires?poo_county=Los+Angeles", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FireIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Los Angeles", resp[0].PooCounty)
}

func TestListFireIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to list fire incidents")

	mockService.EXPECT().ListIncidents(gomock.Any(), "").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/fires", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetFireIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	containment := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	expectedIncident := &models.FireIncident{
		ObjectID:              42,
		X:                     1.0,
		Y:                     2.0,
		IncidentSize:          100.0,
		ContainmentDatetime:   containment,
		FireDiscoveryDatetime: containment,
		IncidentName:          "Test Fire",
		IncidentTypeCategory:  "WF",
		PooCounty:             "Los Angeles",
	}

	mockService.EXPECT().GetIncident(gomock.Any(), int64(42)).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", "/fires/42", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FireIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ObjectID)
	assert.Equal(t, "Test Fire", resp.IncidentName)
	assert.Equal(t, "2020-01-01T00:00:00Z", resp.ContainmentDatetime)
}

func TestGetFireIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	notFoundErr := fmt.Errorf("service: could not get fire incident: %w", service.ErrNotFound)

	mockService.EXPECT().GetIncident(gomock.Any(), int64(999)).Return(nil, notFoundErr).Times(1)

	w := makeRequest(router, "GET", "/fires/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "999")
}

func TestGetFireIncident_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/fires/not-a-number", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not-a-number")
}

func TestCreateFireIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := newFireIncidentRequest()

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.FireIncident) error {
			inc.ObjectID = 123 // object_id присваивается хранилищем
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/fires", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://example.com/fires/123", w.Header().Get("Location"))

	var resp FireIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(123), resp.ObjectID)
	assert.Equal(t, "Test Fire", resp.IncidentName)
	assert.Equal(t, "1994-AZCRA-000037", resp.UniqueFireIdentifier)
}

func TestCreateFireIncident_NoContentType(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(newFireIncidentRequest())
	w := makeRequest(router, "POST", "/fires", bytes.NewBuffer(bodyBytes), map[string]string{"Content-Type": ""})

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, w.Body.String(), "Content-Type must be application/json")
}

func TestCreateFireIncident_WrongContentType(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(newFireIncidentRequest())
	w := makeRequest(router, "POST", "/fires", bytes.NewBuffer(bodyBytes), map[string]string{"Content-Type": "text/plain"})

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, w.Body.String(), "Content-Type must be application/json")
}

func TestCreateFireIncident_EmptyBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/fires", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing")
}

func TestCreateFireIncident_MissingField(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := newFireIncidentRequest()
	reqBody.PooCounty = nil

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/fires", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing poo_county")
}

func TestCreateFireIncident_NonObjectBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/fires", bytes.NewBufferString(`"just a string"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad or no data")
}

func TestCreateFireIncident_InvalidTimestamp(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := newFireIncidentRequest()
	reqBody.ContainmentDatetime = ptr("not-a-date")

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/fires", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "containment_datetime")
}

func TestCreateFireIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to create fire incident in service")

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(newFireIncidentRequest())
	w := makeRequest(router, "POST", "/fires", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateFireIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := newFireIncidentRequest()
	reqBody.ObjectID = ptr(int64(999)) // object_id в теле должен игнорироваться

	var updated *models.FireIncident
	mockService.EXPECT().
		UpdateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.FireIncident) error {
			updated = inc
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/fires/42", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updated)
	assert.Equal(t, int64(42), updated.ObjectID)

	var resp FireIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ObjectID)
}

func TestUpdateFireIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	notFoundErr := fmt.Errorf("service: fire incident with object_id 42 not found for update: %w", service.ErrNotFound)

	mockService.EXPECT().UpdateIncident(gomock.Any(), gomock.Any()).Return(notFoundErr).Times(1)

	bodyBytes, _ := json.Marshal(newFireIncidentRequest())
	w := makeRequest(router, "PUT", "/fires/42", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestUpdateFireIncident_NoContentType(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(newFireIncidentRequest())
	w := makeRequest(router, "PUT", "/fires/42", bytes.NewBuffer(bodyBytes), map[string]string{"Content-Type": "text/plain"})

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestDeleteFireIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteIncident(gomock.Any(), int64(42)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/fires/42", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteFireIncident_Idempotent(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Повторное удаление отсутствующей записи все равно отвечает 204
	mockService.EXPECT().DeleteIncident(gomock.Any(), int64(42)).Return(nil).Times(2)

	w := makeRequest(router, "DELETE", "/fires/42", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "DELETE", "/fires/42", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteFireIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to delete fire incident")

	mockService.EXPECT().DeleteIncident(gomock.Any(), int64(42)).Return(serviceError).Times(1)

	w := makeRequest(router, "DELETE", "/fires/42", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
