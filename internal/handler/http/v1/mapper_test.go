package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firewatch/fire-incident-service/internal/models"
)

func TestRequestToFireIncident_RoundTrip(t *testing.T) {
	containment := time.Date(2020, 6, 15, 12, 30, 0, 0, time.FixedZone("", -7*3600))
	discovery := time.Date(2020, 6, 14, 8, 0, 0, 0, time.UTC)
	original := &models.FireIncident{
		ObjectID:              7,
		X:                     1.5,
		Y:                     -2.5,
		IncidentSize:          1042.7,
		ContainmentDatetime:   containment,
		FireDiscoveryDatetime: discovery,
		IncidentName:          "Santa Monica, CA",
		IncidentTypeCategory:  "RX",
		InitialLatitude:       34.02,
		InitialLongitude:      -118.48,
		PooCity:               "Santa Clarita",
		PooCounty:             "Los Angeles",
		PooState:              "US-CA",
		FireCauseID:           3,
		PooLandownerCategory:  "private",
		UniqueFireIdentifier:  "1992-HIHKP-009203",
	}

	// Сериализуем в DTO ответа, гоним через JSON и обратно в модель
	resp := FireIncidentToResponse(original)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var req FireIncidentRequest
	require.NoError(t, json.Unmarshal(raw, &req))

	restored, err := RequestToFireIncident(req)
	require.NoError(t, err)

	assert.Equal(t, original.ObjectID, restored.ObjectID)
	assert.Equal(t, original.X, restored.X)
	assert.Equal(t, original.Y, restored.Y)
	assert.Equal(t, original.IncidentSize, restored.IncidentSize)
	assert.True(t, original.ContainmentDatetime.Equal(restored.ContainmentDatetime))
	assert.True(t, original.FireDiscoveryDatetime.Equal(restored.FireDiscoveryDatetime))
	assert.Equal(t, original.IncidentName, restored.IncidentName)
	assert.Equal(t, original.IncidentTypeCategory, restored.IncidentTypeCategory)
	assert.Equal(t, original.InitialLatitude, restored.InitialLatitude)
	assert.Equal(t, original.InitialLongitude, restored.InitialLongitude)
	assert.Equal(t, original.PooCity, restored.PooCity)
	assert.Equal(t, original.PooCounty, restored.PooCounty)
	assert.Equal(t, original.PooState, restored.PooState)
	assert.Equal(t, original.FireCauseID, restored.FireCauseID)
	assert.Equal(t, original.PooLandownerCategory, restored.PooLandownerCategory)
	assert.Equal(t, original.UniqueFireIdentifier, restored.UniqueFireIdentifier)

	// Смещение часового пояса переживает round-trip
	_, originalOffset := original.ContainmentDatetime.Zone()
	_, restoredOffset := restored.ContainmentDatetime.Zone()
	assert.Equal(t, originalOffset, restoredOffset)
}

func TestRequestToFireIncident_InvalidTimestamp(t *testing.T) {
	req := newFireIncidentRequest()
	req.FireDiscoveryDatetime = ptr("2020-13-45")

	_, err := RequestToFireIncident(req)
	require.Error(t, err)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "fire_discovery_datetime", verr.Field)
}

func TestRequestToFireIncident_ObjectIDOptional(t *testing.T) {
	req := newFireIncidentRequest()
	req.ObjectID = nil

	incident, err := RequestToFireIncident(req)
	require.NoError(t, err)
	assert.Equal(t, int64(0), incident.ObjectID)
}
