package v1

import (
	"github.com/firewatch/fire-incident-service/internal/models"
)

// RequestToFireIncident преобразует DTO запроса в доменную модель.
// Возвращает *models.ValidationError, если дата не разбирается как ISO-8601.
func RequestToFireIncident(req FireIncidentRequest) (*models.FireIncident, error) {
	containment, err := models.ParseTimestamp("containment_datetime", *req.ContainmentDatetime)
	if err != nil {
		return nil, err
	}
	discovery, err := models.ParseTimestamp("fire_discovery_datetime", *req.FireDiscoveryDatetime)
	if err != nil {
		return nil, err
	}

	incident := &models.FireIncident{
		X:                     *req.X,
		Y:                     *req.Y,
		IncidentSize:          *req.IncidentSize,
		ContainmentDatetime:   containment,
		FireDiscoveryDatetime: discovery,
		IncidentName:          *req.IncidentName,
		IncidentTypeCategory:  *req.IncidentTypeCategory,
		InitialLatitude:       *req.InitialLatitude,
		InitialLongitude:      *req.InitialLongitude,
		PooCity:               *req.PooCity,
		PooCounty:             *req.PooCounty,
		PooState:              *req.PooState,
		FireCauseID:           *req.FireCauseID,
		PooLandownerCategory:  *req.PooLandownerCategory,
		UniqueFireIdentifier:  *req.UniqueFireIdentifier,
	}
	if req.ObjectID != nil {
		incident.ObjectID = *req.ObjectID
	}
	return incident, nil
}

// FireIncidentToResponse преобразует доменную модель в DTO для ответа
func FireIncidentToResponse(model *models.FireIncident) *FireIncidentResponse {
	return &FireIncidentResponse{
		ObjectID:              model.ObjectID,
		X:                     model.X,
		Y:                     model.Y,
		IncidentSize:          model.IncidentSize,
		ContainmentDatetime:   model.ContainmentDatetime.Format(models.TimestampLayout),
		FireDiscoveryDatetime: model.FireDiscoveryDatetime.Format(models.TimestampLayout),
		IncidentName:          model.IncidentName,
		IncidentTypeCategory:  model.IncidentTypeCategory,
		InitialLatitude:       model.InitialLatitude,
		InitialLongitude:      model.InitialLongitude,
		PooCity:               model.PooCity,
		PooCounty:             model.PooCounty,
		PooState:              model.PooState,
		FireCauseID:           model.FireCauseID,
		PooLandownerCategory:  model.PooLandownerCategory,
		UniqueFireIdentifier:  model.UniqueFireIdentifier,
	}
}

// FireIncidentsToResponses преобразует слайс моделей в слайс DTO
func FireIncidentsToResponses(models []*models.FireIncident) []*FireIncidentResponse {
	responses := make([]*FireIncidentResponse, len(models))
	for i, model := range models {
		responses[i] = FireIncidentToResponse(model)
	}
	return responses
}
