package models

import (
	"fmt"
	"time"
)

// TimestampLayout — формат ISO-8601 для сериализации полей дат
const TimestampLayout = time.RFC3339

// FireIncident представляет одну запись о лесном пожаре
type FireIncident struct {
	ObjectID              int64     `json:"object_id"`
	X                     float64   `json:"x"`
	Y                     float64   `json:"y"`
	IncidentSize          float64   `json:"incident_size"`
	ContainmentDatetime   time.Time `json:"containment_datetime"`
	FireDiscoveryDatetime time.Time `json:"fire_discovery_datetime"`
	IncidentName          string    `json:"incident_name"`
	IncidentTypeCategory  string    `json:"incident_type_category"`
	InitialLatitude       float64   `json:"initial_latitude"`
	InitialLongitude      float64   `json:"initial_longitude"`
	PooCity               string    `json:"poo_city"`
	PooCounty             string    `json:"poo_county"`
	PooState              string    `json:"poo_state"`
	FireCauseID           int64     `json:"fire_cause_id"`
	PooLandownerCategory  string    `json:"poo_landowner_category"`
	UniqueFireIdentifier  string    `json:"unique_fire_identifier"`
}

// ValidationError — ошибка десериализации: отсутствующее или некорректное поле
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid FireIncident: %s", e.Message)
}

// NewMissingFieldError создает ValidationError для отсутствующего поля
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("missing %s", field),
	}
}

// NewInvalidTimestampError создает ValidationError для поля с нераспознанной датой
func NewInvalidTimestampError(field, value string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s is not a valid ISO-8601 timestamp: %q", field, value),
	}
}

// ParseTimestamp разбирает строку ISO-8601 с сохранением смещения часового пояса
func ParseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, NewInvalidTimestampError(field, value)
	}
	return t, nil
}
