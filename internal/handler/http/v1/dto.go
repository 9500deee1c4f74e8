package v1

// FireIncidentRequest DTO для создания и обновления записи о пожаре.
// Поля указатели, чтобы отличать отсутствующий ключ от нулевого значения;
// object_id необязателен и на входе игнорируется.
// @Description DTO для создания и обновления записи о пожаре
type FireIncidentRequest struct {
	ObjectID              *int64   `json:"object_id"`
	X                     *float64 `json:"x" validate:"required"`
	Y                     *float64 `json:"y" validate:"required"`
	IncidentSize          *float64 `json:"incident_size" validate:"required"`
	ContainmentDatetime   *string  `json:"containment_datetime" validate:"required"`
	FireDiscoveryDatetime *string  `json:"fire_discovery_datetime" validate:"required"`
	IncidentName          *string  `json:"incident_name" validate:"required"`
	IncidentTypeCategory  *string  `json:"incident_type_category" validate:"required"`
	InitialLatitude       *float64 `json:"initial_latitude" validate:"required"`
	InitialLongitude      *float64 `json:"initial_longitude" validate:"required"`
	PooCity               *string  `json:"poo_city" validate:"required"`
	PooCounty             *string  `json:"poo_county" validate:"required"`
	PooState              *string  `json:"poo_state" validate:"required"`
	FireCauseID           *int64   `json:"fire_cause_id" validate:"required"`
	PooLandownerCategory  *string  `json:"poo_landowner_category" validate:"required"`
	UniqueFireIdentifier  *string  `json:"unique_fire_identifier" validate:"required"`
}

// FireIncidentResponse DTO для ответа с записью о пожаре, даты в ISO-8601
// @Description DTO для ответа с записью о пожаре
type FireIncidentResponse struct {
	ObjectID              int64   `json:"object_id"`
	X                     float64 `json:"x"`
	Y                     float64 `json:"y"`
	IncidentSize          float64 `json:"incident_size"`
	ContainmentDatetime   string  `json:"containment_datetime"`
	FireDiscoveryDatetime string  `json:"fire_discovery_datetime"`
	IncidentName          string  `json:"incident_name"`
	IncidentTypeCategory  string  `json:"incident_type_category"`
	InitialLatitude       float64 `json:"initial_latitude"`
	InitialLongitude      float64 `json:"initial_longitude"`
	PooCity               string  `json:"poo_city"`
	PooCounty             string  `json:"poo_county"`
	PooState              string  `json:"poo_state"`
	FireCauseID           int64   `json:"fire_cause_id"`
	PooLandownerCategory  string  `json:"poo_landowner_category"`
	UniqueFireIdentifier  string  `json:"unique_fire_identifier"`
}

// HealthResponse DTO для ответа healthcheck
// @Description DTO для ответа healthcheck
type HealthResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// IndexResponse DTO для корневого описания сервиса
// @Description DTO для корневого описания сервиса
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}

// ErrorResponse DTO для тела ошибки
// @Description DTO для тела ошибки
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
