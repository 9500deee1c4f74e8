package v1

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/firewatch/fire-incident-service/internal/models"
	"github.com/firewatch/fire-incident-service/internal/service"
)

const (
	serviceName    = "FireIncident REST API Service"
	serviceVersion = "1.0"
)

type Handler struct {
	incidentService service.FireIncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(incidentService service.FireIncidentService, logger *logrus.Logger) *Handler {
	validate := validator.New()
	// В сообщениях об ошибках используем имена ключей из JSON, а не имена полей структуры
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validate,
	}
}

// @Summary Health check
// @Description Get liveness status of the service
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthcheck [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: http.StatusOK, Message: "Healthy"})
}

// @Summary Service descriptor
// @Description Get service name, version and the URL of the list endpoint
// @Tags System
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (h *Handler) index(c *gin.Context) {
	h.requestLogger(c, "index").Info("Request for Root URL")
	c.JSON(http.StatusOK, IndexResponse{
		Name:    serviceName,
		Version: serviceVersion,
		Paths:   listFiresURL(c),
	})
}

// @Summary List fire incidents
// @Description Get all fire incidents, optionally filtered by exact poo_county match
// @Tags FireIncidents
// @Produce json
// @Param poo_county query string false "Filter by point-of-origin county"
// @Success 200 {array} FireIncidentResponse
// @Failure 500 {object} ErrorResponse
// @Router /fires [get]
func (h *Handler) listFireIncidents(c *gin.Context) {
	pooCounty := c.Query("poo_county")
	log := h.requestLogger(c, "listFireIncidents")
	log.Info("Request for fire incident list")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), pooCounty)
	if err != nil {
		log.WithError(err).Error("Failed to list fire incidents from service")
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	log.WithField("count", len(incidents)).Info("Returning fire incidents")
	c.JSON(http.StatusOK, FireIncidentsToResponses(incidents))
}

// @Summary Get fire incident by id
// @Description Get a single fire incident by its object_id
// @Tags FireIncidents
// @Produce json
// @Param object_id path int true "Fire incident object_id"
// @Success 200 {object} FireIncidentResponse
// @Failure 404 {object} ErrorResponse
// @Router /fires/{object_id} [get]
func (h *Handler) getFireIncident(c *gin.Context) {
	id, ok := h.objectIDParam(c)
	if !ok {
		return
	}
	log := h.requestLogger(c, "getFireIncident").WithField("object_id", id)
	log.Info("Request for fire incident")

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		log.WithError(err).Error("Failed to get fire incident from service")
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("Returning fire incident")
	c.JSON(http.StatusOK, FireIncidentToResponse(incident))
}

// @Summary Create a fire incident
// @Description Create a new fire incident from the request body, object_id is assigned by storage
// @Tags FireIncidents
// @Accept json
// @Produce json
// @Param fire_incident body FireIncidentRequest true "Fire incident to create"
// @Success 201 {object} FireIncidentResponse
// @Header 201 {string} Location "URL of the created fire incident"
// @Failure 400 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /fires [post]
func (h *Handler) createFireIncident(c *gin.Context) {
	log := h.requestLogger(c, "createFireIncident")
	log.Info("Request to create a fire incident")

	if !h.checkContentType(c) {
		return
	}

	incident, ok := h.bindFireIncident(c, log)
	if !ok {
		return
	}

	if err := h.incidentService.CreateIncident(c.Request.Context(), incident); err != nil {
		log.WithError(err).Error("Failed to create fire incident in service")
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	log.WithField("object_id", incident.ObjectID).Info("Fire incident created")
	c.Header("Location", fmt.Sprintf("%s/%d", listFiresURL(c), incident.ObjectID))
	c.JSON(http.StatusCreated, FireIncidentToResponse(incident))
}

// @Summary Update a fire incident
// @Description Replace all fields of an existing fire incident, object_id is taken from the path
// @Tags FireIncidents
// @Accept json
// @Produce json
// @Param object_id path int true "Fire incident object_id"
// @Param fire_incident body FireIncidentRequest true "Full fire incident record"
// @Success 200 {object} FireIncidentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /fires/{object_id} [put]
func (h *Handler) updateFireIncident(c *gin.Context) {
	log := h.requestLogger(c, "updateFireIncident")
	log.Info("Request to update fire incident")

	if !h.checkContentType(c) {
		return
	}

	id, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	incident, ok := h.bindFireIncident(c, log)
	if !ok {
		return
	}

	// object_id в теле всегда затирается значением из пути
	incident.ObjectID = id

	if err := h.incidentService.UpdateIncident(c.Request.Context(), incident); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		log.WithError(err).Error("Failed to update fire incident in service")
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	log.WithField("object_id", id).Info("Fire incident updated")
	c.JSON(http.StatusOK, FireIncidentToResponse(incident))
}

// @Summary Delete a fire incident
// @Description Delete a fire incident by object_id, idempotent for absent ids
// @Tags FireIncidents
// @Produce json
// @Param object_id path int true "Fire incident object_id"
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Router /fires/{object_id} [delete]
func (h *Handler) deleteFireIncident(c *gin.Context) {
	id, ok := h.objectIDParam(c)
	if !ok {
		return
	}
	log := h.requestLogger(c, "deleteFireIncident").WithField("object_id", id)
	log.Info("Request to delete fire incident")

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete fire incident in service")
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("Fire incident delete complete")
	c.Status(http.StatusNoContent)
}

// bindFireIncident разбирает и валидирует тело запроса, отвечая 400 при ошибке
func (h *Handler) bindFireIncident(c *gin.Context, log *logrus.Entry) (*models.FireIncident, bool) {
	var input FireIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		errorResponse(c, http.StatusBadRequest, "body of request contained bad or no data")
		return nil, false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		message := "invalid request body"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			message = models.NewMissingFieldError(verrs[0].Field()).Error()
		}
		errorResponse(c, http.StatusBadRequest, message)
		return nil, false
	}

	incident, err := RequestToFireIncident(input)
	if err != nil {
		log.WithError(err).Warn("Failed to map request to fire incident")
		errorResponse(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return incident, true
}

// checkContentType отвечает 415, если тело запроса не application/json
func (h *Handler) checkContentType(c *gin.Context) bool {
	contentType := c.GetHeader("Content-Type")
	if contentType == "" {
		errorResponse(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		h.logger.Warnf("Invalid Content-Type: %s", contentType)
		errorResponse(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	return true
}

// objectIDParam разбирает object_id из пути, отвечая 404 при нечисловом значении
func (h *Handler) objectIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("object_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errorResponse(c, http.StatusNotFound, fmt.Sprintf("fire incident with id '%s' was not found", raw))
		return 0, false
	}
	return id, true
}

func (h *Handler) requestLogger(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": RequestIDFromContext(c),
	})
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("fire incident with id '%d' was not found", id)
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	})
}

// listFiresURL строит абсолютный URL эндпоинта списка записей
func listFiresURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/fires", scheme, c.Request.Host)
}
