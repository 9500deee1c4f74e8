package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/firewatch/fire-incident-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNotFound возвращается, когда запись с указанным object_id отсутствует в хранилище
var ErrNotFound = errors.New("fire incident not found")

// FireIncidentRepository определяет контракт для работы с хранилищем записей
type FireIncidentRepository interface {
	Create(ctx context.Context, incident *models.FireIncident) error
	GetByID(ctx context.Context, id int64) (*models.FireIncident, error)
	Update(ctx context.Context, incident *models.FireIncident) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.FireIncident, error)
	ListByPooCounty(ctx context.Context, pooCounty string) ([]*models.FireIncident, error)
	GetFromCache(ctx context.Context, id int64) (*models.FireIncident, error)
	SetCache(ctx context.Context, incident *models.FireIncident) error
	InvalidateCache(ctx context.Context, id int64) error
}

// FireIncidentService определяет контракт для бизнес-логики управления записями
type FireIncidentService interface {
	CreateIncident(ctx context.Context, incident *models.FireIncident) error
	GetIncident(ctx context.Context, id int64) (*models.FireIncident, error)
	UpdateIncident(ctx context.Context, incident *models.FireIncident) error
	DeleteIncident(ctx context.Context, id int64) error
	ListIncidents(ctx context.Context, pooCounty string) ([]*models.FireIncident, error)
}

type fireIncidentService struct {
	repo   FireIncidentRepository
	logger *logrus.Logger
}

func NewFireIncidentService(repo FireIncidentRepository, logger *logrus.Logger) FireIncidentService {
	return &fireIncidentService{
		repo:   repo,
		logger: logger,
	}
}

// CreateIncident сохраняет новую запись, object_id присваивается хранилищем
func (s *fireIncidentService) CreateIncident(ctx context.Context, incident *models.FireIncident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "fire_incident",
		"method":        "CreateIncident",
		"incident_name": incident.IncidentName,
	})
	log.Info("Attempting to create a new fire incident")

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create fire incident in repository")
		return fmt.Errorf("service: could not create fire incident: %w", err)
	}

	log.WithField("object_id", incident.ObjectID).Info("Fire incident created successfully")
	return nil
}

// GetIncident получает запись по object_id, сначала пробуя кеш
func (s *fireIncidentService) GetIncident(ctx context.Context, id int64) (*models.FireIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "fire_incident",
		"method":    "GetIncident",
		"object_id": id,
	})
	log.Info("Fetching fire incident by object_id")

	cached, err := s.repo.GetFromCache(ctx, id)
	if err != nil {
		// Сбой кеша не фатален, идем в БД
		log.WithError(err).Warn("Failed to read fire incident from cache")
	}
	if cached != nil {
		log.Info("Fire incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get fire incident from repository")
		return nil, fmt.Errorf("service: could not get fire incident: %w", err)
	}

	if err := s.repo.SetCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache fire incident")
	}

	log.Info("Fire incident fetched successfully")
	return incident, nil
}

// UpdateIncident полностью перезаписывает все поля существующей записи.
// object_id неизменяем: запись с этим идентификатором должна уже существовать.
func (s *fireIncidentService) UpdateIncident(ctx context.Context, incident *models.FireIncident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "fire_incident",
		"method":    "UpdateIncident",
		"object_id": incident.ObjectID,
	})
	log.Info("Attempting to update fire incident")

	if _, err := s.repo.GetByID(ctx, incident.ObjectID); err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent fire incident")
		return fmt.Errorf("service: fire incident with object_id %d not found for update: %w", incident.ObjectID, err)
	}

	if err := s.repo.Update(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to update fire incident in repository")
		return fmt.Errorf("service: could not update fire incident: %w", err)
	}

	if err := s.repo.InvalidateCache(ctx, incident.ObjectID); err != nil {
		log.WithError(err).Warn("Failed to invalidate fire incident cache")
	}

	log.Info("Fire incident updated successfully")
	return nil
}

// DeleteIncident удаляет запись. Отсутствие записи не считается ошибкой,
// повторное удаление того же object_id идемпотентно.
func (s *fireIncidentService) DeleteIncident(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "fire_incident",
		"method":    "DeleteIncident",
		"object_id": id,
	})
	log.Info("Attempting to delete fire incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete fire incident in repository")
		return fmt.Errorf("service: could not delete fire incident: %w", err)
	}

	if err := s.repo.InvalidateCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate fire incident cache")
	}

	log.Info("Fire incident delete complete")
	return nil
}

// ListIncidents возвращает все записи либо подмножество с точным совпадением poo_county
func (s *fireIncidentService) ListIncidents(ctx context.Context, pooCounty string) ([]*models.FireIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "fire_incident",
		"method":     "ListIncidents",
		"poo_county": pooCounty,
	})
	log.Info("Listing fire incidents")

	var (
		incidents []*models.FireIncident
		err       error
	)
	if pooCounty != "" {
		incidents, err = s.repo.ListByPooCounty(ctx, pooCounty)
	} else {
		incidents, err = s.repo.List(ctx)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list fire incidents from repository")
		return nil, fmt.Errorf("service: could not list fire incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Fire incidents listed successfully")
	return incidents, nil
}
