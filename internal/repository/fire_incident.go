package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/firewatch/fire-incident-service/internal/models"
	"github.com/firewatch/fire-incident-service/internal/service"
)

const incidentColumns = `
	object_id,
	x,
	y,
	incident_size,
	containment_datetime,
	fire_discovery_datetime,
	incident_name,
	incident_type_category,
	initial_latitude,
	initial_longitude,
	poo_city,
	poo_county,
	poo_state,
	fire_cause_id,
	poo_landowner_category,
	unique_fire_identifier`

type FireIncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewFireIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.FireIncidentRepository {
	return &FireIncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create вставляет новую запись, object_id присваивается базой
func (r *FireIncidentRepository) Create(ctx context.Context, incident *models.FireIncident) error {
	query := `
		INSERT INTO fire_incidents (
			x,
			y,
			incident_size,
			containment_datetime,
			fire_discovery_datetime,
			incident_name,
			incident_type_category,
			initial_latitude,
			initial_longitude,
			poo_city,
			poo_county,
			poo_state,
			fire_cause_id,
			poo_landowner_category,
			unique_fire_identifier
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING object_id;
	`
	err := r.db.QueryRow(ctx, query,
		incident.X,
		incident.Y,
		incident.IncidentSize,
		incident.ContainmentDatetime,
		incident.FireDiscoveryDatetime,
		incident.IncidentName,
		incident.IncidentTypeCategory,
		incident.InitialLatitude,
		incident.InitialLongitude,
		incident.PooCity,
		incident.PooCounty,
		incident.PooState,
		incident.FireCauseID,
		incident.PooLandownerCategory,
		incident.UniqueFireIdentifier,
	).Scan(&incident.ObjectID)
	if err != nil {
		return fmt.Errorf("failed to create fire incident: %w", err)
	}
	return nil
}

// GetByID возвращает запись по object_id
func (r *FireIncidentRepository) GetByID(ctx context.Context, id int64) (*models.FireIncident, error) {
	incident := &models.FireIncident{}
	query := `
		SELECT ` + incidentColumns + `
		FROM fire_incidents
		WHERE object_id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ObjectID,
		&incident.X,
		&incident.Y,
		&incident.IncidentSize,
		&incident.ContainmentDatetime,
		&incident.FireDiscoveryDatetime,
		&incident.IncidentName,
		&incident.IncidentTypeCategory,
		&incident.InitialLatitude,
		&incident.InitialLongitude,
		&incident.PooCity,
		&incident.PooCounty,
		&incident.PooState,
		&incident.FireCauseID,
		&incident.PooLandownerCategory,
		&incident.UniqueFireIdentifier,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fire incident with object_id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get fire incident by object_id: %w", err)
	}
	return incident, nil
}

// Update перезаписывает все поля записи, object_id не меняется
func (r *FireIncidentRepository) Update(ctx context.Context, incident *models.FireIncident) error {
	query := `
		UPDATE fire_incidents SET
			x = $1,
			y = $2,
			incident_size = $3,
			containment_datetime = $4,
			fire_discovery_datetime = $5,
			incident_name = $6,
			incident_type_category = $7,
			initial_latitude = $8,
			initial_longitude = $9,
			poo_city = $10,
			poo_county = $11,
			poo_state = $12,
			fire_cause_id = $13,
			poo_landowner_category = $14,
			unique_fire_identifier = $15
		WHERE object_id = $16;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.X,
		incident.Y,
		incident.IncidentSize,
		incident.ContainmentDatetime,
		incident.FireDiscoveryDatetime,
		incident.IncidentName,
		incident.IncidentTypeCategory,
		incident.InitialLatitude,
		incident.InitialLongitude,
		incident.PooCity,
		incident.PooCounty,
		incident.PooState,
		incident.FireCauseID,
		incident.PooLandownerCategory,
		incident.UniqueFireIdentifier,
		incident.ObjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fire incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("fire incident with object_id %d: %w", incident.ObjectID, service.ErrNotFound)
	}
	return nil
}

// Delete удаляет запись. Отсутствие строки не является ошибкой
func (r *FireIncidentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM fire_incidents WHERE object_id = $1;`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete fire incident: %w", err)
	}
	return nil
}

// List возвращает все записи в порядке присвоения object_id
func (r *FireIncidentRepository) List(ctx context.Context) ([]*models.FireIncident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM fire_incidents
		ORDER BY object_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fire incidents: %w", err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

// ListByPooCounty возвращает записи с точным совпадением poo_county
func (r *FireIncidentRepository) ListByPooCounty(ctx context.Context, pooCounty string) ([]*models.FireIncident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM fire_incidents
		WHERE poo_county = $1
		ORDER BY object_id;
	`
	rows, err := r.db.Query(ctx, query, pooCounty)
	if err != nil {
		return nil, fmt.Errorf("failed to list fire incidents by poo_county: %w", err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

func scanIncidents(rows pgx.Rows) ([]*models.FireIncident, error) {
	incidents := make([]*models.FireIncident, 0)
	for rows.Next() {
		incident := &models.FireIncident{}
		err := rows.Scan(
			&incident.ObjectID,
			&incident.X,
			&incident.Y,
			&incident.IncidentSize,
			&incident.ContainmentDatetime,
			&incident.FireDiscoveryDatetime,
			&incident.IncidentName,
			&incident.IncidentTypeCategory,
			&incident.InitialLatitude,
			&incident.InitialLongitude,
			&incident.PooCity,
			&incident.PooCounty,
			&incident.PooState,
			&incident.FireCauseID,
			&incident.PooLandownerCategory,
			&incident.UniqueFireIdentifier,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fire incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during fire incident rows iteration: %w", err)
	}
	return incidents, nil
}

// GetFromCache пытается получить запись из Redis, nil без ошибки при промахе
func (r *FireIncidentRepository) GetFromCache(ctx context.Context, id int64) (*models.FireIncident, error) {
	key := cacheKey(id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fire incident from cache: %w", err)
	}

	incident := &models.FireIncident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fire incident from cache: %w", err)
	}
	return incident, nil
}

// SetCache сохраняет запись в Redis с TTL из конфигурации
func (r *FireIncidentRepository) SetCache(ctx context.Context, incident *models.FireIncident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal fire incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(incident.ObjectID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set fire incident in cache: %w", err)
	}
	return nil
}

// InvalidateCache удаляет запись из Redis кеша
func (r *FireIncidentRepository) InvalidateCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate fire incident cache: %w", err)
	}
	return nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("fire_incident:%d", id)
}
