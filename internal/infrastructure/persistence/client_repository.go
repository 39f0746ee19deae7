package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements client.Repository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID, excluding trashed rows
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).
		Preload("Packages").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]client.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ClientModel{}).
			Preload("Packages").
			Where("deleted_at IS NULL"),
		filter,
	)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]client.Client, len(clientModels))
	for i := range clientModels {
		c, err := clientModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		clients[i] = *c
	}
	return clients, nil
}

// FindByPaymentDay finds clients whose payment is due on the given day
func (r *GormClientRepository) FindByPaymentDay(ctx context.Context, day int) ([]client.Client, error) {
	var clientModels []models.ClientModel
	if err := r.db.WithContext(ctx).
		Preload("Packages").
		Where("payment_day = ? AND deleted_at IS NULL", day).
		Order("name ASC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]client.Client, len(clientModels))
	for i := range clientModels {
		c, err := clientModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		clients[i] = *c
	}
	return clients, nil
}

// Save creates or updates a client together with its package list
func (r *GormClientRepository) Save(ctx context.Context, c *client.Client) error {
	model, err := models.ClientModelFromDomain(c)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Packages").Save(model).Error; err != nil {
			return err
		}
		return r.syncPackages(tx, c.ID, model.Packages)
	})
}

// SaveWithLock saves a client with an optimistic version check. The update
// only lands when the stored version still matches the one the client was
// loaded with; on success the in-memory version moves forward too.
func (r *GormClientRepository) SaveWithLock(ctx context.Context, c *client.Client) error {
	model, err := models.ClientModelFromDomain(c)
	if err != nil {
		return err
	}
	model.Version = c.Version + 1

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ClientModel{}).
			Where("id = ? AND version = ?", c.ID, c.Version).
			Select("*").Omit("id", "created_at", "Packages").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return r.syncPackages(tx, c.ID, model.Packages)
	})
	if err != nil {
		return err
	}

	c.IncrementVersion()
	return nil
}

// syncPackages replaces the stored package rows with the given set: rows
// that disappeared from the aggregate are deleted, the rest upserted.
func (r *GormClientRepository) syncPackages(tx *gorm.DB, clientID uuid.UUID, packages []models.PackageModel) error {
	ids := make([]uuid.UUID, len(packages))
	for i, p := range packages {
		ids[i] = p.ID
	}

	query := tx.Where("client_id = ?", clientID)
	if len(ids) > 0 {
		query = query.Where("id NOT IN ?", ids)
	}
	if err := query.Delete(&models.PackageModel{}).Error; err != nil {
		return err
	}

	if len(packages) == 0 {
		return nil
	}
	return tx.Save(&packages).Error
}

// Delete moves a client to the trash
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("deleted_at IS NULL"),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filtering, pagination and ordering to a query
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR instagram LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "payment_day":
			query = query.Where("payment_day = ?", value)
		}
	}

	return query
}
