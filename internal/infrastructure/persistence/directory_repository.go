package persistence

import (
	"context"
	"errors"

	"github.com/agency/backend/internal/domain/directory"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDesignerRepository implements directory.DesignerRepository using GORM
type GormDesignerRepository struct {
	db *gorm.DB
}

// NewGormDesignerRepository creates a new GormDesignerRepository
func NewGormDesignerRepository(db *gorm.DB) *GormDesignerRepository {
	return &GormDesignerRepository{db: db}
}

// FindByID finds a designer by its ID
func (r *GormDesignerRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Designer, error) {
	var model models.DesignerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists all designers
func (r *GormDesignerRepository) FindAll(ctx context.Context) ([]directory.Designer, error) {
	var designerModels []models.DesignerModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&designerModels).Error; err != nil {
		return nil, err
	}

	designers := make([]directory.Designer, len(designerModels))
	for i := range designerModels {
		designers[i] = *designerModels[i].ToDomain()
	}
	return designers, nil
}

// Save creates or updates a designer
func (r *GormDesignerRepository) Save(ctx context.Context, d *directory.Designer) error {
	return r.db.WithContext(ctx).Save(models.DesignerModelFromDomain(d)).Error
}

// Delete removes a designer
func (r *GormDesignerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DesignerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormClientLinkRepository implements directory.ClientLinkRepository using GORM
type GormClientLinkRepository struct {
	db *gorm.DB
}

// NewGormClientLinkRepository creates a new GormClientLinkRepository
func NewGormClientLinkRepository(db *gorm.DB) *GormClientLinkRepository {
	return &GormClientLinkRepository{db: db}
}

// FindByID finds a client link by its ID
func (r *GormClientLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.ClientLink, error) {
	var model models.ClientLinkModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByClient lists the links stored for a client
func (r *GormClientLinkRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]directory.ClientLink, error) {
	var linkModels []models.ClientLinkModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("label ASC").
		Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]directory.ClientLink, len(linkModels))
	for i := range linkModels {
		links[i] = *linkModels[i].ToDomain()
	}
	return links, nil
}

// Save creates or updates a client link
func (r *GormClientLinkRepository) Save(ctx context.Context, l *directory.ClientLink) error {
	return r.db.WithContext(ctx).Save(models.ClientLinkModelFromDomain(l)).Error
}

// Delete removes a client link
func (r *GormClientLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientLinkModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
