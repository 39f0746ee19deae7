package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/publication"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPublicationRepository implements publication.Repository using GORM
type GormPublicationRepository struct {
	db *gorm.DB
}

// NewGormPublicationRepository creates a new GormPublicationRepository
func NewGormPublicationRepository(db *gorm.DB) *GormPublicationRepository {
	return &GormPublicationRepository{db: db}
}

// FindByID finds a publication by its ID, excluding trashed rows
func (r *GormPublicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	var model models.PublicationModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds publications matching the filter
func (r *GormPublicationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]publication.Publication, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PublicationModel{}).Where("deleted_at IS NULL"),
		filter,
	)
	return r.findAll(query)
}

// FindByClient finds publications for a client
func (r *GormPublicationRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]publication.Publication, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PublicationModel{}).
			Where("client_id = ? AND deleted_at IS NULL", clientID),
		filter,
	)
	return r.findAll(query)
}

// FindByDateRange finds publications scheduled inside [from, to)
func (r *GormPublicationRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]publication.Publication, error) {
	query := r.db.WithContext(ctx).Model(&models.PublicationModel{}).
		Where("date >= ? AND date < ? AND deleted_at IS NULL", from, to).
		Order("date ASC")
	return r.findAll(query)
}

// FindTrashed lists publications currently in the trash
func (r *GormPublicationRepository) FindTrashed(ctx context.Context, filter shared.Filter) ([]publication.Publication, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PublicationModel{}).Where("deleted_at IS NOT NULL"),
		filter,
	)
	return r.findAll(query)
}

// FindTrashedByID finds a trashed publication by its ID
func (r *GormPublicationRepository) FindTrashedByID(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	var model models.PublicationModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// Save creates or updates a publication
func (r *GormPublicationRepository) Save(ctx context.Context, p *publication.Publication) error {
	model, err := models.PublicationModelFromDomain(p)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts publications matching the filter
func (r *GormPublicationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.PublicationModel{}).Where("deleted_at IS NULL"),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// findAll runs a prepared query and maps the rows to domain publications
func (r *GormPublicationRepository) findAll(query *gorm.DB) ([]publication.Publication, error) {
	var publicationModels []models.PublicationModel
	if err := query.Find(&publicationModels).Error; err != nil {
		return nil, err
	}

	publications := make([]publication.Publication, len(publicationModels))
	for i := range publicationModels {
		p, err := publicationModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		publications[i] = *p
	}
	return publications, nil
}

// applyFilter applies filtering, pagination and ordering to a query
func (r *GormPublicationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("date ASC")
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormPublicationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "designer":
			query = query.Where("designer = ?", value)
		case "package_id":
			query = query.Where("package_id = ?", value)
		}
	}

	return query
}

// GormNoteRepository implements publication.NoteRepository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// FindByID finds a note by its ID
func (r *GormNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*publication.Note, error) {
	var model models.NoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPublication lists the notes of a publication, oldest first
func (r *GormNoteRepository) FindByPublication(ctx context.Context, publicationID uuid.UUID) ([]publication.Note, error) {
	var noteModels []models.NoteModel
	if err := r.db.WithContext(ctx).
		Where("publication_id = ?", publicationID).
		Order("created_at ASC").
		Find(&noteModels).Error; err != nil {
		return nil, err
	}

	notes := make([]publication.Note, len(noteModels))
	for i := range noteModels {
		notes[i] = *noteModels[i].ToDomain()
	}
	return notes, nil
}

// Save creates or updates a note
func (r *GormNoteRepository) Save(ctx context.Context, n *publication.Note) error {
	return r.db.WithContext(ctx).Save(models.NoteModelFromDomain(n)).Error
}

// Delete removes a note permanently
func (r *GormNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.NoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
