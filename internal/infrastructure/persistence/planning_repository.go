package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/agency/backend/internal/domain/planning"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPlanningRepository implements planning.Repository using GORM
type GormPlanningRepository struct {
	db *gorm.DB
}

// NewGormPlanningRepository creates a new GormPlanningRepository
func NewGormPlanningRepository(db *gorm.DB) *GormPlanningRepository {
	return &GormPlanningRepository{db: db}
}

// FindByKey finds the entry for a client and month, if any
func (r *GormPlanningRepository) FindByKey(ctx context.Context, clientID uuid.UUID, month time.Time) (*planning.Entry, error) {
	var model models.PlanningEntryModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND month = ?", clientID, planning.MonthStart(month)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByMonth lists all entries for a month
func (r *GormPlanningRepository) FindByMonth(ctx context.Context, month time.Time) ([]planning.Entry, error) {
	var entryModels []models.PlanningEntryModel
	if err := r.db.WithContext(ctx).
		Where("month = ?", planning.MonthStart(month)).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

// FindByClient lists all entries for a client, newest month first
func (r *GormPlanningRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]planning.Entry, error) {
	var entryModels []models.PlanningEntryModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("month DESC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

// Upsert creates or updates the entry on its (client, month) natural key
func (r *GormPlanningRepository) Upsert(ctx context.Context, e *planning.Entry) error {
	model := models.PlanningEntryModelFromDomain(e)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "description", "updated_at"}),
		}).
		Create(model).Error
}

// Delete removes the entry for a client and month
func (r *GormPlanningRepository) Delete(ctx context.Context, clientID uuid.UUID, month time.Time) error {
	result := r.db.WithContext(ctx).
		Where("client_id = ? AND month = ?", clientID, planning.MonthStart(month)).
		Delete(&models.PlanningEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainEntries(entryModels []models.PlanningEntryModel) []planning.Entry {
	entries := make([]planning.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = *entryModels[i].ToDomain()
	}
	return entries
}
