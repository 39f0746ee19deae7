package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/domain/task"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository implements task.Repository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// FindByID finds a task by its ID, excluding trashed rows
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds tasks matching the filter
func (r *GormTaskRepository) FindAll(ctx context.Context, filter shared.Filter) ([]task.Task, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.TaskModel{}).Where("deleted_at IS NULL"),
		filter,
	)
	return r.findAll(query)
}

// FindByClient finds tasks linked to a client
func (r *GormTaskRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]task.Task, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.TaskModel{}).
			Where("client_id = ? AND deleted_at IS NULL", clientID),
		filter,
	)
	return r.findAll(query)
}

// FindDueReminders finds not-completed, not-trashed tasks whose reminder
// date is at or before the given instant
func (r *GormTaskRepository) FindDueReminders(ctx context.Context, now time.Time) ([]task.Task, error) {
	query := r.db.WithContext(ctx).Model(&models.TaskModel{}).
		Where("reminder_date IS NOT NULL AND reminder_date <= ?", now).
		Where("completed = ? AND deleted_at IS NULL", false).
		Order("reminder_date ASC")
	return r.findAll(query)
}

// Save creates or updates a task
func (r *GormTaskRepository) Save(ctx context.Context, t *task.Task) error {
	return r.db.WithContext(ctx).Save(models.TaskModelFromDomain(t)).Error
}

// Count counts tasks matching the filter
func (r *GormTaskRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.TaskModel{}).Where("deleted_at IS NULL"),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// findAll runs a prepared query and maps the rows to domain tasks
func (r *GormTaskRepository) findAll(query *gorm.DB) ([]task.Task, error) {
	var taskModels []models.TaskModel
	if err := query.Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]task.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = *taskModels[i].ToDomain()
	}
	return tasks, nil
}

// applyFilter applies filtering, pagination and ordering to a query
func (r *GormTaskRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormTaskRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("content LIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "completed":
			query = query.Where("completed = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}

	return query
}
