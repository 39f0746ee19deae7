package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/billing"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
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

// FindAll finds invoices matching the filter
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Invoice, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("deleted_at IS NULL"),
		filter,
	)
	return r.findAll(query)
}

// FindByClient finds invoices for a client
func (r *GormInvoiceRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]billing.Invoice, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
			Where("client_id = ? AND deleted_at IS NULL", clientID),
		filter,
	)
	return r.findAll(query)
}

// FindUnpaid finds pending invoices
func (r *GormInvoiceRepository) FindUnpaid(ctx context.Context, filter shared.Filter) ([]billing.Invoice, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
			Where("status = ? AND deleted_at IS NULL", billing.InvoiceStatusPending),
		filter,
	)
	return r.findAll(query)
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, i *billing.Invoice) error {
	model, err := models.InvoiceModelFromDomain(i)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete moves an invoice to the trash
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
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

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("deleted_at IS NULL"),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// findAll runs a prepared query and maps the rows to domain invoices
func (r *GormInvoiceRepository) findAll(query *gorm.DB) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		inv, err := invoiceModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		invoices[i] = *inv
	}
	return invoices, nil
}

// applyFilter applies filtering, pagination and ordering to a query
func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("issued_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "period":
			query = query.Where("period = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}
	return query
}

// GormPackagePriceRepository implements billing.PackagePriceRepository using GORM
type GormPackagePriceRepository struct {
	db *gorm.DB
}

// NewGormPackagePriceRepository creates a new GormPackagePriceRepository
func NewGormPackagePriceRepository(db *gorm.DB) *GormPackagePriceRepository {
	return &GormPackagePriceRepository{db: db}
}

// FindByID finds a price row by its ID
func (r *GormPackagePriceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PackagePrice, error) {
	var model models.PackagePriceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists the whole price list
func (r *GormPackagePriceRepository) FindAll(ctx context.Context) ([]billing.PackagePrice, error) {
	var priceModels []models.PackagePriceModel
	if err := r.db.WithContext(ctx).
		Order("total_publications ASC").
		Find(&priceModels).Error; err != nil {
		return nil, err
	}

	prices := make([]billing.PackagePrice, len(priceModels))
	for i := range priceModels {
		prices[i] = *priceModels[i].ToDomain()
	}
	return prices, nil
}

// Save creates or updates a price row
func (r *GormPackagePriceRepository) Save(ctx context.Context, p *billing.PackagePrice) error {
	return r.db.WithContext(ctx).Save(models.PackagePriceModelFromDomain(p)).Error
}

// Delete removes a price row
func (r *GormPackagePriceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PackagePriceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
