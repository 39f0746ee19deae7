// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: Base persistence models (BaseModel, AggregateModel)
// - client.go: Client aggregate with its package child rows
// - publication.go: Publications with flat status flag columns, plus notes
// - task.go / planning.go: Tasks with reminders and the planning grid
// - messaging.go / billing.go / directory.go / notification.go: the rest
package models

// AllModels returns every persistence model, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&ClientModel{},
		&PackageModel{},
		&PublicationModel{},
		&NoteModel{},
		&TaskModel{},
		&PlanningEntryModel{},
		&TemplateModel{},
		&InvoiceModel{},
		&PackagePriceModel{},
		&DesignerModel{},
		&ClientLinkModel{},
		&NotificationModel{},
	}
}
