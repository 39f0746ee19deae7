package models

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientModel is the persistence model for the Client aggregate root.
type ClientModel struct {
	AggregateModel
	Name          string     `gorm:"type:varchar(200);not null;index"`
	Phone         string     `gorm:"type:varchar(50);not null"`
	PaymentDay    int        `gorm:"not null;default:1"`
	MarketingInfo string     `gorm:"type:text"`
	Instagram     string     `gorm:"type:varchar(200)"`
	Facebook      string     `gorm:"type:varchar(200)"`
	Info          string     `gorm:"type:text"`
	DeletedAt     *time.Time `gorm:"index"`

	Packages []PackageModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// PackageModel is the persistence model for a publication package. Packages
// are child rows of their client and carry no version of their own; the
// optimistic lock lives on the client row.
type PackageModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(100);not null"`
	TotalPublications int       `gorm:"not null;default:0"`
	UsedPublications  int       `gorm:"not null;default:0"`
	Month             string    `gorm:"type:varchar(20)"`
	Paid              bool      `gorm:"not null;default:false"`
	Position          int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PackageModel) TableName() string {
	return "client_packages"
}

// ToDomain converts the persistence model to a domain Package
func (m *PackageModel) ToDomain() client.Package {
	return client.Package{
		ID:                m.ID,
		Name:              m.Name,
		TotalPublications: m.TotalPublications,
		UsedPublications:  m.UsedPublications,
		Month:             m.Month,
		Paid:              m.Paid,
		Position:          m.Position,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// PackageModelFromDomain creates a persistence model from a domain Package
func PackageModelFromDomain(clientID uuid.UUID, p client.Package) PackageModel {
	return PackageModel{
		ID:                p.ID,
		ClientID:          clientID,
		Name:              p.Name,
		TotalPublications: p.TotalPublications,
		UsedPublications:  p.UsedPublications,
		Month:             p.Month,
		Paid:              p.Paid,
		Position:          p.Position,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToDomain converts the persistence model to a domain Client. Packages are
// returned in position order regardless of how the rows came back.
func (m *ClientModel) ToDomain() (*client.Client, error) {
	var info client.Info
	if m.Info != "" {
		if err := json.Unmarshal([]byte(m.Info), &info); err != nil {
			return nil, err
		}
	}

	packages := make([]client.Package, len(m.Packages))
	for i, pm := range m.Packages {
		packages[i] = pm.ToDomain()
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Position < packages[j].Position
	})

	c := &client.Client{
		Name:          m.Name,
		Phone:         m.Phone,
		PaymentDay:    m.PaymentDay,
		MarketingInfo: m.MarketingInfo,
		Instagram:     m.Instagram,
		Facebook:      m.Facebook,
		Packages:      packages,
		Info:          info,
		DeletedAt:     m.DeletedAt,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c, nil
}

// FromDomain populates the persistence model from a domain Client
func (m *ClientModel) FromDomain(c *client.Client) error {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Phone = c.Phone
	m.PaymentDay = c.PaymentDay
	m.MarketingInfo = c.MarketingInfo
	m.Instagram = c.Instagram
	m.Facebook = c.Facebook
	m.DeletedAt = c.DeletedAt

	raw, err := json.Marshal(c.Info)
	if err != nil {
		return err
	}
	m.Info = string(raw)

	m.Packages = make([]PackageModel, len(c.Packages))
	for i, p := range c.Packages {
		m.Packages[i] = PackageModelFromDomain(c.ID, p)
	}
	return nil
}

// ClientModelFromDomain creates a new persistence model from a domain Client
func ClientModelFromDomain(c *client.Client) (*ClientModel, error) {
	m := &ClientModel{}
	if err := m.FromDomain(c); err != nil {
		return nil, shared.NewDomainError("ENCODING_ERROR", "Cannot encode client info")
	}
	return m, nil
}
