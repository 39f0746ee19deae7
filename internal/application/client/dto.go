package client

import (
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/google/uuid"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Phone         string `json:"phone" binding:"max=50"`
	PaymentDay    int    `json:"payment_day" binding:"required,min=1,max=31"`
	MarketingInfo string `json:"marketing_info"`
	Instagram     string `json:"instagram" binding:"max=100"`
	Facebook      string `json:"facebook" binding:"max=100"`
}

// UpdateBasicInfoRequest represents a partial update of the client's basic
// fields. A nil field leaves the stored value untouched.
type UpdateBasicInfoRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	PaymentDay    *int    `json:"payment_day" binding:"omitempty,min=1,max=31"`
	MarketingInfo *string `json:"marketing_info"`
	Instagram     *string `json:"instagram" binding:"omitempty,max=100"`
	Facebook      *string `json:"facebook" binding:"omitempty,max=100"`
}

// MeetingDTO represents one meeting log entry
type MeetingDTO struct {
	Date  time.Time `json:"date" binding:"required"`
	Notes string    `json:"notes"`
}

// SocialNetworkDTO represents one tracked network/handle pair
type SocialNetworkDTO struct {
	Name   string `json:"name" binding:"required,max=100"`
	Handle string `json:"handle" binding:"max=200"`
}

// UpdateClientInfoRequest represents a partial update of the additional-info
// tab. It shares no fields with UpdateBasicInfoRequest.
type UpdateClientInfoRequest struct {
	GeneralNotes        *string             `json:"general_notes"`
	Meetings            *[]MeetingDTO       `json:"meetings"`
	SocialNetworks      *[]SocialNetworkDTO `json:"social_networks"`
	BrandingURL         *string             `json:"branding_url" binding:"omitempty,max=500"`
	PublicationSchedule *string             `json:"publication_schedule"`
}

// ClientListFilter represents filter options for the client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// ClientInfoResponse represents the additional-info tab in responses
type ClientInfoResponse struct {
	GeneralNotes        string             `json:"general_notes"`
	Meetings            []MeetingDTO       `json:"meetings"`
	SocialNetworks      []SocialNetworkDTO `json:"social_networks"`
	BrandingURL         string             `json:"branding_url"`
	PublicationSchedule string             `json:"publication_schedule"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	PaymentDay    int                `json:"payment_day"`
	MarketingInfo string             `json:"marketing_info"`
	Instagram     string             `json:"instagram"`
	Facebook      string             `json:"facebook"`
	Packages      []PackageResponse  `json:"packages"`
	Info          ClientInfoResponse `json:"info"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Version       int                `json:"version"`
}

// ClientListResponse represents a list item for clients
type ClientListResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PaymentDay   int       `json:"payment_day"`
	Instagram    string    `json:"instagram"`
	PackageCount int       `json:"package_count"`
	HasUnpaid    bool      `json:"has_unpaid"`
	CreatedAt    time.Time `json:"created_at"`
}

// =============================================================================
// Package DTOs
// =============================================================================

// AddPackageRequest represents a request to add a package to a client.
// Either a named preset or an explicit name+total must be given.
type AddPackageRequest struct {
	Preset            string `json:"preset" binding:"omitempty,oneof=basico avanzado premium"`
	Name              string `json:"name" binding:"omitempty,max=100"`
	TotalPublications *int   `json:"total_publications" binding:"omitempty,min=0"`
	Month             string `json:"month" binding:"max=20"`
}

// EditPackageRequest represents a partial update of one package
type EditPackageRequest struct {
	Name              *string `json:"name" binding:"omitempty,min=1,max=100"`
	TotalPublications *int    `json:"total_publications" binding:"omitempty,min=0"`
	UsedPublications  *int    `json:"used_publications" binding:"omitempty,min=0"`
	Month             *string `json:"month" binding:"omitempty,max=20"`
	Paid              *bool   `json:"paid"`
}

// PackageResponse represents a package in API responses
type PackageResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	TotalPublications int       `json:"total_publications"`
	UsedPublications  int       `json:"used_publications"`
	Remaining         int       `json:"remaining"`
	Completed         bool      `json:"completed"`
	Month             string    `json:"month"`
	Paid              bool      `json:"paid"`
	Position          int       `json:"position"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *client.Client) ClientResponse {
	packages := make([]PackageResponse, 0, len(c.Packages))
	for i := range c.Packages {
		packages = append(packages, ToPackageResponse(&c.Packages[i]))
	}

	return ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		PaymentDay:    c.PaymentDay,
		MarketingInfo: c.MarketingInfo,
		Instagram:     c.Instagram,
		Facebook:      c.Facebook,
		Packages:      packages,
		Info:          toClientInfoResponse(c.Info),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Version:       c.Version,
	}
}

// ToClientListResponse converts a domain client to a list item DTO
func ToClientListResponse(c *client.Client) ClientListResponse {
	return ClientListResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		PaymentDay:   c.PaymentDay,
		Instagram:    c.Instagram,
		PackageCount: len(c.Packages),
		HasUnpaid:    c.HasUnpaidPackage(),
		CreatedAt:    c.CreatedAt,
	}
}

// ToPackageResponse converts a domain package to a response DTO
func ToPackageResponse(p *client.Package) PackageResponse {
	return PackageResponse{
		ID:                p.ID,
		Name:              p.Name,
		TotalPublications: p.TotalPublications,
		UsedPublications:  p.UsedPublications,
		Remaining:         p.Remaining(),
		Completed:         p.IsCompleted(),
		Month:             p.Month,
		Paid:              p.Paid,
		Position:          p.Position,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toClientInfoResponse(info client.Info) ClientInfoResponse {
	meetings := make([]MeetingDTO, 0, len(info.Meetings))
	for _, m := range info.Meetings {
		meetings = append(meetings, MeetingDTO{Date: m.Date, Notes: m.Notes})
	}
	networks := make([]SocialNetworkDTO, 0, len(info.SocialNetworks))
	for _, n := range info.SocialNetworks {
		networks = append(networks, SocialNetworkDTO{Name: n.Name, Handle: n.Handle})
	}
	return ClientInfoResponse{
		GeneralNotes:        info.GeneralNotes,
		Meetings:            meetings,
		SocialNetworks:      networks,
		BrandingURL:         info.BrandingURL,
		PublicationSchedule: info.PublicationSchedule,
	}
}

func toDomainMeetings(dtos []MeetingDTO) []client.Meeting {
	meetings := make([]client.Meeting, 0, len(dtos))
	for _, m := range dtos {
		meetings = append(meetings, client.Meeting{Date: m.Date, Notes: m.Notes})
	}
	return meetings
}

func toDomainSocialNetworks(dtos []SocialNetworkDTO) []client.SocialNetwork {
	networks := make([]client.SocialNetwork, 0, len(dtos))
	for _, n := range dtos {
		networks = append(networks, client.SocialNetwork{Name: n.Name, Handle: n.Handle})
	}
	return networks
}
