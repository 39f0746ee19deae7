package client

import (
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Meeting is a dated entry in the client's meeting log
type Meeting struct {
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

// SocialNetwork is a network/handle pair tracked for the client
type SocialNetwork struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// Info holds the client's additional information tab. It is part of the
// Client aggregate and has no existence outside it.
type Info struct {
	GeneralNotes        string          `json:"general_notes"`
	Meetings            []Meeting       `json:"meetings"`
	SocialNetworks      []SocialNetwork `json:"social_networks"`
	BrandingURL         string          `json:"branding_url"`
	PublicationSchedule string          `json:"publication_schedule"`
}

// Client is the aggregate root for a marketing client. It owns its package
// list (insertion-ordered, unique ids) and its additional info.
type Client struct {
	shared.BaseAggregateRoot
	Name          string
	Phone         string
	PaymentDay    int
	MarketingInfo string
	Instagram     string
	Facebook      string
	Packages      []Package
	Info          Info
	DeletedAt     *time.Time
}

// NewClient creates a client with required basic fields
func NewClient(name, phone string, paymentDay int) (*Client, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if err := validatePaymentDay(paymentDay); err != nil {
		return nil, err
	}

	c := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		PaymentDay:        paymentDay,
		Packages:          make([]Package, 0),
	}

	c.AddDomainEvent(NewClientCreatedEvent(c))

	return c, nil
}

// ApplyBasicInfo merges a basic-info patch. Fields outside the patch,
// including the whole additional-info block and the package list, are left
// byte-identical.
func (c *Client) ApplyBasicInfo(patch BasicInfoPatch) error {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Phone != nil {
		if err := validatePhone(*patch.Phone); err != nil {
			return err
		}
	}
	if patch.PaymentDay != nil {
		if err := validatePaymentDay(*patch.PaymentDay); err != nil {
			return err
		}
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.PaymentDay != nil {
		c.PaymentDay = *patch.PaymentDay
	}
	if patch.MarketingInfo != nil {
		c.MarketingInfo = *patch.MarketingInfo
	}
	if patch.Instagram != nil {
		c.Instagram = *patch.Instagram
	}
	if patch.Facebook != nil {
		c.Facebook = *patch.Facebook
	}
	c.UpdatedAt = time.Now()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// ApplyInfo merges an additional-info patch. The basic fields (name, phone,
// payment day) are never touched here.
func (c *Client) ApplyInfo(patch ClientInfoPatch) {
	if patch.GeneralNotes != nil {
		c.Info.GeneralNotes = *patch.GeneralNotes
	}
	if patch.Meetings != nil {
		c.Info.Meetings = *patch.Meetings
	}
	if patch.SocialNetworks != nil {
		c.Info.SocialNetworks = *patch.SocialNetworks
	}
	if patch.BrandingURL != nil {
		c.Info.BrandingURL = *patch.BrandingURL
	}
	if patch.PublicationSchedule != nil {
		c.Info.PublicationSchedule = *patch.PublicationSchedule
	}
	c.UpdatedAt = time.Now()

	c.AddDomainEvent(NewClientUpdatedEvent(c))
}

// AddPackage appends a package to the client's list. Existing packages are
// not mutated; the new package takes the next position.
func (c *Client) AddPackage(pkg *Package) {
	pkg.Position = len(c.Packages)
	c.Packages = append(c.Packages, *pkg)
	c.UpdatedAt = time.Now()

	c.AddDomainEvent(NewPackageAddedEvent(c, pkg))
}

// findPackage returns the index of the package with the given id, or -1
func (c *Client) findPackage(packageID uuid.UUID) int {
	for i := range c.Packages {
		if c.Packages[i].ID == packageID {
			return i
		}
	}
	return -1
}

// GetPackage returns the package with the given id
func (c *Client) GetPackage(packageID uuid.UUID) (*Package, error) {
	i := c.findPackage(packageID)
	if i < 0 {
		return nil, shared.ErrNotFound
	}
	return &c.Packages[i], nil
}

// EditPackage applies a patch to the matching package, leaving every other
// package untouched
func (c *Client) EditPackage(packageID uuid.UUID, patch PackagePatch) error {
	i := c.findPackage(packageID)
	if i < 0 {
		return shared.ErrNotFound
	}
	if err := c.Packages[i].Apply(patch); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return nil
}

// RemovePackage filters the package out of the list and renumbers positions
func (c *Client) RemovePackage(packageID uuid.UUID) error {
	i := c.findPackage(packageID)
	if i < 0 {
		return shared.ErrNotFound
	}

	removed := c.Packages[i]
	c.Packages = append(c.Packages[:i], c.Packages[i+1:]...)
	for j := range c.Packages {
		c.Packages[j].Position = j
	}
	c.UpdatedAt = time.Now()

	c.AddDomainEvent(NewPackageRemovedEvent(c, removed.ID, removed.Name))

	return nil
}

// TogglePackagePaid flips the paid flag on the matching package
func (c *Client) TogglePackagePaid(packageID uuid.UUID) error {
	i := c.findPackage(packageID)
	if i < 0 {
		return shared.ErrNotFound
	}
	c.Packages[i].TogglePaid()
	c.UpdatedAt = time.Now()
	return nil
}

// IncrementPackageUsage consumes one publication from the matching package.
// A PackageCompleted event is raised exactly once, on the increment that
// fills the package.
func (c *Client) IncrementPackageUsage(packageID uuid.UUID) error {
	i := c.findPackage(packageID)
	if i < 0 {
		return shared.ErrNotFound
	}

	if c.Packages[i].Increment() {
		c.AddDomainEvent(NewPackageCompletedEvent(c, &c.Packages[i]))
	}
	c.UpdatedAt = time.Now()
	return nil
}

// DecrementPackageUsage returns one publication to the matching package
func (c *Client) DecrementPackageUsage(packageID uuid.UUID) error {
	i := c.findPackage(packageID)
	if i < 0 {
		return shared.ErrNotFound
	}
	c.Packages[i].Decrement()
	c.UpdatedAt = time.Now()
	return nil
}

// HasUnpaidPackage reports whether any package is still unpaid
func (c *Client) HasUnpaidPackage() bool {
	for i := range c.Packages {
		if !c.Packages[i].Paid {
			return true
		}
	}
	return false
}

// IsDeleted reports whether the client is in the trash
func (c *Client) IsDeleted() bool {
	return c.DeletedAt != nil
}

// MarkDeleted moves the client to the trash
func (c *Client) MarkDeleted(at time.Time) {
	c.DeletedAt = &at
	c.UpdatedAt = time.Now()
}

// Restore takes the client out of the trash
func (c *Client) Restore() {
	c.DeletedAt = nil
	c.UpdatedAt = time.Now()
}

// Validation functions

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
		default:
			return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
		}
	}
	if digits < 6 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number must contain at least 6 digits")
	}
	return nil
}

func validatePaymentDay(day int) error {
	if day < 1 || day > 31 {
		return shared.NewDomainError("INVALID_PAYMENT_DAY", "Payment day must be between 1 and 31")
	}
	return nil
}
