package client

import (
	"context"
	"fmt"

	"github.com/agency/backend/internal/domain/client"
	"github.com/agency/backend/internal/domain/notification"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientService handles client and package business operations. Every
// mutation on an existing client goes through the operation guard and the
// optimistic save, so two overlapping edits on the same client either
// queue behind the dedup key or fail with a concurrency conflict.
type ClientService struct {
	clientRepo client.Repository
	guard      *shared.OperationGuard
	dispatcher notification.Dispatcher
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo client.Repository, guard *shared.OperationGuard, dispatcher notification.Dispatcher) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		guard:      guard,
		dispatcher: dispatcher,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	c, err := client.NewClient(req.Name, req.Phone, req.PaymentDay)
	if err != nil {
		return nil, err
	}
	c.MarketingInfo = req.MarketingInfo
	c.Instagram = req.Instagram
	c.Facebook = req.Facebook

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}

// List retrieves a page of clients
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) (*shared.Paginated[ClientListResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.Order != "" {
		f.OrderDir = filter.Order
	}

	clients, err := s.clientRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.clientRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]ClientListResponse, 0, len(clients))
	for i := range clients {
		items = append(items, ToClientListResponse(&clients[i]))
	}

	result := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &result, nil
}

// UpdateBasicInfo applies a basic-info patch to the client. Fields absent
// from the request, including the additional info and the package list, are
// left untouched.
func (s *ClientService) UpdateBasicInfo(ctx context.Context, clientID uuid.UUID, req UpdateBasicInfoRequest) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, "update_basic_info", func(c *client.Client) error {
		return c.ApplyBasicInfo(client.BasicInfoPatch{
			Name:          req.Name,
			Phone:         req.Phone,
			PaymentDay:    req.PaymentDay,
			MarketingInfo: req.MarketingInfo,
			Instagram:     req.Instagram,
			Facebook:      req.Facebook,
		})
	})
}

// UpdateInfo applies an additional-info patch to the client. Basic fields
// are never touched here.
func (s *ClientService) UpdateInfo(ctx context.Context, clientID uuid.UUID, req UpdateClientInfoRequest) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, "update_info", func(c *client.Client) error {
		patch := client.ClientInfoPatch{
			GeneralNotes:        req.GeneralNotes,
			BrandingURL:         req.BrandingURL,
			PublicationSchedule: req.PublicationSchedule,
		}
		if req.Meetings != nil {
			meetings := toDomainMeetings(*req.Meetings)
			patch.Meetings = &meetings
		}
		if req.SocialNetworks != nil {
			networks := toDomainSocialNetworks(*req.SocialNetworks)
			patch.SocialNetworks = &networks
		}
		c.ApplyInfo(patch)
		return nil
	})
}

// Delete moves a client to the trash
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	release, ok := s.guard.Begin(shared.OperationKey(clientID, "delete"))
	if !ok {
		return shared.ErrOperationInFlight
	}
	defer release()

	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, clientID)
}

// AddPackage adds a publication package to the client. A named preset fills
// in the capacity; otherwise name and total come from the request.
func (s *ClientService) AddPackage(ctx context.Context, clientID uuid.UUID, req AddPackageRequest) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, "add_package", func(c *client.Client) error {
		var (
			pkg *client.Package
			err error
		)
		if req.Preset != "" {
			pkg, err = client.NewPackageFromPreset(client.PackagePreset(req.Preset), req.Month)
		} else {
			if req.Name == "" || req.TotalPublications == nil {
				return shared.NewDomainError("INVALID_PACKAGE", "Either a preset or a name and capacity is required")
			}
			pkg, err = client.NewPackage(req.Name, *req.TotalPublications)
			if err == nil {
				pkg.Month = req.Month
			}
		}
		if err != nil {
			return err
		}
		c.AddPackage(pkg)
		return nil
	})
}

// EditPackage applies a patch to one package of the client
func (s *ClientService) EditPackage(ctx context.Context, clientID, packageID uuid.UUID, req EditPackageRequest) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, fmt.Sprintf("edit_package:%s", packageID), func(c *client.Client) error {
		return c.EditPackage(packageID, client.PackagePatch{
			Name:              req.Name,
			TotalPublications: req.TotalPublications,
			UsedPublications:  req.UsedPublications,
			Month:             req.Month,
			Paid:              req.Paid,
		})
	})
}

// DeletePackage removes one package from the client
func (s *ClientService) DeletePackage(ctx context.Context, clientID, packageID uuid.UUID) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, fmt.Sprintf("delete_package:%s", packageID), func(c *client.Client) error {
		return c.RemovePackage(packageID)
	})
}

// TogglePackagePaid flips the paid flag on one package
func (s *ClientService) TogglePackagePaid(ctx context.Context, clientID, packageID uuid.UUID) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, fmt.Sprintf("toggle_paid:%s", packageID), func(c *client.Client) error {
		return c.TogglePackagePaid(packageID)
	})
}

// IncrementPackage consumes one publication from the package. The counter
// saturates at the capacity; the increment that fills the package triggers
// a completion notification.
func (s *ClientService) IncrementPackage(ctx context.Context, clientID, packageID uuid.UUID) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, fmt.Sprintf("increment_package:%s", packageID), func(c *client.Client) error {
		return c.IncrementPackageUsage(packageID)
	})
}

// DecrementPackage returns one publication to the package, saturating at zero
func (s *ClientService) DecrementPackage(ctx context.Context, clientID, packageID uuid.UUID) (*ClientResponse, error) {
	return s.mutate(ctx, clientID, fmt.Sprintf("decrement_package:%s", packageID), func(c *client.Client) error {
		return c.DecrementPackageUsage(packageID)
	})
}

// mutate runs a guarded load-mutate-save cycle on one client and reports
// any completion raised by the mutation.
func (s *ClientService) mutate(ctx context.Context, clientID uuid.UUID, operation string, fn func(*client.Client) error) (*ClientResponse, error) {
	release, ok := s.guard.Begin(shared.OperationKey(clientID, operation))
	if !ok {
		return nil, shared.ErrOperationInFlight
	}
	defer release()

	c, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := s.clientRepo.SaveWithLock(ctx, c); err != nil {
		return nil, err
	}

	s.reportCompletions(ctx, c)
	c.ClearDomainEvents()

	response := ToClientResponse(c)
	return &response, nil
}

// reportCompletions dispatches a notification for every PackageCompleted
// event raised during the mutation. The save already happened, so a failed
// dispatch can no longer affect the counter.
func (s *ClientService) reportCompletions(ctx context.Context, c *client.Client) {
	if s.dispatcher == nil {
		return
	}
	for _, ev := range c.GetDomainEvents() {
		completed, ok := ev.(*client.PackageCompletedEvent)
		if !ok {
			continue
		}
		n, err := notification.New(
			notification.KindSuccess,
			fmt.Sprintf("Paquete completado: %s", completed.PackageName),
			fmt.Sprintf("%s completó las %d publicaciones de %s", c.Name, completed.TotalPublications, completed.PackageName),
		)
		if err != nil {
			continue
		}
		n.SetRef("client", c.ID)
		s.dispatcher.Dispatch(ctx, n)
	}
}
