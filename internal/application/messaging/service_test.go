package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/agency/backend/internal/domain/messaging"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTemplateRepository is a mock implementation of messaging.TemplateRepository
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*messaging.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]messaging.Template, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]messaging.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindByCategory(ctx context.Context, category string) ([]messaging.Template, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]messaging.Template), args.Error(1)
}

func (m *MockTemplateRepository) Save(ctx context.Context, t *messaging.Template) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of client.Repository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]client.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]client.Client), args.Error(1)
}

func (m *MockClientRepository) FindByPaymentDay(ctx context.Context, day int) ([]client.Client, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]client.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) SaveWithLock(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func mustClient(t *testing.T, name, phone string, paymentDay int) client.Client {
	t.Helper()
	c, err := client.NewClient(name, phone, paymentDay)
	require.NoError(t, err)
	c.ClearDomainEvents()
	return *c
}

func newBulkService(t *testing.T, clients []client.Client) (*MessagingService, *MockTemplateRepository) {
	t.Helper()
	templateRepo := new(MockTemplateRepository)
	clientRepo := new(MockClientRepository)
	clientRepo.On("FindAll", mock.Anything, mock.Anything).Return(clients, nil)

	svc := NewMessagingService(templateRepo, clientRepo, "")
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return svc, templateRepo
}

func TestMessagingService_BulkSend(t *testing.T) {
	t.Run("expands placeholders per recipient", func(t *testing.T) {
		clients := []client.Client{
			mustClient(t, "Ana", "11 5555 0001", 10),
			mustClient(t, "Bruno", "11 5555 0002", 3),
		}
		svc, _ := newBulkService(t, clients)

		resp, err := svc.BulkSend(context.Background(), BulkSendRequest{
			Content: "Hola {nombre}, pagás el {dia_pago}, recordatorio desde el {plazo_inicio}",
		})

		require.NoError(t, err)
		require.Equal(t, 2, resp.Sent)
		assert.Equal(t, "Hola Ana, pagás el 10, recordatorio desde el 5", resp.Messages[0].Message)
		assert.Equal(t, "Hola Bruno, pagás el 3, recordatorio desde el 1", resp.Messages[1].Message)
	})

	t.Run("builds wa.me links with digits-only phones", func(t *testing.T) {
		clients := []client.Client{mustClient(t, "Ana", "+54 11 5555-0001", 10)}
		svc, _ := newBulkService(t, clients)

		resp, err := svc.BulkSend(context.Background(), BulkSendRequest{Content: "Hola Ana, ¿cómo va?"})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Sent)
		assert.Equal(t, "https://wa.me/541155550001?text=Hola+Ana%2C+%C2%BFc%C3%B3mo+va%3F", resp.Messages[0].URL)
	})

	t.Run("clients without phone are skipped, not failed", func(t *testing.T) {
		clients := []client.Client{
			mustClient(t, "Ana", "11 5555 0001", 10),
			mustClient(t, "Carla", "", 12),
		}
		svc, _ := newBulkService(t, clients)

		resp, err := svc.BulkSend(context.Background(), BulkSendRequest{Content: "Hola {nombre}"})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Sent)
		assert.Equal(t, []string{"Carla"}, resp.Skipped)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		clients := []client.Client{
			mustClient(t, "Ana López", "11 5555 0001", 10),
			mustClient(t, "Ana Torres", "11 5555 0002", 20),
			mustClient(t, "Bruno", "11 5555 0003", 10),
		}
		svc, _ := newBulkService(t, clients)

		day := 10
		resp, err := svc.BulkSend(context.Background(), BulkSendRequest{
			Content:      "Hola {nombre}",
			PaymentDay:   &day,
			NameContains: "ana",
		})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Sent)
		assert.Equal(t, "Ana López", resp.Messages[0].ClientName)
	})

	t.Run("empty recipient set is an error", func(t *testing.T) {
		svc, _ := newBulkService(t, []client.Client{})

		_, err := svc.BulkSend(context.Background(), BulkSendRequest{Content: "Hola"})

		assert.ErrorIs(t, err, shared.ErrNoRecipients)
	})

	t.Run("template id resolves the content", func(t *testing.T) {
		clients := []client.Client{mustClient(t, "Ana", "11 5555 0001", 10)}
		svc, templateRepo := newBulkService(t, clients)

		tpl, err := messaging.NewTemplate("cobro", "Hola {nombre}, te recordamos el pago", "cobros")
		require.NoError(t, err)
		templateRepo.On("FindByID", mock.Anything, tpl.ID).Return(tpl, nil)

		resp, err := svc.BulkSend(context.Background(), BulkSendRequest{TemplateID: &tpl.ID})

		require.NoError(t, err)
		assert.Equal(t, "Hola Ana, te recordamos el pago", resp.Messages[0].Message)
	})

	t.Run("no template and no content is rejected", func(t *testing.T) {
		svc, _ := newBulkService(t, []client.Client{mustClient(t, "Ana", "11 5555 0001", 10)})

		_, err := svc.BulkSend(context.Background(), BulkSendRequest{})

		assert.Error(t, err)
	})
}

func TestMessagingService_Templates(t *testing.T) {
	t.Run("create stores description and default flag", func(t *testing.T) {
		templateRepo := new(MockTemplateRepository)
		svc := NewMessagingService(templateRepo, new(MockClientRepository), "")

		templateRepo.On("Save", mock.Anything, mock.AnythingOfType("*messaging.Template")).Return(nil)

		resp, err := svc.CreateTemplate(context.Background(), CreateTemplateRequest{
			Name:        "cobro",
			Content:     "Hola {nombre}",
			Category:    "cobros",
			Description: "recordatorio mensual",
			IsDefault:   true,
		})

		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, "recordatorio mensual", resp.Description)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		templateRepo := new(MockTemplateRepository)
		svc := NewMessagingService(templateRepo, new(MockClientRepository), "")

		_, err := svc.CreateTemplate(context.Background(), CreateTemplateRequest{Name: "x", Content: "  "})

		assert.Error(t, err)
		templateRepo.AssertNotCalled(t, "Save")
	})
}
