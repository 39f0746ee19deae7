package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	publicationapp "github.com/agency/backend/internal/application/publication"
	"github.com/agency/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() publicationapp.CalendarEvent {
	start := time.Date(2026, 9, 3, 15, 0, 0, 0, time.UTC)
	return publicationapp.CalendarEvent{
		CalendarID:  "primary",
		Title:       "Lanzamiento reel",
		Description: "Cliente: Ana",
		Start:       start,
		End:         start.Add(time.Hour),
	}
}

func newTestClient(serverURL string) *Client {
	return NewClient(&config.CalendarConfig{
		BaseURL:    serverURL,
		Token:      "secreto",
		CalendarID: "primary",
		Timeout:    2 * time.Second,
	})
}

func TestClient_CreateEvent(t *testing.T) {
	t.Run("posts the event and returns the remote id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/calendars/primary/events", r.URL.Path)
			assert.Equal(t, "Bearer secreto", r.Header.Get("Authorization"))

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Lanzamiento reel", payload["summary"])

			json.NewEncoder(w).Encode(map[string]string{"id": "ev-123"})
		}))
		defer server.Close()

		id, err := newTestClient(server.URL).CreateEvent(context.Background(), newTestEvent())
		require.NoError(t, err)
		assert.Equal(t, "ev-123", id)
	})

	t.Run("fails on a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CreateEvent(context.Background(), newTestEvent())
		assert.Error(t, err)
	})

	t.Run("fails when the provider returns no id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CreateEvent(context.Background(), newTestEvent())
		assert.Error(t, err)
	})
}

func TestClient_UpdateEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/calendars/primary/events/ev-123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ev := newTestEvent()
	ev.EventID = "ev-123"
	assert.NoError(t, newTestClient(server.URL).UpdateEvent(context.Background(), ev))
}

func TestClient_DeleteEvent(t *testing.T) {
	t.Run("deletes an existing event", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		assert.NoError(t, newTestClient(server.URL).DeleteEvent(context.Background(), "primary", "ev-123"))
	})

	t.Run("an already-gone event is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		assert.NoError(t, newTestClient(server.URL).DeleteEvent(context.Background(), "primary", "ev-404"))
	})

	t.Run("a server failure is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		assert.Error(t, newTestClient(server.URL).DeleteEvent(context.Background(), "primary", "ev-123"))
	})
}
