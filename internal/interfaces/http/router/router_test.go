package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ok(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRouter_Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mounts groups under versioned prefix", func(t *testing.T) {
		engine := gin.New()

		clients := NewDomainGroup("/clients")
		clients.GET("", ok)
		clients.GET("/:id", ok)

		NewRouter(engine).Register(clients).Setup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest(http.MethodGet, "/clients", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("custom api version", func(t *testing.T) {
		engine := gin.New()

		g := NewDomainGroup("/ping")
		g.GET("", ok)

		NewRouter(engine, WithAPIVersion("v2")).Register(g).Setup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v2/ping", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nested groups and methods", func(t *testing.T) {
		engine := gin.New()

		billing := NewDomainGroup("/billing")
		invoices := billing.Group("/invoices")
		invoices.POST("", ok)
		invoices.DELETE("/:id", ok)

		NewRouter(engine).Register(billing).Setup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/billing/invoices", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest(http.MethodDelete, "/api/v1/billing/invoices/42", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("group middleware runs before handlers", func(t *testing.T) {
		engine := gin.New()

		var order []string
		g := NewDomainGroup("/tasks")
		g.Use(func(c *gin.Context) {
			order = append(order, "middleware")
			c.Next()
		})
		g.GET("", func(c *gin.Context) {
			order = append(order, "handler")
			c.Status(http.StatusOK)
		})

		NewRouter(engine).Register(g).Setup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"middleware", "handler"}, order)
	})
}
