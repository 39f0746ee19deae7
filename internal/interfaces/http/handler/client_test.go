package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	clientapp "github.com/agency/backend/internal/application/client"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
)

// newClientTestServer wires a real service against an in-memory database so
// the whole request path is exercised, binding included.
func newClientTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	repo := persistence.NewGormClientRepository(db)
	service := clientapp.NewClientService(repo, shared.NewOperationGuard(), nil)
	h := NewClientHandler(service)

	r := gin.New()
	r.POST("/clients", h.Create)
	r.GET("/clients", h.List)
	r.GET("/clients/:id", h.Get)
	r.PATCH("/clients/:id", h.UpdateBasicInfo)
	r.DELETE("/clients/:id", h.Delete)
	r.POST("/clients/:id/packages", h.AddPackage)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClientHandler_CreateAndGet(t *testing.T) {
	r := newClientTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/clients", gin.H{
		"name":        "Florería Central",
		"phone":       "+52 222 123 4567",
		"payment_day": 15,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data clientapp.ClientResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Florería Central", created.Data.Name)
	assert.Equal(t, 15, created.Data.PaymentDay)

	w = doJSON(t, r, http.MethodGet, "/clients/"+created.Data.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientHandler_CreateValidation(t *testing.T) {
	r := newClientTestServer(t)

	t.Run("missing name is rejected by binding", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/clients", gin.H{"payment_day": 10})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("out of range payment day is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/clients", gin.H{
			"name":        "Test",
			"payment_day": 45,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClientHandler_GetUnknown(t *testing.T) {
	r := newClientTestServer(t)

	t.Run("valid uuid that does not exist", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/clients/a81bc81b-dead-4e5d-abff-90865d1e13b1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/clients/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClientHandler_PatchAndPackages(t *testing.T) {
	r := newClientTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/clients", gin.H{
		"name":        "Taller Norte",
		"payment_day": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data clientapp.ClientResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID.String()

	w = doJSON(t, r, http.MethodPatch, "/clients/"+id, gin.H{"phone": "+52 555 000 1111"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var patched struct {
		Data clientapp.ClientResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.Equal(t, "+52 555 000 1111", patched.Data.Phone)
	assert.Equal(t, "Taller Norte", patched.Data.Name)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/clients/%s/packages", id), gin.H{"preset": "basico"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var withPackage struct {
		Data clientapp.ClientResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withPackage))
	require.Len(t, withPackage.Data.Packages, 1)
	assert.Equal(t, "basico", withPackage.Data.Packages[0].Name)
	assert.Equal(t, 8, withPackage.Data.Packages[0].TotalPublications)
}

func TestClientHandler_Delete(t *testing.T) {
	r := newClientTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/clients", gin.H{
		"name":        "Efímero",
		"payment_day": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data clientapp.ClientResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID.String()

	w = doJSON(t, r, http.MethodDelete, "/clients/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/clients/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
