package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	return db
}

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient("Ana López", "+54 11 5555-0001", 10)
	require.NoError(t, err)
	c.ClearDomainEvents()
	return c
}

func TestGormClientRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	t.Run("round-trips a client with packages and info", func(t *testing.T) {
		c := newTestClient(t)
		pkg, err := client.NewPackageFromPreset(client.PackagePresetBasico, "2026-08")
		require.NoError(t, err)
		c.AddPackage(pkg)
		c.Info.GeneralNotes = "prefiere reuniones por la tarde"
		c.Info.SocialNetworks = []client.SocialNetwork{{Name: "instagram", Handle: "@ana"}}

		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana López", found.Name)
		assert.Equal(t, 10, found.PaymentDay)
		assert.Equal(t, "prefiere reuniones por la tarde", found.Info.GeneralNotes)
		require.Len(t, found.Packages, 1)
		assert.Equal(t, "basico", found.Packages[0].Name)
		assert.Equal(t, 8, found.Packages[0].TotalPublications)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		c := newTestClient(t)
		_, err := repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormClientRepository_SaveWithLock(t *testing.T) {
	ctx := context.Background()

	t.Run("increments the version on success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormClientRepository(db)

		c := newTestClient(t)
		require.NoError(t, repo.Save(ctx, c))

		loaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		startVersion := loaded.Version

		loaded.MarketingInfo = "campaña de invierno"
		require.NoError(t, repo.SaveWithLock(ctx, loaded))
		assert.Equal(t, startVersion+1, loaded.Version)

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "campaña de invierno", found.MarketingInfo)
		assert.Equal(t, startVersion+1, found.Version)
	})

	t.Run("rejects a stale version", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormClientRepository(db)

		c := newTestClient(t)
		require.NoError(t, repo.Save(ctx, c))

		first, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)

		first.MarketingInfo = "ganador"
		require.NoError(t, repo.SaveWithLock(ctx, first))

		second.MarketingInfo = "perdedor"
		err = repo.SaveWithLock(ctx, second)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "ganador", found.MarketingInfo)
	})

	t.Run("removes packages dropped from the aggregate", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormClientRepository(db)

		c := newTestClient(t)
		pkg1, err := client.NewPackage("basico", 8)
		require.NoError(t, err)
		pkg2, err := client.NewPackage("premium", 16)
		require.NoError(t, err)
		c.AddPackage(pkg1)
		c.AddPackage(pkg2)
		require.NoError(t, repo.Save(ctx, c))

		loaded, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		require.NoError(t, loaded.RemovePackage(loaded.Packages[0].ID))
		require.NoError(t, repo.SaveWithLock(ctx, loaded))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, found.Packages, 1)
		assert.Equal(t, "premium", found.Packages[0].Name)
		assert.Equal(t, 0, found.Packages[0].Position)
	})
}

func TestGormClientRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	t.Run("trashed clients disappear from reads", func(t *testing.T) {
		c := newTestClient(t)
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, repo.Delete(ctx, c.ID))

		_, err := repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		all, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Empty(t, all)

		count, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("deleting twice returns ErrNotFound", func(t *testing.T) {
		c := newTestClient(t)
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, repo.Delete(ctx, c.ID))
		assert.ErrorIs(t, repo.Delete(ctx, c.ID), shared.ErrNotFound)
	})
}

func TestGormClientRepository_FindByPaymentDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	a, err := client.NewClient("Ana", "+54 11 5555-0001", 10)
	require.NoError(t, err)
	b, err := client.NewClient("Bruno", "+54 11 5555-0002", 3)
	require.NoError(t, err)
	trashed, err := client.NewClient("Carla", "+54 11 5555-0003", 10)
	require.NoError(t, err)
	trashed.MarkDeleted(time.Now())

	for _, c := range []*client.Client{a, b, trashed} {
		require.NoError(t, repo.Save(ctx, c))
	}

	found, err := repo.FindByPaymentDay(ctx, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ana", found[0].Name)
}

func TestGormClientRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Carla", "Ana", "Bruno"} {
		c, err := client.NewClient(name, "+54 11 5555-0000", 1)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
	}

	t.Run("orders by name when no ordering is given", func(t *testing.T) {
		filter := shared.Filter{Page: 1, PageSize: 10}
		all, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Ana", all[0].Name)
		assert.Equal(t, "Carla", all[2].Name)
	})

	t.Run("search matches on name", func(t *testing.T) {
		filter := shared.Filter{Page: 1, PageSize: 10, Search: "run"}
		all, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Bruno", all[0].Name)
	})

	t.Run("paginates", func(t *testing.T) {
		filter := shared.Filter{Page: 2, PageSize: 2}
		all, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
