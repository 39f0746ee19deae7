package client

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("creates client successfully", func(t *testing.T) {
		c, err := NewClient("Ana", "+54 11 5555-0001", 10)

		require.NoError(t, err)
		assert.Equal(t, "Ana", c.Name)
		assert.Equal(t, 10, c.PaymentDay)
		assert.Empty(t, c.Packages)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		c, err := NewClient("", "+54 11 5555-0001", 10)

		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("fails with short phone", func(t *testing.T) {
		c, err := NewClient("Ana", "123", 10)

		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("fails with payment day out of range", func(t *testing.T) {
		for _, day := range []int{0, 32, -1} {
			_, err := NewClient("Ana", "+54 11 5555-0001", day)
			assert.Error(t, err)
		}
	})

	t.Run("allows empty phone", func(t *testing.T) {
		c, err := NewClient("Ana", "", 10)

		require.NoError(t, err)
		assert.Empty(t, c.Phone)
	})
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient("Ana", "+54 11 5555-0001", 10)
	require.NoError(t, err)
	c.ClearDomainEvents()
	return c
}

func TestApplyBasicInfo(t *testing.T) {
	t.Run("updates only patched fields", func(t *testing.T) {
		c := newTestClient(t)
		c.Info.GeneralNotes = "brief sent"
		c.Info.Meetings = []Meeting{{Date: time.Now(), Notes: "kickoff"}}
		c.Info.SocialNetworks = []SocialNetwork{{Name: "instagram", Handle: "@ana"}}
		name := "Ana María"

		err := c.ApplyBasicInfo(BasicInfoPatch{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Ana María", c.Name)
		assert.Equal(t, "+54 11 5555-0001", c.Phone)
		assert.Equal(t, 10, c.PaymentDay)
		// additional info untouched by a basic-info save
		assert.Equal(t, "brief sent", c.Info.GeneralNotes)
		assert.Len(t, c.Info.Meetings, 1)
		assert.Len(t, c.Info.SocialNetworks, 1)
	})

	t.Run("validates before mutating", func(t *testing.T) {
		c := newTestClient(t)
		name := "Nueva"
		badDay := 40

		err := c.ApplyBasicInfo(BasicInfoPatch{Name: &name, PaymentDay: &badDay})

		assert.Error(t, err)
		// nothing applied when any field in the patch is invalid
		assert.Equal(t, "Ana", c.Name)
		assert.Equal(t, 10, c.PaymentDay)
	})
}

func TestApplyInfo(t *testing.T) {
	c := newTestClient(t)
	notes := "prefers reels"
	meetings := []Meeting{{Date: time.Now(), Notes: "monthly review"}}

	c.ApplyInfo(ClientInfoPatch{GeneralNotes: &notes, Meetings: &meetings})

	assert.Equal(t, "prefers reels", c.Info.GeneralNotes)
	assert.Len(t, c.Info.Meetings, 1)
	// basic fields untouched by an additional-info save
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "+54 11 5555-0001", c.Phone)
	assert.Equal(t, 10, c.PaymentDay)
}

func TestAddPackage(t *testing.T) {
	c := newTestClient(t)

	first, _ := NewPackageFromPreset(PackagePresetBasico, "Enero")
	second, _ := NewPackageFromPreset(PackagePresetPremium, "Febrero")
	c.AddPackage(first)
	c.AddPackage(second)

	require.Len(t, c.Packages, 2)
	assert.Equal(t, 0, c.Packages[0].Position)
	assert.Equal(t, 1, c.Packages[1].Position)
	assert.Equal(t, "basico", c.Packages[0].Name)
	assert.NotEqual(t, c.Packages[0].ID, c.Packages[1].ID)
}

func TestEditPackage(t *testing.T) {
	c := newTestClient(t)
	first, _ := NewPackageFromPreset(PackagePresetBasico, "Enero")
	second, _ := NewPackageFromPreset(PackagePresetAvanzado, "Enero")
	c.AddPackage(first)
	c.AddPackage(second)
	before := c.Packages[1]

	month := "Marzo"
	err := c.EditPackage(first.ID, PackagePatch{Month: &month})

	require.NoError(t, err)
	assert.Equal(t, "Marzo", c.Packages[0].Month)
	// the sibling package is untouched, field by field
	assert.Equal(t, before.Name, c.Packages[1].Name)
	assert.Equal(t, before.TotalPublications, c.Packages[1].TotalPublications)
	assert.Equal(t, before.UsedPublications, c.Packages[1].UsedPublications)
	assert.Equal(t, before.Month, c.Packages[1].Month)
	assert.Equal(t, before.Paid, c.Packages[1].Paid)

	err = c.EditPackage(uuid.New(), PackagePatch{Month: &month})
	assert.Error(t, err)
}

func TestRemovePackage(t *testing.T) {
	c := newTestClient(t)
	first, _ := NewPackageFromPreset(PackagePresetBasico, "Enero")
	second, _ := NewPackageFromPreset(PackagePresetAvanzado, "Enero")
	third, _ := NewPackageFromPreset(PackagePresetPremium, "Enero")
	c.AddPackage(first)
	c.AddPackage(second)
	c.AddPackage(third)

	err := c.RemovePackage(second.ID)

	require.NoError(t, err)
	require.Len(t, c.Packages, 2)
	assert.Equal(t, first.ID, c.Packages[0].ID)
	assert.Equal(t, third.ID, c.Packages[1].ID)
	// positions renumbered after removal
	assert.Equal(t, 0, c.Packages[0].Position)
	assert.Equal(t, 1, c.Packages[1].Position)

	err = c.RemovePackage(second.ID)
	assert.Error(t, err)
}

func TestTogglePackagePaid(t *testing.T) {
	c := newTestClient(t)
	pkg, _ := NewPackageFromPreset(PackagePresetBasico, "Enero")
	c.AddPackage(pkg)

	require.NoError(t, c.TogglePackagePaid(pkg.ID))
	assert.True(t, c.Packages[0].Paid)
	require.NoError(t, c.TogglePackagePaid(pkg.ID))
	assert.False(t, c.Packages[0].Paid)
}

func TestIncrementPackageUsage(t *testing.T) {
	t.Run("raises completion event exactly once", func(t *testing.T) {
		c := newTestClient(t)
		pkg, _ := NewPackageFromPreset(PackagePresetBasico, "Enero")
		c.AddPackage(pkg)
		c.EditPackage(pkg.ID, PackagePatch{UsedPublications: intPtr(7)})
		c.ClearDomainEvents()

		require.NoError(t, c.IncrementPackageUsage(pkg.ID))
		assert.Equal(t, 8, c.Packages[0].UsedPublications)

		completed := 0
		for _, ev := range c.GetDomainEvents() {
			if ev.EventType() == EventTypePackageCompleted {
				completed++
			}
		}
		assert.Equal(t, 1, completed)

		// second increment at the ceiling: no movement, no second event
		require.NoError(t, c.IncrementPackageUsage(pkg.ID))
		assert.Equal(t, 8, c.Packages[0].UsedPublications)

		completed = 0
		for _, ev := range c.GetDomainEvents() {
			if ev.EventType() == EventTypePackageCompleted {
				completed++
			}
		}
		assert.Equal(t, 1, completed)
	})

	t.Run("unknown package id", func(t *testing.T) {
		c := newTestClient(t)
		assert.Error(t, c.IncrementPackageUsage(uuid.New()))
	})
}

func TestHasUnpaidPackage(t *testing.T) {
	c := newTestClient(t)
	assert.False(t, c.HasUnpaidPackage())

	pkg, _ := NewPackageFromPreset(PackagePresetBasico, "Enero")
	c.AddPackage(pkg)
	assert.True(t, c.HasUnpaidPackage())

	c.TogglePackagePaid(pkg.ID)
	assert.False(t, c.HasUnpaidPackage())
}

func TestClientTrash(t *testing.T) {
	c := newTestClient(t)
	assert.False(t, c.IsDeleted())

	c.MarkDeleted(time.Now())
	assert.True(t, c.IsDeleted())

	c.Restore()
	assert.False(t, c.IsDeleted())
}

func intPtr(v int) *int { return &v }
