package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("creates package successfully", func(t *testing.T) {
		pkg, err := NewPackage("basico", 8)

		require.NoError(t, err)
		assert.Equal(t, "basico", pkg.Name)
		assert.Equal(t, 8, pkg.TotalPublications)
		assert.Equal(t, 0, pkg.UsedPublications)
		assert.False(t, pkg.Paid)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		pkg, err := NewPackage("", 8)

		assert.Error(t, err)
		assert.Nil(t, pkg)
	})

	t.Run("fails with negative capacity", func(t *testing.T) {
		pkg, err := NewPackage("basico", -1)

		assert.Error(t, err)
		assert.Nil(t, pkg)
	})
}

func TestNewPackageFromPreset(t *testing.T) {
	presets := map[PackagePreset]int{
		PackagePresetBasico:   8,
		PackagePresetAvanzado: 12,
		PackagePresetPremium:  16,
	}

	for preset, total := range presets {
		t.Run(string(preset), func(t *testing.T) {
			pkg, err := NewPackageFromPreset(preset, "Enero")

			require.NoError(t, err)
			assert.Equal(t, string(preset), pkg.Name)
			assert.Equal(t, total, pkg.TotalPublications)
			assert.Equal(t, "Enero", pkg.Month)
		})
	}

	t.Run("fails with unknown preset", func(t *testing.T) {
		_, err := NewPackageFromPreset(PackagePreset("mega"), "Enero")
		assert.Error(t, err)
	})
}

func TestPackageIncrement(t *testing.T) {
	t.Run("counts up to capacity and saturates", func(t *testing.T) {
		pkg, _ := NewPackage("basico", 3)

		assert.False(t, pkg.Increment())
		assert.False(t, pkg.Increment())
		assert.True(t, pkg.Increment()) // fills the package
		assert.Equal(t, 3, pkg.UsedPublications)

		// past the ceiling: no movement and no re-trigger
		assert.False(t, pkg.Increment())
		assert.Equal(t, 3, pkg.UsedPublications)
	})

	t.Run("reports completion exactly once", func(t *testing.T) {
		pkg, _ := NewPackage("avanzado", 2)
		pkg.SetUsed(1)

		completions := 0
		for i := 0; i < 5; i++ {
			if pkg.Increment() {
				completions++
			}
		}

		assert.Equal(t, 1, completions)
		assert.Equal(t, 2, pkg.UsedPublications)
	})

	t.Run("zero-capacity package never completes", func(t *testing.T) {
		pkg, _ := NewPackage("vacio", 0)

		assert.False(t, pkg.Increment())
		assert.Equal(t, 0, pkg.UsedPublications)
		assert.False(t, pkg.IsCompleted())
	})
}

func TestPackageDecrement(t *testing.T) {
	pkg, _ := NewPackage("basico", 8)
	pkg.SetUsed(1)

	pkg.Decrement()
	assert.Equal(t, 0, pkg.UsedPublications)

	// saturates at zero
	pkg.Decrement()
	assert.Equal(t, 0, pkg.UsedPublications)
}

func TestPackageSetUsed(t *testing.T) {
	t.Run("clamps into range", func(t *testing.T) {
		pkg, _ := NewPackage("basico", 8)

		pkg.SetUsed(100)
		assert.Equal(t, 8, pkg.UsedPublications)

		pkg.SetUsed(-5)
		assert.Equal(t, 0, pkg.UsedPublications)
	})

	t.Run("is idempotent", func(t *testing.T) {
		pkg, _ := NewPackage("basico", 8)

		pkg.SetUsed(5)
		first := pkg.UsedPublications
		pkg.SetUsed(5)

		assert.Equal(t, first, pkg.UsedPublications)
	})
}

func TestPackageCounterStaysInRange(t *testing.T) {
	// Any call sequence keeps used inside [0, total].
	pkg, _ := NewPackage("premium", 16)
	ops := []func(){
		func() { pkg.Increment() },
		func() { pkg.Decrement() },
		func() { pkg.SetUsed(99) },
		func() { pkg.SetUsed(-7) },
		func() { pkg.Increment() },
		func() { pkg.Increment() },
		func() { pkg.Decrement() },
	}

	for _, op := range ops {
		op()
		assert.GreaterOrEqual(t, pkg.UsedPublications, 0)
		assert.LessOrEqual(t, pkg.UsedPublications, pkg.TotalPublications)
	}
}

func TestPackageApply(t *testing.T) {
	t.Run("applies only present fields", func(t *testing.T) {
		pkg, _ := NewPackage("basico", 8)
		pkg.Month = "Enero"
		month := "Febrero"

		err := pkg.Apply(PackagePatch{Month: &month})

		require.NoError(t, err)
		assert.Equal(t, "Febrero", pkg.Month)
		assert.Equal(t, "basico", pkg.Name)
		assert.Equal(t, 8, pkg.TotalPublications)
		assert.False(t, pkg.Paid)
	})

	t.Run("re-clamps used when capacity shrinks", func(t *testing.T) {
		pkg, _ := NewPackage("avanzado", 12)
		pkg.SetUsed(10)
		total := 4

		err := pkg.Apply(PackagePatch{TotalPublications: &total})

		require.NoError(t, err)
		assert.Equal(t, 4, pkg.UsedPublications)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		pkg, _ := NewPackage("basico", 8)
		empty := ""

		err := pkg.Apply(PackagePatch{Name: &empty})

		assert.Error(t, err)
		assert.Equal(t, "basico", pkg.Name)
	})
}
