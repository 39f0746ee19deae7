package shared

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationGuard(t *testing.T) {
	t.Run("allows first begin and rejects duplicate", func(t *testing.T) {
		guard := NewOperationGuard()
		key := OperationKey(uuid.New(), "edit_package")

		release, ok := guard.Begin(key)
		require.True(t, ok)
		require.NotNil(t, release)

		_, ok = guard.Begin(key)
		assert.False(t, ok)
		assert.True(t, guard.InFlight(key))

		release()
		assert.False(t, guard.InFlight(key))

		_, ok = guard.Begin(key)
		assert.True(t, ok)
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		guard := NewOperationGuard()
		id := uuid.New()

		_, ok := guard.Begin(OperationKey(id, "edit_package"))
		require.True(t, ok)

		_, ok = guard.Begin(OperationKey(id, "toggle_paid"))
		assert.True(t, ok)
	})

	t.Run("only one concurrent begin wins", func(t *testing.T) {
		guard := NewOperationGuard()
		key := OperationKey(uuid.New(), "save")

		var wg sync.WaitGroup
		var mu sync.Mutex
		wins := 0
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := guard.Begin(key); ok {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
	})
}
