package shared

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// OperationGuard deduplicates in-flight mutations. Each mutating operation
// registers itself under a key derived from the target entity and the
// operation name; a second submit with the same key is rejected until the
// first one releases. This replaces per-component busy flags with a single
// auditable registry.
type OperationGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewOperationGuard creates an empty guard
func NewOperationGuard() *OperationGuard {
	return &OperationGuard{
		inFlight: make(map[string]struct{}),
	}
}

// OperationKey builds the dedup key for an entity-scoped operation
func OperationKey(entityID uuid.UUID, operation string) string {
	return fmt.Sprintf("%s:%s", entityID, operation)
}

// Begin registers an operation. It returns a release function and true when
// the key was free, or nil and false when an identical operation is already
// running. The release function is safe to call exactly once, typically via
// defer.
func (g *OperationGuard) Begin(key string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return nil, false
	}
	g.inFlight[key] = struct{}{}

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.inFlight, key)
	}, true
}

// InFlight reports whether an operation with the given key is running
func (g *OperationGuard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[key]
	return busy
}
