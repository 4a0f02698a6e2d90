package placement

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/idgen"
)

//go:generate mockgen -destination=mock/mock_sink.go -package=placementmock github.com/KirkDiggler/rpg-rooms/internal/placement Sink

// Sink turns an accepted position into a live instance and tears it down
// again on Clear.
type Sink interface {
	Instantiate(ctx context.Context, item entities.Item, pos entities.Position) (string, error)
	Destroy(ctx context.Context, handle string) error
}

// Instance is what the memory sink remembers per handle
type Instance struct {
	Handle   string
	ItemID   string
	ItemType string
	Position entities.Position
}

// MemorySink keeps instances in a map. It is what the server uses when no
// engine is attached.
type MemorySink struct {
	mu        sync.RWMutex
	ids       idgen.Generator
	instances map[string]Instance
}

var _ Sink = (*MemorySink)(nil)

// NewMemorySink creates an empty sink. A nil generator defaults to
// prefixed UUIDs.
func NewMemorySink(ids idgen.Generator) *MemorySink {
	if ids == nil {
		ids = idgen.NewUUID("inst")
	}
	return &MemorySink{
		ids:       ids,
		instances: make(map[string]Instance),
	}
}

// Instantiate records a new instance and returns its handle
func (s *MemorySink) Instantiate(_ context.Context, item entities.Item, pos entities.Position) (string, error) {
	if item == nil {
		return "", errors.InvalidArgument("item is required")
	}

	handle := s.ids.Generate()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.instances[handle]; exists {
		return "", errors.AlreadyExistsf("instance %s already exists", handle).WithMeta("handle", handle)
	}
	s.instances[handle] = Instance{
		Handle:   handle,
		ItemID:   item.GetID(),
		ItemType: item.GetType(),
		Position: pos,
	}
	return handle, nil
}

// Destroy forgets the instance behind handle
func (s *MemorySink) Destroy(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.instances[handle]; !exists {
		return errors.NotFoundf("instance %s not found", handle).WithMeta("handle", handle)
	}
	delete(s.instances, handle)
	return nil
}

// Get returns the instance behind handle
func (s *MemorySink) Get(handle string) (Instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.instances[handle]
	return inst, ok
}

// Len returns the number of live instances
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.instances)
}
