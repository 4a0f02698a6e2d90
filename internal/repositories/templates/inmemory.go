package templates

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. TTLs
// are ignored.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Snapshot
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// real clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Snapshot),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the templates
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	collection, err := validateCollection(input.Collection)
	if err != nil {
		return nil, err
	}
	for i, t := range input.Templates {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid template at index %d", i).WithMeta("index", i)
		}
	}

	snapshot := &Snapshot{
		Collection: collection,
		Templates:  cloneAll(input.Templates),
		SavedAt:    r.clock.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[collection] = snapshot

	return &SaveOutput{Snapshot: copySnapshot(snapshot)}, nil
}

// Load returns a copy of the stored snapshot
func (r *InMemoryRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	collection, err := validateCollection(input.Collection)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.store[collection]
	if !exists {
		return nil, errors.NotFoundf("snapshot %q not found", collection).WithMeta("collection", collection)
	}
	return &LoadOutput{Snapshot: copySnapshot(snapshot)}, nil
}

// Delete removes a snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	collection, err := validateCollection(input.Collection)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[collection]; !exists {
		return nil, errors.NotFoundf("snapshot %q not found", collection).WithMeta("collection", collection)
	}
	delete(r.store, collection)
	return &DeleteOutput{}, nil
}

// List returns the saved collection names, sorted
func (r *InMemoryRepository) List(_ context.Context) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.store))
	for name := range r.store {
		names = append(names, name)
	}
	slices.Sort(names)
	return &ListOutput{Collections: names}, nil
}

func cloneAll(in []*entities.RoomTemplate) []*entities.RoomTemplate {
	out := make([]*entities.RoomTemplate, 0, len(in))
	for _, t := range in {
		out = append(out, t.Clone())
	}
	return out
}

func copySnapshot(s *Snapshot) *Snapshot {
	c := *s
	c.Templates = cloneAll(s.Templates)
	return &c
}
