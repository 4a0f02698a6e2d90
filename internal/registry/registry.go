// Package registry holds the in-memory set of known room templates.
//
// A Registry owns its templates: values go in and come out as copies, so
// callers never share state with it. Every operation runs under one mutex.
package registry

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/clock"
)

const (
	errNameEmpty = "room template name cannot be empty"
)

// Source is the read side of a bulk template round trip
type Source interface {
	Export() []*entities.RoomTemplate
}

// Sink is the write side of a bulk template round trip
type Sink interface {
	Import(templates []*entities.RoomTemplate) (*ImportResult, error)
}

// Config holds optional dependencies for a Registry
type Config struct {
	Clock  clock.Clock
	Logger *zap.Logger
}

// Registry is a name-keyed, insertion-ordered collection of room templates
type Registry struct {
	mu     sync.Mutex
	order  []string
	byName map[string]*entities.RoomTemplate

	clock  clock.Clock
	logger *zap.Logger
}

var (
	_ Source = (*Registry)(nil)
	_ Sink   = (*Registry)(nil)
)

// New creates an empty registry. A nil config uses the real clock and a
// no-op logger.
func New(cfg *Config) *Registry {
	r := &Registry{
		byName: make(map[string]*entities.RoomTemplate),
		clock:  clock.New(),
		logger: zap.NewNop(),
	}
	if cfg != nil {
		if cfg.Clock != nil {
			r.clock = cfg.Clock
		}
		if cfg.Logger != nil {
			r.logger = cfg.Logger
		}
	}
	return r
}

// Add inserts a template. Duplicate names are rejected and the stored
// template is left untouched.
func (r *Registry) Add(t *entities.RoomTemplate) error {
	if err := t.Validate(); err != nil {
		r.logger.Error("rejected invalid room template", zap.Error(err))
		return err
	}

	stored := t.Clone()
	stored.Name = strings.TrimSpace(stored.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[stored.Name]; exists {
		r.logger.Warn("room template already exists, skipping", zap.String("name", stored.Name))
		return errors.AlreadyExistsf("room template %q already exists", stored.Name).
			WithMeta("name", stored.Name)
	}

	now := r.clock.Now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.byName[stored.Name] = stored
	r.order = append(r.order, stored.Name)

	r.logger.Info("room template added",
		zap.String("name", stored.Name),
		zap.Stringer("size", stored.Size),
	)
	return nil
}

// Remove deletes the named template. Removing an absent name reports
// NotFound and changes nothing.
func (r *Registry) Remove(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; !exists {
		r.logger.Warn("room template not found for removal", zap.String("name", name))
		return errors.NotFoundf("room template %q not found", name).WithMeta("name", name)
	}

	delete(r.byName, name)
	if i := slices.Index(r.order, name); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}

	r.logger.Info("room template removed", zap.String("name", name))
	return nil
}

// RemoveTemplate removes the entry matching t's name
func (r *Registry) RemoveTemplate(t *entities.RoomTemplate) error {
	if t == nil {
		return errors.InvalidArgument("room template is required")
	}
	return r.Remove(t.Name)
}

// FindByName returns a copy of the named template. An empty name is an
// input error, not a miss.
func (r *Registry) FindByName(name string) (*entities.RoomTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.byName[name]
	if !exists {
		r.logger.Debug("room template not found", zap.String("name", name))
		return nil, errors.NotFoundf("room template %q not found", name).WithMeta("name", name)
	}
	return t.Clone(), nil
}

// ListAll returns copies of every template in insertion order
func (r *Registry) ListAll() []*entities.RoomTemplate {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshotLocked()
}

// Len returns the number of templates
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.order)
}

// UpdateInput selects which fields of a template to change. Nil fields are
// left alone.
type UpdateInput struct {
	Size        *entities.Size
	AssetRef    *string
	Description *string
}

// Update changes the size, asset reference or description of an existing
// template in place and returns the result.
func (r *Registry) Update(name string, input UpdateInput) (*entities.RoomTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if input.Size != nil {
		if err := input.Size.Validate(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.byName[name]
	if !exists {
		return nil, errors.NotFoundf("room template %q not found", name).WithMeta("name", name)
	}

	if input.Size != nil {
		t.Size = *input.Size
	}
	if input.AssetRef != nil {
		t.AssetRef = *input.AssetRef
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	t.UpdatedAt = r.clock.Now()

	r.logger.Info("room template updated", zap.String("name", name), zap.Stringer("size", t.Size))
	return t.Clone(), nil
}

// Export is a read-only snapshot of all templates
func (r *Registry) Export() []*entities.RoomTemplate {
	return r.ListAll()
}

// ImportResult lists what an Import did, by name
type ImportResult struct {
	Added   []string
	Updated []string
}

// Import merges templates into the registry. Unknown names are added;
// known names get their size and asset reference overwritten (and the
// description when the incoming one is set). Nothing is renamed or dropped.
// The whole batch is validated before anything is applied.
func (r *Registry) Import(templates []*entities.RoomTemplate) (*ImportResult, error) {
	for i, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid room template at index %d", i).WithMeta("index", i)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &ImportResult{}
	now := r.clock.Now()
	for _, in := range templates {
		name := strings.TrimSpace(in.Name)
		if existing, ok := r.byName[name]; ok {
			existing.Size = in.Size
			existing.AssetRef = in.AssetRef
			if in.Description != "" {
				existing.Description = in.Description
			}
			existing.UpdatedAt = now
			result.Updated = append(result.Updated, name)
			continue
		}

		stored := in.Clone()
		stored.Name = name
		stored.CreatedAt = now
		stored.UpdatedAt = now
		r.byName[name] = stored
		r.order = append(r.order, name)
		result.Added = append(result.Added, name)
	}

	r.logger.Info("room templates imported",
		zap.Int("added", len(result.Added)),
		zap.Int("updated", len(result.Updated)),
	)
	return result, nil
}

func (r *Registry) snapshotLocked() []*entities.RoomTemplate {
	out := make([]*entities.RoomTemplate, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Clone())
	}
	return out
}
