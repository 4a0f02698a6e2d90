// Package placement implements the placement orchestrator. Each session
// owns one placer; sessions live in memory for the life of the process.
package placement

//go:generate mockgen -destination=mock/mock_service.go -package=placementmock github.com/KirkDiggler/rpg-rooms/internal/orchestrators/placement Service

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-rooms/internal/placement"
	"github.com/KirkDiggler/rpg-rooms/internal/registry"
)

// Defaults applied when a create request leaves a setting unset
const (
	DefaultMinimumDistance = 2.0
	DefaultMaxAttempts     = 100
)

// Service defines the interface for placement operations
type Service interface {
	// Sessions
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// Placement
	PlaceAssets(ctx context.Context, input *PlaceAssetsInput) (*PlaceAssetsOutput, error)
	PlaceSingle(ctx context.Context, input *PlaceSingleInput) (*PlaceSingleOutput, error)
	GetPlacements(ctx context.Context, input *GetPlacementsInput) (*GetPlacementsOutput, error)
	ClearPlacements(ctx context.Context, input *ClearPlacementsInput) (*ClearPlacementsOutput, error)
}

// Config holds the dependencies for the placement orchestrator
type Config struct {
	IDGenerator idgen.Generator

	// Optional
	Sink            placement.Sink
	Templates       *registry.Registry
	EventBus        events.EventBus
	DiceRoller      dice.Roller
	Clock           clock.Clock
	MinimumDistance *float64
	MaxAttempts     int
	// GridSteps is used when a request leaves it at zero
	GridSteps int
	Logger    *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MinimumDistance != nil {
		errors.ValidateNonNegative("MinimumDistance", *c.MinimumDistance, vb)
	}
	errors.ValidateNonNegative("MaxAttempts", float64(c.MaxAttempts), vb)
	errors.ValidateNonNegative("GridSteps", float64(c.GridSteps), vb)
	return vb.Build()
}

type session struct {
	info   Session
	placer *placement.Placer
}

type orchestrator struct {
	mu       sync.RWMutex
	sessions map[string]*session

	ids         idgen.Generator
	sink        placement.Sink
	templates   *registry.Registry
	bus         events.EventBus
	roller      dice.Roller
	clock       clock.Clock
	minDistance float64
	maxAttempts int
	gridSteps   int
	logger      *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new placement orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		sessions:    make(map[string]*session),
		ids:         cfg.IDGenerator,
		sink:        cfg.Sink,
		templates:   cfg.Templates,
		bus:         cfg.EventBus,
		roller:      cfg.DiceRoller,
		clock:       cfg.Clock,
		minDistance: DefaultMinimumDistance,
		maxAttempts: cfg.MaxAttempts,
		gridSteps:   cfg.GridSteps,
		logger:      cfg.Logger,
	}
	if o.sink == nil {
		o.sink = placement.NewMemorySink(nil)
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if cfg.MinimumDistance != nil {
		o.minDistance = *cfg.MinimumDistance
	}
	if o.maxAttempts == 0 {
		o.maxAttempts = DefaultMaxAttempts
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	o.logger = o.logger.Named("placement")
	return o, nil
}

// CreateSession builds a placer over a template's footprint or an explicit region
func (o *orchestrator) CreateSession(_ context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.GridSteps < 0 {
		return nil, errors.InvalidArgument("grid steps cannot be negative")
	}
	region, templateName, err := o.resolveRegion(input)
	if err != nil {
		return nil, err
	}

	info := Session{
		ID:              o.ids.Generate(),
		TemplateName:    templateName,
		Region:          region,
		MinimumDistance: o.minDistance,
		MaxAttempts:     o.maxAttempts,
		GridSteps:       input.GridSteps,
		CreatedAt:       o.clock.Now(),
	}
	if info.GridSteps == 0 {
		info.GridSteps = o.gridSteps
	}
	if input.MinimumDistance != nil {
		info.MinimumDistance = *input.MinimumDistance
	}
	if input.MaxAttempts != 0 {
		info.MaxAttempts = input.MaxAttempts
	}

	var source placement.Source
	if info.GridSteps > 0 {
		source, err = placement.NewDiceSource(o.roller, info.GridSteps)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice source")
		}
	} else {
		info.Seed = rand.Uint64()
		if input.Seed != nil {
			info.Seed = *input.Seed
		}
		source = placement.NewSeededSource(info.Seed)
	}

	placer, err := placement.NewPlacer(&placement.Config{
		ID:              info.ID,
		Region:          info.Region,
		MinimumDistance: info.MinimumDistance,
		MaxAttempts:     info.MaxAttempts,
		Source:          source,
		Sink:            o.sink,
		EventBus:        o.bus,
		Logger:          o.logger,
	})
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.sessions[info.ID]; exists {
		return nil, errors.AlreadyExistsf("session %s already exists", info.ID).WithMeta("session_id", info.ID)
	}
	s := &session{info: info, placer: placer}
	o.sessions[info.ID] = s

	o.logger.Info("placement session created",
		zap.String("session_id", info.ID),
		zap.String("template", templateName),
		zap.Float64("minimum_distance", info.MinimumDistance),
		zap.Int("max_attempts", info.MaxAttempts),
	)
	return &CreateSessionOutput{Session: s.snapshot()}, nil
}

func (o *orchestrator) resolveRegion(input *CreateSessionInput) (entities.Region, string, error) {
	name := strings.TrimSpace(input.TemplateName)
	switch {
	case name != "" && input.Region != nil:
		return entities.Region{}, "", errors.InvalidArgument("set either a template name or a region, not both")
	case input.Region != nil:
		return *input.Region, "", nil
	case name == "":
		return entities.Region{}, "", errors.InvalidArgument("a template name or a region is required")
	case o.templates == nil:
		return entities.Region{}, "", errors.FailedPrecondition("no template registry is configured")
	}

	t, err := o.templates.FindByName(name)
	if err != nil {
		return entities.Region{}, "", err
	}
	return entities.NewRegion(t.Size.Width, t.Size.Height), t.Name, nil
}

// GetSession returns a session and its recorded placements
func (o *orchestrator) GetSession(_ context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	s, err := o.lookup(input.sessionID())
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: s.snapshot()}, nil
}

// ListSessions returns every session ordered by ID
func (o *orchestrator) ListSessions(_ context.Context, _ *ListSessionsInput) (*ListSessionsOutput, error) {
	o.mu.RLock()
	all := make([]*session, 0, len(o.sessions))
	for _, s := range o.sessions {
		all = append(all, s)
	}
	o.mu.RUnlock()

	out := make([]*Session, 0, len(all))
	for _, s := range all {
		out = append(out, s.snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &ListSessionsOutput{Sessions: out}, nil
}

// DeleteSession clears a session's instances and forgets it
func (o *orchestrator) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	id := ""
	if input != nil {
		id = input.SessionID
	}

	o.mu.Lock()
	s, exists := o.sessions[id]
	if exists {
		delete(o.sessions, id)
	}
	o.mu.Unlock()

	if !exists {
		return nil, errors.NotFoundf("session %s not found", id).WithMeta("session_id", id)
	}

	if err := s.placer.Clear(ctx); err != nil {
		o.logger.Warn("session deleted with instances left behind",
			zap.String("session_id", id),
			zap.Error(err),
		)
	}
	o.logger.Info("placement session deleted", zap.String("session_id", id))
	return &DeleteSessionOutput{}, nil
}

// PlaceAssets runs one batch on the session's placer
func (o *orchestrator) PlaceAssets(ctx context.Context, input *PlaceAssetsInput) (*PlaceAssetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	s, err := o.lookup(input.SessionID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, len(input.Items))
	for i, item := range input.Items {
		if item != nil {
			items[i] = item
		}
	}

	result, err := s.placer.PlaceAssets(ctx, items)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to place assets in session %s", s.info.ID)
	}

	output := &PlaceAssetsOutput{Placed: result.Placed}
	for _, f := range result.Failed {
		failed := FailedItem{Reason: f.Reason, Err: f.Err}
		if f.Item != nil {
			failed.ItemID = f.Item.GetID()
			failed.ItemType = f.Item.GetType()
		}
		output.Failed = append(output.Failed, failed)
	}
	return output, nil
}

// PlaceSingle records one item at a caller-chosen position
func (o *orchestrator) PlaceSingle(ctx context.Context, input *PlaceSingleInput) (*PlaceSingleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	s, err := o.lookup(input.SessionID)
	if err != nil {
		return nil, err
	}

	placed, err := s.placer.PlaceSingle(ctx, input.Item, input.Position)
	if err != nil {
		return nil, err
	}
	return &PlaceSingleOutput{Placement: placed}, nil
}

// GetPlacements returns the positions recorded since the last clear
func (o *orchestrator) GetPlacements(_ context.Context, input *GetPlacementsInput) (*GetPlacementsOutput, error) {
	id := ""
	if input != nil {
		id = input.SessionID
	}
	s, err := o.lookup(id)
	if err != nil {
		return nil, err
	}
	return &GetPlacementsOutput{
		State:      s.placer.State(),
		Placements: s.placer.Positions(),
	}, nil
}

// ClearPlacements empties a session's placer
func (o *orchestrator) ClearPlacements(ctx context.Context, input *ClearPlacementsInput) (*ClearPlacementsOutput, error) {
	s, err := o.lookup(input.sessionID())
	if err != nil {
		return nil, err
	}

	cleared := len(s.placer.Positions())
	if err := s.placer.Clear(ctx); err != nil {
		return nil, errors.Wrapf(err, "session %s was cleared but some instances were not destroyed", s.info.ID)
	}
	return &ClearPlacementsOutput{Cleared: cleared}, nil
}

func (o *orchestrator) lookup(id string) (*session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session id is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	s, exists := o.sessions[id]
	if !exists {
		return nil, errors.NotFoundf("session %s not found", id).WithMeta("session_id", id)
	}
	return s, nil
}

func (s *session) snapshot() *Session {
	out := s.info
	out.State = s.placer.State()
	out.Placements = s.placer.Positions()
	return &out
}

func (i *GetSessionInput) sessionID() string {
	if i == nil {
		return ""
	}
	return i.SessionID
}

func (i *ClearPlacementsInput) sessionID() string {
	if i == nil {
		return ""
	}
	return i.SessionID
}
