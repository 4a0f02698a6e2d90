// Package placement scatters items inside a rectangular region so that no
// two accepted positions are closer than a minimum distance.
package placement

import (
	"context"
	"math"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

// Failure reasons reported per item
const (
	ReasonInvalidItem       = "invalid item"
	ReasonPlacementFailed   = "placement failed"
	ReasonSourceFailed      = "random source failed"
	ReasonInstantiateFailed = "instantiation failed"
)

// State of a placer
type State int

const (
	// StateEmpty means no positions are recorded
	StateEmpty State = iota
	// StatePopulated means at least one position is recorded
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// Config configures a Placer
type Config struct {
	// ID names the placer in events and logs
	ID              string
	Region          entities.Region
	MinimumDistance float64
	MaxAttempts     int
	Source          Source

	// Optional
	Sink     Sink
	EventBus events.EventBus
	Logger   *zap.Logger
}

// Validate checks the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("placer config is required")
	}

	vb := errors.NewValidationBuilder()
	if err := c.Region.Validate(); err != nil {
		vb.Field("region", errors.GetMessage(err))
	}
	errors.ValidateNonNegative("minimum_distance", c.MinimumDistance, vb)
	errors.ValidateMinInt("max_attempts", c.MaxAttempts, 1, vb)
	if c.Source == nil {
		vb.RequiredField("source")
	}
	return vb.Build()
}

// Failure is one item the placer gave up on
type Failure struct {
	Item   entities.Item
	Reason string
	Err    error
}

// Result is the outcome of one PlaceAssets batch
type Result struct {
	Placed []entities.PlacedPosition
	Failed []Failure
}

// Placer records accepted positions until Clear. All methods are safe for
// concurrent use; a batch runs under the placer's lock, in input order.
// Events are published after the lock is released, so subscribers may call
// back into the placer.
type Placer struct {
	mu     sync.Mutex
	placed []entities.PlacedPosition

	region      entities.Region
	minDistance float64
	maxAttempts int
	source      Source
	sink        Sink
	bus         events.EventBus
	logger      *zap.Logger
	self        *placerEntity
}

// NewPlacer creates an empty placer
func NewPlacer(cfg *Config) (*Placer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid placer config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := cfg.ID
	if id == "" {
		id = "placer"
	}

	return &Placer{
		region:      cfg.Region,
		minDistance: cfg.MinimumDistance,
		maxAttempts: cfg.MaxAttempts,
		source:      cfg.Source,
		sink:        cfg.Sink,
		bus:         cfg.EventBus,
		logger:      logger.With(zap.String("placer_id", id)),
		self:        &placerEntity{id: id},
	}, nil
}

// PlaceAssets places each item in order. An item is accepted at the first
// sample that keeps minimum distance from every recorded position; items
// that run out of attempts are reported in Failed and the batch goes on.
func (p *Placer) PlaceAssets(ctx context.Context, items []entities.Item) (*Result, error) {
	if len(items) == 0 {
		return nil, errors.InvalidArgument("at least one item is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "placement canceled")
	}

	result, pending := p.placeBatchLocked(ctx, items)
	p.publishAll(ctx, pending)

	p.logger.Info("placement batch finished",
		zap.Int("requested", len(items)),
		zap.Int("placed", len(result.Placed)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func (p *Placer) placeBatchLocked(ctx context.Context, items []entities.Item) (*Result, []pendingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := &Result{}
	var pending []pendingEvent
	for i, item := range items {
		if isNilItem(item) {
			p.logger.Warn("skipping invalid item", zap.Int("index", i))
			result.Failed = append(result.Failed, Failure{
				Reason: ReasonInvalidItem,
				Err:    errors.InvalidArgumentf("item at index %d is nil", i).WithMeta("index", i),
			})
			continue
		}

		placed, failure := p.placeOneLocked(ctx, item)
		if failure != nil {
			result.Failed = append(result.Failed, *failure)
			pending = append(pending, pendingEvent{eventType: EventFailed, target: item})
			continue
		}
		result.Placed = append(result.Placed, placed)
		pending = append(pending, pendingEvent{eventType: EventPlaced, target: item})
	}
	return result, pending
}

func (p *Placer) placeOneLocked(ctx context.Context, item entities.Item) (entities.PlacedPosition, *Failure) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		pos, err := p.sampleLocked()
		if err != nil {
			p.logger.Error("random source failed", zap.String("item_id", item.GetID()), zap.Error(err))
			return entities.PlacedPosition{}, &Failure{Item: item, Reason: ReasonSourceFailed, Err: err}
		}
		if p.conflictLocked(pos) >= 0 {
			continue
		}

		placed, err := p.recordLocked(ctx, item, pos)
		if err != nil {
			return entities.PlacedPosition{}, &Failure{Item: item, Reason: ReasonInstantiateFailed, Err: err}
		}
		p.logger.Debug("item placed",
			zap.String("item_id", item.GetID()),
			zap.Stringer("position", pos),
			zap.Int("attempt", attempt),
		)
		return placed, nil
	}

	p.logger.Warn("placement failed for item",
		zap.String("item_id", item.GetID()),
		zap.Int("max_attempts", p.maxAttempts),
	)
	return entities.PlacedPosition{}, &Failure{
		Item:   item,
		Reason: ReasonPlacementFailed,
		Err: errors.ResourceExhaustedf("no valid position for item %s after %d attempts", item.GetID(), p.maxAttempts).
			WithMeta("item_id", item.GetID()).
			WithMeta("max_attempts", p.maxAttempts),
	}
}

// PlaceSingle records item at a caller-chosen position. It fails without
// touching state when pos is outside the region or too close to a recorded
// position.
func (p *Placer) PlaceSingle(ctx context.Context, item entities.Item, pos entities.Position) (*entities.PlacedPosition, error) {
	if isNilItem(item) {
		return nil, errors.InvalidArgument("item is required")
	}

	if !p.region.Contains(pos) {
		return nil, errors.OutOfRangef("position %s is out of bounds", pos).
			WithMeta("item_id", item.GetID()).
			WithPosition(pos.X, pos.Y)
	}

	placed, err := p.placeSingleLocked(ctx, item, pos)
	if err != nil {
		return nil, err
	}
	p.publish(ctx, EventPlaced, item)
	return &placed, nil
}

func (p *Placer) placeSingleLocked(ctx context.Context, item entities.Item, pos entities.Position) (entities.PlacedPosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.conflictLocked(pos); i >= 0 {
		other := p.placed[i]
		return entities.PlacedPosition{}, errors.FailedPreconditionf("position %s is too close to %s at %s",
			pos, other.ItemID, other.Position).
			WithMeta("item_id", item.GetID()).
			WithPosition(pos.X, pos.Y)
	}
	return p.recordLocked(ctx, item, pos)
}

// Clear destroys every instance and forgets all positions. The placer is
// always empty afterwards; destroy failures are returned together.
func (p *Placer) Clear(ctx context.Context) error {
	cleared, errs := p.clearLocked(ctx)
	p.publish(ctx, EventCleared, nil)
	p.logger.Info("placements cleared", zap.Int("count", cleared))

	if len(errs) > 0 {
		return errors.Wrapf(errors.Join(errs...), "failed to destroy %d of %d instances", len(errs), cleared)
	}
	return nil
}

func (p *Placer) clearLocked(ctx context.Context) (int, []error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.sink != nil {
		for _, placed := range p.placed {
			if placed.InstanceID == "" {
				continue
			}
			if err := p.sink.Destroy(ctx, placed.InstanceID); err != nil {
				p.logger.Warn("failed to destroy instance",
					zap.String("instance_id", placed.InstanceID),
					zap.Error(err),
				)
				errs = append(errs, err)
			}
		}
	}

	cleared := len(p.placed)
	p.placed = nil
	return cleared, errs
}

// Positions returns a copy of the recorded positions in placement order
func (p *Placer) Positions() []entities.PlacedPosition {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]entities.PlacedPosition, len(p.placed))
	copy(out, p.placed)
	return out
}

// State reports whether any position is recorded
func (p *Placer) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.placed) == 0 {
		return StateEmpty
	}
	return StatePopulated
}

// Region returns the placement bounds
func (p *Placer) Region() entities.Region {
	return p.region
}

// MinimumDistance returns the required separation
func (p *Placer) MinimumDistance() float64 {
	return p.minDistance
}

// MaxAttempts returns the per-item sample budget
func (p *Placer) MaxAttempts() int {
	return p.maxAttempts
}

func (p *Placer) sampleLocked() (entities.Position, error) {
	ux, err := p.source.Unit()
	if err != nil {
		return entities.Position{}, err
	}
	uy, err := p.source.Unit()
	if err != nil {
		return entities.Position{}, err
	}
	return entities.Position{
		X: math.Min(p.region.MinX+ux*p.region.Width(), p.region.MaxX),
		Y: math.Min(p.region.MinY+uy*p.region.Height(), p.region.MaxY),
	}, nil
}

// conflictLocked returns the index of the first recorded position closer
// than the minimum distance, or -1.
func (p *Placer) conflictLocked(pos entities.Position) int {
	for i, placed := range p.placed {
		if pos.DistanceTo(placed.Position) < p.minDistance {
			return i
		}
	}
	return -1
}

func (p *Placer) recordLocked(ctx context.Context, item entities.Item, pos entities.Position) (entities.PlacedPosition, error) {
	placed := entities.PlacedPosition{
		Item:     item,
		ItemID:   item.GetID(),
		ItemType: item.GetType(),
		Position: pos,
	}

	if p.sink != nil {
		handle, err := p.sink.Instantiate(ctx, item, pos)
		if err != nil {
			p.logger.Error("failed to instantiate item",
				zap.String("item_id", item.GetID()),
				zap.Stringer("position", pos),
				zap.Error(err),
			)
			return entities.PlacedPosition{}, errors.Wrapf(err, "failed to instantiate item %s", item.GetID())
		}
		placed.InstanceID = handle
	}

	p.placed = append(p.placed, placed)
	return placed, nil
}
