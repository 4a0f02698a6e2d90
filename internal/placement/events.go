package placement

import (
	"context"
	"reflect"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"
)

// Event types published on the optional bus
const (
	EventPlaced  = "placement.placed"
	EventFailed  = "placement.failed"
	EventCleared = "placement.cleared"
)

// placerEntity identifies a placer as the source of its events
type placerEntity struct {
	id string
}

func (e *placerEntity) GetID() string   { return e.id }
func (e *placerEntity) GetType() string { return "placer" }

var _ core.Entity = (*placerEntity)(nil)

type pendingEvent struct {
	eventType string
	target    core.Entity
}

// isNilItem catches nil interfaces and typed nil pointers such as
// (*entities.PlacementItem)(nil).
func isNilItem(item core.Entity) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

func (p *Placer) publishAll(ctx context.Context, pending []pendingEvent) {
	for _, e := range pending {
		p.publish(ctx, e.eventType, e.target)
	}
}

func (p *Placer) publish(ctx context.Context, eventType string, target core.Entity) {
	if p.bus == nil {
		return
	}

	if err := p.bus.Publish(ctx, events.NewGameEvent(eventType, p.self, target)); err != nil {
		// the bus is advisory, placement state is already settled
		p.logger.Warn("failed to publish placement event",
			zap.String("event", eventType),
			zap.Error(err),
		)
	}
}
