package placement_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-rooms/internal/placement"
	placementmock "github.com/KirkDiggler/rpg-rooms/internal/placement/mock"
)

// cycleSource replays a fixed list of samples forever
type cycleSource struct {
	values []float64
	next   int
}

func (s *cycleSource) Unit() (float64, error) {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v, nil
}

// recordingBus keeps the type of every published event and runs onPublish
// synchronously, the way a subscriber would
type recordingBus struct {
	mu        sync.Mutex
	types     []string
	onPublish func(events.Event)
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	b.types = append(b.types, e.Type())
	hook := b.onPublish
	b.mu.Unlock()

	if hook != nil {
		hook(e)
	}
	return nil
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) Types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.types))
	copy(out, b.types)
	return out
}

func items(n int) []entities.Item {
	out := make([]entities.Item, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entities.PlacementItem{ID: fmt.Sprintf("item_%d", i+1), Type: "crate"})
	}
	return out
}

type PlacerTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockSink *placementmock.MockSink
	bus      *recordingBus
}

func TestPlacerSuite(t *testing.T) {
	suite.Run(t, new(PlacerTestSuite))
}

func (s *PlacerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockSink = placementmock.NewMockSink(s.ctrl)
	s.bus = &recordingBus{}
}

func (s *PlacerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlacerTestSuite) newPlacer(cfg placement.Config) *placement.Placer {
	if cfg.Logger == nil {
		cfg.Logger = zaptest.NewLogger(s.T())
	}
	p, err := placement.NewPlacer(&cfg)
	s.Require().NoError(err)
	return p
}

func (s *PlacerTestSuite) assertSeparated(positions []entities.PlacedPosition, minDistance float64) {
	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			d := positions[i].Position.DistanceTo(positions[j].Position)
			s.GreaterOrEqual(d, minDistance, "%s and %s", positions[i].ItemID, positions[j].ItemID)
		}
	}
}

func (s *PlacerTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *placement.Config
	}{
		{"nil config", nil},
		{"negative distance", &placement.Config{
			Region: entities.NewRegion(10, 10), MinimumDistance: -1, MaxAttempts: 1,
			Source: placement.NewSeededSource(1),
		}},
		{"zero attempts", &placement.Config{
			Region: entities.NewRegion(10, 10), MaxAttempts: 0,
			Source: placement.NewSeededSource(1),
		}},
		{"inverted region", &placement.Config{
			Region: entities.Region{MinX: 5, MaxX: 1}, MaxAttempts: 1,
			Source: placement.NewSeededSource(1),
		}},
		{"missing source", &placement.Config{
			Region: entities.NewRegion(10, 10), MaxAttempts: 1,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := placement.NewPlacer(tc.cfg)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *PlacerTestSuite) TestPlaceAssetsEmptyBatch() {
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 10, Source: placement.NewSeededSource(1),
	})

	_, err := p.PlaceAssets(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(placement.StateEmpty, p.State())
}

func (s *PlacerTestSuite) TestPlaceAssetsTenByTenScenario() {
	for seed := uint64(1); seed <= 20; seed++ {
		p := s.newPlacer(placement.Config{
			Region:          entities.NewRegion(10, 10),
			MinimumDistance: 5,
			MaxAttempts:     100,
			Source:          placement.NewSeededSource(seed),
		})

		result, err := p.PlaceAssets(s.ctx, items(3))
		s.Require().NoError(err)
		s.Equal(3, len(result.Placed)+len(result.Failed), "seed %d", seed)
		s.NotEmpty(result.Placed, "seed %d", seed)
		s.assertSeparated(result.Placed, 5)

		for _, pos := range result.Placed {
			s.True(p.Region().Contains(pos.Position))
		}
		for _, f := range result.Failed {
			s.Equal(placement.ReasonPlacementFailed, f.Reason)
			s.True(errors.IsResourceExhausted(f.Err))
		}
		s.Equal(result.Placed, p.Positions())
	}
}

func (s *PlacerTestSuite) TestPlaceAssetsIsReproducible() {
	run := func() []entities.PlacedPosition {
		p := s.newPlacer(placement.Config{
			Region:          entities.NewRegion(20, 20),
			MinimumDistance: 3,
			MaxAttempts:     50,
			Source:          placement.NewSeededSource(42),
		})
		result, err := p.PlaceAssets(s.ctx, items(8))
		s.Require().NoError(err)
		return result.Placed
	}

	s.Equal(run(), run())
}

func (s *PlacerTestSuite) TestPlaceAssetsSkipsExhaustedItemAndContinues() {
	// samples: (1,1) accepted, (1,1) rejected twice, then (9,9) accepted
	source := &cycleSource{values: []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.9, 0.9}}
	p := s.newPlacer(placement.Config{
		Region:          entities.NewRegion(10, 10),
		MinimumDistance: 2,
		MaxAttempts:     2,
		Source:          source,
	})

	batch := items(3)
	result, err := p.PlaceAssets(s.ctx, batch)
	s.Require().NoError(err)

	s.Require().Len(result.Placed, 2)
	s.Equal("item_1", result.Placed[0].ItemID)
	s.Equal(entities.Position{X: 1, Y: 1}, result.Placed[0].Position)
	s.Equal("item_3", result.Placed[1].ItemID)
	s.Equal(entities.Position{X: 9, Y: 9}, result.Placed[1].Position)

	s.Require().Len(result.Failed, 1)
	s.Equal(batch[1], result.Failed[0].Item)
	s.Equal(placement.ReasonPlacementFailed, result.Failed[0].Reason)
	s.Equal("item_2", errors.GetMeta(result.Failed[0].Err)["item_id"])
}

func (s *PlacerTestSuite) TestPlaceAssetsConsidersEarlierBatches() {
	p := s.newPlacer(placement.Config{
		Region:          entities.Region{MinX: 3, MaxX: 3, MinY: 4, MaxY: 4},
		MinimumDistance: 1,
		MaxAttempts:     5,
		Source:          placement.NewSeededSource(7),
	})

	first, err := p.PlaceAssets(s.ctx, items(1))
	s.Require().NoError(err)
	s.Require().Len(first.Placed, 1)
	s.Equal(entities.Position{X: 3, Y: 4}, first.Placed[0].Position)

	second, err := p.PlaceAssets(s.ctx, items(1))
	s.Require().NoError(err)
	s.Empty(second.Placed)
	s.Len(second.Failed, 1)
	s.Len(p.Positions(), 1)
}

func (s *PlacerTestSuite) TestPlaceAssetsZeroDistanceAcceptsAll() {
	p := s.newPlacer(placement.Config{
		Region:      entities.Region{},
		MaxAttempts: 1,
		Source:      placement.NewSeededSource(3),
	})

	result, err := p.PlaceAssets(s.ctx, items(4))
	s.Require().NoError(err)
	s.Len(result.Placed, 4)
	s.Empty(result.Failed)
}

func (s *PlacerTestSuite) TestPlaceAssetsNilItem() {
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 10, Source: placement.NewSeededSource(1),
	})

	var typedNil *entities.PlacementItem
	batch := []entities.Item{nil, &entities.PlacementItem{ID: "a", Type: "crate"}, typedNil}

	var result *placement.Result
	var err error
	s.NotPanics(func() { result, err = p.PlaceAssets(s.ctx, batch) })
	s.Require().NoError(err)
	s.Len(result.Placed, 1)
	s.Require().Len(result.Failed, 2)
	for _, failed := range result.Failed {
		s.Nil(failed.Item)
		s.Equal(placement.ReasonInvalidItem, failed.Reason)
		s.True(errors.IsInvalidArgument(failed.Err))
	}
	s.Equal(2, errors.GetMeta(result.Failed[1].Err)["index"])
}

func (s *PlacerTestSuite) TestPlaceAssetsCanceledContext() {
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 10, Source: placement.NewSeededSource(1),
	})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := p.PlaceAssets(ctx, items(2))
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.Empty(p.Positions())
}

func (s *PlacerTestSuite) TestPlaceAssetsInstantiatesThroughSink() {
	p := s.newPlacer(placement.Config{
		Region:      entities.NewRegion(10, 10),
		MaxAttempts: 1,
		Source:      &cycleSource{values: []float64{0.5}},
		Sink:        s.mockSink,
	})
	batch := items(2)

	s.mockSink.EXPECT().
		Instantiate(s.ctx, batch[0], entities.Position{X: 5, Y: 5}).
		Return("inst_1", nil)
	s.mockSink.EXPECT().
		Instantiate(s.ctx, batch[1], entities.Position{X: 5, Y: 5}).
		Return("", errors.Unavailable("engine offline"))

	result, err := p.PlaceAssets(s.ctx, batch)
	s.Require().NoError(err)
	s.Require().Len(result.Placed, 1)
	s.Equal("inst_1", result.Placed[0].InstanceID)

	s.Require().Len(result.Failed, 1)
	s.Equal(placement.ReasonInstantiateFailed, result.Failed[0].Reason)
	s.True(errors.IsUnavailable(result.Failed[0].Err))
	s.Len(p.Positions(), 1)
}

func (s *PlacerTestSuite) TestPlaceAssetsSourceFailure() {
	source := placementmock.NewMockSource(s.ctrl)
	source.EXPECT().Unit().Return(0.0, errors.Internal("rng broke"))

	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 10, Source: source,
	})

	result, err := p.PlaceAssets(s.ctx, items(1))
	s.Require().NoError(err)
	s.Empty(result.Placed)
	s.Require().Len(result.Failed, 1)
	s.Equal(placement.ReasonSourceFailed, result.Failed[0].Reason)
}

func (s *PlacerTestSuite) TestPlaceSingle() {
	p := s.newPlacer(placement.Config{
		Region:          entities.NewRegion(10, 10),
		MinimumDistance: 5,
		MaxAttempts:     10,
		Source:          placement.NewSeededSource(1),
	})
	item := &entities.PlacementItem{ID: "statue", Type: "decor"}

	placed, err := p.PlaceSingle(s.ctx, item, entities.Position{X: 0, Y: 0})
	s.Require().NoError(err)
	s.Equal("statue", placed.ItemID)
	s.Equal(placement.StatePopulated, p.State())

	// boundary is inclusive
	_, err = p.PlaceSingle(s.ctx, item, entities.Position{X: 10, Y: 10})
	s.Require().NoError(err)

	_, err = p.PlaceSingle(s.ctx, item, entities.Position{X: 11, Y: 5})
	s.Require().Error(err)
	s.True(errors.IsOutOfRange(err))
	s.Equal(11.0, errors.GetMeta(err)["x"])

	_, err = p.PlaceSingle(s.ctx, item, entities.Position{X: 3, Y: 3})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// exactly at the minimum distance is allowed
	_, err = p.PlaceSingle(s.ctx, item, entities.Position{X: 5, Y: 0})
	s.Require().NoError(err)

	_, err = p.PlaceSingle(s.ctx, nil, entities.Position{X: 1, Y: 9})
	s.True(errors.IsInvalidArgument(err))

	var typedNil *entities.PlacementItem
	s.NotPanics(func() {
		_, err = p.PlaceSingle(s.ctx, typedNil, entities.Position{X: 1, Y: 9})
	})
	s.True(errors.IsInvalidArgument(err))

	s.Len(p.Positions(), 3)
}

func (s *PlacerTestSuite) TestPlaceSingleSinkFailureDoesNotRecord() {
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 1, Source: placement.NewSeededSource(1),
		Sink: s.mockSink,
	})
	item := &entities.PlacementItem{ID: "statue", Type: "decor"}

	s.mockSink.EXPECT().
		Instantiate(s.ctx, item, entities.Position{X: 2, Y: 2}).
		Return("", errors.Internal("boom"))

	_, err := p.PlaceSingle(s.ctx, item, entities.Position{X: 2, Y: 2})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Equal(placement.StateEmpty, p.State())
}

func (s *PlacerTestSuite) TestClearDestroysInstances() {
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 1, Source: placement.NewSeededSource(1),
		Sink: s.mockSink,
	})
	a := &entities.PlacementItem{ID: "a", Type: "crate"}
	b := &entities.PlacementItem{ID: "b", Type: "crate"}

	gomock.InOrder(
		s.mockSink.EXPECT().Instantiate(s.ctx, a, gomock.Any()).Return("inst_a", nil),
		s.mockSink.EXPECT().Instantiate(s.ctx, b, gomock.Any()).Return("inst_b", nil),
		s.mockSink.EXPECT().Destroy(s.ctx, "inst_a").Return(errors.NotFound("gone")),
		s.mockSink.EXPECT().Destroy(s.ctx, "inst_b").Return(nil),
	)

	_, err := p.PlaceSingle(s.ctx, a, entities.Position{X: 1, Y: 1})
	s.Require().NoError(err)
	_, err = p.PlaceSingle(s.ctx, b, entities.Position{X: 8, Y: 8})
	s.Require().NoError(err)

	err = p.Clear(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(placement.StateEmpty, p.State())
	s.Empty(p.Positions())
}

func (s *PlacerTestSuite) TestClearMatchesFreshPlacer() {
	cfg := func() placement.Config {
		return placement.Config{
			Region:          entities.NewRegion(10, 10),
			MinimumDistance: 4,
			MaxAttempts:     3,
			Source:          &cycleSource{values: []float64{0.1, 0.1, 0.9, 0.9, 0.1, 0.9}},
		}
	}

	used := s.newPlacer(cfg())
	first, err := used.PlaceAssets(s.ctx, items(3))
	s.Require().NoError(err)
	s.Require().NoError(used.Clear(s.ctx))

	s.Equal(placement.StateEmpty, used.State())
	s.Empty(used.Positions())

	again, err := used.PlaceAssets(s.ctx, items(3))
	s.Require().NoError(err)

	fresh := s.newPlacer(cfg())
	expected, err := fresh.PlaceAssets(s.ctx, items(3))
	s.Require().NoError(err)

	s.Equal(first.Placed, again.Placed)
	s.Equal(expected.Placed, again.Placed)
	s.Equal(fresh.Positions(), used.Positions())
}

func (s *PlacerTestSuite) TestClearEmptyPlacer() {
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 1, Source: placement.NewSeededSource(1),
		Sink: s.mockSink,
	})
	s.NoError(p.Clear(s.ctx))
	s.Equal(placement.StateEmpty, p.State())
}

func (s *PlacerTestSuite) TestPositionsIsCopy() {
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MaxAttempts: 1, Source: placement.NewSeededSource(1),
	})
	_, err := p.PlaceSingle(s.ctx, &entities.PlacementItem{ID: "a"}, entities.Position{X: 1, Y: 1})
	s.Require().NoError(err)

	positions := p.Positions()
	positions[0].Position.X = 9

	s.Equal(1.0, p.Positions()[0].Position.X)
}

func (s *PlacerTestSuite) TestEventsPublished() {
	p := s.newPlacer(placement.Config{
		ID:              "room_1",
		Region:          entities.Region{},
		MinimumDistance: 1,
		MaxAttempts:     2,
		Source:          placement.NewSeededSource(1),
		EventBus:        s.bus,
	})

	_, err := p.PlaceAssets(s.ctx, items(2))
	s.Require().NoError(err)
	s.Require().NoError(p.Clear(s.ctx))

	s.Equal([]string{
		placement.EventPlaced,
		placement.EventFailed,
		placement.EventCleared,
	}, s.bus.Types())
}

func (s *PlacerTestSuite) TestSubscribersMayReadThePlacer() {
	p := s.newPlacer(placement.Config{
		Region:      entities.NewRegion(10, 10),
		MaxAttempts: 20,
		Source:      placement.NewSeededSource(3),
		EventBus:    s.bus,
	})

	var seen []int
	var states []placement.State
	s.bus.onPublish = func(events.Event) {
		seen = append(seen, len(p.Positions()))
		states = append(states, p.State())
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.PlaceAssets(s.ctx, items(2))
		_, _ = p.PlaceSingle(s.ctx, &entities.PlacementItem{ID: "altar", Type: "decor"}, entities.Position{X: 0, Y: 0})
		_ = p.Clear(s.ctx)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("placer held its lock while publishing")
	}

	s.Len(seen, 4)
	s.Equal(placement.StateEmpty, states[3])
	s.Equal(0, seen[3])
	s.Equal(placement.StatePopulated, states[0])
}

func (s *PlacerTestSuite) TestMemorySink() {
	sink := placement.NewMemorySink(idgen.NewSequential("inst"))
	p := s.newPlacer(placement.Config{
		Region: entities.NewRegion(10, 10), MinimumDistance: 1, MaxAttempts: 20,
		Source: placement.NewSeededSource(9),
		Sink:   sink,
	})

	result, err := p.PlaceAssets(s.ctx, items(3))
	s.Require().NoError(err)
	s.Require().Len(result.Placed, 3)
	s.Equal(3, sink.Len())

	inst, ok := sink.Get("inst_1")
	s.Require().True(ok)
	s.Equal("item_1", inst.ItemID)
	s.Equal(result.Placed[0].Position, inst.Position)

	s.Require().NoError(p.Clear(s.ctx))
	s.Equal(0, sink.Len())

	s.True(errors.IsNotFound(sink.Destroy(s.ctx, "inst_1")))
}
