package placement_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	orchestrator "github.com/KirkDiggler/rpg-rooms/internal/orchestrators/placement"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/rpg-rooms/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-rooms/internal/placement"
	"github.com/KirkDiggler/rpg-rooms/internal/registry"
	"github.com/KirkDiggler/rpg-rooms/internal/testutils"
)

type countingBus struct {
	mu     sync.Mutex
	counts map[string]int
}

func (b *countingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.counts == nil {
		b.counts = make(map[string]int)
	}
	b.counts[e.Type()]++
	return nil
}
func (b *countingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *countingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *countingBus) Unsubscribe(_ string) error { return nil }
func (b *countingBus) Clear(_ string)             {}
func (b *countingBus) ClearAll()                  {}

func (b *countingBus) Count(eventType string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[eventType]
}

// stepRoller returns the queued rolls, then keeps returning the last one
type stepRoller struct {
	rolls []int
}

func (r *stepRoller) Roll(_ int) (int, error) {
	v := r.rolls[0]
	if len(r.rolls) > 1 {
		r.rolls = r.rolls[1:]
	}
	return v, nil
}

func (r *stepRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, _ := r.Roll(size)
		out = append(out, v)
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	sink         *placement.MemorySink
	templates    *registry.Registry
	bus          *countingBus
	orchestrator orchestrator.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.sink = placement.NewMemorySink(idgen.NewSequential("inst"))
	s.templates = registry.New(nil)
	s.bus = &countingBus{}

	orch, err := orchestrator.NewOrchestrator(&orchestrator.Config{
		IDGenerator: idgen.NewSequential("sess"),
		Sink:        s.sink,
		Templates:   s.templates,
		EventBus:    s.bus,
		DiceRoller:  &stepRoller{rolls: []int{1, 1, 3, 3}},
		Logger:      zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) createInRegion(w, h, minDistance float64, seed uint64) *orchestrator.Session {
	region := entities.NewRegion(w, h)
	out, err := s.orchestrator.CreateSession(s.ctx, &orchestrator.CreateSessionInput{
		Region:          &region,
		MinimumDistance: ptr(minDistance),
		Seed:            ptr(seed),
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := orchestrator.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = orchestrator.NewOrchestrator(&orchestrator.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = orchestrator.NewOrchestrator(&orchestrator.Config{
		IDGenerator:     idgen.NewSequential("sess"),
		MinimumDistance: ptr(-1.0),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateSessionDefaults() {
	region := entities.NewRegion(10, 10)
	out, err := s.orchestrator.CreateSession(s.ctx, &orchestrator.CreateSessionInput{Region: &region})
	s.Require().NoError(err)

	sess := out.Session
	s.Equal("sess_1", sess.ID)
	s.Equal(region, sess.Region)
	s.Equal(orchestrator.DefaultMinimumDistance, sess.MinimumDistance)
	s.Equal(orchestrator.DefaultMaxAttempts, sess.MaxAttempts)
	s.Equal(placement.StateEmpty, sess.State)
	s.Empty(sess.Placements)
	s.False(sess.CreatedAt.IsZero())
}

func (s *OrchestratorTestSuite) TestCreateSessionFromTemplate() {
	s.Require().NoError(s.templates.Add(testutils.RoomTemplate("crypt", 12, 6)))

	out, err := s.orchestrator.CreateSession(s.ctx, &orchestrator.CreateSessionInput{TemplateName: "crypt"})
	s.Require().NoError(err)
	s.Equal("crypt", out.Session.TemplateName)
	s.Equal(entities.Region{MinX: 0, MaxX: 12, MinY: 0, MaxY: 6}, out.Session.Region)

	_, err = s.orchestrator.CreateSession(s.ctx, &orchestrator.CreateSessionInput{TemplateName: "vault"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreateSessionRejectsBadInput() {
	region := entities.NewRegion(5, 5)
	inverted := entities.Region{MinX: 5, MaxX: 0, MinY: 0, MaxY: 5}

	testCases := []struct {
		name  string
		input *orchestrator.CreateSessionInput
	}{
		{"nil input", nil},
		{"neither template nor region", &orchestrator.CreateSessionInput{}},
		{"both template and region", &orchestrator.CreateSessionInput{TemplateName: "crypt", Region: &region}},
		{"inverted region", &orchestrator.CreateSessionInput{Region: &inverted}},
		{"negative distance", &orchestrator.CreateSessionInput{Region: &region, MinimumDistance: ptr(-2.0)}},
		{"negative attempts", &orchestrator.CreateSessionInput{Region: &region, MaxAttempts: -1}},
		{"negative grid", &orchestrator.CreateSessionInput{Region: &region, GridSteps: -1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateSession(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateSessionWithoutRegistry() {
	orch, err := orchestrator.NewOrchestrator(&orchestrator.Config{IDGenerator: idgen.NewSequential("sess")})
	s.Require().NoError(err)

	_, err = orch.CreateSession(s.ctx, &orchestrator.CreateSessionInput{TemplateName: "crypt"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestCreateSessionDuplicateID() {
	ctrl := gomock.NewController(s.T())
	ids := idgenmock.NewMockGenerator(ctrl)
	ids.EXPECT().Generate().Return("fixed").Times(2)

	orch, err := orchestrator.NewOrchestrator(&orchestrator.Config{IDGenerator: ids})
	s.Require().NoError(err)

	region := entities.NewRegion(5, 5)
	_, err = orch.CreateSession(s.ctx, &orchestrator.CreateSessionInput{Region: &region})
	s.Require().NoError(err)

	_, err = orch.CreateSession(s.ctx, &orchestrator.CreateSessionInput{Region: &region})
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestPlaceAssetsKeepsSeparation() {
	sess := s.createInRegion(10, 10, 5, 7)

	out, err := s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{
		SessionID: sess.ID,
		Items:     testutils.PlacementItems("crate", 3),
	})
	s.Require().NoError(err)
	s.Equal(3, len(out.Placed)+len(out.Failed))

	for i, a := range out.Placed {
		s.NotEmpty(a.InstanceID)
		inst, ok := s.sink.Get(a.InstanceID)
		s.Require().True(ok)
		s.Equal(a.ItemID, inst.ItemID)
		for _, b := range out.Placed[i+1:] {
			s.GreaterOrEqual(a.Position.DistanceTo(b.Position), 5.0)
		}
	}
	for _, f := range out.Failed {
		s.Equal(placement.ReasonPlacementFailed, f.Reason)
		s.True(errors.IsResourceExhausted(f.Err))
	}
	s.Equal(len(out.Placed), s.bus.Count(placement.EventPlaced))
	s.Equal(len(out.Failed), s.bus.Count(placement.EventFailed))

	got, err := s.orchestrator.GetSession(s.ctx, &orchestrator.GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(placement.StatePopulated, got.Session.State)
	s.Equal(out.Placed, got.Session.Placements)
}

func (s *OrchestratorTestSuite) TestSameSeedSamePlacements() {
	a := s.createInRegion(20, 20, 3, 42)
	b := s.createInRegion(20, 20, 3, 42)

	place := func(id string) []entities.Position {
		out, err := s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{
			SessionID: id,
			Items:     testutils.PlacementItems("torch", 5),
		})
		s.Require().NoError(err)
		var positions []entities.Position
		for _, p := range out.Placed {
			positions = append(positions, p.Position)
		}
		return positions
	}

	s.Equal(place(a.ID), place(b.ID))
	s.Equal(uint64(42), a.Seed)
}

func (s *OrchestratorTestSuite) TestPlaceAssetsReportsNilItems() {
	sess := s.createInRegion(10, 10, 1, 1)
	items := testutils.PlacementItems("crate", 2)
	items = append(items, nil)

	out, err := s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{SessionID: sess.ID, Items: items})
	s.Require().NoError(err)
	s.Len(out.Placed, 2)
	s.Require().Len(out.Failed, 1)
	s.Equal(placement.ReasonInvalidItem, out.Failed[0].Reason)
	s.Empty(out.Failed[0].ItemID)
}

func (s *OrchestratorTestSuite) TestPlaceAssetsErrors() {
	sess := s.createInRegion(10, 10, 1, 1)

	_, err := s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{SessionID: sess.ID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{
		SessionID: "missing",
		Items:     testutils.PlacementItems("crate", 1),
	})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{
		Items: testutils.PlacementItems("crate", 1),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGridSessionUsesDiceRoller() {
	region := entities.NewRegion(8, 8)
	out, err := s.orchestrator.CreateSession(s.ctx, &orchestrator.CreateSessionInput{
		Region:          &region,
		MinimumDistance: ptr(4.0),
		MaxAttempts:     1,
		GridSteps:       2,
	})
	s.Require().NoError(err)
	s.Equal(2, out.Session.GridSteps)

	placed, err := s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{
		SessionID: out.Session.ID,
		Items:     testutils.PlacementItems("pillar", 2),
	})
	s.Require().NoError(err)
	s.Require().Len(placed.Placed, 2)
	s.Equal(entities.Position{X: 0, Y: 0}, placed.Placed[0].Position)
	s.Equal(entities.Position{X: 8, Y: 8}, placed.Placed[1].Position)
}

func (s *OrchestratorTestSuite) TestPlaceSingle() {
	sess := s.createInRegion(10, 10, 3, 1)
	item := &entities.PlacementItem{ID: "altar", Type: "furniture"}

	out, err := s.orchestrator.PlaceSingle(s.ctx, &orchestrator.PlaceSingleInput{
		SessionID: sess.ID,
		Item:      item,
		Position:  entities.Position{X: 5, Y: 5},
	})
	s.Require().NoError(err)
	s.Equal("altar", out.Placement.ItemID)
	s.Equal("inst_1", out.Placement.InstanceID)

	_, err = s.orchestrator.PlaceSingle(s.ctx, &orchestrator.PlaceSingleInput{
		SessionID: sess.ID,
		Item:      &entities.PlacementItem{ID: "brazier", Type: "furniture"},
		Position:  entities.Position{X: 6, Y: 6},
	})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.PlaceSingle(s.ctx, &orchestrator.PlaceSingleInput{
		SessionID: sess.ID,
		Item:      &entities.PlacementItem{ID: "brazier", Type: "furniture"},
		Position:  entities.Position{X: 11, Y: 0},
	})
	s.True(errors.IsOutOfRange(err))

	_, err = s.orchestrator.PlaceSingle(s.ctx, &orchestrator.PlaceSingleInput{SessionID: sess.ID})
	s.True(errors.IsInvalidArgument(err))

	s.Equal(1, s.sink.Len())
}

func (s *OrchestratorTestSuite) TestClearPlacements() {
	sess := s.createInRegion(10, 10, 1, 3)
	_, err := s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{
		SessionID: sess.ID,
		Items:     testutils.PlacementItems("crate", 4),
	})
	s.Require().NoError(err)
	s.Equal(4, s.sink.Len())

	out, err := s.orchestrator.ClearPlacements(s.ctx, &orchestrator.ClearPlacementsInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(4, out.Cleared)
	s.Equal(0, s.sink.Len())
	s.Equal(1, s.bus.Count(placement.EventCleared))

	got, err := s.orchestrator.GetPlacements(s.ctx, &orchestrator.GetPlacementsInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(placement.StateEmpty, got.State)
	s.Empty(got.Placements)
}

func (s *OrchestratorTestSuite) TestDeleteSession() {
	sess := s.createInRegion(10, 10, 1, 3)
	_, err := s.orchestrator.PlaceAssets(s.ctx, &orchestrator.PlaceAssetsInput{
		SessionID: sess.ID,
		Items:     testutils.PlacementItems("crate", 2),
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.DeleteSession(s.ctx, &orchestrator.DeleteSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(0, s.sink.Len())

	_, err = s.orchestrator.GetSession(s.ctx, &orchestrator.GetSessionInput{SessionID: sess.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.DeleteSession(s.ctx, &orchestrator.DeleteSessionInput{SessionID: sess.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListSessions() {
	s.createInRegion(5, 5, 1, 1)
	s.createInRegion(6, 6, 1, 1)

	out, err := s.orchestrator.ListSessions(s.ctx, &orchestrator.ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 2)
	s.Equal("sess_1", out.Sessions[0].ID)
	s.Equal("sess_2", out.Sessions[1].ID)
}

func (s *OrchestratorTestSuite) TestGetSessionRequiresID() {
	_, err := s.orchestrator.GetSession(s.ctx, &orchestrator.GetSessionInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ClearPlacements(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
