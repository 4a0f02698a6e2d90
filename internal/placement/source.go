package placement

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

//go:generate mockgen -destination=mock/mock_source.go -package=placementmock github.com/KirkDiggler/rpg-rooms/internal/placement Source

// Source yields unit samples in [0, 1]. The placer scales them onto each
// axis of its region.
type Source interface {
	Unit() (float64, error)
}

// seededSource is a PCG stream. Two sources built from the same seed yield
// the same sequence.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource creates a reproducible source
func NewSeededSource(seed uint64) Source {
	return &seededSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *seededSource) Unit() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64(), nil
}

// diceSource snaps samples to a grid of steps+1 points per axis using a dice
// roller, so positions land on multiples of width/steps.
type diceSource struct {
	roller dice.Roller
	steps  int
}

// NewDiceSource creates a grid-snapped source backed by roller
func NewDiceSource(roller dice.Roller, steps int) (Source, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	if steps < 1 {
		return nil, errors.InvalidArgumentf("grid steps must be at least 1, got %d", steps).
			WithMeta("steps", steps)
	}
	return &diceSource{roller: roller, steps: steps}, nil
}

func (s *diceSource) Unit() (float64, error) {
	roll, err := s.roller.Roll(s.steps + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll placement sample")
	}
	if roll < 1 || roll > s.steps+1 {
		return 0, errors.Internalf("dice roll %d outside 1..%d", roll, s.steps+1)
	}
	return float64(roll-1) / float64(s.steps), nil
}
