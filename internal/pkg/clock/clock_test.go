package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-rooms/internal/pkg/clock"
)

func TestRealClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.New().Now().Location())
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.Equal(t, start, c.Now())
	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())

	var _ clock.Clock = c
}
