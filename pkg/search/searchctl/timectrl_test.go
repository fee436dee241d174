package searchctl_test

import (
	"testing"
	"time"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
)

func TestLimitsWithIncrement(t *testing.T) {
	tc := searchctl.TimeControl{
		White: 60 * time.Second, WhiteInc: 1 * time.Second,
		Black: 60 * time.Second, BlackInc: 1 * time.Second,
		MovesToGo: 30,
	}
	b := tc.Limits(board.White)

	assert.Positive(t, b.Optimal)
	assert.GreaterOrEqual(t, b.Max, b.Optimal)
	assert.LessOrEqual(t, b.Min, b.Optimal)
	assert.Less(t, b.Max, tc.White)
}

func TestLimitsWithoutIncrement(t *testing.T) {
	tc := searchctl.TimeControl{White: 10 * time.Second, Black: 10 * time.Second}
	b := tc.Limits(board.White)

	assert.Positive(t, b.Optimal)
	assert.GreaterOrEqual(t, b.Max, b.Optimal)
}

func TestLimitsClampedToRemaining(t *testing.T) {
	tc := searchctl.TimeControl{White: 50 * time.Millisecond, Black: 50 * time.Millisecond}
	b := tc.Limits(board.White)

	assert.LessOrEqual(t, b.Optimal, tc.White)
	assert.LessOrEqual(t, b.Max, tc.White)
	assert.GreaterOrEqual(t, b.Optimal, 10*time.Millisecond)
}

func TestLimitsUnknownMovesToGoUsesAssumption(t *testing.T) {
	tc := searchctl.TimeControl{White: 60 * time.Second, Black: 60 * time.Second}
	b := tc.Limits(board.White)
	assert.Positive(t, b.Optimal)
}
