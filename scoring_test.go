package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTurnEndpoints(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		difficulty string
		max        int
		min        int
	}{
		{DifficultyEasy, 60, 30},
		{DifficultyMedium, 80, 40},
		{DifficultyHard, 100, 50},
	} {
		tc := tc
		t.Run(tc.difficulty, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.max, scoreTurn(tc.difficulty, 60, 60), "instant find pays full points")
			assert.Equal(t, tc.min, scoreTurn(tc.difficulty, 0, 60), "no time left pays half points")
		})
	}
}

func TestScoreTurnBoundsAndMonotonicity(t *testing.T) {
	t.Parallel()

	const total = 60

	for _, difficulty := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		base := basePoints(difficulty)
		prev := 0

		for remaining := 0; remaining <= total; remaining++ {
			got := scoreTurn(difficulty, float64(remaining), total)

			assert.GreaterOrEqual(t, got, base/2, "%s with %ds left", difficulty, remaining)
			assert.LessOrEqual(t, got, base, "%s with %ds left", difficulty, remaining)
			assert.GreaterOrEqual(t, got, prev, "%s must not pay less for a faster find", difficulty)

			prev = got
		}
	}
}

func TestScoreTurnHalfwayExample(t *testing.T) {
	t.Parallel()

	// round(60 * (0.5 + 0.5*(30/60)))
	assert.Equal(t, 45, scoreTurn(DifficultyEasy, 30, 60))
}

func TestScoreTurnClampsFraction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, scoreTurn(DifficultyHard, 90, 60), "excess time clamps to full points")
	assert.Equal(t, 50, scoreTurn(DifficultyHard, -5, 60), "negative time clamps to half points")
}

func TestScoreTurnDegenerateDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30, scoreTurn(DifficultyEasy, 0, 0))
	assert.Equal(t, 30, scoreTurn(DifficultyEasy, 10, -1))
}

func TestScoreTurnUnknownDifficulty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, basePoints(DifficultyEasy), basePoints("Nightmare"))
	assert.Equal(t, 60, scoreTurn("Nightmare", 60, 60))
}

func TestScoreTurnDeterministic(t *testing.T) {
	t.Parallel()

	for i := 0; i < 5; i++ {
		assert.Equal(t, scoreTurn(DifficultyMedium, 17, 45), scoreTurn(DifficultyMedium, 17, 45),
			fmt.Sprintf("call %d", i))
	}
}
