package main

import "math"

// Difficulty levels understood by the word table and scoring engine.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// basePoints returns the maximum score for a difficulty. Unknown
// difficulties score as Easy.
func basePoints(difficulty string) int {
	switch difficulty {
	case DifficultyMedium:
		return 80
	case DifficultyHard:
		return 100
	default:
		return 60
	}
}

// scoreTurn maps a resolved turn to points: full base points for an
// instant find, half points for a find on the last second. The caller
// supplies all timing values, so identical inputs always score alike.
func scoreTurn(difficulty string, timeRemaining, totalDuration float64) int {
	base := float64(basePoints(difficulty))

	fraction := 0.0
	if totalDuration > 0 {
		fraction = timeRemaining / totalDuration
	}
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	return int(math.Round(base * (0.5 + 0.5*fraction)))
}
