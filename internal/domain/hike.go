// Package domain contains the core data types for the hike logbook.
// This package has zero external dependencies and is imported by every other
// internal package (store, repo, service, cli).
package domain

import "fmt"

// Difficulty is the perceived effort of a hike.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// Difficulties lists every accepted Difficulty in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard}

// Valid reports whether d is one of the known difficulty levels.
// Matching is exact: "easy" is not a valid Difficulty.
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDifficulty converts user input into a Difficulty.
// It returns ErrValidation for anything outside Easy, Moderate and Hard.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: difficulty must be one of Easy, Moderate, Hard (got %q)", ErrValidation, s)
	}
	return d, nil
}

// Hike is one recorded hiking trip. It is the parent of its observations:
// deleting a hike deletes every observation that references it.
//
// Date is kept as text in MM/DD/YYYY form. Listings sort on that text, so
// the order is lexicographic rather than calendar order.
// Terrain and Description are optional; an empty string is stored as NULL.
type Hike struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Date        string     `json:"date"`
	HasParking  bool       `json:"hasParking"`
	Distance    float64    `json:"distance"`
	Duration    float64    `json:"duration"`
	Elevation   int        `json:"elevation"`
	Difficulty  Difficulty `json:"difficulty"`
	GroupSize   int        `json:"groupSize"`
	Terrain     string     `json:"terrain,omitempty"`
	Description string     `json:"description,omitempty"`
}
