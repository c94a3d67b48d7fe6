// Package highscore persists the best score across rounds as a single key/value entry
package highscore

import (
	"context"
	"errors"
	"strconv"
)

// Sentinel errors
var (
	ErrCorrupt       = errors.New("stored high score is not a non-negative integer")
	ErrNegativeScore = errors.New("high score must be non-negative")
)

// Store reads and writes the persisted best score
// Load returns 0 with a nil error when nothing was saved yet
type Store interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
}

// parseScore decodes a stored value
func parseScore(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, ErrCorrupt
	}
	return v, nil
}

// formatScore encodes a value for storage
func formatScore(score int) (string, error) {
	if score < 0 {
		return "", ErrNegativeScore
	}
	return strconv.Itoa(score), nil
}
