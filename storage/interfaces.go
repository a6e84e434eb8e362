package storage

import "booking-insights/models"

// ScoreWriter is the interface any export backend must satisfy.
type ScoreWriter interface {
	WriteScores(scores []*models.GroupScore) error
	Close() error
}
