// Package routestore keeps a history of generated route tables so successive
// runs can report what changed.
package routestore

import (
	"context"
	"time"

	"git.home.luguber.info/inful/langpages/internal/manifest"
)

// Run is one recorded generation run.
type Run struct {
	ID         string
	Hash       string
	ConfigHash string
	Timestamp  time.Time
	Routes     int
}

// Store defines the interface for persisting and retrieving runs.
type Store interface {
	// Record persists a manifest's run summary and route paths.
	Record(ctx context.Context, m *manifest.RouteManifest) (*Run, error)

	// Latest returns the most recent run, or nil when none is recorded.
	Latest(ctx context.Context) (*Run, error)

	// History returns up to limit runs, newest first.
	History(ctx context.Context, limit int) ([]Run, error)

	// Paths returns the route paths recorded for a run, in table order.
	Paths(ctx context.Context, runID string) ([]string, error)

	// Close closes the store and releases resources.
	Close() error
}
