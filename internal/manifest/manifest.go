// Package manifest records the route table produced by one generation run.
package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/langpages/internal/pageset"
)

// RouteManifest is a complete record of a run's inputs and route table.
type RouteManifest struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	ConfigHash string         `json:"config_hash,omitempty"`
	Source     string         `json:"source,omitempty"`
	Languages  []string       `json:"languages"`
	Routes     []Route        `json:"routes"`
	Counts     map[string]int `json:"counts"`
	Duration   int64          `json:"duration_ms"`
}

// Route is a page descriptor with its posts reduced to IDs.
type Route struct {
	pageset.Descriptor
	PostIDs []string `json:"posts"`
}

// New builds a manifest for a generated route table.
func New(descriptors []pageset.Descriptor, languages []string, configHash string) *RouteManifest {
	m := &RouteManifest{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		ConfigHash: configHash,
		Languages:  languages,
		Routes:     make([]Route, 0, len(descriptors)),
		Counts:     make(map[string]int, len(pageset.Views)),
	}
	for _, d := range descriptors {
		m.Routes = append(m.Routes, Route{Descriptor: d, PostIDs: d.Posts.IDs()})
		m.Counts[string(d.View)]++
	}
	return m
}

// Paths returns every route's output path in table order.
func (m *RouteManifest) Paths() []string {
	paths := make([]string, len(m.Routes))
	for i, r := range m.Routes {
		paths[i] = r.Path
	}
	return paths
}

// ToJSON serializes the manifest to JSON.
func (m *RouteManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*RouteManifest, error) {
	var m RouteManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Hash computes a deterministic hash of the route table alone, so two runs
// over identical input hash the same regardless of ID or timestamp.
func (m *RouteManifest) Hash() (string, error) {
	data, err := json.Marshal(m.Routes)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}
